package site

import (
	"math"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/grid"
	"github.com/rxdock/rxdock-sub002/model"
)

// DockingSite is the set of cavities found by a site mapper, plus the
// lazily-built nearest-cavity distance grid used to classify receptor
// atoms by proximity (spec.md section 4.5, "DockingSite").
type DockingSite struct {
	Cavities []Cavity
	Min, Max geom.Coord
	Border   float64

	distGrid *grid.RealGrid // built on first GetAtomList call
}

// NewDockingSite wraps a mapper's result. border bounds how far
// GetAtomList may be queried (queries beyond it fail BadArgument).
func NewDockingSite(cavities []Cavity, border float64) *DockingSite {
	ds := &DockingSite{Cavities: cavities, Border: border}
	if len(cavities) == 0 {
		return ds
	}
	min, max := cavities[0].MinMax()
	for _, c := range cavities[1:] {
		cMin, cMax := c.MinMax()
		min = geom.New(math.Min(min.X, cMin.X), math.Min(min.Y, cMin.Y), math.Min(min.Z, cMin.Z))
		max = geom.New(math.Max(max.X, cMax.X), math.Max(max.Y, cMax.Y), math.Max(max.Z, cMax.Z))
	}
	ds.Min, ds.Max = min, max
	return ds
}

// buildDistGrid constructs the distance-to-nearest-cavity grid: step
// matches the first cavity's step, seeded at zero on every cavity
// member cell, then swept outward by 6-connected BFS (section 4.5:
// "seeding zero at cells containing a cavity point and then sweeping").
func (ds *DockingSite) buildDistGrid() *grid.RealGrid {
	step := ds.Cavities[0].Step
	pad := ds.Border + step.X
	min := geom.New(ds.Min.X-pad, ds.Min.Y-pad, ds.Min.Z-pad)
	max := geom.New(ds.Max.X+pad, ds.Max.Y+pad, ds.Max.Z+pad)

	nx := int((max.X-min.X)/step.X) + 2
	ny := int((max.Y-min.Y)/step.Y) + 2
	nz := int((max.Z-min.Z)/step.Z) + 2
	npad := 1
	base := grid.NewBase(min, step, nx, ny, nz, npad)
	g := grid.NewRealGrid(base, 1e-6)

	const unset = math.MaxFloat64
	for i := range g.Values {
		g.Values[i] = unset
	}

	type cell struct{ ix, iy, iz int }
	var queue []cell
	for _, c := range ds.Cavities {
		for _, p := range c.Coords {
			ix, iy, iz := base.IndicesOf(p)
			if !base.InRange(ix, iy, iz) {
				continue
			}
			if g.At(ix, iy, iz) == unset {
				g.Set(ix, iy, iz, 0)
				queue = append(queue, cell{ix, iy, iz})
			}
		}
	}

	hop := step.X // assumes a cubic step, matching every mapper-built grid here
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := g.At(cur.ix, cur.iy, cur.iz)
		neighbors := [][3]int{
			{cur.ix - 1, cur.iy, cur.iz}, {cur.ix + 1, cur.iy, cur.iz},
			{cur.ix, cur.iy - 1, cur.iz}, {cur.ix, cur.iy + 1, cur.iz},
			{cur.ix, cur.iy, cur.iz - 1}, {cur.ix, cur.iy, cur.iz + 1},
		}
		for _, n := range neighbors {
			if !base.InRange(n[0], n[1], n[2]) {
				continue
			}
			if g.At(n[0], n[1], n[2]) > d+hop {
				g.Set(n[0], n[1], n[2], d+hop)
				queue = append(queue, cell{n[0], n[1], n[2]})
			}
		}
	}
	return g
}

// GetAtomList returns the atoms whose distance to the nearest cavity
// lies in [minDist, maxDist]. Fails BadArgument if maxDist exceeds the
// site's border (section 4.5).
func (ds *DockingSite) GetAtomList(atoms []*model.Atom, minDist, maxDist float64) ([]*model.Atom, error) {
	if maxDist > ds.Border {
		return nil, dockerr.New(dockerr.BadArgument, "maxDist %v exceeds docking site border %v", maxDist, ds.Border)
	}
	if ds.distGrid == nil {
		if len(ds.Cavities) == 0 {
			return nil, nil
		}
		ds.distGrid = ds.buildDistGrid()
	}

	var out []*model.Atom
	for _, a := range atoms {
		ix, iy, iz := ds.distGrid.IndicesOf(a.Coord)
		if !ds.distGrid.InRange(ix, iy, iz) {
			continue
		}
		d := ds.distGrid.At(ix, iy, iz)
		if d >= minDist && d <= maxDist {
			out = append(out, a)
		}
	}
	return out, nil
}

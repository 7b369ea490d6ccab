package site

import (
	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/grid"
	"github.com/rxdock/rxdock-sub002/model"
)

// Cell values used internally by the mapping pipeline (spec.md section
// 4.5). Unexported; the package's tests use them to inspect an
// intermediate grid, and the mapper itself never leaks a raw RealGrid.
const (
	valueSolvent  = 0.0 // unassigned / cavity candidate
	valueReceptor = 1.0 // receptor atom, or bulk-solvent-reachable (blocked)
	valueBorder   = 2.0 // outer pad shell, seeded as bulk solvent source
	valueBulk     = 3.0 // transient: reached by the large probe this pass
	valueCavity   = 4.0 // surviving candidate reached by the small probe
)

// buildGrid constructs the padded working RealGrid for a mapping run
// centered on center, covering radius plus the "2*largeR + step" pad
// described in section 4.5.
func buildGrid(center geom.Coord, radius float64, cfg config.SiteMapperSetup) *grid.RealGrid {
	pad := 2*cfg.LargeRadius + cfg.GridStep
	half := radius + pad
	n := int(2*half/cfg.GridStep) + 1
	if n < 3 {
		n = 3
	}
	npad := int(pad/cfg.GridStep) + 1
	min := geom.New(center.X-float64(n/2)*cfg.GridStep, center.Y-float64(n/2)*cfg.GridStep, center.Z-float64(n/2)*cfg.GridStep)
	step := geom.New(cfg.GridStep, cfg.GridStep, cfg.GridStep)
	base := grid.NewBase(min, step, n, n, n, npad)
	return grid.NewRealGrid(base, 1e-6)
}

// markReceptor sets every cell within atom.VdwRadius+probeRadius of a
// receptor atom's coord to valueReceptor ("marks all vdW-expanded
// receptor atoms as receptor", section 4.5).
func markReceptor(g *grid.RealGrid, receptor []*model.Atom, probeRadius float64) {
	for _, a := range receptor {
		g.SetSphere(a.Coord, a.VdwRadius+probeRadius, valueReceptor, true)
	}
}

// markBorder sets the outer NPad-cell shell to valueBorder, seeding bulk
// solvent at the box boundary.
func markBorder(g *grid.RealGrid) {
	np := g.NPad
	for ix := 1; ix <= g.NX; ix++ {
		for iy := 1; iy <= g.NY; iy++ {
			for iz := 1; iz <= g.NZ; iz++ {
				if ix <= np || ix > g.NX-np || iy <= np || iy > g.NY-np || iz <= np || iz > g.NZ-np {
					g.Set(ix, iy, iz, valueBorder)
				}
			}
		}
	}
}

// resetBulk turns every transient valueBulk cell back into blocked
// receptor-equivalent territory, completing the "resets interior values"
// step of section 4.5: once the large probe has told us a region is
// solvent-reachable, it stops being a cavity candidate for the small-probe
// pass that follows.
func resetBulk(g *grid.RealGrid) {
	for ix := 1; ix <= g.NX; ix++ {
		for iy := 1; iy <= g.NY; iy++ {
			for iz := 1; iz <= g.NZ; iz++ {
				if g.At(ix, iy, iz) == valueBulk {
					g.Set(ix, iy, iz, valueReceptor)
				}
			}
		}
	}
}

// seedCandidates forces every cell within r of any of coords back to
// valueSolvent, guaranteeing it survives into the small-probe pass
// regardless of what the large-probe accessibility sweep decided. Used by
// LigandSiteMapper to seed the accessible region around a reference
// ligand (section 4.5).
func seedCandidates(g *grid.RealGrid, coords []geom.Coord, r float64) {
	for _, c := range coords {
		g.SetSphere(c, r, valueSolvent, true)
	}
}

// runPipeline executes the shared accessibility pipeline shared by
// SphereSiteMapper and LigandSiteMapper (section 4.5): mark receptor and
// border, optionally seed extra candidates, flood bulk solvent with the
// large probe from both border and interior, reset it, carve the final
// shell with the small probe, find peaks, sort by descending volume, and
// truncate to MaxCavities.
func runPipeline(g *grid.RealGrid, receptor []*model.Atom, seeds []geom.Coord, cfg config.SiteMapperSetup) []Cavity {
	markReceptor(g, receptor, cfg.Radius)
	markBorder(g)
	if len(seeds) > 0 {
		seedCandidates(g, seeds, cfg.Radius)
	}

	g.SetAccessible(cfg.LargeRadius, valueBorder, valueReceptor, valueBulk, false)
	g.SetAccessible(cfg.LargeRadius, valueSolvent, valueReceptor, valueBulk, false)
	resetBulk(g)

	g.SetAccessible(cfg.Radius, valueSolvent, valueReceptor, valueCavity, true)

	peaks := g.FindPeaks(valueCavity, cfg.MinVolume)
	cavities := peaksToCavities(peaks, g.Step, g.Base)
	sortCavitiesByVolumeDesc(cavities)
	if len(cavities) > cfg.MaxCavities {
		cavities = cavities[:cfg.MaxCavities]
	}
	return cavities
}

// SphereSiteMapper finds cavities within a caller-supplied sphere
// (section 4.5).
type SphereSiteMapper struct {
	cfg config.SiteMapperSetup
}

// NewSphereSiteMapper builds a mapper configured by cfg.
func NewSphereSiteMapper(cfg config.SiteMapperSetup) *SphereSiteMapper {
	return &SphereSiteMapper{cfg: cfg}
}

// MapSite runs the pipeline over a sphere of the given center and radius
// against receptor.
func (s *SphereSiteMapper) MapSite(receptor []*model.Atom, center geom.Coord, radius float64) []Cavity {
	g := buildGrid(center, radius, s.cfg)
	return runPipeline(g, receptor, nil, s.cfg)
}

// LigandSiteMapper finds cavities seeded around a reference ligand's
// heavy atoms (section 4.5).
type LigandSiteMapper struct {
	cfg config.SiteMapperSetup
}

// NewLigandSiteMapper builds a mapper configured by cfg.
func NewLigandSiteMapper(cfg config.SiteMapperSetup) *LigandSiteMapper {
	return &LigandSiteMapper{cfg: cfg}
}

// heavyAtomCoords returns the coordinates of every non-hydrogen atom.
func heavyAtomCoords(ligand []*model.Atom) []geom.Coord {
	var coords []geom.Coord
	for _, a := range ligand {
		if a.AtomicNo != 1 {
			coords = append(coords, a.Coord)
		}
	}
	return coords
}

// boundingSphere returns a center (the coordinate centroid) and a radius
// covering every point, for sizing the working grid.
func boundingSphere(coords []geom.Coord) (center geom.Coord, radius float64) {
	var sum geom.Coord
	for _, c := range coords {
		sum = sum.Add(c)
	}
	n := float64(len(coords))
	center = geom.New(sum.X/n, sum.Y/n, sum.Z/n)
	for _, c := range coords {
		if d := center.Dist(c); d > radius {
			radius = d
		}
	}
	return
}

// MapSite runs the pipeline over a region sized to ligand, seeding
// candidate cells around every heavy atom before the accessibility sweep.
func (s *LigandSiteMapper) MapSite(receptor, ligand []*model.Atom) []Cavity {
	coords := heavyAtomCoords(ligand)
	center, radius := boundingSphere(coords)
	g := buildGrid(center, radius, s.cfg)
	return runPipeline(g, receptor, coords, s.cfg)
}

package grid

import (
	"bytes"
	"encoding/gob"
	"io"
	"math"
	"sort"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
)

// RealGrid adds a contiguous float64 value store, in iXYZ index order,
// to a Base grid, plus a small equality tolerance (section 3,
// "RealGrid").
type RealGrid struct {
	Base
	Values []float64
	Tol    float64
}

// NewRealGrid builds a zero-filled RealGrid.
func NewRealGrid(base Base, tol float64) *RealGrid {
	return &RealGrid{Base: base, Values: make([]float64, base.N()), Tol: tol}
}

// At returns the value at 1-based index (ix,iy,iz).
func (g *RealGrid) At(ix, iy, iz int) float64 { return g.Values[g.Index(ix, iy, iz)] }

// Set stores v at 1-based index (ix,iy,iz).
func (g *RealGrid) Set(ix, iy, iz int, v float64) { g.Values[g.Index(ix, iy, iz)] = v }

func (g *RealGrid) near(a, b float64) bool { return math.Abs(a-b) <= g.Tol }

// GetSmoothedValue computes the lower-left containing cell (Min is the
// center of grid point (1,1,1), so no half-step offset is applied) and
// trilinearly blends the eight surrounding values. If
// either the lower-left cell or its (+1,+1,+1) neighbor is out of
// range, falls back to the value at the nearest grid point (section
// 4.4).
func (g *RealGrid) GetSmoothedValue(c geom.Coord) float64 {
	fx := (c.X - g.Min.X) / g.Step.X
	fy := (c.Y - g.Min.Y) / g.Step.Y
	fz := (c.Z - g.Min.Z) / g.Step.Z

	ix0 := int(math.Floor(fx)) + 1
	iy0 := int(math.Floor(fy)) + 1
	iz0 := int(math.Floor(fz)) + 1

	if !g.InRange(ix0, iy0, iz0) || !g.InRange(ix0+1, iy0+1, iz0+1) {
		nx, ny, nz := g.IndicesOf(c)
		if !g.InRange(nx, ny, nz) {
			return 0
		}
		return g.At(nx, ny, nz)
	}

	tx := fx - float64(ix0-1)
	ty := fy - float64(iy0-1)
	tz := fz - float64(iz0-1)

	v000 := g.At(ix0, iy0, iz0)
	v100 := g.At(ix0+1, iy0, iz0)
	v010 := g.At(ix0, iy0+1, iz0)
	v110 := g.At(ix0+1, iy0+1, iz0)
	v001 := g.At(ix0, iy0, iz0+1)
	v101 := g.At(ix0+1, iy0, iz0+1)
	v011 := g.At(ix0, iy0+1, iz0+1)
	v111 := g.At(ix0+1, iy0+1, iz0+1)

	v00 := v000*(1-tx) + v100*tx
	v10 := v010*(1-tx) + v110*tx
	v01 := v001*(1-tx) + v101*tx
	v11 := v011*(1-tx) + v111*tx

	v0 := v00*(1-ty) + v10*ty
	v1 := v01*(1-ty) + v11*ty

	return v0*(1-tz) + v1*tz
}

// SetSphere marks every cell within r of c to v. When overwrite is
// false, only cells currently at zero change.
func (g *RealGrid) SetSphere(c geom.Coord, r, v float64, overwrite bool) {
	for _, idx := range g.GetSphereIndices(c, r) {
		cur := g.At(idx[0], idx[1], idx[2])
		if overwrite || cur == 0 {
			g.Set(idx[0], idx[1], idx[2], v)
		}
	}
}

// neighbors6 returns the (up to 6) 1-based index triples six-connected
// to (ix,iy,iz), in-range only.
func (g *RealGrid) neighbors6(ix, iy, iz int) [][3]int {
	cand := [][3]int{
		{ix - 1, iy, iz}, {ix + 1, iy, iz},
		{ix, iy - 1, iz}, {ix, iy + 1, iz},
		{ix, iy, iz - 1}, {ix, iy, iz + 1},
	}
	out := cand[:0:0]
	for _, n := range cand {
		if g.InRange(n[0], n[1], n[2]) {
			out = append(out, n)
		}
	}
	return out
}

// CreateSurface sets every cell equal (within tolerance) to oldV that is
// six-neighbor-adjacent to a cell equal to adjV, to newV.
func (g *RealGrid) CreateSurface(oldV, adjV, newV float64) {
	var toSet [][3]int
	for ix := 1; ix <= g.NX; ix++ {
		for iy := 1; iy <= g.NY; iy++ {
			for iz := 1; iz <= g.NZ; iz++ {
				if !g.near(g.At(ix, iy, iz), oldV) {
					continue
				}
				for _, n := range g.neighbors6(ix, iy, iz) {
					if g.near(g.At(n[0], n[1], n[2]), adjV) {
						toSet = append(toSet, [3]int{ix, iy, iz})
						break
					}
				}
			}
		}
	}
	for _, idx := range toSet {
		g.Set(idx[0], idx[1], idx[2], newV)
	}
}

// SetAccessible sets, for every cell at (within tolerance) oldV that has
// no cell within radius r equal to adjV, either just that cell or the
// entire sphere around it to newV depending on centerOnly.
func (g *RealGrid) SetAccessible(r, oldV, adjV, newV float64, centerOnly bool) {
	var targets []geom.Coord
	for ix := 1; ix <= g.NX; ix++ {
		for iy := 1; iy <= g.NY; iy++ {
			for iz := 1; iz <= g.NZ; iz++ {
				if !g.near(g.At(ix, iy, iz), oldV) {
					continue
				}
				c := g.Center(ix, iy, iz)
				accessible := true
				for _, idx := range g.GetSphereIndices(c, r) {
					if g.near(g.At(idx[0], idx[1], idx[2]), adjV) {
						accessible = false
						break
					}
				}
				if accessible {
					if centerOnly {
						g.Set(ix, iy, iz, newV)
					} else {
						targets = append(targets, c)
					}
				}
			}
		}
	}
	for _, c := range targets {
		g.SetSphere(c, r, newV, true)
	}
}

// Peak is one connected component found by FindPeaks.
type Peak struct {
	ArgMax      [3]int
	MaxValue    float64
	Members     [][3]int
	ArgMaxCoord geom.Coord
}

// FindPeaks flood-fills 6-connected components whose cells exceed
// threshold-tol, keeping only components with at least minVol members,
// sorted by peak maximum descending (section 4.4).
func (g *RealGrid) FindPeaks(threshold float64, minVol int) []Peak {
	visited := make([]bool, len(g.Values))
	var peaks []Peak

	for ix := 1; ix <= g.NX; ix++ {
		for iy := 1; iy <= g.NY; iy++ {
			for iz := 1; iz <= g.NZ; iz++ {
				start := [3]int{ix, iy, iz}
				si := g.Index(ix, iy, iz)
				if visited[si] || g.At(ix, iy, iz) < threshold-g.Tol {
					continue
				}
				queue := [][3]int{start}
				visited[si] = true
				var members [][3]int
				argMax := start
				maxVal := g.At(ix, iy, iz)
				for len(queue) > 0 {
					cur := queue[0]
					queue = queue[1:]
					members = append(members, cur)
					v := g.At(cur[0], cur[1], cur[2])
					if v > maxVal {
						maxVal = v
						argMax = cur
					}
					for _, n := range g.neighbors6(cur[0], cur[1], cur[2]) {
						ni := g.Index(n[0], n[1], n[2])
						if visited[ni] || g.At(n[0], n[1], n[2]) < threshold-g.Tol {
							continue
						}
						visited[ni] = true
						queue = append(queue, n)
					}
				}
				if len(members) >= minVol {
					peaks = append(peaks, Peak{
						ArgMax: argMax, MaxValue: maxVal, Members: members,
						ArgMaxCoord: g.Center(argMax[0], argMax[1], argMax[2]),
					})
				}
			}
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].MaxValue > peaks[j].MaxValue })
	return peaks
}

// gridRecord is the gob-encoded wire shape of a RealGrid, grounded on
// the teacher's fem/fileio.go Domain.SaveSol/ReadSol encode-per-field
// convention (section 6, "RealGrid binary format").
type gridRecord struct {
	Title      string
	Min, Step  geom.Coord
	NX, NY, NZ int
	NPad       int
	Tol        float64
	Values     []float64
}

// GetEncoder returns the gob encoder used for grid persistence, mirroring
// fem/fileio.go's GetEncoder/GetDecoder pair (a single fixed codec here;
// the teacher's Sim.Data.Encoder switch has no analogue for grids).
func GetEncoder(w io.Writer) *gob.Encoder { return gob.NewEncoder(w) }

// GetDecoder returns the matching gob decoder.
func GetDecoder(r io.Reader) *gob.Decoder { return gob.NewDecoder(r) }

// WriteBinary gob-encodes the grid's base parameters, tolerance and
// values buffered through a bytes.Buffer before committing to w, the
// same buffer-then-write shape as Domain.SaveSol.
func (g *RealGrid) WriteBinary(w io.Writer, title string) error {
	var buf bytes.Buffer
	rec := gridRecord{
		Title: title, Min: g.Min, Step: g.Step,
		NX: g.NX, NY: g.NY, NZ: g.NZ, NPad: g.NPad,
		Tol: g.Tol, Values: g.Values,
	}
	if err := GetEncoder(&buf).Encode(&rec); err != nil {
		return dockerr.New(dockerr.ParseFailure, "RealGrid.WriteBinary: %v", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return dockerr.New(dockerr.ParseFailure, "RealGrid.WriteBinary: %v", err)
	}
	return nil
}

// ReadBinary is the inverse of WriteBinary. Returns a ParseFailure
// dockerr if the title doesn't match wantTitle.
func ReadBinary(r io.Reader, wantTitle string) (*RealGrid, error) {
	var rec gridRecord
	if err := GetDecoder(r).Decode(&rec); err != nil {
		return nil, dockerr.New(dockerr.ParseFailure, "RealGrid.ReadBinary: %v", err)
	}
	if rec.Title != wantTitle {
		return nil, dockerr.New(dockerr.ParseFailure, "RealGrid: title mismatch, got %q want %q", rec.Title, wantTitle)
	}
	base := NewBase(rec.Min, rec.Step, rec.NX, rec.NY, rec.NZ, rec.NPad)
	g := NewRealGrid(base, rec.Tol)
	copy(g.Values, rec.Values)
	return g, nil
}

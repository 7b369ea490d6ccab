// Package grid implements the regular 3-D index grids the docking core
// uses for cavity/site mapping and for nonbonded-atom spatial
// partitioning (SPEC_FULL.md section 3.4). All grids use 1-based
// per-axis indices, both internally and at the API boundary (At, Set,
// Center, InRange, GetSphereIndices), keeping the numbering close to the
// source formulas.
package grid

import (
	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
)

// Base is the common geometry shared by every grid flavor (section 3,
// "Grid (base)"): a min corner (center of grid point (1,1,1)), a cell
// step, per-axis counts, and a pad width carving out a usable interior
// region.
type Base struct {
	Min            geom.Coord
	Step           geom.Vector
	NX, NY, NZ     int
	NPad           int
	PadMin, PadMax geom.Coord
}

// NewBase builds a Base grid and derives PadMin/PadMax from NPad.
func NewBase(min geom.Coord, step geom.Vector, nx, ny, nz, npad int) Base {
	b := Base{Min: min, Step: step, NX: nx, NY: ny, NZ: nz, NPad: npad}
	b.PadMin = geom.New(min.X+float64(npad)*step.X, min.Y+float64(npad)*step.Y, min.Z+float64(npad)*step.Z)
	b.PadMax = geom.New(
		min.X+float64(nx-1-npad)*step.X,
		min.Y+float64(ny-1-npad)*step.Y,
		min.Z+float64(nz-1-npad)*step.Z,
	)
	return b
}

// N returns the total cell count NX*NY*NZ.
func (b Base) N() int { return b.NX * b.NY * b.NZ }

// Index converts 1-based per-axis indices to the flat iXYZ index.
func (b Base) Index(ix, iy, iz int) int {
	return (ix-1)*b.NY*b.NZ + (iy-1)*b.NZ + (iz-1)
}

// InRange reports whether the 1-based indices lie within [1,NX]x[1,NY]x[1,NZ].
func (b Base) InRange(ix, iy, iz int) bool {
	return ix >= 1 && ix <= b.NX && iy >= 1 && iy <= b.NY && iz >= 1 && iz <= b.NZ
}

// Center returns the coordinate of grid point (ix,iy,iz), 1-based.
func (b Base) Center(ix, iy, iz int) geom.Coord {
	return geom.New(
		b.Min.X+float64(ix-1)*b.Step.X,
		b.Min.Y+float64(iy-1)*b.Step.Y,
		b.Min.Z+float64(iz-1)*b.Step.Z,
	)
}

// IndicesOf returns the 1-based index triple of the cell whose center is
// nearest c, without clamping to range.
func (b Base) IndicesOf(c geom.Coord) (ix, iy, iz int) {
	ix = int((c.X-b.Min.X)/b.Step.X+0.5) + 1
	iy = int((c.Y-b.Min.Y)/b.Step.Y+0.5) + 1
	iz = int((c.Z-b.Min.Z)/b.Step.Z+0.5) + 1
	return
}

// GetSphereIndices enumerates every 1-based index triple within radius r
// of c, clipped to the pad region (section 4.4). Triples are visited in
// index order (x outer, then y, then z) for deterministic iteration.
func (b Base) GetSphereIndices(c geom.Coord, r float64) [][3]int {
	clampAxis := func(lo, hi int, padLo, padHi int) (int, int) {
		if lo < padLo {
			lo = padLo
		}
		if hi > padHi {
			hi = padHi
		}
		return lo, hi
	}
	ixPadLo, _, _ := b.IndicesOf(b.PadMin)
	ixPadHi, _, _ := b.IndicesOf(b.PadMax)
	_, iyPadLo, _ := b.IndicesOf(b.PadMin)
	_, iyPadHi, _ := b.IndicesOf(b.PadMax)
	_, _, izPadLo := b.IndicesOf(b.PadMin)
	_, _, izPadHi := b.IndicesOf(b.PadMax)

	ixLo := int((c.X-r-b.Min.X)/b.Step.X) + 1
	ixHi := int((c.X+r-b.Min.X)/b.Step.X) + 2
	iyLo := int((c.Y-r-b.Min.Y)/b.Step.Y) + 1
	iyHi := int((c.Y+r-b.Min.Y)/b.Step.Y) + 2
	izLo := int((c.Z-r-b.Min.Z)/b.Step.Z) + 1
	izHi := int((c.Z+r-b.Min.Z)/b.Step.Z) + 2

	ixLo, ixHi = clampAxis(ixLo, ixHi, ixPadLo, ixPadHi)
	iyLo, iyHi = clampAxis(iyLo, iyHi, iyPadLo, iyPadHi)
	izLo, izHi = clampAxis(izLo, izHi, izPadLo, izPadHi)

	r2 := r * r
	var out [][3]int
	for ix := ixLo; ix <= ixHi; ix++ {
		dx := b.Min.X + float64(ix-1)*b.Step.X - c.X
		dx2 := dx * dx
		if dx2 > r2 {
			continue
		}
		for iy := iyLo; iy <= iyHi; iy++ {
			dy := b.Min.Y + float64(iy-1)*b.Step.Y - c.Y
			dxy2 := dx2 + dy*dy
			if dxy2 > r2 {
				continue
			}
			for iz := izLo; iz <= izHi; iz++ {
				dz := b.Min.Z + float64(iz-1)*b.Step.Z - c.Z
				if dxy2+dz*dz > r2 {
					continue
				}
				if b.InRange(ix, iy, iz) {
					out = append(out, [3]int{ix, iy, iz})
				}
			}
		}
	}
	return out
}

// ErrOutOfRange is returned by indexed accessors given an out-of-bounds
// index triple.
var ErrOutOfRange = dockerr.New(dockerr.BadArgument, "grid index out of range")

package grid

import (
	"reflect"
	"sort"

	"github.com/rxdock/rxdock-sub002/geom"
)

// NonBondedGrid buckets arbitrary pointer-identified items (atoms, or,
// via NonBondedHHSGrid's instantiation, HHS-solvation centers) by cell:
// for each cell, the list of items whose sphere (item center plus
// radius) contains that cell's center (section 3, "NonBondedGrid /
// NonBondedHHSGrid"). T must be a pointer type so identity comparison
// and UniqueAtomLists ordering are well defined.
type NonBondedGrid[T any] struct {
	Base
	cells [][]T
	empty []T
}

// NewNonBondedGrid builds an empty NonBondedGrid over base.
func NewNonBondedGrid[T any](base Base) *NonBondedGrid[T] {
	return &NonBondedGrid[T]{Base: base, cells: make([][]T, base.N())}
}

// SetItemLists clears every cell, then for each item places it into
// every cell whose center lies within the sphere centered at
// center(item) with radius r(item), using GetSphereIndices.
func (g *NonBondedGrid[T]) SetItemLists(items []T, center func(T) geom.Coord, radius func(T) float64) {
	for i := range g.cells {
		g.cells[i] = nil
	}
	for _, it := range items {
		for _, idx := range g.GetSphereIndices(center(it), radius(it)) {
			i := g.Index(idx[0], idx[1], idx[2])
			g.cells[i] = append(g.cells[i], it)
		}
	}
}

// pointerKey returns a stable, totally ordered identity for a pointer
// value, used for UniqueAtomLists' sort-and-dedupe pass since Go
// pointers support == but not <.
func pointerKey(v any) uintptr {
	return reflect.ValueOf(v).Pointer()
}

// UniqueAtomLists sorts every cell's list by pointer identity and
// removes duplicates (section 3 invariant: "after UniqueAtomLists,
// lists are sorted by pointer and contain no duplicates").
func (g *NonBondedGrid[T]) UniqueAtomLists() {
	for i, list := range g.cells {
		if len(list) < 2 {
			continue
		}
		sort.Slice(list, func(a, b int) bool { return pointerKey(list[a]) < pointerKey(list[b]) })
		out := list[:1]
		for _, it := range list[1:] {
			if pointerKey(it) != pointerKey(out[len(out)-1]) {
				out = append(out, it)
			}
		}
		g.cells[i] = out
	}
}

// AtCell returns the item list for 1-based index (ix,iy,iz), or an
// empty, shared slice if out of range.
func (g *NonBondedGrid[T]) AtCell(ix, iy, iz int) []T {
	if !g.InRange(ix, iy, iz) {
		return g.empty
	}
	return g.cells[g.Index(ix, iy, iz)]
}

// AtCoord returns the item list for the cell nearest c, or an empty,
// shared slice if that cell lies out of range.
func (g *NonBondedGrid[T]) AtCoord(c geom.Coord) []T {
	ix, iy, iz := g.IndicesOf(c)
	return g.AtCell(ix, iy, iz)
}

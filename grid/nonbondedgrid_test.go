package grid

import (
	"testing"

	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

func TestNonBondedGridSetAndUnique(tst *testing.T) {
	m := model.NewModel()
	a1 := m.AddAtom()
	a1.Coord = geom.New(1, 1, 1)
	a1.VdwRadius = 1.0
	a2 := m.AddAtom()
	a2.Coord = geom.New(1, 1, 1.5)
	a2.VdwRadius = 1.0

	base := NewBase(geom.New(0, 0, 0), geom.New(1, 1, 1), 4, 4, 4, 1)
	g := NewNonBondedGrid[*model.Atom](base)
	g.SetItemLists([]*model.Atom{a1, a2}, func(a *model.Atom) geom.Coord { return a.Coord },
		func(a *model.Atom) float64 { return a.VdwRadius })

	ix, iy, iz := base.IndicesOf(a1.Coord)
	cell := g.AtCell(ix, iy, iz)
	if len(cell) == 0 {
		tst.Fatalf("expected a1's home cell to contain at least one atom")
	}

	// Before dedup, re-running SetItemLists with a duplicated input list
	// should leave duplicates in the same cell.
	g.SetItemLists([]*model.Atom{a1, a1, a2}, func(a *model.Atom) geom.Coord { return a.Coord },
		func(a *model.Atom) float64 { return a.VdwRadius })
	g.UniqueAtomLists()

	for ix := 1; ix <= base.NX; ix++ {
		for iy := 1; iy <= base.NY; iy++ {
			for iz := 1; iz <= base.NZ; iz++ {
				list := g.AtCell(ix, iy, iz)
				seen := make(map[*model.Atom]bool)
				for _, a := range list {
					if seen[a] {
						tst.Errorf("cell (%d,%d,%d) has duplicate atom after UniqueAtomLists", ix, iy, iz)
					}
					seen[a] = true
				}
			}
		}
	}
}

func TestNonBondedGridOutOfRangeReturnsEmpty(tst *testing.T) {
	base := NewBase(geom.New(0, 0, 0), geom.New(1, 1, 1), 4, 4, 4, 1)
	g := NewNonBondedGrid[*model.Atom](base)
	if got := g.AtCell(100, 100, 100); len(got) != 0 {
		tst.Errorf("expected empty slice for out-of-range cell, got %v", got)
	}
}

package sf

import (
	"testing"

	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// buildPentaneChain builds A-B-C-D-E with single bonds (scenario S1).
func buildPentaneChain(tst *testing.T) (m *model.Model, a, b, c, d, e *model.Atom, bc *model.Bond) {
	m = model.NewModel()
	a = m.AddAtom()
	a.Coord = geom.New(-2, 0, 0)
	b = m.AddAtom()
	b.Coord = geom.New(-1, 0, 0)
	c = m.AddAtom()
	c.Coord = geom.New(0, 0, 0)
	d = m.AddAtom()
	d.Coord = geom.New(1, 0, 0)
	e = m.AddAtom()
	e.Coord = geom.New(2, 0, 0)

	if _, err := m.AddBond(a, b, 1); err != nil {
		tst.Fatalf("bond a-b: %v", err)
	}
	var err error
	bc, err = m.AddBond(b, c, 1)
	if err != nil {
		tst.Fatalf("bond b-c: %v", err)
	}
	if _, err := m.AddBond(c, d, 1); err != nil {
		tst.Fatalf("bond c-d: %v", err)
	}
	if _, err := m.AddBond(d, e, 1); err != nil {
		tst.Fatalf("bond d-e: %v", err)
	}
	return
}

// TestModelMutatorFlexMatrixSymmetricAndSorted exercises invariant 3: the
// flex-interaction matrix is symmetric, and each row is strictly sorted
// with no duplicates.
func TestModelMutatorFlexMatrixSymmetricAndSorted(tst *testing.T) {
	m, a, b, _, d, e, _ := buildPentaneChain(tst)
	_ = e
	bc := m.Bonds()[1]
	cd := m.Bonds()[2]

	mut := ModelMutator(m, []RotatableBondSpec{
		{Bond: bc, Outer1: a, Outer2: d},
		{Bond: cd, Outer1: b, Outer2: m.Atoms()[4]},
	}, nil)

	for id, list := range mut.FlexIntns {
		for _, other := range list {
			found := false
			for _, back := range mut.FlexIntns[other] {
				if back == id {
					found = true
					break
				}
			}
			if !found {
				tst.Errorf("flexIntns not symmetric: %d -> %d but not back", id, other)
			}
		}
		for i := 1; i < len(list); i++ {
			if list[i] <= list[i-1] {
				tst.Errorf("row for atom %d not strictly sorted: %v", id, list)
			}
		}
	}
	if len(mut.Chromosome) != 2 {
		tst.Fatalf("expected 2 chromosome entries, got %d", len(mut.Chromosome))
	}
}

// TestPartitionFindsAtomsWithinRadius exercises invariant 10: every atom
// within d appears in the partitioned list.
func TestPartitionFindsAtomsWithinRadius(tst *testing.T) {
	m, a, b, c, d, e, _ := buildPentaneChain(tst)
	atoms := m.Atoms()
	intns := map[int][]int{a.ID: {b.ID, c.ID, d.ID, e.ID}}
	partitioned := make(map[int][]int)

	Partition(atoms, intns, partitioned, 1.5)

	hot := partitioned[a.ID]
	want := map[int]bool{b.ID: true} // dist(a,b)=1 < 1.5; dist(a,c)=2 >= 1.5
	for _, id := range hot {
		if !want[id] {
			tst.Errorf("unexpected atom id %d in partitioned list", id)
		}
		delete(want, id)
	}
	if len(want) != 0 {
		tst.Errorf("missing expected atom ids in partitioned list: %v", want)
	}

	Partition(atoms, intns, partitioned, 0)
	if len(partitioned[a.ID]) != 4 {
		tst.Errorf("d=0 should reset to full list, got %v", partitioned[a.ID])
	}
}

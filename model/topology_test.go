package model

import "testing"

// chain builds a linear path a1-a2-a3-a4 plus a branch a2-b1, returning
// atoms and bonds in id order.
func buildChain(tst *testing.T) ([]*Atom, []*Bond) {
	var atoms []*Atom
	for i := 1; i <= 5; i++ {
		atoms = append(atoms, newAtom(i))
	}
	a1, a2, a3, a4, b1 := atoms[0], atoms[1], atoms[2], atoms[3], atoms[4]

	var bonds []*Bond
	add := func(x, y *Atom) {
		b := newBond(len(bonds)+1, x, y, 1)
		if b == nil {
			tst.Fatalf("newBond(%d,%d) returned nil", x.ID, y.ID)
		}
		bonds = append(bonds, b)
	}
	add(a1, a2)
	add(a2, a3)
	add(a3, a4)
	add(a2, b1)
	return atoms, bonds
}

func buildRing3(tst *testing.T) ([]*Atom, []*Bond) {
	var atoms []*Atom
	for i := 1; i <= 3; i++ {
		atoms = append(atoms, newAtom(i))
	}
	var bonds []*Bond
	add := func(x, y *Atom) {
		b := newBond(len(bonds)+1, x, y, 1)
		if b == nil {
			tst.Fatalf("newBond(%d,%d) returned nil", x.ID, y.ID)
		}
		bonds = append(bonds, b)
	}
	add(atoms[0], atoms[1])
	add(atoms[1], atoms[2])
	add(atoms[2], atoms[0])
	return atoms, bonds
}

func TestSpinAcyclicBond(tst *testing.T) {
	atoms, bonds := buildChain(tst)
	a2a3 := bonds[1] // the a2-a3 bond
	cyclic := Spin(a2a3, atoms, bonds)
	if cyclic {
		tst.Fatalf("a2-a3 bond in an acyclic chain should not be cyclic")
	}
	// Rotating a2-a3 should move a3 and a4 (downstream of a3), not a1/a2/b1.
	want := map[int]bool{3: true, 4: true}
	for _, a := range atoms {
		got := a.Selected
		if want[a.ID] != got {
			tst.Errorf("atom %d: Selected=%v, want %v", a.ID, got, want[a.ID])
		}
	}
}

func TestSpinAndFindCyclicOnRing(tst *testing.T) {
	atoms, bonds := buildRing3(tst)
	for _, b := range bonds {
		if !FindCyclic(b, atoms, bonds) {
			tst.Errorf("bond %d-%d in a 3-ring should be cyclic", b.Atom1.ID, b.Atom2.ID)
		}
		if !Spin(b, atoms, bonds) {
			tst.Errorf("Spin(%d-%d) should report cyclic on a ring bond", b.Atom1.ID, b.Atom2.ID)
		}
	}
}

func TestFindRingsOnMixedGraph(tst *testing.T) {
	ringAtoms, ringBonds := buildRing3(tst)
	// Attach a pendant chain atom off one ring atom to make sure FindRings
	// only reports the ring, not the whole component.
	pendant := newAtom(10)
	pendantBond := newBond(10, ringAtoms[0], pendant, 1)
	if pendantBond == nil {
		tst.Fatal("newBond for pendant returned nil")
	}
	atoms := append(ringAtoms, pendant)
	bonds := append(ringBonds, pendantBond)

	rings := FindRings(atoms, bonds)
	if len(rings) != 1 {
		tst.Fatalf("expected exactly 1 ring, got %d", len(rings))
	}
	if len(rings[0]) != 3 {
		tst.Fatalf("expected a 3-membered ring, got %d atoms", len(rings[0]))
	}
	for _, a := range ringAtoms {
		if !a.Cyclic {
			tst.Errorf("ring atom %d should be flagged Cyclic", a.ID)
		}
	}
	if pendant.Cyclic {
		tst.Errorf("pendant atom should not be flagged Cyclic")
	}
}

func TestFindRingOnAcyclicAtomReturnsNil(tst *testing.T) {
	atoms, bonds := buildChain(tst)
	SetCyclicFlags(atoms, bonds)
	if ring := FindRing(atoms[0], bonds); ring != nil {
		tst.Errorf("FindRing on an acyclic atom should return nil, got %v", ring)
	}
}

package model

// Topology utilities operate on an explicit (atomList, bondList) pair
// rather than solely through Model, so they can be exercised against a
// substructure or a scratch fragment as well as a whole model (section
// 4.2). All traversal order is bond-id / atom-id sorted (via Atom.Bonds)
// to keep ring-finding output deterministic regardless of map iteration
// order (section 8, invariant 9).

// clearSelection resets the Selected flag on every atom and bond, ready
// for a fresh traversal.
func clearSelection(atomList []*Atom, bondList []*Bond) {
	for _, a := range atomList {
		a.Selected = false
	}
	for _, b := range bondList {
		b.Selected = false
	}
}

// FindCyclic reports whether bond is part of a ring: a breadth... in
// fact depth-first (stack-ordered) walk outward from bond's second
// endpoint, never crossing bond itself, that reaches bond's first
// endpoint via some other path. Cut-down version of Spin that gives up
// on the walk as soon as the answer is known, without flagging the
// first endpoint reached.
func FindCyclic(bond *Bond, atomList []*Atom, bondList []*Bond) bool {
	a1, a2 := bond.Atom1, bond.Atom2

	clearSelection(atomList, bondList)

	pending := []*Atom{a2}
	a2.Selected = true
	bond.Selected = true

	for len(pending) > 0 {
		n := len(pending) - 1
		cur := pending[n]
		pending = pending[:n]

		for _, b := range cur.Bonds() {
			if b.Selected {
				continue
			}
			other := b.OtherAtom(cur)
			if other == a1 {
				return true
			}
			if !other.Selected {
				other.Selected = true
				b.Selected = true
				pending = append(pending, other)
			}
		}
	}
	return false
}

// Spin walks outward from bond's second endpoint, marking every atom
// and bond reachable without crossing bond itself as Selected — the
// set of atoms that would move if bond were rotated. Returns true if
// the walk also reaches bond's first endpoint, meaning bond lies on a
// ring and spinning it is meaningless (rotating a ring bond has no
// well-defined "moving fragment").
func Spin(bond *Bond, atomList []*Atom, bondList []*Bond) bool {
	a1, a2 := bond.Atom1, bond.Atom2

	clearSelection(atomList, bondList)
	isCyclic := false

	pending := []*Atom{a2}
	a2.Selected = true
	bond.Selected = true

	for len(pending) > 0 {
		n := len(pending) - 1
		cur := pending[n]
		pending = pending[:n]

		for _, b := range cur.Bonds() {
			if b.Selected {
				continue
			}
			other := b.OtherAtom(cur)
			if other == a1 {
				// Ring closure: note it but do not select atom1 or stop the
				// walk early — every other reachable atom must still get its
				// selection flag set.
				isCyclic = true
			} else if !other.Selected {
				other.Selected = true
				b.Selected = true
				pending = append(pending, other)
			}
		}
	}
	return isCyclic
}

// SetCyclicFlags runs FindCyclic on every bond and propagates the
// result to the bond and both its atoms' Cyclic flags.
func SetCyclicFlags(atomList []*Atom, bondList []*Bond) {
	for _, a := range atomList {
		a.Cyclic = false
	}
	for _, b := range bondList {
		b.Cyclic = false
	}
	for _, b := range bondList {
		if FindCyclic(b, atomList, bondList) {
			b.Cyclic = true
			b.Atom1.Cyclic = true
			b.Atom2.Cyclic = true
		}
	}
}

// cyclicBonds returns a's incident cyclic bonds, bond-id sorted.
func cyclicBonds(a *Atom) []*Bond {
	var out []*Bond
	for _, b := range a.Bonds() {
		if b.Cyclic {
			out = append(out, b)
		}
	}
	return out
}

// FindRing returns the smallest ring containing atom, or nil if atom
// isn't cyclic. Assumes SetCyclicFlags has already run. Grows a
// breadth-first family of partial rings in lock-step, forking a
// partial ring's path at any head atom with more than one unexplored
// cyclic bond; the first partial ring to close back on atom is the
// smallest ring (ties broken by atom/bond iteration order, which is
// bond-id sorted here for determinism). Panics if bondList's cyclic
// bonds don't actually close a ring back to atom — SetCyclicFlags
// having run guarantees they do.
func FindRing(atom *Atom, bondList []*Bond) []*Atom {
	if !atom.Cyclic {
		return nil
	}

	for _, b := range bondList {
		b.Selected = false
	}

	cyclic := cyclicBonds(atom)
	seed := cyclic[0]
	seed.Selected = true
	atom2 := seed.OtherAtom(atom)

	partialRings := [][]*Atom{{atom, atom2}}

	for {
		nRings := len(partialRings)
		for i := 0; i < nRings; i++ {
			head := partialRings[i][len(partialRings[i])-1]
			nUnselected := 0
			for _, b := range cyclicBonds(head) {
				if !b.Selected {
					nUnselected++
				}
			}
			for fork := 0; fork < nUnselected-1; fork++ {
				cp := make([]*Atom, len(partialRings[i]))
				copy(cp, partialRings[i])
				partialRings = append(partialRings, cp)
			}
		}

		for i := range partialRings {
			head := partialRings[i][len(partialRings[i])-1]
			for _, b := range cyclicBonds(head) {
				if b.Selected {
					continue
				}
				other := b.OtherAtom(head)
				if other == atom {
					return partialRings[i]
				}
				partialRings[i] = append(partialRings[i], other)
				b.Selected = true
				break
			}
		}
	}
}

// FindRings runs SetCyclicFlags then FindRing on every cyclic atom not
// already claimed by a smaller ring found earlier in atom-list order,
// returning every distinct smallest ring found.
func FindRings(atomList []*Atom, bondList []*Bond) [][]*Atom {
	SetCyclicFlags(atomList, bondList)

	for _, a := range atomList {
		a.Selected = !a.Cyclic
	}

	var rings [][]*Atom
	for _, a := range atomList {
		if a.Selected {
			continue
		}
		ring := FindRing(a, bondList)
		if len(ring) == 0 {
			continue
		}
		for _, m := range ring {
			m.Selected = true
		}
		rings = append(rings, ring)
	}
	return rings
}

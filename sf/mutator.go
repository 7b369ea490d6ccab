package sf

import (
	"sort"

	"github.com/rxdock/rxdock-sub002/model"
)

// RotatableBondSpec names one rotatable bond and its dihedral's outer
// atoms; Bond.Atom1/Atom2 supply the inner pair (section 4.6).
type RotatableBondSpec struct {
	Bond   *model.Bond
	Outer1 *model.Atom // a1: outer atom on Bond.Atom1's side
	Outer2 *model.Atom // a4: outer atom on Bond.Atom2's side
}

// Mutator holds the per-bond dihedral references plus the full N×N
// flex-interaction matrix produced by ModelMutator (section 4.6).
type Mutator struct {
	Chromosome []*model.ChromDihedralRefData
	// FlexIntns maps atom id (1-based) to the sorted, deduplicated list
	// of atom ids that can change distance to it across at least one
	// rotatable bond.
	FlexIntns map[int][]int
}

// ModelMutator builds the flex-interaction matrix for m's rotatableBonds
// (construction algorithm of section 4.6): for each bond, Spin marks the
// two sides; the rotating side is chosen to minimize its size, or, when
// tethered is non-empty, to minimize the tethered subset of the rotating
// side even at the cost of a larger total; every (rotating, fixed) pair
// contributes a symmetric FlexIntns entry.
func ModelMutator(m *model.Model, rotatableBonds []RotatableBondSpec, tethered map[*model.Atom]bool) *Mutator {
	atoms := m.Atoms()
	bonds := m.Bonds()
	mut := &Mutator{FlexIntns: make(map[int][]int)}

	for _, spec := range rotatableBonds {
		model.Spin(spec.Bond, atoms, bonds)

		var side1, side2 []*model.Atom
		for _, a := range atoms {
			if a.Selected {
				side1 = append(side1, a)
			} else {
				side2 = append(side2, a)
			}
		}
		for _, a := range atoms {
			a.Selected = false
		}

		rotating, fixed := side1, side2
		a2, a3 := spec.Bond.Atom1, spec.Bond.Atom2
		a1, a4 := spec.Outer1, spec.Outer2

		if len(tethered) > 0 {
			if tetheredCount(side1, tethered) > tetheredCount(side2, tethered) {
				rotating, fixed = side2, side1
				a2, a3 = a3, a2
				a1, a4 = a4, a1
			}
		} else if len(side1) > len(side2) {
			rotating, fixed = side2, side1
			a2, a3 = a3, a2
			a1, a4 = a4, a1
		}

		sort.Slice(rotating, func(i, j int) bool { return rotating[i].ID < rotating[j].ID })

		ref := model.NewChromDihedralRefData(spec.Bond, a1, a2, a3, a4, rotating, 10.0, model.ModeFree, 0)
		mut.Chromosome = append(mut.Chromosome, ref)

		for _, s := range rotating {
			for _, u := range fixed {
				mut.FlexIntns[s.ID] = append(mut.FlexIntns[s.ID], u.ID)
				mut.FlexIntns[u.ID] = append(mut.FlexIntns[u.ID], s.ID)
			}
		}
	}

	for id, list := range mut.FlexIntns {
		mut.FlexIntns[id] = sortUniqueInts(list)
	}
	return mut
}

func tetheredCount(side []*model.Atom, tethered map[*model.Atom]bool) int {
	n := 0
	for _, a := range side {
		if tethered[a] {
			n++
		}
	}
	return n
}

func sortUniqueInts(in []int) []int {
	sort.Ints(in)
	out := in[:0:0]
	for i, v := range in {
		if i == 0 || v != in[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// Partition copies, per atom id, only the entries of the full flex list
// currently within d Angstroms of that atom into partitioned; d == 0
// resets every entry to the full list (section 4.8).
func Partition(atoms []*model.Atom, intns map[int][]int, partitioned map[int][]int, d float64) {
	byID := make(map[int]*model.Atom, len(atoms))
	for _, a := range atoms {
		byID[a.ID] = a
	}
	for id, full := range intns {
		a, ok := byID[id]
		if !ok {
			continue
		}
		if d == 0 {
			partitioned[id] = append([]int(nil), full...)
			continue
		}
		var hot []int
		for _, otherID := range full {
			o, ok := byID[otherID]
			if !ok {
				continue
			}
			if a.Coord.Dist(o.Coord) < d {
				hot = append(hot, otherID)
			}
		}
		partitioned[id] = hot
	}
}

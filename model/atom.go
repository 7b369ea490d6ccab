// Package model implements the mutable molecular graph (Atom, Bond, Model),
// its topology utilities, flexibility descriptors, and the chromosome
// dihedral reference the optimizer drives (SPEC_FULL.md section 3.3).
package model

import (
	"sort"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/geom"
)

// Atom is a mutable molecular graph node. Lifetime is owned exclusively by
// its parent Model; Bond references here are non-owning (weak) and are
// valid only for the lifetime of that Model (section 9, "Cyclic graph
// ownership").
type Atom struct {
	ID            int // 1-based within model, unique
	AtomicNo      int
	Name          string
	SubunitID     string
	SubunitName   string
	SegmentName   string
	Hybrid        elem.Hybrid
	NImplicitH    int
	FormalCharge  int
	PartialCharge float64
	GroupCharge   float64
	Coord         geom.Coord
	AtomicMass    float64
	VdwRadius     float64
	FFType        string
	PMFType       int // PMF statistical-potential type; UNDEFINED == 0 (no PMF type enum or scorer reads it)
	TriposType    elem.TriposType

	Cyclic   bool
	Selected bool
	User1Bool bool

	User1Double float64
	User2Double float64

	bondMap     map[*Bond]bool // value: true if this atom is "atom1" of the bond
	savedCoords map[int]geom.Coord

	model *Model // back-reference, non-owning
}

// newAtom builds a bare atom; use Model.AddAtom to create one wired to a
// model.
func newAtom(id int) *Atom {
	return &Atom{
		ID:          id,
		Hybrid:      elem.HybridUndefined,
		VdwRadius:   1.5,
		bondMap:     make(map[*Bond]bool),
		savedCoords: make(map[int]geom.Coord),
	}
}

// Model returns the owning model.
func (a *Atom) Model() *Model { return a.model }

// NumBonds returns the number of explicit bonds incident to this atom.
func (a *Atom) NumBonds() int { return len(a.bondMap) }

// CoordinationNumber returns |bondMap| + nImplicitH: the atom's total
// coordination number including implicit hydrogens.
func (a *Atom) CoordinationNumber() int { return len(a.bondMap) + a.NImplicitH }

// CoordinationNumberOf returns the number of neighbors (bonded, not
// counting implicit H) with the given atomic number.
func (a *Atom) CoordinationNumberOf(atomicNo int) int {
	n := 0
	for _, nb := range a.BondedAtoms() {
		if nb.AtomicNo == atomicNo {
			n++
		}
	}
	return n
}

// Bonds returns the atom's incident bonds sorted by bond ID — the
// deterministic iteration order section 4.1 requires.
func (a *Atom) Bonds() []*Bond {
	out := make([]*Bond, 0, len(a.bondMap))
	for b := range a.bondMap {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IsAtom1Of reports whether this atom is registered as "atom1" for bond b.
func (a *Atom) IsAtom1Of(b *Bond) (isAtom1, present bool) {
	v, ok := a.bondMap[b]
	return v, ok
}

// addBond registers the bond in this atom's bond map. Returns false if the
// atom is not an endpoint of b, or if b is already registered.
func (a *Atom) addBond(b *Bond, isAtom1 bool) bool {
	if !b.HasAtom(a) {
		return false
	}
	if _, exists := a.bondMap[b]; exists {
		return false
	}
	a.bondMap[b] = isAtom1
	return true
}

// removeBond unregisters b. Returns false if b was not present.
func (a *Atom) removeBond(b *Bond) bool {
	if _, exists := a.bondMap[b]; !exists {
		return false
	}
	delete(a.bondMap, b)
	return true
}

// NumCyclicBonds returns the count of incident bonds flagged cyclic.
func (a *Atom) NumCyclicBonds() int {
	n := 0
	for b := range a.bondMap {
		if b.Cyclic {
			n++
		}
	}
	return n
}

// BondedAtoms returns the atoms directly bonded to a, in bond-id order.
func (a *Atom) BondedAtoms() []*Atom {
	bonds := a.Bonds()
	out := make([]*Atom, 0, len(bonds))
	for _, b := range bonds {
		out = append(out, b.OtherAtom(a))
	}
	return out
}

// SetCoords sets the atom's current 3-D coordinate.
func (a *Atom) SetCoords(c geom.Coord) { a.Coord = c }

// Translate moves the atom by the given vector.
func (a *Atom) Translate(v geom.Vector) { a.Coord = a.Coord.Add(v) }

// RotateUsingQuat rotates the atom's coordinate by quaternion q (rotation
// is about the origin; callers translate to/from the rotation center as
// needed — see Model.Rotate and ChromDihedralRefData.SetModelValue for the
// whole-body and dihedral rotation recipes).
func (a *Atom) RotateUsingQuat(q geom.Quat) { a.Coord = q.RotateVector(a.Coord) }

// SaveCoords stores the atom's current coordinate under snapshot key k.
func (a *Atom) SaveCoords(k int) { a.savedCoords[k] = a.Coord }

// RevertCoords restores the coordinate saved under key k. Fails with
// InvalidRequest if no such snapshot was ever saved for this atom.
func (a *Atom) RevertCoords(k int) error {
	c, ok := a.savedCoords[k]
	if !ok {
		return dockerr.New(dockerr.InvalidRequest, "atom %d: no saved coords under key %d", a.ID, k)
	}
	a.Coord = c
	return nil
}

// FullAtomName composes "segment:subunitName_subunitId:atomName", with
// every component optional per the NMR restraint atom-name grammar
// (SPEC_FULL.md / spec.md section 6).
func (a *Atom) FullAtomName() string {
	name := a.SegmentName
	if a.SubunitName != "" || a.SubunitID != "" {
		name += ":" + a.SubunitName + "_" + a.SubunitID
	} else {
		name += ":"
	}
	return name + ":" + a.Name
}

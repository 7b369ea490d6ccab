package model

import (
	"sort"

	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
)

// DefaultEnabledThreshold is the occupancy above which a Model is
// considered enabled for scoring purposes (section 3, "occupancy").
const DefaultEnabledThreshold = 0.5

// Model exclusively owns its Atom and Bond collections (section 3,
// "Model"). All cross-references from Atom/Bond back into Model state
// are non-owning; nothing outside Model ever deletes an Atom or Bond.
type Model struct {
	Titles []string

	atoms []*Atom
	bonds []*Bond

	substructureCounts map[string]int
	rings              [][]*Atom

	snapshotIDs    map[string]int
	nextSnapshotID int

	data map[string]interface{}

	pseudoAtoms []*PseudoAtom

	Occupancy        float64
	EnabledThreshold float64

	Flex          *FlexData
	RefChromosome []*ChromDihedralRefData
}

// NewModel builds an empty model with default occupancy (fully
// occupied/enabled) and threshold.
func NewModel() *Model {
	return &Model{
		substructureCounts: make(map[string]int),
		snapshotIDs:        make(map[string]int),
		data:               make(map[string]interface{}),
		Occupancy:          1.0,
		EnabledThreshold:   DefaultEnabledThreshold,
	}
}

// AddAtom creates a new atom owned by this model and returns it. IDs are
// assigned 1-based and contiguous.
func (m *Model) AddAtom() *Atom {
	a := newAtom(len(m.atoms) + 1)
	a.model = m
	m.atoms = append(m.atoms, a)
	m.substructureCounts[a.FullAtomName()]++
	return a
}

// AddBond creates a bond between a1 and a2, owned by this model. Fails
// with ModelTopology if either atom does not belong to this model, or
// with InvalidRequest if bond registration fails (e.g. a1-a2 already
// bonded).
func (m *Model) AddBond(a1, a2 *Atom, order int) (*Bond, error) {
	if a1.model != m || a2.model != m {
		return nil, dockerr.New(dockerr.ModelTopology, "AddBond: both atoms must belong to this model")
	}
	b := newBond(len(m.bonds)+1, a1, a2, order)
	if b == nil {
		return nil, dockerr.New(dockerr.InvalidRequest, "AddBond: %d-%d already bonded", a1.ID, a2.ID)
	}
	m.bonds = append(m.bonds, b)
	return b, nil
}

// Atoms returns every atom owned by this model, in id order.
func (m *Model) Atoms() []*Atom { return m.atoms }

// Bonds returns every bond owned by this model, in id order.
func (m *Model) Bonds() []*Bond { return m.bonds }

// PseudoAtoms returns every pseudo-atom owned by this model.
func (m *Model) PseudoAtoms() []*PseudoAtom { return m.pseudoAtoms }

// AddPseudoAtom creates a pseudo-atom averaging the coordinates of
// constituents, owned by this model.
func (m *Model) AddPseudoAtom(constituents []*Atom) *PseudoAtom {
	p := newPseudoAtom(len(m.pseudoAtoms)+1, constituents)
	p.model = m
	m.pseudoAtoms = append(m.pseudoAtoms, p)
	return p
}

// Rings returns the most recently computed ring list (see BuildRings).
func (m *Model) Rings() [][]*Atom { return m.rings }

// BuildRings recomputes the smallest-set-of-smallest-rings via
// FindRings and caches the result.
func (m *Model) BuildRings() [][]*Atom {
	m.rings = FindRings(m.atoms, m.bonds)
	return m.rings
}

// SubstructureCounts returns the atom count per distinct full-atom-name
// substructure key (section 3, "substructure-to-atom-count map").
func (m *Model) SubstructureCounts() map[string]int { return m.substructureCounts }

// Data returns the value stored under key in the model's variant data
// map, or (nil, false) if absent.
func (m *Model) Data(key string) (interface{}, bool) {
	v, ok := m.data[key]
	return v, ok
}

// SetData stores value under key in the model's variant data map.
func (m *Model) SetData(key string, value interface{}) { m.data[key] = value }

// DataKeys returns every key currently stored in the model's variant data
// map, in no particular order.
func (m *Model) DataKeys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys
}

// Translate moves every atom (and pseudo-atom constituent; pseudo-atoms
// update lazily via UpdateCoords) by v.
func (m *Model) Translate(v geom.Vector) {
	for _, a := range m.atoms {
		a.Translate(v)
	}
	m.UpdateCoords()
}

// Rotate rotates every atom about center by quaternion q.
func (m *Model) Rotate(q geom.Quat, center geom.Coord) {
	for _, a := range m.atoms {
		a.Coord = q.RotateVector(a.Coord.Sub(center)).Add(center)
	}
	m.UpdateCoords()
}

// RotateBond rotates ref's rotating atom set by delta degrees about its
// a2-a3 axis (thin wrapper around ChromDihedralRefData.SetModelValue
// expressed as a relative rotation).
func (m *Model) RotateBond(ref *ChromDihedralRefData, deltaDeg float64) {
	ref.SetModelValue(ref.GetModelValue() + deltaDeg)
	m.UpdateCoords()
}

// UpdateCoords recomputes every pseudo-atom's coordinate from its
// constituents' current coordinates.
func (m *Model) UpdateCoords() {
	for _, p := range m.pseudoAtoms {
		p.UpdateCoords()
	}
}

// SaveCoords snapshots every atom's current coordinate under the named
// key, creating a fresh snapshot id the first time name is used.
func (m *Model) SaveCoords(name string) {
	id, ok := m.snapshotIDs[name]
	if !ok {
		id = m.nextSnapshotID
		m.nextSnapshotID++
		m.snapshotIDs[name] = id
	}
	for _, a := range m.atoms {
		a.SaveCoords(id)
	}
}

// RevertCoords restores every atom's coordinate from the named
// snapshot. Fails with InvalidRequest if name was never saved.
func (m *Model) RevertCoords(name string) error {
	id, ok := m.snapshotIDs[name]
	if !ok {
		return dockerr.New(dockerr.InvalidRequest, "model: no saved snapshot %q", name)
	}
	for _, a := range m.atoms {
		if err := a.RevertCoords(id); err != nil {
			return err
		}
	}
	m.UpdateCoords()
	return nil
}

// SetFlexData attaches the flexibility descriptor for this model.
func (m *Model) SetFlexData(fd *FlexData) { m.Flex = fd }

// Enabled reports whether the model's occupancy is at or above its
// enabled threshold.
func (m *Model) Enabled() bool { return m.Occupancy >= m.EnabledThreshold }

// TetheredAtoms returns every atom whose owning model's FlexData has
// any TETHERED-mode dihedral/translation/rotation key set (original
// RbtModel::GetTetheredAtomList; section 3.3 "(NEW) Tethered-atom
// query"). With no FlexData attached, or no TETHERED mode set, returns
// nil.
func (m *Model) TetheredAtoms() []*Atom {
	if m.Flex == nil {
		return nil
	}
	tethered := false
	for _, key := range []string{"TRANS_MODE", "ROT_MODE", "DIHEDRAL_MODE"} {
		if mode, err := m.Flex.Mode(key); err == nil && mode == ModeTethered {
			tethered = true
			break
		}
	}
	if !tethered {
		return nil
	}
	out := make([]*Atom, len(m.atoms))
	copy(out, m.atoms)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

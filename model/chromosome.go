package model

import (
	"math"

	"github.com/rxdock/rxdock-sub002/geom"
)

// ChromDihedralRefData wraps one rotatable bond for the optimizer: the
// dihedral-defining atom quadruple, the precomputed rotating atom set,
// and the step/mode/tether parameters that constrain how far the
// optimizer may move it (section 3, "ChromDihedralRefData").
type ChromDihedralRefData struct {
	Bond *Bond
	A1   *Atom // outer atom on the fixed side
	A2   *Atom // bond.Atom1 (or equivalent) - dihedral axis start
	A3   *Atom // bond.Atom2 (or equivalent) - dihedral axis end
	A4   *Atom // outer atom on the rotating side

	RotAtoms []*Atom // the rotating side's full atom set, bond-id/atom-id sorted

	Step            float64
	Mode            DihedralMode
	TetherHalfWidth float64 // 0 if untethered

	initialValue float64
}

// NewChromDihedralRefData captures the initial dihedral value at
// construction time, per section 4.6.
func NewChromDihedralRefData(bond *Bond, a1, a2, a3, a4 *Atom, rotAtoms []*Atom, step float64, mode DihedralMode, tetherHalfWidth float64) *ChromDihedralRefData {
	c := &ChromDihedralRefData{
		Bond: bond, A1: a1, A2: a2, A3: a3, A4: a4,
		RotAtoms: rotAtoms, Step: step, Mode: mode, TetherHalfWidth: tetherHalfWidth,
	}
	c.initialValue = c.GetModelValue()
	return c
}

// InitialValue returns the dihedral value captured at construction.
func (c *ChromDihedralRefData) InitialValue() float64 { return c.initialValue }

// GetModelValue returns the current dihedral angle, in degrees, defined
// by (A1, A2, A3, A4)'s current coordinates.
func (c *ChromDihedralRefData) GetModelValue() float64 {
	return geom.DihedralDegrees(c.A1.Coord, c.A2.Coord, c.A3.Coord, c.A4.Coord)
}

// wrapDegrees normalizes an angle to (-180, 180].
func wrapDegrees(deg float64) float64 { return geom.WrapDegrees(deg) }

// SetModelValue sets the dihedral to theta degrees by rotating RotAtoms
// about the A2-A3 axis by the angular delta versus the current value.
// Deltas smaller than 0.001 degrees are treated as no-ops (section 4.6).
func (c *ChromDihedralRefData) SetModelValue(theta float64) {
	delta := wrapDegrees(theta - c.GetModelValue())
	if math.Abs(delta) <= 0.001 {
		return
	}
	axis := c.A3.Coord.Sub(c.A2.Coord)
	q := geom.QuatFromAxisAngle(axis, delta*math.Pi/180.0)
	origin := c.A2.Coord
	for _, a := range c.RotAtoms {
		rel := a.Coord.Sub(origin)
		a.Coord = q.RotateVector(rel).Add(origin)
	}
}

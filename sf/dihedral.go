package sf

import (
	"math"

	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// DihedralTerm is one Fourier term of a dihedral potential: contributes
// k*(1 + sign*cos(s*(theta-offset)*pi/180)) (section 4.7, "Dihedral").
type DihedralTerm struct {
	S      float64
	K      float64
	Sign   float64
	Offset float64
}

// Eval returns this term's contribution at dihedral angle thetaDeg.
func (t DihedralTerm) Eval(thetaDeg float64) float64 {
	rad := t.S * (thetaDeg - t.Offset) * math.Pi / 180.0
	return t.K * (1 + t.Sign*math.Cos(rad))
}

// dihedralKey identifies a parameter lookup: the central pair's FFTypes
// (order-independent) and the outer pair's FFTypes, each of which may be
// the wildcard "*" (section 4.7, "looked up by central-pair type strings
// then by outer-pair (with wildcards); missing entries fall back to a
// DEFAULT").
type dihedralKey struct {
	central1, central2 string
	outer1, outer2     string
}

// DihedralParamTable maps a dihedralKey to its term list. The special
// key {"*", "*", "*", "*"} is the DEFAULT fallback.
type DihedralParamTable map[dihedralKey][]DihedralTerm

var defaultDihedralKey = dihedralKey{"*", "*", "*", "*"}

func lookupKey(c1, c2, o1, o2 string) dihedralKey {
	if c1 > c2 {
		c1, c2 = c2, c1
		o1, o2 = o2, o1
	}
	return dihedralKey{c1, c2, o1, o2}
}

// lookup finds the term list for the exact outer pair, then with both
// outer types wildcarded, then the global DEFAULT.
func (tbl DihedralParamTable) lookup(c1, c2, o1, o2 string) []DihedralTerm {
	if terms, ok := tbl[lookupKey(c1, c2, o1, o2)]; ok {
		return terms
	}
	if terms, ok := tbl[lookupKey(c1, c2, "*", "*")]; ok {
		return terms
	}
	return tbl[defaultDihedralKey]
}

// RotatableDihedral is one heavy-heavy-heavy-heavy (or ghost) quadruple
// to be scored for a rotatable bond (section 4.7). Ghost is true for a
// phantom-implicit-H term; such terms are evaluated from the live
// A1-A2-A3-A4 coordinates with GhostOffset added to the angle.
type RotatableDihedral struct {
	A1, A2, A3, A4 *model.Atom
	Ghost          bool
	GhostOffset    float64 // additional angular offset baked into the ghost position
}

// DihedralSF is the dihedral torsion scoring term (section 4.7).
type DihedralSF struct {
	cfg    config.DihedralSetup
	params DihedralParamTable
}

// NewDihedralSF builds a dihedral scorer over params.
func NewDihedralSF(cfg config.DihedralSetup, params DihedralParamTable) *DihedralSF {
	return &DihedralSF{cfg: cfg, params: params}
}

// angle returns the current dihedral angle for d, in degrees. For a
// ghost term the angle is the real A1-A2-A3-A4 dihedral shifted by
// GhostOffset, matching the "phantom dihedral atoms at known angular
// offsets" description (section 4.7).
func (d RotatableDihedral) angle() float64 {
	theta := geom.DihedralDegrees(d.A1.Coord, d.A2.Coord, d.A3.Coord, d.A4.Coord)
	if d.Ghost {
		theta = geom.WrapDegrees(theta + d.GhostOffset)
	}
	return theta
}

// ScoreDihedrals evaluates every dihedral's parameter-table term list at
// its current angle and returns the sum (section 4.7). A dihedral whose
// type-pair lookup misses the table entirely falls back to a single flat
// term built from cfg.DefaultK.
func (s *DihedralSF) ScoreDihedrals(dihedrals []RotatableDihedral) float64 {
	total := 0.0
	for _, d := range dihedrals {
		theta := d.angle()
		terms := s.params.lookup(d.A2.FFType, d.A3.FFType, d.A1.FFType, d.A4.FFType)
		if terms == nil {
			total += s.cfg.DefaultK
			continue
		}
		for _, t := range terms {
			total += t.Eval(theta)
		}
	}
	return total
}

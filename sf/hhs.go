package sf

import (
	"math"

	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/model"
)

// HHSTypeParams is one HHS solvation type's fixed (p, r, sigma) triple
// (section 4.7, "HHS solvation").
type HHSTypeParams struct {
	P, R, Sigma float64
}

// HHSParamTable is the per-HHS-type parameter catalog.
type HHSParamTable map[elem.HHSType]HHSTypeParams

// HHSCenter is one atom's HHS_Solvation interaction center: fixed (p, r,
// sigma), isolated surface area S, and current accessible fraction A.
type HHSCenter struct {
	Atom *model.Atom

	P, R, Sigma float64
	S           float64 // isolated surface area, 4*pi*(r+rs)^2
	A           float64 // current accessible fraction, in [0,1]

	savedA float64

	// Partners is every variable-distance partner center this one may
	// overlap with; Partitioned is the current distance-filtered subset
	// (section 4.7: "two lists: all variable-distance partners, and a
	// current partitioned subset").
	Partners    []*HHSCenter
	Partitioned []*HHSCenter
}

// NewHHSCenter builds an isolated (A=1) center for atom using p.
func NewHHSCenter(atom *model.Atom, p HHSTypeParams, probeRadius float64) *HHSCenter {
	s := 4 * math.Pi * (p.R + probeRadius) * (p.R + probeRadius)
	return &HHSCenter{Atom: atom, P: p.P, R: p.R, Sigma: p.Sigma, S: s, A: 1.0}
}

// Energy returns this center's current contribution, S*sigma*A.
func (c *HHSCenter) Energy() float64 { return c.S * c.Sigma * c.A }

// Save freezes the current accessible fraction so a later Restore can
// undo speculative overlap applications within one evaluation round
// (section 4.7, "Save/Restore lets the evaluator freeze the contribution
// of invariant pairs once per evaluation round").
func (c *HHSCenter) Save() { c.savedA = c.A }

// Restore resets A to the value captured by the last Save.
func (c *HHSCenter) Restore() { c.A = c.savedA }

// connectivityFactor returns p_ij for the (1-2 / 1-3 / 1-4+) relationship
// between a and b (section 4.7).
func connectivityFactor(a, b *model.Atom) float64 {
	if model.Is12Connected(a, b) {
		return elem.Pij12
	}
	if model.Is13Connected(a, b) {
		return elem.Pij13
	}
	return elem.Pij14
}

// ApplyOverlap applies the multiplicative accessible-fraction reduction
// to c for the overlap with other at distance d, if they're close enough
// to overlap (section 4.7's b_ij formula). probeRadius is r_s.
func (c *HHSCenter) ApplyOverlap(other *HHSCenter, d, probeRadius float64) {
	if d <= 0 || d > c.R+other.R+2*probeRadius {
		return
	}
	pij := connectivityFactor(c.Atom, other.Atom)
	bij := math.Pi * (c.R + probeRadius) * (c.R + other.R + 2*probeRadius - d) * (1 + (other.R-c.R)/d)
	c.A *= 1 - (c.P/c.S)*pij*bij
	if c.A < 0 {
		c.A = 0
	}
	if c.A > 1 {
		c.A = 1
	}
}

// HHSSolvationSF is the HHS solvation scoring term.
type HHSSolvationSF struct {
	cfg     config.HHSSetup
	params  HHSParamTable
	centers map[*model.Atom]*HHSCenter
}

// NewHHSSolvationSF builds an HHS solvation scorer over centers built
// lazily per atom the first time it's scored.
func NewHHSSolvationSF(cfg config.HHSSetup, params HHSParamTable) *HHSSolvationSF {
	return &HHSSolvationSF{cfg: cfg, params: params, centers: make(map[*model.Atom]*HHSCenter)}
}

// centerFor returns (building if necessary) the HHSCenter for a, typed
// via model.HHSAtomType.
func (s *HHSSolvationSF) centerFor(a *model.Atom) *HHSCenter {
	if c, ok := s.centers[a]; ok {
		return c
	}
	t := model.HHSAtomType(a)
	c := NewHHSCenter(a, s.params[t], s.cfg.ProbeRadius)
	s.centers[a] = c
	return c
}

// Score implements BaseSF: reinitializes every involved center to
// isolated (A=1), applies every pairwise overlap once, then sums
// Energy().
func (s *HHSSolvationSF) Score(atoms, others []*model.Atom) float64 {
	return s.ScoreAnnotated(atoms, others, nil)
}

// ScoreAnnotated implements BaseSF.
func (s *HHSSolvationSF) ScoreAnnotated(atoms, others []*model.Atom, annotations *[]Annotation) float64 {
	centers := make([]*HHSCenter, 0, len(atoms))
	for _, a := range atoms {
		c := s.centerFor(a)
		c.A = 1.0
		centers = append(centers, c)
	}
	otherCenters := make([]*HHSCenter, 0, len(others))
	for _, o := range others {
		oc := s.centerFor(o)
		oc.A = 1.0
		otherCenters = append(otherCenters, oc)
	}

	for _, c := range centers {
		for _, o := range otherCenters {
			if c.Atom == o.Atom || !enabledPair(c.Atom, o.Atom) {
				continue
			}
			d := c.Atom.Coord.Dist(o.Atom.Coord)
			c.ApplyOverlap(o, d, s.cfg.ProbeRadius)
			o.ApplyOverlap(c, d, s.cfg.ProbeRadius)
		}
	}

	total := 0.0
	for _, c := range append(centers, otherCenters...) {
		e := c.Energy()
		total += e
		if annotations != nil && e != 0 {
			*annotations = append(*annotations, Annotation{Atom1: c.Atom, Score: e})
		}
	}
	return total
}

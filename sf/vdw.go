package sf

import (
	"math"

	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/model"
)

// VdwTypeParams is one Tripos-type's van der Waals parameters: the
// atomic vdW radius (summed pairwise to get rmin), and, when available,
// an ionization potential and polarizability used for the GOLD
// well-depth formula (section 4.7).
type VdwTypeParams struct {
	Radius float64
	IonPot float64 // 0 means "not available" -> falls back to Tripos-rule combining
	Polar  float64
}

// VdwParamTable is the per-Tripos-type vdW parameter catalog, read-once
// and shared across a run (section 5).
type VdwParamTable map[elem.TriposType]VdwTypeParams

// vdwPair holds the precomputed, distance-independent coefficients for
// one ordered type pair (section 4.7): "A, B (4-8 or 6-12 coefficients
// derived from well-depth kij and sum-of-radii rmin), rmax², rcutoff²,
// ecutoff, e0, slope".
type vdwPair struct {
	a, b               float64
	rmax2, rcutoff2    float64
	ecutoff, e0, slope float64
}

// VdwSF is the van der Waals scoring term (section 4.7, "vdW").
type VdwSF struct {
	cfg    config.VdwSetup
	params VdwParamTable
	pairs  map[[2]elem.TriposType]vdwPair
}

// NewVdwSF precomputes nothing until a pair is first needed; params
// supplies the per-type radius/ionization-potential/polarizability
// table.
func NewVdwSF(cfg config.VdwSetup, params VdwParamTable) *VdwSF {
	return &VdwSF{cfg: cfg, params: params, pairs: make(map[[2]elem.TriposType]vdwPair)}
}

// wellDepth computes kij per section 4.7: zero for donor-H/acceptor
// pairs, sqrt(Ki*Kj) under Tripos rules (or whenever either atom lacks an
// ionization potential), else the GOLD formula.
func wellDepth(cfg config.VdwSetup, pi, pj VdwTypeParams, isHBondPair bool) float64 {
	if isHBondPair {
		return 0
	}
	// Tripos well depths are tabulated directly as IonPot in this
	// catalog's convention: Ki/Kj are the per-type "K" constants, reused
	// from the IonPot field when UseTripos is set so one table serves
	// both formulas without a second column.
	if cfg.UseTripos || pi.IonPot == 0 || pj.IonPot == 0 {
		return math.Sqrt(pi.IonPot * pj.IonPot)
	}
	ii, ij := pi.IonPot, pj.IonPot
	ai, aj := pi.Polar, pj.Polar
	rmin := pi.Radius + pj.Radius
	d := 0.345 * ii * ij * ai * aj / (ii + ij)
	c := 0.5 * d * math.Pow(rmin, 6)
	if c == 0 {
		return 0
	}
	return d * d / (4 * c)
}

// buildPair derives the full vdwPair for (ti, tj), caching the result.
func (s *VdwSF) buildPair(ti, tj elem.TriposType, isHBondPair bool) vdwPair {
	key := [2]elem.TriposType{ti, tj}
	if p, ok := s.pairs[key]; ok {
		return p
	}
	pi, pj := s.params[ti], s.params[tj]
	rmin := pi.Radius + pj.Radius
	kij := wellDepth(s.cfg, pi, pj, isHBondPair)

	var a, b float64
	if s.cfg.Use4_8 {
		// 4-8 potential: V(r) = A/r^8 - B/r^4, minimum kij at rmin.
		a = kij * 3 * math.Pow(rmin, 8)
		b = kij * 4 * math.Pow(rmin, 4)
	} else {
		// 6-12 potential: V(r) = A/r^12 - B/r^6, minimum kij at rmin.
		a = kij * math.Pow(rmin, 12)
		b = kij * 2 * math.Pow(rmin, 6)
	}

	rmax2 := math.Pow(s.cfg.RMax*rmin, 2)
	ecutoff := s.cfg.ECut * kij
	e0 := s.cfg.E0 * ecutoff

	// rcutoff is the distance at which the full potential equals
	// ecutoff on its repulsive (short-range) branch; solved once per
	// pair and cached like every other coefficient here.
	rcutoff2 := solveRcutoff2(s.cfg.Use4_8, a, b, ecutoff, rmin*rmin)
	slope := 0.0
	if rcutoff2 > 0 {
		slope = (e0 - ecutoff) / rcutoff2
	}

	p := vdwPair{a: a, b: b, rmax2: rmax2, rcutoff2: rcutoff2, ecutoff: ecutoff, e0: e0, slope: slope}
	s.pairs[key] = p
	return p
}

// solveRcutoff2 finds R² < rmin² where the potential equals ecutoff, by
// bisection (the closed form is a quartic/sextic in R² not worth
// inverting symbolically). rmin2 upper-bounds the search since the
// potential is monotonically decreasing from +inf at R=0 to -kij at
// rmin.
func solveRcutoff2(use48 bool, a, b, ecutoff, rmin2 float64) float64 {
	potential := func(r2 float64) float64 {
		if use48 {
			r4 := r2 * r2
			return a/(r4*r4) - b/r4
		}
		r6 := r2 * r2 * r2
		return a/(r6*r6) - b/r6
	}
	lo, hi := 1e-6, rmin2
	if potential(hi) >= ecutoff {
		return hi
	}
	for i := 0; i < 60; i++ {
		mid := 0.5 * (lo + hi)
		if potential(mid) > ecutoff {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// isHBondPair reports whether (a,b) is a donor-H/acceptor pair (section
// 4.7: "zero for donor-H/acceptor pairs").
func isHBondPair(a, b *model.Atom) bool {
	return (model.IsHBondDonor(a) && model.IsHBondAcceptor(b)) ||
		(model.IsHBondDonor(b) && model.IsHBondAcceptor(a))
}

// Score implements BaseSF.
func (s *VdwSF) Score(atoms, others []*model.Atom) float64 {
	return s.ScoreAnnotated(atoms, others, nil)
}

// ScoreAnnotated implements BaseSF, additionally recording non-zero
// pairwise terms when annotations is non-nil (section 4.7).
func (s *VdwSF) ScoreAnnotated(atoms, others []*model.Atom, annotations *[]Annotation) float64 {
	total := 0.0
	for _, a := range atoms {
		for _, o := range others {
			if a == o || !enabledPair(a, o) {
				continue
			}
			d2 := a.Coord.Dist2(o.Coord)
			pair := s.buildPair(a.TriposType, o.TriposType, isHBondPair(a, o))
			v := s.evalPair(pair, d2)
			if v != 0 {
				total += v
				if annotations != nil {
					*annotations = append(*annotations, Annotation{
						Atom1: a, Atom2: o, Distance: math.Sqrt(d2), Score: v,
					})
				}
			}
		}
	}
	return total
}

// evalPair is the three-branch potential evaluator; the pair's own
// 4-8/6-12 exponent is selected by s.cfg.Use4_8, fixed for the lifetime
// of this VdwSF.
func (s *VdwSF) evalPair(p vdwPair, r2 float64) float64 {
	if r2 >= p.rmax2 {
		return 0
	}
	if r2 < p.rcutoff2 {
		return p.e0 - p.slope*r2
	}
	if r2 == 0 {
		return p.e0
	}
	if s.cfg.Use4_8 {
		r4 := r2 * r2
		return p.a/(r4*r4) - p.b/r4
	}
	r6 := r2 * r2 * r2
	return p.a/(r6*r6) - p.b/r6
}

package model

import (
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/geom"
)

// Predicates classify atoms for scoring-function typing and for
// interaction-center selection (section 4.2 "closed predicate algebra").
// Each is a plain func(*Atom) bool so they compose as ordinary Go values
// rather than through a functor hierarchy.

// IsHBondAcceptor screens O(8)/N(7)/S(16) atoms with an available lone
// pair, by hybridization and coordination number. Positively charged
// atoms are not screened out here (the original's screen is commented
// out; kept disabled to match observed behavior).
func IsHBondAcceptor(a *Atom) bool {
	coord := a.CoordinationNumber()
	switch a.AtomicNo {
	case 7:
		switch a.Hybrid {
		case elem.HybridSP3:
			return coord < 4
		case elem.HybridSP2, elem.HybridTri, elem.HybridArom:
			return coord < 3
		case elem.HybridSP:
			return coord < 2
		default:
			return false
		}
	case 8:
		switch a.Hybrid {
		case elem.HybridSP3:
			return coord < 3
		case elem.HybridSP2, elem.HybridTri, elem.HybridArom:
			// Terminal oxygens bonded to nitrogen (nitro, etc.) are excluded.
			return coord > 1 || a.CoordinationNumberOf(7) == 0
		default:
			return false
		}
	case 16:
		if a.Hybrid == elem.HybridSP2 {
			return coord < 2
		}
		return false
	default:
		return false
	}
}

// IsHBondDonor reports whether a is a hydrogen making exactly one bond
// to O, N or S.
func IsHBondDonor(a *Atom) bool {
	return a.AtomicNo == 1 && a.NumBonds() == 1 &&
		(a.CoordinationNumberOf(8) == 1 || a.CoordinationNumberOf(7) == 1 || a.CoordinationNumberOf(16) == 1)
}

// IsPlanar reports whether a makes exactly 2 bonds (any 2-coordinate
// atom is geometrically planar) or has SP2/AROM/TRI hybridization.
func IsPlanar(a *Atom) bool {
	return a.CoordinationNumber() == 2 ||
		a.Hybrid == elem.HybridSP2 || a.Hybrid == elem.HybridArom || a.Hybrid == elem.HybridTri
}

// IsPiAtom reports SP2/AROM/TRI hybridization.
func IsPiAtom(a *Atom) bool {
	return a.Hybrid == elem.HybridSP2 || a.Hybrid == elem.HybridArom || a.Hybrid == elem.HybridTri
}

// IsCharged reports whether a carries a nonzero formal charge.
func IsCharged(a *Atom) bool { return a.FormalCharge != 0 }

// IsPosCharged reports a positive formal charge.
func IsPosCharged(a *Atom) bool { return a.FormalCharge > 0 }

// IsNegCharged reports a negative formal charge.
func IsNegCharged(a *Atom) bool { return a.FormalCharge < 0 }

// IsExtended reports whether a carries implicit hydrogens.
func IsExtended(a *Atom) bool { return a.NImplicitH > 0 }

// IsBridgehead reports whether a has more than 2 cyclic bonds.
func IsBridgehead(a *Atom) bool { return a.NumCyclicBonds() > 2 }

// ionicThreshold matches the original's |groupCharge| > 0.001 cutoff used
// to declare an atom an ionic/cationic/anionic interaction center.
const ionicThreshold = 0.001

// IsIonic reports whether a's group charge magnitude exceeds the ionic
// interaction-center threshold.
func IsIonic(a *Atom) bool {
	return a.GroupCharge > ionicThreshold || a.GroupCharge < -ionicThreshold
}

// IsCationic reports a group charge above the ionic threshold.
func IsCationic(a *Atom) bool { return a.GroupCharge > ionicThreshold }

// IsAnionic reports a group charge below the negative ionic threshold.
func IsAnionic(a *Atom) bool { return a.GroupCharge < -ionicThreshold }

// IsGuanidiniumCarbon reports whether a is the central, acyclic,
// cationic sp2/arom/tri carbon of a guanidinium-like group.
func IsGuanidiniumCarbon(a *Atom) bool {
	return IsCationic(a) && a.AtomicNo == 6 && IsPiAtom(a) && !a.Cyclic
}

// IsMetal reports whether a is one of the common metal ions (Na, Mg,
// K through Zn by atomic number).
func IsMetal(a *Atom) bool {
	return a.AtomicNo == 11 || a.AtomicNo == 12 || (a.AtomicNo >= 19 && a.AtomicNo <= 30)
}

// IsLipophilic classifies hydrophobic atoms, after excluding ionic atoms,
// H-bond donors/acceptors, metals, O and N: the remaining H; sp3 C/S, or C/S not
// bonded to an sp2 oxygen (screens out carbonyl/sulphone/sulphoxide/
// sulphonamide groups); halogens Cl/Br/I but not F.
func IsLipophilic(a *Atom) bool {
	if IsIonic(a) || IsHBondDonor(a) || IsHBondAcceptor(a) || IsMetal(a) || a.AtomicNo == 8 || a.AtomicNo == 7 {
		return false
	}
	switch a.AtomicNo {
	case 1:
		return true
	case 6, 16:
		if a.Hybrid == elem.HybridSP3 {
			return true
		}
		for _, nb := range a.BondedAtoms() {
			if nb.AtomicNo == 8 && nb.Hybrid == elem.HybridSP2 {
				return false
			}
		}
		return true
	case 9:
		return false
	case 17, 35, 53:
		return true
	default:
		return false
	}
}

// IsRNA reports whether a's subunit name is one of the RNA/DNA residue
// codes (single-letter or 3-letter form).
func IsRNA(a *Atom) bool {
	switch a.SubunitName {
	case "A", "ADE", "G", "GUA", "C", "CYT", "U", "URI":
		return true
	default:
		return false
	}
}

// Is12Connected reports whether b is directly bonded to a.
func Is12Connected(a, b *Atom) bool {
	if a == b {
		return false
	}
	for _, nb := range a.BondedAtoms() {
		if nb == b {
			return true
		}
	}
	return false
}

// Is13Connected reports whether a and b share a common bonded neighbor
// (i.e. are related by a bond angle), excluding the case a == b.
func Is13Connected(a, b *Atom) bool {
	if a == b {
		return false
	}
	bondedA := a.BondedAtoms()
	bondedB := b.BondedAtoms()
	for _, x := range bondedA {
		for _, y := range bondedB {
			if x == y {
				return true
			}
		}
	}
	return false
}

// IsAtomInSphere reports whether a lies within radius r of center c.
func IsAtomInSphere(a *Atom, c geom.Coord, r float64) bool {
	return a.Coord.Dist2(c) <= r*r
}

// IsAtomInCuboid reports whether a's coordinate is within [cmin,cmax]
// component-wise.
func IsAtomInCuboid(a *Atom, cmin, cmax geom.Coord) bool {
	c := a.Coord
	return c.X >= cmin.X && c.Y >= cmin.Y && c.Z >= cmin.Z &&
		c.X <= cmax.X && c.Y <= cmax.Y && c.Z <= cmax.Z
}

package model

import "github.com/rxdock/rxdock-sub002/elem"

// CoordinationNumberOfFFType counts a's bonded neighbors whose FFType
// string matches ffType exactly (used by the Tripos sulphone/sulphoxide
// disambiguation, which keys on "O_SP2" CHARMM force-field typing rather
// than atomic number — section 4.3).
func (a *Atom) CoordinationNumberOfFFType(ffType string) int {
	n := 0
	for _, nb := range a.BondedAtoms() {
		if nb.FFType == ffType {
			n++
		}
	}
	return n
}

// IsAmideBond reports whether bond is a C(sp2)-N(tri) amide linkage: a
// noncyclic bond between an sp2 carbon and a trigonal nitrogen where the
// carbon carries exactly one sp2 oxygen neighbor.
func IsAmideBond(b *Bond) bool {
	if b.Cyclic {
		return false
	}
	check := func(c, n *Atom) bool {
		if c.AtomicNo != 6 || c.Hybrid != elem.HybridSP2 {
			return false
		}
		if n.AtomicNo != 7 || n.Hybrid != elem.HybridTri {
			return false
		}
		nOSP2 := 0
		for _, nb := range c.BondedAtoms() {
			if nb.AtomicNo == 8 && nb.Hybrid == elem.HybridSP2 {
				nOSP2++
			}
		}
		return nOSP2 == 1
	}
	return check(b.Atom1, b.Atom2) || check(b.Atom2, b.Atom1)
}

// TriposAtomType assigns a's Tripos 5.2 SYBYL atom type. useExtended
// additionally splits carbons/hydrogens by implicit-hydrogen count into
// the pseudo "extended" subtypes (e.g. C.3.H2) used for the more
// detailed vdW parameterization (section 4.3, the "extended Tripos
// types" design note).
func TriposAtomType(a *Atom, useExtended bool) elem.TriposType {
	switch a.AtomicNo {
	case 1: // H
		if useExtended && IsHBondDonor(a) {
			return elem.TriposHP
		}
		return elem.TriposH

	case 3:
		return elem.TriposLi

	case 6: // C
		if IsGuanidiniumCarbon(a) {
			return elem.TriposCCat
		}
		switch a.Hybrid {
		case elem.HybridSP:
			if useExtended && a.NImplicitH == 1 {
				return elem.TriposC1H1
			}
			return elem.TriposC1
		case elem.HybridSP2:
			if useExtended {
				switch a.NImplicitH {
				case 1:
					return elem.TriposC2H1
				case 2:
					return elem.TriposC2H2
				}
			}
			return elem.TriposC2
		case elem.HybridSP3:
			if useExtended {
				switch a.NImplicitH {
				case 1:
					return elem.TriposC3H1
				case 2:
					return elem.TriposC3H2
				case 3:
					return elem.TriposC3H3
				}
			}
			return elem.TriposC3
		case elem.HybridArom:
			if useExtended && a.NImplicitH == 1 {
				return elem.TriposCArH1
			}
			return elem.TriposCAr
		default:
			return elem.TriposC3
		}

	case 7: // N
		switch a.Hybrid {
		case elem.HybridSP:
			return elem.TriposN1
		case elem.HybridSP2:
			return elem.TriposN2
		case elem.HybridSP3:
			if a.NumBonds() == 4 {
				return elem.TriposN4
			}
			return elem.TriposN3
		case elem.HybridArom:
			return elem.TriposNar
		case elem.HybridTri:
			for _, b := range a.Bonds() {
				if IsAmideBond(b) {
					return elem.TriposNam
				}
			}
			return elem.TriposNpl3
		default:
			return elem.TriposN3
		}

	case 8: // O
		if a.GroupCharge < 0.0 {
			return elem.TriposOCo2
		}
		switch a.Hybrid {
		case elem.HybridSP2:
			return elem.TriposO2
		case elem.HybridSP3, elem.HybridTri:
			if a.NumBonds() == 1 {
				return elem.TriposO2
			}
			return elem.TriposO3
		default:
			return elem.TriposO3
		}

	case 9:
		return elem.TriposF
	case 11:
		return elem.TriposNa
	case 13:
		return elem.TriposAl
	case 14:
		return elem.TriposSi
	case 15:
		return elem.TriposP3

	case 16: // S
		switch a.Hybrid {
		case elem.HybridSP2:
			switch a.CoordinationNumberOfFFType("O_SP2") {
			case 2:
				return elem.TriposSo2
			case 1:
				return elem.TriposSo
			default:
				return elem.TriposS2
			}
		case elem.HybridSP3:
			return elem.TriposS3
		default:
			return elem.TriposS3
		}

	case 17:
		return elem.TriposCl
	case 19:
		return elem.TriposK
	case 20:
		return elem.TriposCa
	case 35:
		return elem.TriposBr
	case 53:
		return elem.TriposI

	default:
		return elem.TriposUndefined
	}
}

// HHSAtomType assigns a's Hasel-Hendrickson-Still solvation type
// (section 4.3). nH counts both implicit and explicit hydrogens bonded
// to a.
func HHSAtomType(a *Atom) elem.HHSType {
	nH := a.NImplicitH + a.CoordinationNumberOf(1)

	switch a.AtomicNo {
	case 1: // Hydrogen
		bonded := a.BondedAtoms()
		if len(bonded) == 0 {
			return elem.HHSH
		}
		switch bonded[0].AtomicNo {
		case 6:
			return elem.HHSH
		case 7:
			if IsCationic(a) {
				return elem.HHSHNp
			}
			return elem.HHSHN
		case 8:
			return elem.HHSHO
		case 16:
			return elem.HHSHS
		default:
			return elem.HHSUndefined
		}

	case 6: // Carbon
		if IsCationic(a) {
			switch a.Hybrid {
			case elem.HybridSP2, elem.HybridArom:
				return elem.HHSCsp2p
			default:
				return elem.HHSUndefined
			}
		}
		polar := (a.CoordinationNumberOf(7) + a.CoordinationNumberOf(8)) > 0
		switch a.Hybrid {
		case elem.HybridSP3:
			switch nH {
			case 0:
				return pick(polar, elem.HHSCsp3P, elem.HHSCsp3)
			case 1:
				return pick(polar, elem.HHSCHsp3P, elem.HHSCHsp3)
			case 2:
				return pick(polar, elem.HHSCH2sp3P, elem.HHSCH2sp3)
			case 3, 4:
				return pick(polar, elem.HHSCH3sp3P, elem.HHSCH3sp3)
			default:
				return elem.HHSUndefined
			}
		case elem.HybridSP2:
			switch nH {
			case 0:
				return pick(polar, elem.HHSCsp2P, elem.HHSCsp2)
			case 1:
				return pick(polar, elem.HHSCHsp2P, elem.HHSCHsp2)
			case 2:
				return pick(polar, elem.HHSCH2sp2P, elem.HHSCH2sp2)
			default:
				return elem.HHSUndefined
			}
		case elem.HybridArom:
			switch nH {
			case 0:
				return pick(polar, elem.HHSCarP, elem.HHSCar)
			case 1:
				return pick(polar, elem.HHSCHarP, elem.HHSCHar)
			default:
				return elem.HHSUndefined
			}
		case elem.HybridSP:
			return elem.HHSCsp
		default:
			return elem.HHSUndefined
		}

	case 7: // Nitrogen
		bonded := a.BondedAtoms()
		anyCationicNeighbor := false
		for _, nb := range bonded {
			if IsCationic(nb) {
				anyCationicNeighbor = true
				break
			}
		}
		if IsCationic(a) || len(bonded) == 4 || anyCationicNeighbor {
			switch a.Hybrid {
			case elem.HybridSP3:
				return elem.HHSNsp3p
			case elem.HybridTri, elem.HybridSP2, elem.HybridArom:
				return elem.HHSNsp2p
			default:
				return elem.HHSUndefined
			}
		}
		switch a.Hybrid {
		case elem.HybridSP3:
			switch nH {
			case 0:
				return elem.HHSNsp3
			case 1:
				return elem.HHSNHsp3
			case 2:
				return elem.HHSNH2sp3
			default:
				return elem.HHSUndefined
			}
		case elem.HybridTri:
			switch nH {
			case 0:
				return elem.HHSNtri
			case 1:
				return elem.HHSNHtri
			case 2:
				return elem.HHSNH2tri
			default:
				return elem.HHSUndefined
			}
		case elem.HybridSP2:
			if a.NumBonds() == 3 {
				return elem.HHSNtri
			}
			return elem.HHSNsp2
		case elem.HybridArom:
			return elem.HHSNar
		case elem.HybridSP:
			return elem.HHSNsp
		default:
			return elem.HHSUndefined
		}

	case 8: // Oxygen
		if IsAnionic(a) {
			return elem.HHSOm
		}
		if a.CoordinationNumberOf(7) == 1 && a.NumBonds() == 1 {
			return elem.HHSON
		}
		switch a.Hybrid {
		case elem.HybridSP3:
			switch nH {
			case 1:
				return elem.HHSOHsp3
			case 2:
				return elem.HHSOW
			default:
				return elem.HHSOsp3
			}
		case elem.HybridTri:
			nLipo := 0
			for _, nb := range a.BondedAtoms() {
				if IsLipophilic(nb) {
					nLipo++
				}
			}
			if nLipo+nH == 2 {
				if nH > 0 {
					return elem.HHSOHsp3
				}
				return elem.HHSOsp3
			}
			if nH > 0 {
				return elem.HHSOHtri
			}
			return elem.HHSOtri
		case elem.HybridSP2:
			return elem.HHSOsp2
		default:
			return elem.HHSUndefined
		}

	case 16: // Sulphur
		switch a.Hybrid {
		case elem.HybridSP3, elem.HybridTri:
			return elem.HHSSsp3
		case elem.HybridSP2:
			return elem.HHSSsp2
		default:
			return elem.HHSUndefined
		}

	case 15:
		return elem.HHSP
	case 9:
		return elem.HHSF
	case 17:
		return elem.HHSCl
	case 35:
		return elem.HHSBr
	case 53:
		return elem.HHSI

	default:
		if IsMetal(a) {
			return elem.HHSMetal
		}
		return elem.HHSUndefined
	}
}

func pick(cond bool, ifTrue, ifFalse elem.HHSType) elem.HHSType {
	if cond {
		return ifTrue
	}
	return ifFalse
}

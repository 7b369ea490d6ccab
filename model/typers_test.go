package model

import (
	"testing"

	"github.com/rxdock/rxdock-sub002/elem"
)

func TestTriposAtomTypeBasicCarbon(tst *testing.T) {
	a := newAtom(1)
	a.AtomicNo = 6
	a.Hybrid = elem.HybridSP3
	if got := TriposAtomType(a, false); got != elem.TriposC3 {
		tst.Errorf("sp3 carbon: got %v want C.3", got.Type2Str())
	}
}

func TestTriposAtomTypeExtendedCarbon(tst *testing.T) {
	a := newAtom(1)
	a.AtomicNo = 6
	a.Hybrid = elem.HybridSP3
	a.NImplicitH = 2
	if got := TriposAtomType(a, true); got != elem.TriposC3H2 {
		tst.Errorf("extended sp3 CH2 carbon: got %v want C.3.H2", got.Type2Str())
	}
	if got := TriposAtomType(a, false); got != elem.TriposC3 {
		tst.Errorf("non-extended sp3 carbon: got %v want C.3", got.Type2Str())
	}
}

func TestTriposAtomTypeAromaticNitrogen(tst *testing.T) {
	a := newAtom(1)
	a.AtomicNo = 7
	a.Hybrid = elem.HybridArom
	if got := TriposAtomType(a, false); got != elem.TriposNar {
		tst.Errorf("aromatic nitrogen: got %v want N.ar", got.Type2Str())
	}
}

func TestTriposAtomTypeAmideNitrogen(tst *testing.T) {
	c := newAtom(1)
	c.AtomicNo = 6
	c.Hybrid = elem.HybridSP2
	o := newAtom(2)
	o.AtomicNo = 8
	o.Hybrid = elem.HybridSP2
	n := newAtom(3)
	n.AtomicNo = 7
	n.Hybrid = elem.HybridTri

	if newBond(1, c, o, 2) == nil {
		tst.Fatal("C=O bond registration failed")
	}
	if newBond(2, c, n, 1) == nil {
		tst.Fatal("C-N bond registration failed")
	}

	if got := TriposAtomType(n, false); got != elem.TriposNam {
		tst.Errorf("amide nitrogen: got %v want N.am", got.Type2Str())
	}
	// A trigonal nitrogen not bonded to a carbonyl carbon should fall back
	// to N.pl3.
	n2 := newAtom(4)
	n2.AtomicNo = 7
	n2.Hybrid = elem.HybridTri
	if got := TriposAtomType(n2, false); got != elem.TriposNpl3 {
		tst.Errorf("non-amide trigonal nitrogen: got %v want N.pl3", got.Type2Str())
	}
}

func TestHHSAtomTypeAliphaticCarbons(tst *testing.T) {
	ch3 := newAtom(1)
	ch3.AtomicNo = 6
	ch3.Hybrid = elem.HybridSP3
	ch3.NImplicitH = 3
	if got := HHSAtomType(ch3); got != elem.HHSCH3sp3 {
		tst.Errorf("CH3 sp3: got %v want CH3_sp3", got.Type2Str())
	}
}

func TestHHSAtomTypePolarCarbon(tst *testing.T) {
	c := newAtom(1)
	c.AtomicNo = 6
	c.Hybrid = elem.HybridSP3
	n := newAtom(2)
	n.AtomicNo = 7
	n.Hybrid = elem.HybridSP3
	if newBond(1, c, n, 1) == nil {
		tst.Fatal("bond registration failed")
	}
	if got := HHSAtomType(c); got != elem.HHSCsp3P {
		tst.Errorf("polar sp3 carbon: got %v want C_sp3_P", got.Type2Str())
	}
}

func TestHHSAtomTypeMetal(tst *testing.T) {
	ca := newAtom(1)
	ca.AtomicNo = 20 // Ca, atomic no 20 matches IsMetal's 19..30 range
	if got := HHSAtomType(ca); got != elem.HHSMetal {
		tst.Errorf("calcium: got %v want Metal", got.Type2Str())
	}
}

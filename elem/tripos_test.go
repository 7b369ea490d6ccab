package elem

import "testing"

func TestTriposRoundTrip(tst *testing.T) {
	for _, want := range AllTriposTypes() {
		name := want.Type2Str()
		got := Str2Type(name)
		if got != want {
			tst.Errorf("round trip %q: got %v want %v", name, got, want)
		}
	}
}

func TestTriposC3Hybrid(tst *testing.T) {
	if TriposC3.Type2Hybrid() != HybridSP3 {
		tst.Errorf("C.3 should be SP3")
	}
	if TriposC3.Type2AtomicNo() != 6 {
		tst.Errorf("C.3 should be carbon")
	}
}

func TestHybridFromComment(tst *testing.T) {
	cases := map[string]Hybrid{
		"alkyl carbon (RBT::SP3)":    HybridSP3,
		"carbonyl carbon (RBT::SP2)": HybridSP2,
		"nitrile (RBT::SP)":          HybridSP,
		"aromatic (RBT::AROM)":       HybridArom,
		"amide N (RBT::TRI)":         HybridTri,
		"no sentinel here":           HybridUndefined,
	}
	for comment, want := range cases {
		if got := HybridFromComment(comment); got != want {
			tst.Errorf("HybridFromComment(%q) = %v, want %v", comment, got, want)
		}
	}
}

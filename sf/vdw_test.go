package sf

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/model"
)

// buildCarbonPair returns two carbon atoms (not H-bond donor/acceptor, so
// kij is never zeroed) at distance r apart along x, each Tripos-typed
// C.3, and a VdwSF configured for the 6-12 form with rmin=3.4, kij=0.1
// (scenario S3).
func buildCarbonPair(r float64) (*model.Atom, *model.Atom, *VdwSF) {
	m := model.NewModel()
	a1 := m.AddAtom()
	a1.AtomicNo = 6
	a1.TriposType = elem.TriposC3
	a2 := m.AddAtom()
	a2.AtomicNo = 6
	a2.TriposType = elem.TriposC3
	a2.Coord = a1.Coord
	a2.Coord.X = r

	cfg := config.VdwSetup{Use4_8: false, UseTripos: true, RMax: 1.5, ECut: 1.0, E0: 1.5}
	params := VdwParamTable{
		elem.TriposC3: {Radius: 1.7, IonPot: 0.1},
	}
	return a1, a2, NewVdwSF(cfg, params)
}

func TestVdwScoreAtMinimum(tst *testing.T) {
	a1, a2, sf := buildCarbonPair(3.4)
	got := sf.Score([]*model.Atom{a1}, []*model.Atom{a2})
	chk.Float64(tst, "vdW score at rmin", 1e-6, got, -0.1)
}

func TestVdwScoreBeyondRmaxIsZero(tst *testing.T) {
	a1, a2, sf := buildCarbonPair(340.0)
	got := sf.Score([]*model.Atom{a1}, []*model.Atom{a2})
	chk.Float64(tst, "vdW score far beyond rmax", 1e-12, got, 0)
}

func TestVdwScoreAtShortRangeIsBounded(tst *testing.T) {
	a1, a2, sf := buildCarbonPair(0.1)
	got := sf.Score([]*model.Atom{a1}, []*model.Atom{a2})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		tst.Fatalf("vdW score at short range must be finite, got %v", got)
	}
	// e0 = ECut*E0*kij = 1.0*1.5*0.1
	want := 1.0 * 1.5 * 0.1
	if math.Abs(got-want) > 1e-3 {
		tst.Errorf("vdW score at short range: got %v want close to %v", got, want)
	}
}

func TestVdwAnnotatesNonZeroTerms(tst *testing.T) {
	a1, a2, sf := buildCarbonPair(3.4)
	var anns []Annotation
	sf.ScoreAnnotated([]*model.Atom{a1}, []*model.Atom{a2}, &anns)
	if len(anns) != 1 {
		tst.Fatalf("expected 1 annotation, got %d", len(anns))
	}
	chk.Float64(tst, "annotation distance", 1e-9, anns[0].Distance, 3.4)
}

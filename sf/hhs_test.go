package sf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/elem"
	"github.com/rxdock/rxdock-sub002/model"
)

// buildIsolatedCarbons returns two sp3 carbons, unbonded to each other,
// separated by dist, each typed C_sp3 with p=1, r=1.9, sigma=12
// (scenario S6).
func buildIsolatedCarbons(dist float64) (*model.Atom, *model.Atom, *HHSSolvationSF) {
	m := model.NewModel()
	a1 := m.AddAtom()
	a1.AtomicNo = 6
	a1.Hybrid = elem.HybridSP3
	a1.NImplicitH = 4
	a2 := m.AddAtom()
	a2.AtomicNo = 6
	a2.Hybrid = elem.HybridSP3
	a2.NImplicitH = 4
	a2.Coord.X = dist

	cfg := config.HHSSetup{ProbeRadius: 1.2}
	params := HHSParamTable{
		elem.HHSCH3sp3: {P: 1, R: 1.9, Sigma: 12},
	}
	return a1, a2, NewHHSSolvationSF(cfg, params)
}

func TestHHSIsolatedCentersContributeFullSurface(tst *testing.T) {
	a1, a2, sf := buildIsolatedCarbons(1e6)
	got := sf.Score([]*model.Atom{a1}, []*model.Atom{a2})

	c := sf.centerFor(a1)
	wantPerAtom := c.S * c.Sigma
	chk.Float64(tst, "isolated HHS contribution", 1e-6, got, 2*wantPerAtom)
}

func TestHHSOverlapReducesAccessibility(tst *testing.T) {
	a1, a2, sf := buildIsolatedCarbons(2.0)
	gotClose := sf.Score([]*model.Atom{a1}, []*model.Atom{a2})

	a1b, a2b, sfFar := buildIsolatedCarbons(1e6)
	gotFar := sfFar.Score([]*model.Atom{a1b}, []*model.Atom{a2b})

	if gotClose >= gotFar {
		tst.Errorf("overlap at close range should reduce total energy: close=%v far=%v", gotClose, gotFar)
	}
}

func TestHHSSaveRestoreRoundTrip(tst *testing.T) {
	a1, a2, sf := buildIsolatedCarbons(2.0)
	c1 := sf.centerFor(a1)
	c1.A = 1.0
	c1.Save()
	c1.A = 0.2
	c1.Restore()
	chk.Float64(tst, "A restored", 1e-12, c1.A, 1.0)
	_ = a2
}

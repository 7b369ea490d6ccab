package sf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rxdock/rxdock-sub002/config"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

// buildEthaneLike builds a C-C-C-C chain at a known starting dihedral
// (180 degrees, matching scenario S5's butane setup) with FFType "C3" on
// every atom.
func buildEthaneLike() (a1, a2, a3, a4 *model.Atom) {
	m := model.NewModel()
	a1 = m.AddAtom()
	a1.FFType = "C3"
	a1.Coord = geom.New(-1, 1, 0)
	a2 = m.AddAtom()
	a2.FFType = "C3"
	a2.Coord = geom.New(0, 0, 0)
	a3 = m.AddAtom()
	a3.FFType = "C3"
	a3.Coord = geom.New(1.5, 0, 0)
	a4 = m.AddAtom()
	a4.FFType = "C3"
	a4.Coord = geom.New(2.5, -1, 0)
	return
}

func TestDihedralScoreUsesExactOuterPairBeforeWildcard(tst *testing.T) {
	a1, a2, a3, a4 := buildEthaneLike()
	exactTerm := DihedralTerm{S: 3, K: 1.0, Sign: 1, Offset: 0}
	wildcardTerm := DihedralTerm{S: 3, K: 5.0, Sign: 1, Offset: 0}
	params := DihedralParamTable{
		lookupKey("C3", "C3", "C3", "C3"): {exactTerm},
		lookupKey("C3", "C3", "*", "*"):   {wildcardTerm},
	}
	sf := NewDihedralSF(config.DihedralSetup{}, params)
	theta := geom.DihedralDegrees(a1.Coord, a2.Coord, a3.Coord, a4.Coord)

	got := sf.ScoreDihedrals([]RotatableDihedral{{A1: a1, A2: a2, A3: a3, A4: a4}})
	chk.Float64(tst, "dihedral score via exact outer-pair match", 1e-9, got, exactTerm.Eval(theta))
}

func TestDihedralScoreFallsBackToWildcard(tst *testing.T) {
	a1, a2, a3, a4 := buildEthaneLike()
	a1.FFType, a4.FFType = "N3", "O3" // outer types not in the exact-pair table
	wildcardTerm := DihedralTerm{S: 2, K: 2.0, Sign: -1, Offset: 30}
	params := DihedralParamTable{
		lookupKey("C3", "C3", "*", "*"): {wildcardTerm},
	}
	sf := NewDihedralSF(config.DihedralSetup{}, params)
	theta := geom.DihedralDegrees(a1.Coord, a2.Coord, a3.Coord, a4.Coord)

	got := sf.ScoreDihedrals([]RotatableDihedral{{A1: a1, A2: a2, A3: a3, A4: a4}})
	chk.Float64(tst, "dihedral score via wildcard outer-pair match", 1e-9, got, wildcardTerm.Eval(theta))
}

package site

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rxdock/rxdock-sub002/dockerr"
	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

func oneCellCavity(at geom.Coord, step geom.Vector) Cavity {
	return NewCavity([]geom.Coord{at}, step)
}

func TestDockingSiteBoundsFromCavities(tst *testing.T) {
	step := geom.New(1, 1, 1)
	cavities := []Cavity{
		oneCellCavity(geom.New(0, 0, 0), step),
		oneCellCavity(geom.New(4, 2, -3), step),
	}
	ds := NewDockingSite(cavities, 5.0)
	chk.Float64(tst, "min x", 1e-9, ds.Min.X, 0)
	chk.Float64(tst, "max x", 1e-9, ds.Max.X, 4)
	chk.Float64(tst, "max y", 1e-9, ds.Max.Y, 2)
	chk.Float64(tst, "min z", 1e-9, ds.Min.Z, -3)
}

func TestGetAtomListRejectsMaxDistBeyondBorder(tst *testing.T) {
	step := geom.New(1, 1, 1)
	ds := NewDockingSite([]Cavity{oneCellCavity(geom.New(0, 0, 0), step)}, 3.0)
	m := model.NewModel()
	a := m.AddAtom()
	a.Coord = geom.New(0, 0, 0)

	_, err := ds.GetAtomList([]*model.Atom{a}, 0, 10.0)
	if err == nil {
		tst.Fatal("expected BadArgument error for maxDist beyond border")
	}
	if de, ok := err.(*dockerr.Error); !ok || de.Kind != dockerr.BadArgument {
		tst.Fatalf("expected dockerr.BadArgument, got %v", err)
	}
}

func TestGetAtomListFiltersByDistanceToNearestCavity(tst *testing.T) {
	step := geom.New(1, 1, 1)
	ds := NewDockingSite([]Cavity{oneCellCavity(geom.New(0, 0, 0), step)}, 5.0)

	m := model.NewModel()
	near := m.AddAtom()
	near.Coord = geom.New(0, 0, 0)
	far := m.AddAtom()
	far.Coord = geom.New(4, 0, 0)

	got, err := ds.GetAtomList([]*model.Atom{near, far}, 0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != near {
		tst.Fatalf("expected only the near atom within 1.0 of the cavity, got %v", got)
	}
}

func TestDockingSiteWithNoCavitiesReturnsEmpty(tst *testing.T) {
	ds := NewDockingSite(nil, 5.0)
	m := model.NewModel()
	a := m.AddAtom()
	got, err := ds.GetAtomList([]*model.Atom{a}, 0, 2.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		tst.Fatalf("expected no atoms with no cavities, got %d", len(got))
	}
}

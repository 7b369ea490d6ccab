package site

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/rxdock/rxdock-sub002/geom"
)

func TestCavityCentroidAndVolume(tst *testing.T) {
	step := geom.New(0.5, 0.5, 0.5)
	coords := []geom.Coord{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(0, 1, 0), geom.New(1, 1, 0)}
	c := NewCavity(coords, step)

	centroid := c.Centroid()
	chk.Float64(tst, "centroid x", 1e-9, centroid.X, 0.5)
	chk.Float64(tst, "centroid y", 1e-9, centroid.Y, 0.5)

	chk.Float64(tst, "volume", 1e-9, c.Volume(), 4*0.5*0.5*0.5)
}

func TestCavityMinMax(tst *testing.T) {
	step := geom.New(1, 1, 1)
	coords := []geom.Coord{geom.New(-1, 2, 0), geom.New(3, -2, 5)}
	c := NewCavity(coords, step)
	min, max := c.MinMax()
	chk.Float64(tst, "min x", 1e-9, min.X, -1)
	chk.Float64(tst, "min y", 1e-9, min.Y, -2)
	chk.Float64(tst, "max x", 1e-9, max.X, 3)
	chk.Float64(tst, "max z", 1e-9, max.Z, 5)
}

func TestSortCavitiesByVolumeDesc(tst *testing.T) {
	step := geom.New(1, 1, 1)
	small := NewCavity([]geom.Coord{geom.New(0, 0, 0)}, step)
	big := NewCavity([]geom.Coord{geom.New(0, 0, 0), geom.New(1, 0, 0), geom.New(2, 0, 0)}, step)
	cavities := []Cavity{small, big}
	sortCavitiesByVolumeDesc(cavities)
	if cavities[0].Volume() < cavities[1].Volume() {
		tst.Fatalf("expected descending volume order, got %v then %v", cavities[0].Volume(), cavities[1].Volume())
	}
}

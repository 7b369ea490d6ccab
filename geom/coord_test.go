package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCoordArithmetic(tst *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -1, 0.5)
	chk.Float64(tst, "a+b.X", 1e-15, a.Add(b).X, 5)
	chk.Float64(tst, "a-b.Y", 1e-15, a.Sub(b).Y, 3)
	chk.Float64(tst, "a.dot(b)", 1e-15, a.Dot(b), 1*4+2*-1+3*0.5)
	cr := a.Cross(b)
	chk.Float64(tst, "a x b . a == 0", 1e-12, cr.Dot(a), 0)
	chk.Float64(tst, "a x b . b == 0", 1e-12, cr.Dot(b), 0)
}

func TestCoordNormalizeZero(tst *testing.T) {
	z := Zero().Normalize()
	if z.X != 0 || z.Y != 0 || z.Z != 0 {
		tst.Errorf("expected zero-vector normalize to stay zero, got %v", z)
	}
	if !z.IsFinite() {
		tst.Errorf("zero coord must be finite")
	}
}

func TestQuatRotation90(tst *testing.T) {
	q := QuatFromAxisAngle(New(0, 0, 1), math.Pi/2)
	p := New(1, 0, 0)
	r := q.RotateVector(p)
	chk.Float64(tst, "rx", 1e-9, r.X, 0)
	chk.Float64(tst, "ry", 1e-9, r.Y, 1)
	chk.Float64(tst, "rz", 1e-9, r.Z, 0)
}

func TestQuatRoundTrip(tst *testing.T) {
	q := QuatFromAxisAngle(New(1, 1, 1), 0.7)
	qInv := q.Conjugate()
	p := New(3, -2, 5)
	r := qInv.RotateVector(q.RotateVector(p))
	chk.Float64(tst, "roundtrip x", 1e-9, r.X, p.X)
	chk.Float64(tst, "roundtrip y", 1e-9, r.Y, p.Y)
	chk.Float64(tst, "roundtrip z", 1e-9, r.Z, p.Z)
}

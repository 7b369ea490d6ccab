// Package geom provides the pure geometry primitives the docking core is
// built on: coordinates/vectors, quaternions and Euler angles for rigid-body
// rotation, and planes. Everything here is value arithmetic;
// no type in this package owns a pointer into Model/Atom state.
package geom

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Coord is a point (or free vector — the original RbtCoord/RbtVector are the
// same underlying type) in 3-space, stored as a plain X/Y/Z struct.
// ToLA and FromLA convert to and from gosl/la.Vector for linear-algebra
// consumers.
type Coord struct {
	X, Y, Z float64
}

// Vector is an alias for Coord: in the original source RbtVector and
// RbtCoord are typedefs of the same class, distinguished only by intent.
type Vector = Coord

// New builds a Coord from its three components.
func New(x, y, z float64) Coord { return Coord{X: x, Y: y, Z: z} }

// Zero is the origin / zero vector.
func Zero() Coord { return Coord{} }

// ToLA returns the coordinate as a gosl/la.Vector (a plain []float64), for
// interop with gosl linear-algebra routines (e.g. la.MatVecMul for
// quaternion-derived rotation matrices).
func (c Coord) ToLA() la.Vector { return la.Vector{c.X, c.Y, c.Z} }

// FromLA builds a Coord from a 3-element gosl/la.Vector.
func FromLA(v la.Vector) Coord { return Coord{X: v[0], Y: v[1], Z: v[2]} }

// Add returns c+o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z} }

// Sub returns c-o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y, c.Z - o.Z} }

// Scale returns c*s.
func (c Coord) Scale(s float64) Coord { return Coord{c.X * s, c.Y * s, c.Z * s} }

// Div returns c/s.
func (c Coord) Div(s float64) Coord { return Coord{c.X / s, c.Y / s, c.Z / s} }

// Dot returns the scalar (inner) product of c and o.
func (c Coord) Dot(o Coord) float64 { return c.X*o.X + c.Y*o.Y + c.Z*o.Z }

// Cross returns the vector (cross) product c x o.
func (c Coord) Cross(o Coord) Coord {
	return Coord{
		X: c.Y*o.Z - c.Z*o.Y,
		Y: c.Z*o.X - c.X*o.Z,
		Z: c.X*o.Y - c.Y*o.X,
	}
}

// Length2 returns the squared Euclidean length of c.
func (c Coord) Length2() float64 { return c.Dot(c) }

// Length returns the Euclidean length of c.
func (c Coord) Length() float64 { return math.Sqrt(c.Length2()) }

// Dist2 returns the squared distance between c and o.
func (c Coord) Dist2(o Coord) float64 { return c.Sub(o).Length2() }

// Dist returns the distance between c and o.
func (c Coord) Dist(o Coord) float64 { return math.Sqrt(c.Dist2(o)) }

// Normalize returns c scaled to unit length. Returns the zero vector if c
// is (numerically) the zero vector, rather than producing NaN — the
// no-NaN-in-any-runtime-path invariant (spec.md section 3) holds even for
// this degenerate input.
func (c Coord) Normalize() Coord {
	l := c.Length()
	if l < 1e-12 {
		return Coord{}
	}
	return c.Div(l)
}

// Min returns the component-wise minimum of c and o.
func (c Coord) Min(o Coord) Coord {
	return Coord{math.Min(c.X, o.X), math.Min(c.Y, o.Y), math.Min(c.Z, o.Z)}
}

// Max returns the component-wise maximum of c and o.
func (c Coord) Max(o Coord) Coord {
	return Coord{math.Max(c.X, o.X), math.Max(c.Y, o.Y), math.Max(c.Z, o.Z)}
}

// Compare implements a deterministic lexicographic ordering (X, then Y,
// then Z) used wherever the core needs a total order over coordinates
// (e.g. stable sort tie-breaks).
func (c Coord) Compare(o Coord) int {
	switch {
	case c.X != o.X:
		return sign(c.X - o.X)
	case c.Y != o.Y:
		return sign(c.Y - o.Y)
	case c.Z != o.Z:
		return sign(c.Z - o.Z)
	default:
		return 0
	}
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// IsFinite reports whether every component is a finite, non-NaN float.
func (c Coord) IsFinite() bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0) &&
		!math.IsNaN(c.Z) && !math.IsInf(c.Z, 0)
}

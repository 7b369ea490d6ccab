package geom

import "math"

// Quat is a unit quaternion (s, v) used to represent a rigid-body rotation.
// The docking core rotates atom sets by constructing a quaternion from an
// axis and an angle and applying RotateVector to each atom coordinate, the
// same scheme the original RbtQuat/RotateUsingQuat used.
type Quat struct {
	S float64 // scalar part
	V Coord   // vector part
}

// QuatFromAxisAngle builds the unit quaternion that rotates by angleRad
// radians about axis (axis need not be pre-normalized).
func QuatFromAxisAngle(axis Coord, angleRad float64) Quat {
	n := axis.Normalize()
	half := angleRad / 2.0
	sinHalf := math.Sin(half)
	return Quat{
		S: math.Cos(half),
		V: n.Scale(sinHalf),
	}
}

// Conjugate returns the conjugate quaternion (s, -v), which for a unit
// quaternion equals its inverse.
func (q Quat) Conjugate() Quat { return Quat{S: q.S, V: q.V.Scale(-1)} }

// Mul returns the Hamilton product q*o.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		S: q.S*o.S - q.V.Dot(o.V),
		V: o.V.Scale(q.S).Add(q.V.Scale(o.S)).Add(q.V.Cross(o.V)),
	}
}

// RotateVector rotates point p by the quaternion: p' = q*p*q^-1, computed
// directly via Rodrigues' formula (equivalent, avoids building a pure
// quaternion for p and is the form used throughout the core's hot paths).
func (q Quat) RotateVector(p Coord) Coord {
	// p' = p + 2*s*(v x p) + 2*(v x (v x p))
	vCrossP := q.V.Cross(p)
	vCrossVCrossP := q.V.Cross(vCrossP)
	return p.Add(vCrossP.Scale(2 * q.S)).Add(vCrossVCrossP.Scale(2))
}

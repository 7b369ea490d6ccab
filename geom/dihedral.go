package geom

import "math"

// DihedralDegrees computes the signed torsion angle, in degrees within
// (-180,180], defined by four points p1-p2-p3-p4 (the standard
// cross-product/atan2 formula, shared by the chromosome dihedral
// reference and the dihedral scoring function).
func DihedralDegrees(p1, p2, p3, p4 Coord) float64 {
	b1 := p2.Sub(p1)
	b2 := p3.Sub(p2)
	b3 := p4.Sub(p3)

	n1 := b1.Cross(b2)
	n2 := b2.Cross(b3)
	m1 := b2.Normalize().Cross(n1)

	x := n1.Dot(n2)
	y := m1.Dot(n2)
	return math.Atan2(y, x) * 180.0 / math.Pi
}

// WrapDegrees normalizes an angle to (-180, 180].
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg+180.0, 360.0)
	if deg <= 0 {
		deg += 360.0
	}
	return deg - 180.0
}

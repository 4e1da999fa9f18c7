package quatx

import (
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Interop with gonum's num/quat and num/dualquat, the representation used by
// the robotics ecosystem. Conversions are loss-free component copies.

// Gonum returns q as a gonum quat.Number.
func (q Quaternion) Gonum() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// FromGonum converts a gonum quat.Number.
func FromGonum(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Gonum returns d as a gonum dualquat.Number.
func (d DualQuaternion) Gonum() dualquat.Number {
	return dualquat.Number{Real: d.Real.Gonum(), Dual: d.Dual.Gonum()}
}

// FromGonumDual converts a gonum dualquat.Number.
func FromGonumDual(n dualquat.Number) DualQuaternion {
	return DualQuaternion{Real: FromGonum(n.Real), Dual: FromGonum(n.Dual)}
}

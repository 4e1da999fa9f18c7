// Package quatx implements quaternion and dual-quaternion arithmetic.
//
// Both types are immutable values: every operation returns a new value and
// never mutates its receiver, so they are safe to share across goroutines
// without locking. Quaternion is the Hamilton algebra over four real
// components; DualQuaternion extends it with a dual part (ε² = 0) for
// representing rigid transforms. See the pose package for the screw-motion
// layer built on top.
package quatx

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Quaternion is the hypercomplex number w + xi + yj + zk.
//
// The zero value is the zero quaternion. Fields are exported for direct
// component access but consumers must not rely on mutating a shared value;
// all methods are value receivers returning new values.
type Quaternion struct {
	W, X, Y, Z float64
}

// New returns the quaternion w + xi + yj + zk.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// FromScalar embeds a real scalar as (s, 0, 0, 0).
func FromScalar(s float64) Quaternion {
	return Quaternion{W: s}
}

// FromVector embeds a 3-vector as the pure quaternion (0, x, y, z).
func FromVector(x, y, z float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z}
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// the axis (ax, ay, az). The axis need not be normalized; a zero axis yields
// the identity rotation.
func FromAxisAngle(ax, ay, az, angle float64) Quaternion {
	n := math.Sqrt(ax*ax + ay*ay + az*az)
	if n == 0 {
		return Identity()
	}
	s, c := math.Sincos(angle / 2)
	s /= n
	return Quaternion{W: c, X: ax * s, Y: ay * s, Z: az * s}
}

// Add returns q + r, component-wise.
func (q Quaternion) Add(r Quaternion) Quaternion {
	return Quaternion{q.W + r.W, q.X + r.X, q.Y + r.Y, q.Z + r.Z}
}

// Sub returns q - r, component-wise.
func (q Quaternion) Sub(r Quaternion) Quaternion {
	return Quaternion{q.W - r.W, q.X - r.X, q.Y - r.Y, q.Z - r.Z}
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{-q.W, -q.X, -q.Y, -q.Z}
}

// Conj returns the conjugate (w, -x, -y, -z).
func (q Quaternion) Conj() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

// Scale returns q with every component multiplied by s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// AddScalar returns q + (s, 0, 0, 0).
func (q Quaternion) AddScalar(s float64) Quaternion {
	return Quaternion{q.W + s, q.X, q.Y, q.Z}
}

// Dot returns the 4-component dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.W*r.W + q.X*r.X + q.Y*r.Y + q.Z*r.Z
}

// Norm returns the Euclidean magnitude sqrt(w² + x² + y² + z²).
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.Dot(q))
}

// NormSquared returns w² + x² + y² + z² without the square root.
func (q Quaternion) NormSquared() float64 {
	return q.Dot(q)
}

// IsZero reports whether every component is exactly zero.
func (q Quaternion) IsZero() bool {
	return q == Quaternion{}
}

// Mul returns the Hamilton product q·r. Multiplication is not commutative:
// q.Mul(r) and r.Mul(q) differ in general.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return Quaternion{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// MulDual returns the Hamilton product q·r lifted into a DualQuaternion with
// a zero dual part. Equivalent to Lift(q.Mul(r)); kept as a named operation
// for callers composing plain rotations into the dual algebra.
func (q Quaternion) MulDual(r Quaternion) DualQuaternion {
	return Lift(q.Mul(r))
}

// Div returns q·r⁻¹, computed as q·conj(r)/|r|². Returns ErrZeroNorm when
// |r| is zero rather than producing NaN components.
func (q Quaternion) Div(r Quaternion) (Quaternion, error) {
	n2 := r.NormSquared()
	if n2 == 0 {
		return Quaternion{}, errors.Wrap(ErrZeroNorm, "quaternion division")
	}
	return q.Mul(r.Conj()).Scale(1 / n2), nil
}

// Inverse returns q⁻¹ = conj(q)/|q|². Returns ErrZeroNorm for the zero
// quaternion.
func (q Quaternion) Inverse() (Quaternion, error) {
	n2 := q.NormSquared()
	if n2 == 0 {
		return Quaternion{}, errors.Wrap(ErrZeroNorm, "quaternion inverse")
	}
	return q.Conj().Scale(1 / n2), nil
}

// Normalize returns the unit quaternion q/|q|. Returns ErrZeroNorm for the
// zero quaternion.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, errors.Wrap(ErrZeroNorm, "quaternion normalize")
	}
	return q.Scale(1 / n), nil
}

// Lerp returns the component-wise linear interpolation (1-t)·q + t·r.
func (q Quaternion) Lerp(r Quaternion, t float64) Quaternion {
	return q.Scale(1 - t).Add(r.Scale(t))
}

// Slerp returns the spherical linear interpolation between q and r at
// parameter t in [0, 1]. Both operands are expected to be unit quaternions;
// the shorter great-circle arc is taken. Nearly parallel operands fall back
// to Lerp to avoid dividing by a vanishing sine.
func (q Quaternion) Slerp(r Quaternion, t float64) Quaternion {
	d := q.Dot(r)
	if d < 0 {
		r = r.Neg()
		d = -d
	}
	if d > 0.9995 {
		out, err := q.Lerp(r, t).Normalize()
		if err != nil {
			return q
		}
		return out
	}
	theta := math.Acos(math.Min(d, 1))
	sin := math.Sin(theta)
	return q.Scale(math.Sin((1-t)*theta) / sin).Add(r.Scale(math.Sin(t*theta) / sin))
}

// String renders q as "(w, x, y, z)".
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.W, q.X, q.Y, q.Z)
}

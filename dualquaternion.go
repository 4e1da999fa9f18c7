package quatx

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DualQuaternion is the dual-number extension real + ε·dual with ε² = 0.
//
// Any pair of quaternions is a valid value; consumers using it for rigid
// transforms additionally expect Real to be a unit quaternion and Dual to be
// orthogonal to it (Real·conj(Dual) + Dual·conj(Real) = 0). That is a usage
// contract of the pose layer, not enforced here.
type DualQuaternion struct {
	Real Quaternion
	Dual Quaternion
}

// NewDual returns real + ε·dual.
func NewDual(real, dual Quaternion) DualQuaternion {
	return DualQuaternion{Real: real, Dual: dual}
}

// NewDual8 builds a dual quaternion from eight scalars, the first four
// forming the real part and the last four the dual part.
func NewDual8(w, x, y, z, ew, ex, ey, ez float64) DualQuaternion {
	return DualQuaternion{
		Real: Quaternion{w, x, y, z},
		Dual: Quaternion{ew, ex, ey, ez},
	}
}

// Lift embeds a plain quaternion as q + ε·0.
func Lift(q Quaternion) DualQuaternion {
	return DualQuaternion{Real: q}
}

// DualIdentity returns the multiplicative identity 1 + ε·0.
func DualIdentity() DualQuaternion {
	return DualQuaternion{Real: Identity()}
}

// Add returns d + e, adding real and dual parts independently.
func (d DualQuaternion) Add(e DualQuaternion) DualQuaternion {
	return DualQuaternion{d.Real.Add(e.Real), d.Dual.Add(e.Dual)}
}

// Sub returns d - e.
func (d DualQuaternion) Sub(e DualQuaternion) DualQuaternion {
	return DualQuaternion{d.Real.Sub(e.Real), d.Dual.Sub(e.Dual)}
}

// Neg returns -d.
func (d DualQuaternion) Neg() DualQuaternion {
	return DualQuaternion{d.Real.Neg(), d.Dual.Neg()}
}

// Scale multiplies every component of both parts by s.
func (d DualQuaternion) Scale(s float64) DualQuaternion {
	return DualQuaternion{d.Real.Scale(s), d.Dual.Scale(s)}
}

// Mul returns the dual-number expansion of the product:
//
//	(r1 + ε d1)(r2 + ε d2) = r1·r2 + ε(r1·d2 + d1·r2)
//
// where each term is a Hamilton product. Not commutative.
func (d DualQuaternion) Mul(e DualQuaternion) DualQuaternion {
	return DualQuaternion{
		Real: d.Real.Mul(e.Real),
		Dual: d.Real.Mul(e.Dual).Add(d.Dual.Mul(e.Real)),
	}
}

// Conj returns the quaternion conjugate of both parts. For a unit dual
// quaternion this is the inverse.
func (d DualQuaternion) Conj() DualQuaternion {
	return DualQuaternion{d.Real.Conj(), d.Dual.Conj()}
}

// DualConj returns the dual-number conjugate real - ε·dual.
func (d DualQuaternion) DualConj() DualQuaternion {
	return DualQuaternion{d.Real, d.Dual.Neg()}
}

// Norm returns the magnitude of the real part. A dual quaternion is a unit
// (rigid-transform) value when this is 1 and the parts are orthogonal.
func (d DualQuaternion) Norm() float64 {
	return d.Real.Norm()
}

// IsZero reports whether every component of both parts is exactly zero.
func (d DualQuaternion) IsZero() bool {
	return d == DualQuaternion{}
}

// Inverse returns d⁻¹ = r⁻¹ - ε·r⁻¹·du·r⁻¹. Returns ErrZeroNorm when the
// real part has zero magnitude, since no inverse exists there.
func (d DualQuaternion) Inverse() (DualQuaternion, error) {
	ri, err := d.Real.Inverse()
	if err != nil {
		return DualQuaternion{}, errors.Wrap(err, "dual quaternion inverse")
	}
	return DualQuaternion{
		Real: ri,
		Dual: ri.Mul(d.Dual).Mul(ri).Neg(),
	}, nil
}

// Div returns d·e⁻¹, propagating ErrZeroNorm when the real part of e has
// zero magnitude.
func (d DualQuaternion) Div(e DualQuaternion) (DualQuaternion, error) {
	ei, err := e.Inverse()
	if err != nil {
		return DualQuaternion{}, errors.Wrap(err, "dual quaternion division")
	}
	return d.Mul(ei), nil
}

// Normalize returns d scaled to a unit real part, with the dual part
// re-orthogonalized against it. Returns ErrZeroNorm when the real part has
// zero magnitude.
func (d DualQuaternion) Normalize() (DualQuaternion, error) {
	n := d.Real.Norm()
	if n == 0 {
		return DualQuaternion{}, errors.Wrap(ErrZeroNorm, "dual quaternion normalize")
	}
	real := d.Real.Scale(1 / n)
	dual := d.Dual.Scale(1 / n)
	// Remove the component of dual along real so that r·conj(d) + d·conj(r) = 0.
	dual = dual.Sub(real.Scale(real.Dot(dual)))
	return DualQuaternion{Real: real, Dual: dual}, nil
}

// String renders d as "(w, x, y, z) + ε(ew, ex, ey, ez)".
func (d DualQuaternion) String() string {
	return fmt.Sprintf("%s + ε%s", d.Real, d.Dual)
}

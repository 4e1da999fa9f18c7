package quatx

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Transcendental functions over quaternions, defined through the
// exponential map: for q = w + v with vector part v,
//
//	exp(q) = e^w (cos|v| + v/|v| sin|v|)
//
// and Log is its inverse on the principal branch. Pow and Sqrt are derived
// from Exp and Log. Operations undefined at zero magnitude return
// ErrZeroNorm instead of IEEE infinities.

// vecNorm returns the magnitude of the vector part of q.
func (q Quaternion) vecNorm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Phi returns the angular argument atan2(|v|, w), the angle between q and
// the positive real axis. Zero for positive reals, π for negative reals.
func (q Quaternion) Phi() float64 {
	return math.Atan2(q.vecNorm(), q.W)
}

// Exp returns e**q. Total: defined for every quaternion.
func (q Quaternion) Exp() Quaternion {
	v := q.vecNorm()
	e := math.Exp(q.W)
	if v == 0 {
		return FromScalar(e)
	}
	s, c := math.Sincos(v)
	k := e * s / v
	return Quaternion{W: e * c, X: q.X * k, Y: q.Y * k, Z: q.Z * k}
}

// Log returns the principal natural logarithm of q:
//
//	log(q) = ln|q| + v/|v|·atan2(|v|, w)
//
// Returns ErrZeroNorm for the zero quaternion. A negative real quaternion
// has no distinguished rotation plane; the i axis is chosen by convention.
func (q Quaternion) Log() (Quaternion, error) {
	n := q.Norm()
	if n == 0 {
		return Quaternion{}, errors.Wrap(ErrZeroNorm, "quaternion log")
	}
	v := q.vecNorm()
	if v == 0 {
		if q.W > 0 {
			return FromScalar(math.Log(q.W)), nil
		}
		return Quaternion{W: math.Log(n), X: math.Pi}, nil
	}
	k := math.Atan2(v, q.W) / v
	return Quaternion{W: math.Log(n), X: q.X * k, Y: q.Y * k, Z: q.Z * k}, nil
}

// Pow returns q**r, computed as exp(log(q)·r). Returns ErrZeroNorm for the
// zero base, where the logarithm is undefined.
func (q Quaternion) Pow(r Quaternion) (Quaternion, error) {
	l, err := q.Log()
	if err != nil {
		return Quaternion{}, errors.Wrap(err, "quaternion pow")
	}
	return l.Mul(r).Exp(), nil
}

// PowReal returns q**s for a real exponent.
func (q Quaternion) PowReal(s float64) (Quaternion, error) {
	return q.Pow(FromScalar(s))
}

// Sqrt returns the principal square root q**0.5. Returns ErrZeroNorm for
// the zero quaternion.
func (q Quaternion) Sqrt() (Quaternion, error) {
	out, err := q.PowReal(0.5)
	if err != nil {
		return Quaternion{}, errors.Wrap(err, "quaternion sqrt")
	}
	return out, nil
}

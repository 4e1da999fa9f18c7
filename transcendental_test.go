package quatx_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/comalice/quatx"
)

// Test Exp on reals reduces to the scalar exponential.
func TestExpOfScalarIsScalarExp(t *testing.T) {
	for _, s := range []float64{-2, -0.5, 0, 0.5, 2} {
		got := FromScalar(s).Exp()
		if !ApproxEqual(got, FromScalar(math.Exp(s)), 1e-12) {
			t.Errorf("exp(%g) = %v, want (%g, 0, 0, 0)", s, got, math.Exp(s))
		}
	}
}

// Test the exponential map produces rotations: exp of a pure vector of
// magnitude θ/2 is the unit quaternion rotating by θ about that axis.
func TestExpOfPureVectorIsRotation(t *testing.T) {
	theta := math.Pi / 3
	got := FromVector(0, 0, theta/2).Exp()
	want := FromAxisAngle(0, 0, 1, theta)
	if !ApproxEqual(got, want, 1e-12) {
		t.Errorf("exp(ẑθ/2) = %v, want %v", got, want)
	}
}

// Test Log inverts Exp: exp(log(q)) == q for arbitrary non-zero q.
func TestExpLogRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		q := randomQuat(rng)
		l, err := q.Log()
		if err != nil {
			t.Fatal(err)
		}
		if got := l.Exp(); !ApproxEqual(got, q, 1e-8) {
			t.Errorf("exp(log(q)) != q for q=%v: got %v", q, got)
		}
	}
}

// Test Log of the zero quaternion is a domain error.
func TestLogOfZeroIsDomainError(t *testing.T) {
	if _, err := (Quaternion{}).Log(); !errors.Is(err, ErrZeroNorm) {
		t.Errorf("expected ErrZeroNorm, got %v", err)
	}
}

// Test Log of a negative real picks the conventional i axis.
func TestLogOfNegativeRealUsesIAxis(t *testing.T) {
	got, err := FromScalar(-math.E).Log()
	if err != nil {
		t.Fatal(err)
	}
	if !ApproxEqual(got, New(1, math.Pi, 0, 0), 1e-12) {
		t.Errorf("log(-e) = %v, want (1, π, 0, 0)", got)
	}
}

// Test Sqrt squares back to the argument.
func TestSqrtSquaresToArgument(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for i := 0; i < 100; i++ {
		q := randomQuat(rng)
		r, err := q.Sqrt()
		if err != nil {
			t.Fatal(err)
		}
		if got := r.Mul(r); !ApproxEqual(got, q, 1e-8) {
			t.Errorf("sqrt(q)² != q for q=%v: got %v", q, got)
		}
	}
}

func TestSqrtOfZeroIsDomainError(t *testing.T) {
	if _, err := (Quaternion{}).Sqrt(); !errors.Is(err, ErrZeroNorm) {
		t.Errorf("expected ErrZeroNorm, got %v", err)
	}
}

// Test integer powers agree with repeated multiplication.
func TestPowRealMatchesRepeatedMultiplication(t *testing.T) {
	q := New(0.5, 0.5, 0.5, 0.5) // unit quaternion, 120° rotation
	cube, err := q.PowReal(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.Mul(q).Mul(q); !ApproxEqual(cube, got, 1e-9) {
		t.Errorf("q^3 = %v, want %v", cube, got)
	}
}

func TestPowOfZeroBaseIsDomainError(t *testing.T) {
	if _, err := (Quaternion{}).Pow(New(2, 0, 0, 0)); !errors.Is(err, ErrZeroNorm) {
		t.Errorf("expected ErrZeroNorm, got %v", err)
	}
}

// Test Phi: zero for positive reals, π for negative reals, π/2 for pure
// vectors.
func TestPhiAngularArgument(t *testing.T) {
	if got := FromScalar(3).Phi(); got != 0 {
		t.Errorf("Phi of positive real = %g, want 0", got)
	}
	if got := FromScalar(-3).Phi(); got != math.Pi {
		t.Errorf("Phi of negative real = %g, want π", got)
	}
	if got := FromVector(1, 2, 3).Phi(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Phi of pure vector = %g, want π/2", got)
	}
}

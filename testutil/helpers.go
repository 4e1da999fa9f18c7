// Package testutil provides shared numeric helpers for the quatx test
// suites: tolerance-based assertions and random value generators for
// property tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/quatx"
	"github.com/comalice/quatx/pose"
)

// AssertQuatApprox fails the test unless got is within tol of want,
// component-wise. NaN components always fail.
func AssertQuatApprox(t *testing.T, want, got quatx.Quaternion, tol float64) bool {
	t.Helper()
	return assert.True(t, quatx.ApproxEqual(want, got, tol),
		"expected %v ≈ %v (tol %g)", got, want, tol)
}

// AssertDualApprox fails the test unless both parts of got are within tol of
// want.
func AssertDualApprox(t *testing.T, want, got quatx.DualQuaternion, tol float64) bool {
	t.Helper()
	return assert.True(t, quatx.ApproxEqualDual(want, got, tol),
		"expected %v ≈ %v (tol %g)", got, want, tol)
}

// AssertVecApprox fails the test unless got is within tol of want,
// component-wise.
func AssertVecApprox(t *testing.T, want, got pose.Vec3, tol float64) bool {
	t.Helper()
	ok := assert.InDelta(t, want.X, got.X, tol, "X component")
	ok = assert.InDelta(t, want.Y, got.Y, tol, "Y component") && ok
	ok = assert.InDelta(t, want.Z, got.Z, tol, "Z component") && ok
	return ok
}

// AssertPoseApprox fails the test unless the poses represent the same rigid
// transform within tol, accounting for the rotation double cover.
func AssertPoseApprox(t *testing.T, want, got pose.Pose, tol float64) bool {
	t.Helper()
	return assert.True(t, want.ApproxEqual(got, tol),
		"expected %v ≈ %v (tol %g)", got, want, tol)
}

// RandomQuaternion returns a quaternion with components uniform in [-10, 10).
func RandomQuaternion(rng *rand.Rand) quatx.Quaternion {
	return quatx.New(
		rng.Float64()*20-10,
		rng.Float64()*20-10,
		rng.Float64()*20-10,
		rng.Float64()*20-10,
	)
}

// RandomUnitQuaternion returns a uniformly distributed unit quaternion
// (Shoemake's subgroup algorithm).
func RandomUnitQuaternion(rng *rand.Rand) quatx.Quaternion {
	s := rng.Float64()
	sig1 := math.Sqrt(1 - s)
	sig2 := math.Sqrt(s)
	t1 := 2 * math.Pi * rng.Float64()
	t2 := 2 * math.Pi * rng.Float64()
	return quatx.New(
		math.Cos(t2)*sig2,
		math.Sin(t1)*sig1,
		math.Cos(t1)*sig1,
		math.Sin(t2)*sig2,
	)
}

// RandomPose returns a pose with a uniform random rotation and a translation
// with components uniform in [-5, 5).
func RandomPose(rng *rand.Rand) pose.Pose {
	p, err := pose.FromRotationTranslation(RandomUnitQuaternion(rng), pose.Vec3{
		X: rng.Float64()*10 - 5,
		Y: rng.Float64()*10 - 5,
		Z: rng.Float64()*10 - 5,
	})
	if err != nil {
		// Unit rotations never have zero norm.
		panic(err)
	}
	return p
}

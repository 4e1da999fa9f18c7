// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand"

	"github.com/comalice/quatx"
	"github.com/comalice/quatx/pose"
	"github.com/comalice/quatx/testutil"
)

// GenQuaternions returns n random quaternions from a fixed seed so runs are
// comparable.
func GenQuaternions(n int) []quatx.Quaternion {
	rng := rand.New(rand.NewSource(1))
	out := make([]quatx.Quaternion, n)
	for i := range out {
		out[i] = testutil.RandomQuaternion(rng)
	}
	return out
}

// GenDualQuaternions returns n random dual quaternions from a fixed seed.
func GenDualQuaternions(n int) []quatx.DualQuaternion {
	rng := rand.New(rand.NewSource(2))
	out := make([]quatx.DualQuaternion, n)
	for i := range out {
		out[i] = quatx.NewDual(testutil.RandomQuaternion(rng), testutil.RandomQuaternion(rng))
	}
	return out
}

// GenPoses returns n random unit poses from a fixed seed.
func GenPoses(n int) []pose.Pose {
	rng := rand.New(rand.NewSource(3))
	out := make([]pose.Pose, n)
	for i := range out {
		out[i] = testutil.RandomPose(rng)
	}
	return out
}

package testutil_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/comalice/quatx/testutil"
)

func TestRandomUnitQuaternionHasUnitNorm(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		q := testutil.RandomUnitQuaternion(rng)
		if n := q.Norm(); math.Abs(n-1) > 1e-12 {
			t.Fatalf("expected unit norm, got %g for %v", n, q)
		}
	}
}

func TestRandomPoseIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	for i := 0; i < 100; i++ {
		p := testutil.RandomPose(rng)
		if n := p.DualQuaternion().Norm(); math.Abs(n-1) > 1e-12 {
			t.Fatalf("expected unit real part, got %g", n)
		}
	}
}

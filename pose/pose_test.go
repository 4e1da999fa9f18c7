package pose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/quatx"
	"github.com/comalice/quatx/pose"
	"github.com/comalice/quatx/testutil"
)

func TestIdentityLeavesPointsFixed(t *testing.T) {
	p := pose.Identity()
	pt := pose.Vec3{X: 1, Y: -2, Z: 3}
	assert.Equal(t, pt, p.TransformPoint(pt))
	assert.Equal(t, pose.Vec3{}, p.Translation())
	assert.Equal(t, quatx.Identity(), p.Rotation())
}

func TestPureRotationTransformsPoint(t *testing.T) {
	// 90° about z maps x̂ to ŷ.
	p := pose.FromAxisAngle(pose.Vec3{Z: 1}, math.Pi/2, pose.Vec3{})
	got := p.TransformPoint(pose.Vec3{X: 1})
	testutil.AssertVecApprox(t, pose.Vec3{Y: 1}, got, 1e-12)
}

func TestPureTranslationTransformsPoint(t *testing.T) {
	p := pose.FromAxisAngle(pose.Vec3{}, 0, pose.Vec3{X: 1, Y: 2, Z: 3})
	got := p.TransformPoint(pose.Vec3{X: 10})
	testutil.AssertVecApprox(t, pose.Vec3{X: 11, Y: 2, Z: 3}, got, 1e-12)
	testutil.AssertVecApprox(t, pose.Vec3{X: 1, Y: 2, Z: 3}, p.Translation(), 1e-12)
}

func TestFromRotationTranslationRoundTrip(t *testing.T) {
	rot := quatx.FromAxisAngle(1, 1, 0, math.Pi/3)
	tr := pose.Vec3{X: -1, Y: 4, Z: 0.5}

	p, err := pose.FromRotationTranslation(rot, tr)
	require.NoError(t, err)

	testutil.AssertQuatApprox(t, rot, p.Rotation(), 1e-12)
	testutil.AssertVecApprox(t, tr, p.Translation(), 1e-12)
}

func TestFromRotationTranslationRejectsZeroRotation(t *testing.T) {
	_, err := pose.FromRotationTranslation(quatx.Quaternion{}, pose.Vec3{X: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, quatx.ErrZeroNorm)
}

func TestComposeAppliesRightOperandFirst(t *testing.T) {
	rotate := pose.FromAxisAngle(pose.Vec3{Z: 1}, math.Pi/2, pose.Vec3{})
	translate := pose.FromAxisAngle(pose.Vec3{}, 0, pose.Vec3{X: 1})

	// Translate then rotate: (1,0,0) -> (2,0,0) -> (0,2,0).
	p := rotate.Compose(translate)
	testutil.AssertVecApprox(t, pose.Vec3{Y: 2}, p.TransformPoint(pose.Vec3{X: 1}), 1e-12)

	// Rotate then translate: (1,0,0) -> (0,1,0) -> (1,1,0).
	p = translate.Compose(rotate)
	testutil.AssertVecApprox(t, pose.Vec3{X: 1, Y: 1}, p.TransformPoint(pose.Vec3{X: 1}), 1e-12)
}

func TestComposeMatchesSequentialTransform(t *testing.T) {
	p1 := pose.FromAxisAngle(pose.Vec3{X: 1, Y: 2, Z: 0.5}, 1.1, pose.Vec3{X: 3, Y: -1, Z: 2})
	p2 := pose.FromAxisAngle(pose.Vec3{Y: 1, Z: -1}, -0.7, pose.Vec3{X: 0, Y: 5, Z: -2})
	pt := pose.Vec3{X: 0.3, Y: -4, Z: 1.5}

	composed := p1.Compose(p2).TransformPoint(pt)
	sequential := p1.TransformPoint(p2.TransformPoint(pt))
	testutil.AssertVecApprox(t, sequential, composed, 1e-9)
}

func TestInvertUndoesTransform(t *testing.T) {
	p := pose.FromAxisAngle(pose.Vec3{X: 1, Z: 1}, 0.8, pose.Vec3{X: 1, Y: 2, Z: 3})
	pt := pose.Vec3{X: -2, Y: 0.5, Z: 7}

	back := p.Invert().TransformPoint(p.TransformPoint(pt))
	testutil.AssertVecApprox(t, pt, back, 1e-9)

	testutil.AssertDualApprox(t, quatx.DualIdentity(),
		p.Compose(p.Invert()).DualQuaternion(), 1e-9)
}

// The classic dual-quaternion point sandwich: embedding a point as 1 + ε·p̂
// and conjugating by q and its combined (quaternion + dual) conjugate
// transforms the point. Must agree with TransformPoint.
func TestCombinedConjugateSandwichTransformsPoints(t *testing.T) {
	p := pose.FromAxisAngle(pose.Vec3{X: 0.5, Y: 1, Z: -2}, 1.3, pose.Vec3{X: 2, Y: -1, Z: 4})
	pt := pose.Vec3{X: 1, Y: 2, Z: 3}

	q := p.DualQuaternion()
	embedded := quatx.NewDual(quatx.Identity(), quatx.FromVector(pt.X, pt.Y, pt.Z))
	sandwich := q.Mul(embedded).Mul(q.Conj().DualConj())

	testutil.AssertQuatApprox(t, quatx.Identity(), sandwich.Real, 1e-12)
	want := p.TransformPoint(pt)
	testutil.AssertQuatApprox(t, quatx.FromVector(want.X, want.Y, want.Z), sandwich.Dual, 1e-9)
}

func TestFromDualQuaternionNormalizes(t *testing.T) {
	d := quatx.NewDual(quatx.New(2, 0, 0, 0), quatx.New(0, 1, 2, 3))
	p, err := pose.FromDualQuaternion(d)
	require.NoError(t, err)
	assert.InDelta(t, 1, p.Rotation().Norm(), 1e-12)

	_, err = pose.FromDualQuaternion(quatx.NewDual(quatx.Quaternion{}, quatx.New(1, 0, 0, 0)))
	assert.ErrorIs(t, err, quatx.ErrZeroNorm)
}

func TestApproxEqualHandlesDoubleCover(t *testing.T) {
	p := pose.FromAxisAngle(pose.Vec3{Z: 1}, math.Pi/3, pose.Vec3{X: 1})
	negated, err := pose.FromDualQuaternion(p.DualQuaternion().Neg())
	require.NoError(t, err)
	assert.True(t, p.ApproxEqual(negated, 1e-12))
}

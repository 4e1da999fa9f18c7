// Package pose represents rigid transforms (rotation + translation) as unit
// dual quaternions and provides composition, point transformation, screw
// decomposition and screw-linear interpolation.
//
// A Pose wraps a quatx.DualQuaternion whose real part is a unit rotation
// quaternion r and whose dual part is t·r/2 for the translation t embedded
// as a pure quaternion. Constructors maintain that invariant; values are
// immutable.
package pose

import (
	"github.com/cockroachdb/errors"

	"github.com/comalice/quatx"
)

// Pose is a rigid transform. The zero value is not valid; use Identity or a
// constructor.
type Pose struct {
	d quatx.DualQuaternion
}

// Identity returns the pose that leaves every point fixed.
func Identity() Pose {
	return Pose{d: quatx.DualIdentity()}
}

// FromDualQuaternion normalizes an arbitrary dual quaternion into a pose.
// Returns ErrZeroNorm when the real part has zero magnitude.
func FromDualQuaternion(d quatx.DualQuaternion) (Pose, error) {
	n, err := d.Normalize()
	if err != nil {
		return Pose{}, errors.Wrap(err, "pose from dual quaternion")
	}
	return Pose{d: n}, nil
}

// FromRotationTranslation builds the pose rotating by rot (normalized here)
// and then translating by t. Returns ErrZeroNorm when rot has zero
// magnitude.
func FromRotationTranslation(rot quatx.Quaternion, t Vec3) (Pose, error) {
	r, err := rot.Normalize()
	if err != nil {
		return Pose{}, errors.Wrap(err, "pose rotation")
	}
	tq := quatx.FromVector(t.X, t.Y, t.Z)
	return Pose{d: quatx.NewDual(r, tq.Mul(r).Scale(0.5))}, nil
}

// FromAxisAngle builds the pose rotating by angle radians about axis and
// translating by t. A zero axis yields a pure translation.
func FromAxisAngle(axis Vec3, angle float64, t Vec3) Pose {
	r := quatx.FromAxisAngle(axis.X, axis.Y, axis.Z, angle)
	tq := quatx.FromVector(t.X, t.Y, t.Z)
	return Pose{d: quatx.NewDual(r, tq.Mul(r).Scale(0.5))}
}

// DualQuaternion returns the underlying unit dual quaternion.
func (p Pose) DualQuaternion() quatx.DualQuaternion {
	return p.d
}

// Rotation returns the unit rotation quaternion.
func (p Pose) Rotation() quatx.Quaternion {
	return p.d.Real
}

// Translation recovers the translation vector t = 2·dual·conj(real).
func (p Pose) Translation() Vec3 {
	t := p.d.Dual.Mul(p.d.Real.Conj()).Scale(2)
	return Vec3{t.X, t.Y, t.Z}
}

// Compose returns the transform applying o first and then p, the dual
// quaternion product p·o (matching matrix composition order).
func (p Pose) Compose(o Pose) Pose {
	return Pose{d: p.d.Mul(o.d)}
}

// Invert returns the inverse transform. For a unit dual quaternion this is
// the quaternion conjugate of both parts.
func (p Pose) Invert() Pose {
	return Pose{d: p.d.Conj()}
}

// TransformPoint applies the rigid transform to a point: rotate by the
// sandwich product r·v·conj(r), then translate.
func (p Pose) TransformPoint(v Vec3) Vec3 {
	r := p.d.Real
	rot := r.Mul(quatx.FromVector(v.X, v.Y, v.Z)).Mul(r.Conj())
	return Vec3{rot.X, rot.Y, rot.Z}.Add(p.Translation())
}

// ApproxEqual reports whether both poses represent the same rigid transform
// within tol. The rotation double cover (q and -q encode the same rotation)
// is accounted for.
func (p Pose) ApproxEqual(o Pose, tol float64) bool {
	return quatx.ApproxEqualDual(p.d, o.d, tol) ||
		quatx.ApproxEqualDual(p.d, o.d.Neg(), tol)
}

func (p Pose) String() string {
	return p.d.String()
}

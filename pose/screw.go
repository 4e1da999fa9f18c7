package pose

import (
	"math"

	"github.com/comalice/quatx"
)

// sinHalfEps is the threshold below which a rotation is treated as the
// identity and the motion degenerates to a pure translation.
const sinHalfEps = 1e-12

// ScrewParams is the screw (Chasles) decomposition of a rigid transform:
// rotation by Angle about the line with direction Axis and moment Moment,
// plus a Slide translation along that line. Pitch is Slide/Angle, infinite
// for a pure translation.
type ScrewParams struct {
	Axis   Vec3
	Moment Vec3
	Angle  float64
	Slide  float64
	Pitch  float64
}

// Screw decomposes the pose into its screw parameters. An identity rotation
// degenerates to a pure translation: Angle is zero and Axis points along the
// translation (ẑ for the identity transform, where any axis serves).
func (p Pose) Screw() ScrewParams {
	r := p.d.Real
	du := p.d.Dual

	sinHalf := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
	if sinHalf < sinHalfEps {
		t := p.Translation()
		s := t.Norm()
		axis := Vec3{Z: 1}
		pitch := 0.0
		if s > 0 {
			axis = t.Scale(1 / s)
			pitch = math.Inf(1)
		}
		return ScrewParams{Axis: axis, Angle: 0, Slide: s, Pitch: pitch}
	}

	angle := 2 * math.Atan2(sinHalf, r.W)
	axis := Vec3{r.X, r.Y, r.Z}.Scale(1 / sinHalf)
	slide := -2 * du.W / sinHalf
	moment := Vec3{du.X, du.Y, du.Z}.
		Sub(axis.Scale(slide / 2 * r.W)).
		Scale(1 / sinHalf)

	return ScrewParams{
		Axis:   axis,
		Moment: moment,
		Angle:  angle,
		Slide:  slide,
		Pitch:  slide / angle,
	}
}

// FromScrew reconstructs the pose from screw parameters. Inverse of Screw.
func FromScrew(sp ScrewParams) Pose {
	sinHalf, cosHalf := math.Sincos(sp.Angle / 2)
	real := quatx.New(
		cosHalf,
		sp.Axis.X*sinHalf,
		sp.Axis.Y*sinHalf,
		sp.Axis.Z*sinHalf,
	)
	dv := sp.Axis.Scale(sp.Slide / 2 * cosHalf).Add(sp.Moment.Scale(sinHalf))
	dual := quatx.New(-sp.Slide/2*sinHalf, dv.X, dv.Y, dv.Z)
	return Pose{d: quatx.NewDual(real, dual)}
}

// PowReal returns the pose raised to a real exponent: the same screw motion
// scaled to t·Angle and t·Slide about the same axis line. PowReal(0) is the
// identity and PowReal(1) is p.
func (p Pose) PowReal(t float64) Pose {
	sp := p.Screw()
	if sp.Angle == 0 {
		// Pure translation: scale the slide linearly.
		return FromAxisAngle(Vec3{}, 0, sp.Axis.Scale(sp.Slide*t))
	}
	sp.Angle *= t
	sp.Slide *= t
	return FromScrew(sp)
}

// ScLerp is screw linear interpolation between p (t=0) and o (t=1): the
// relative motion is decomposed into its screw and traversed at constant
// rotational and translational rates.
func (p Pose) ScLerp(o Pose, t float64) Pose {
	rel := o.Compose(p.Invert())
	return rel.PowReal(t).Compose(p)
}

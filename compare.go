package quatx

import "gonum.org/v1/gonum/floats/scalar"

// ApproxEqual reports whether every component of a and b agrees within the
// absolute tolerance tol. NaN components never compare equal, so a NaN-laden
// result fails rather than silently passing.
func ApproxEqual(a, b Quaternion, tol float64) bool {
	return scalar.EqualWithinAbs(a.W, b.W, tol) &&
		scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// ApproxEqualDual reports component-wise approximate equality of both parts.
func ApproxEqualDual(a, b DualQuaternion, tol float64) bool {
	return ApproxEqual(a.Real, b.Real, tol) && ApproxEqual(a.Dual, b.Dual, tol)
}

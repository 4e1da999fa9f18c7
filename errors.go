package quatx

import "github.com/cockroachdb/errors"

// ErrZeroNorm is the domain error for operations undefined at zero
// magnitude: division, inversion, normalization, logarithm, square root and
// power. Operations wrap it with context; check with errors.Is.
var ErrZeroNorm = errors.New("zero-norm operand")

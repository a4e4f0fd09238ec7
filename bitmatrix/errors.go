package bitmatrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("bitmatrix: index out of bounds")

// ErrDimensionMismatch indicates that two operands of an operation have
// incompatible shapes (e.g. Mul's inner dimensions disagree, or ColMul's
// vector length does not match Rows).
var ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")

package prep

import "errors"

var (
	// ErrQubits is returned when the requested register size is not positive.
	ErrQubits = errors.New("prep: qubit count must be at least 1")

	// ErrDimension is returned when the target vector length is not 2^n.
	ErrDimension = errors.New("prep: target vector length must equal 2^n")

	// ErrPrecision is returned when the angle precision is not positive.
	ErrPrecision = errors.New("prep: angle precision must be at least 1")
)

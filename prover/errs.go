package prover

import "errors"

var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrInvalidSpecification = errors.New("invalid specification")
	ErrInvalidAssignment    = errors.New("invalid assignment")
)

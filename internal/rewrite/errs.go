package rewrite

import "errors"

var (
	ErrUnknownStrategy = errors.New("unknown rewrite strategy")
	ErrWrongFamily     = errors.New("strategy belongs to another backend family")

	ErrDuplicateRule = errors.New("duplicate rule")
	ErrInvalidRule   = errors.New("invalid rule")
)

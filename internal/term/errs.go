package term

import "errors"

var (
	ErrSyntax            = errors.New("syntax error")
	ErrUnknownIdentifier = errors.New("unknown identifier")
	ErrAmbiguous         = errors.New("ambiguous symbol")
	ErrArity             = errors.New("arity mismatch")
	ErrSort              = errors.New("sort mismatch")
)

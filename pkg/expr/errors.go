package expr

import "errors"

var (
	// ErrSyntax marks malformed bound expressions or rules.
	ErrSyntax = errors.New("expr: syntax error")
	// ErrNotCoercible marks values that cannot be converted to the requested
	// type.
	ErrNotCoercible = errors.New("expr: value not coercible")
)

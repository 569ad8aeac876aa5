package widget

import "errors"

var (
	// ErrUnknownAttribute is returned when tag input names an attribute the
	// widget does not declare.
	ErrUnknownAttribute = errors.New("widget: unknown attribute")
	// ErrNoResolver is returned when an attribute is resolved without an
	// evaluation context.
	ErrNoResolver = errors.New("widget: resolver is required")
)

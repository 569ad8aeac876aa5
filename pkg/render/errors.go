package render

import (
	"errors"
	"fmt"
)

var (
	// ErrWidgetRequired is returned when Render receives a nil widget.
	ErrWidgetRequired = errors.New("render: widget is required")
	// ErrTemplateMissing is returned when the selected theme has no template
	// for a widget.
	ErrTemplateMissing = errors.New("render: template missing")
)

// EvaluationError reports a widget whose attributes failed to resolve. The
// underlying error is preserved for errors.Is/As.
type EvaluationError struct {
	Widget string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("render: evaluate %s: %v", e.Widget, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

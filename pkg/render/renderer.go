// Package render defines the contract between widgets and the renderers that
// turn their parameters into markup.
package render

import (
	"context"

	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// Renderer evaluates a widget and renders it into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, w widget.Widget, options RenderOptions) ([]byte, error)
}

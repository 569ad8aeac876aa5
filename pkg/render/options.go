package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tabbedpanel/pkg/expr"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// RenderOptions describe per-request data a renderer uses to evaluate and
// render one widget occurrence.
type RenderOptions struct {
	// Values are read by bound attribute expressions (%{path}).
	Values map[string]any
	// Extras are read through the "extras." prefix, e.g. roles or flags.
	Extras map[string]any
	// Body is the already rendered markup placed between the open and close
	// templates (tab list and panels).
	Body string
	// Resolver overrides the evaluation context built from Values/Extras.
	Resolver widget.Resolver
	// Theme carries a pre-resolved theme configuration. When nil the renderer
	// selects the widget's theme itself.
	Theme *theme.RendererConfig
}

// ResolverFor returns options.Resolver, or a stack over Values and Extras.
func (o RenderOptions) ResolverFor() widget.Resolver {
	if o.Resolver != nil {
		return o.Resolver
	}
	return expr.NewStack(expr.Context{Values: o.Values, Extras: o.Extras})
}

// Package widget provides the rendering plumbing shared by server-side widget
// components: typed attribute resolution, the declaration table used by
// tooling, and the attributes every widget inherits.
package widget

import (
	"github.com/goliatone/go-tabbedpanel/pkg/params"
)

// Resolver resolves raw attribute values against the render-time evaluation
// context. found is false when a bound value is missing, in which case the
// parameter is left out of the map.
type Resolver interface {
	FindString(raw string) (value string, found bool, err error)
	FindBool(raw string) (value bool, found bool, err error)
	FindInt(raw string) (value int, found bool, err error)
}

// Widget is a component that turns author attributes into template
// parameters. One instance serves one tag occurrence in one render pass.
type Widget interface {
	// Name identifies the widget (tag name).
	Name() string
	// Theme names the template set used to render the widget.
	Theme() string
	// OpenTemplate is rendered before the widget body.
	OpenTemplate() string
	// CloseTemplate is rendered after the widget body.
	CloseTemplate() string
	// Attributes returns the static attribute declaration table.
	Attributes() []Attribute
	// Evaluate resolves attributes into a fresh parameter map.
	Evaluate(resolver Resolver) (*params.Params, error)
}

// Package template defines the renderer-agnostic template seam widget
// renderers depend on, plus adapters for concrete engines.
package template

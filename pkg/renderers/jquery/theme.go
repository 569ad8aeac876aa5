package jquery

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// DefaultThemeName is the manifest the renderer selects when no other
// selector is configured.
const DefaultThemeName = "jquery"

// Asset keys declared by DefaultManifest.
const (
	AssetPlugin = "jquery.plugin"
	AssetUI     = "jquery.ui"
)

// DefaultManifest describes the built-in jquery theme: partials for the open
// and close templates and the client script assets.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Templates: map[string]string{
			"tabbedpanel.open":  "templates/tabbedpanel.tmpl",
			"tabbedpanel.close": "templates/tabbedpanel-close.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/static/jquery",
			Files: map[string]string{
				AssetPlugin: "jquery.struts2.js",
				AssetUI:     "jquery-ui.min.js",
			},
		},
	}
}

// NewThemeRegistry returns a go-theme registry holding DefaultManifest and
// any extra manifests. A manifest named "jquery" replaces the default when
// its version sorts later.
func NewThemeRegistry(manifests ...*theme.Manifest) (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	for _, m := range append([]*theme.Manifest{DefaultManifest()}, manifests...) {
		if err := registry.Register(m); err != nil {
			return nil, fmt.Errorf("jquery renderer: register theme: %w", err)
		}
	}
	return registry, nil
}

func fallbackPartials(name, openTpl, closeTpl string) map[string]string {
	return map[string]string{
		name + ".open":  "templates/" + openTpl + ".tmpl",
		name + ".close": "templates/" + closeTpl + ".tmpl",
	}
}

// Package tabbedpanel renders jQuery UI tabbed panels from tag-style
// attributes.
//
//	html, err := tabbedpanel.Render(ctx, tabbedpanel.NewConfig(
//	    tabbedpanel.WithID("settings"),
//	    tabbedpanel.WithSelectedTab("%{user.lastTab}"),
//	), tabbedpanel.RenderOptions{
//	    Values: map[string]any{"user": map[string]any{"lastTab": 2}},
//	    Body:   tabsMarkup,
//	})
package tabbedpanel

import (
	"context"
	"io/fs"

	component "github.com/goliatone/go-tabbedpanel/pkg/components/tabbedpanel"
	"github.com/goliatone/go-tabbedpanel/pkg/render"
	"github.com/goliatone/go-tabbedpanel/pkg/renderers/jquery"
	"github.com/goliatone/go-tabbedpanel/pkg/widgets"
)

// Config aliases the component configuration.
type Config = component.Config

// RenderOptions describes the evaluation context and inner markup for one
// render.
type RenderOptions = render.RenderOptions

// Configuration options re-exported from the component package.
var (
	NewConfig                = component.NewConfig
	WithID                   = component.WithID
	WithName                 = component.WithName
	WithCSSClass             = component.WithCSSClass
	WithCSSStyle             = component.WithCSSStyle
	WithTitle                = component.WithTitle
	WithSelectedTab          = component.WithSelectedTab
	WithUseSelectedTabCookie = component.WithUseSelectedTabCookie
	WithOpenOnMouseover      = component.WithOpenOnMouseover
	WithCollapsible          = component.WithCollapsible
	WithAnimate              = component.WithAnimate
	WithSpinner              = component.WithSpinner
	WithCache                = component.WithCache
	WithDisabledTabs         = component.WithDisabledTabs
	WithOnAddTopics          = component.WithOnAddTopics
	WithOnRemoveTopics       = component.WithOnRemoveTopics
	WithOnBeforeTopics       = component.WithOnBeforeTopics
	WithOnCompleteTopics     = component.WithOnCompleteTopics
	WithOnSuccessTopics      = component.WithOnSuccessTopics
	WithOnErrorTopics        = component.WithOnErrorTopics
	WithOnAlwaysTopics       = component.WithOnAlwaysTopics
	WithOnChangeTopics       = component.WithOnChangeTopics
	WithOnEnableTopics       = component.WithOnEnableTopics
	WithOnDisableTopics      = component.WithOnDisableTopics
	WithAttribute            = component.WithAttribute
)

// Render builds a panel from cfg and renders it with the jquery renderer.
func Render(ctx context.Context, cfg Config, options RenderOptions, rendererOptions ...jquery.Option) ([]byte, error) {
	renderer, err := jquery.New(rendererOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, component.New(cfg), options)
}

// RenderTag builds the widget registered under tag (for example
// "sj:tabbedpanel") from raw attributes and renders it.
func RenderTag(ctx context.Context, tag string, attrs map[string]string, options RenderOptions, rendererOptions ...jquery.Option) ([]byte, error) {
	w, err := widgets.NewRegistry().Build(tag, attrs)
	if err != nil {
		return nil, err
	}
	renderer, err := jquery.New(rendererOptions...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, w, options)
}

// AssetURL resolves a theme script asset, such as jquery.AssetPlugin, for
// pages that embed rendered panels.
func AssetURL(key string, rendererOptions ...jquery.Option) (string, error) {
	renderer, err := jquery.New(rendererOptions...)
	if err != nil {
		return "", err
	}
	return renderer.AssetURL(component.New(component.NewConfig()), key)
}

// EmbeddedTemplates exposes the built-in templates so callers can reuse or
// extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return jquery.TemplatesFS()
}

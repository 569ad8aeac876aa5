// Package jquery renders widgets as a container element followed by the
// script that binds the struts2 jQuery plugin to it.
package jquery

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tabbedpanel/pkg/params"
	"github.com/goliatone/go-tabbedpanel/pkg/render"
	rendertemplate "github.com/goliatone/go-tabbedpanel/pkg/render/template"
	gotemplate "github.com/goliatone/go-tabbedpanel/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// KeySpinner is the parameter whose value is HTML inserted by the client.
const KeySpinner = "spinner"

// Option configures the jquery renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	selector         theme.ThemeSelector
	provider         theme.ThemeProvider
	variant          string
	sanitize         func(string) string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector replaces the built-in selector, which only knows the
// jquery manifest.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(cfg *config) {
		if selector != nil {
			cfg.selector = selector
		}
	}
}

// WithThemeProvider selects themes from provider, falling back to the jquery
// theme when a name is unknown. WithThemeSelector takes precedence.
func WithThemeProvider(provider theme.ThemeProvider) Option {
	return func(cfg *config) {
		if provider != nil {
			cfg.provider = provider
		}
	}
}

// WithThemeVariant selects a manifest variant.
func WithThemeVariant(variant string) Option {
	return func(cfg *config) {
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithSanitizer replaces the spinner sanitizer.
func WithSanitizer(fn func(string) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.sanitize = fn
		}
	}
}

// Renderer renders widgets through theme-selected open and close templates.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	selector  theme.ThemeSelector
	variant   string
	sanitize  func(string) string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the jquery renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		sanitize:   SanitizeSpinner,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.selector == nil {
		if cfg.provider == nil {
			registry, err := NewThemeRegistry()
			if err != nil {
				return nil, err
			}
			cfg.provider = registry
		}
		cfg.selector = theme.Selector{
			Registry:       cfg.provider,
			DefaultTheme:   DefaultThemeName,
			DefaultVariant: cfg.variant,
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("jquery renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		selector:  cfg.selector,
		variant:   cfg.variant,
		sanitize:  cfg.sanitize,
	}, nil
}

func (r *Renderer) Name() string {
	return "jquery"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render evaluates w against the options' context and renders the open
// template, options.Body and the close template.
func (r *Renderer) Render(ctx context.Context, w widget.Widget, options render.RenderOptions) ([]byte, error) {
	if w == nil {
		return nil, render.ErrWidgetRequired
	}
	if r.templates == nil {
		return nil, fmt.Errorf("jquery renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values, err := w.Evaluate(options.ResolverFor())
	if err != nil {
		return nil, &render.EvaluationError{Widget: w.Name(), Err: err}
	}

	themeCfg := options.Theme
	if themeCfg == nil {
		themeCfg, err = r.themeFor(w)
		if err != nil {
			return nil, err
		}
	}

	openPath, err := partial(themeCfg, w.Name()+".open")
	if err != nil {
		return nil, err
	}
	closePath, err := partial(themeCfg, w.Name()+".close")
	if err != nil {
		return nil, err
	}

	data, err := r.templateData(values)
	if err != nil {
		return nil, err
	}

	var out strings.Builder
	open, err := r.templates.RenderTemplate(openPath, data)
	if err != nil {
		return nil, fmt.Errorf("jquery renderer: render %s: %w", w.OpenTemplate(), err)
	}
	out.WriteString(open)
	out.WriteString(options.Body)
	closing, err := r.templates.RenderTemplate(closePath, data)
	if err != nil {
		return nil, fmt.Errorf("jquery renderer: render %s: %w", w.CloseTemplate(), err)
	}
	out.WriteString(closing)
	return []byte(out.String()), nil
}

// AssetURL resolves a theme asset, such as AssetPlugin, for the theme w
// renders with. Unknown keys resolve to "".
func (r *Renderer) AssetURL(w widget.Widget, key string) (string, error) {
	if w == nil {
		return "", render.ErrWidgetRequired
	}
	themeCfg, err := r.themeFor(w)
	if err != nil {
		return "", err
	}
	return themeCfg.AssetURL(key), nil
}

func (r *Renderer) themeFor(w widget.Widget) (*theme.RendererConfig, error) {
	sel, err := r.selector.Select(w.Theme(), r.variant)
	if err != nil {
		return nil, fmt.Errorf("jquery renderer: select theme %q: %w", w.Theme(), err)
	}
	cfg := sel.RendererTheme(fallbackPartials(w.Name(), w.OpenTemplate(), w.CloseTemplate()))
	return &cfg, nil
}

// templateData sanitises a copy of values; the evaluated map is not
// modified.
func (r *Renderer) templateData(values *params.Params) (map[string]any, error) {
	view := values.Clone()
	if raw, ok := view.Get(KeySpinner); ok {
		if s, isString := raw.(string); isString {
			view.Set(KeySpinner, r.sanitize(s))
		}
	}

	options, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("jquery renderer: encode options: %w", err)
	}

	id, _ := view.Get("id")
	selector, err := json.Marshal(fmt.Sprintf("#%v", id))
	if err != nil {
		return nil, fmt.Errorf("jquery renderer: encode selector: %w", err)
	}

	return map[string]any{
		"params":       view.Map(),
		"optionsJSON":  string(options),
		"selectorJSON": string(selector),
	}, nil
}

func partial(cfg *theme.RendererConfig, key string) (string, error) {
	if cfg != nil {
		if path := strings.TrimSpace(cfg.Partials[key]); path != "" {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", render.ErrTemplateMissing, key)
}

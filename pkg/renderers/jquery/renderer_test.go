package jquery_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tabbedpanel/pkg/components/tabbedpanel"
	"github.com/goliatone/go-tabbedpanel/pkg/expr"
	"github.com/goliatone/go-tabbedpanel/pkg/render"
	"github.com/goliatone/go-tabbedpanel/pkg/renderers/jquery"
	"github.com/goliatone/go-tabbedpanel/pkg/testsupport"
)

func TestRenderer_RenderContainerAndScript(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	panel := tabbedpanel.New(tabbedpanel.NewConfig(
		tabbedpanel.WithID("tabs"),
		tabbedpanel.WithCSSClass("ui-tabs"),
		tabbedpanel.WithCollapsible("true"),
	))

	out, err := renderer.Render(testsupport.Context(), panel, render.RenderOptions{
		Body: `<ul><li><a href="#one">One</a></li></ul>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		`<div id="tabs" class="ui-tabs">`,
		`<ul><li><a href="#one">One</a></li></ul></div>`,
		`var options_tabs = {"id":"tabs","cssClass":"ui-tabs","jqueryaction":"tabbedpanel","collapsible":true};`,
		`jQuery.struts2_jquery.bind(jQuery("#tabs"), options_tabs);`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, html)
		}
	}
	if !strings.HasPrefix(html, "<div") {
		t.Fatalf("expected container first, got:\n%s", html)
	}
}

func TestRenderer_BoundValuesAndFallbackID(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	panel := tabbedpanel.New(
		tabbedpanel.NewConfig(tabbedpanel.WithSelectedTab("%{tab}")),
		tabbedpanel.WithIDSource(func() int32 { return -42 }),
	)

	out, err := renderer.Render(context.Background(), panel, render.RenderOptions{
		Values: map[string]any{"tab": 2},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, `<div id="tabbedpanel_42">`) {
		t.Fatalf("expected fallback id container, got:\n%s", html)
	}
	if !strings.Contains(html, `var options_tabbedpanel_42 = {"jqueryaction":"tabbedpanel","selectedTab":2,"id":"tabbedpanel_42"};`) {
		t.Fatalf("unexpected options, got:\n%s", html)
	}
	if panel.ID() != "tabbedpanel_42" {
		t.Fatalf("live id not recorded: %q", panel.ID())
	}
}

func TestRenderer_SanitizesSpinnerOnlyInMarkup(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	spinner := `<em>Loading</em><script>alert(1)</script>`
	panel := tabbedpanel.New(tabbedpanel.NewConfig(
		tabbedpanel.WithID("tabs"),
		tabbedpanel.WithSpinner(spinner),
	))

	out, err := renderer.Render(testsupport.Context(), panel, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "alert(1)") {
		t.Fatalf("spinner script leaked into markup:\n%s", html)
	}
	if !strings.Contains(html, `"spinner":"\u003cem\u003eLoading\u003c/em\u003e"`) {
		t.Fatalf("expected sanitized spinner in options, got:\n%s", html)
	}

	values, err := panel.Evaluate(expr.NewStack(expr.Context{}))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got, _ := values.Get("spinner"); got != spinner {
		t.Fatalf("evaluated spinner should stay raw, got %v", got)
	}
}

func TestRenderer_EvaluationErrorIsWrapped(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	panel := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithSelectedTab("first")))

	_, err = renderer.Render(testsupport.Context(), panel, render.RenderOptions{})
	if err == nil {
		t.Fatalf("expected error")
	}
	var evalErr *render.EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T: %v", err, err)
	}
	if evalErr.Widget != "tabbedpanel" {
		t.Fatalf("unexpected widget name %q", evalErr.Widget)
	}
	if !errors.Is(err, expr.ErrNotCoercible) {
		t.Fatalf("expected ErrNotCoercible in chain, got %v", err)
	}
}

func TestRenderer_NilWidget(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(testsupport.Context(), nil, render.RenderOptions{}); !errors.Is(err, render.ErrWidgetRequired) {
		t.Fatalf("expected ErrWidgetRequired, got %v", err)
	}
}

func TestRenderer_ThemeConfigWithoutPartials(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	panel := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithID("tabs")))

	_, err = renderer.Render(testsupport.Context(), panel, render.RenderOptions{
		Theme: &theme.RendererConfig{Theme: "bare"},
	})
	if !errors.Is(err, render.ErrTemplateMissing) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, _ ...io.Writer) (string, error) {
			return "[" + name + "]", nil
		},
	}

	renderer, err := jquery.New(jquery.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	panel := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithID("tabs")))

	out, err := renderer.Render(testsupport.Context(), panel, render.RenderOptions{Body: "body"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "[templates/tabbedpanel.tmpl]body[templates/tabbedpanel-close.tmpl]"
	if string(out) != want {
		t.Fatalf("unexpected output: %s", out)
	}
	data, ok := stub.lastData.(map[string]any)
	if !ok {
		t.Fatalf("expected map template data, got %T", stub.lastData)
	}
	if data["selectorJSON"] != `"#tabs"` {
		t.Fatalf("unexpected selector: %v", data["selectorJSON"])
	}
}

func TestRenderer_ThemeSelectorPartials(t *testing.T) {
	manifest := jquery.DefaultManifest()
	manifest.Version = "1.1.0"
	manifest.Variants = map[string]theme.Variant{
		"compact": {
			Templates: map[string]string{
				"tabbedpanel.open": "themes/compact/open.tmpl",
			},
		},
	}

	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, _ any, _ ...io.Writer) (string, error) {
			return name + ";", nil
		},
	}
	registry, err := jquery.NewThemeRegistry(manifest)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	renderer, err := jquery.New(
		jquery.WithTemplateRenderer(stub),
		jquery.WithThemeSelector(theme.Selector{Registry: registry, DefaultTheme: jquery.DefaultThemeName}),
		jquery.WithThemeVariant("compact"),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	panel := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithID("tabs")))

	out, err := renderer.Render(testsupport.Context(), panel, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "themes/compact/open.tmpl;templates/tabbedpanel-close.tmpl;"; string(out) != want {
		t.Fatalf("unexpected partials: %s", out)
	}
}

func TestRenderer_AssetURL(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	panel := tabbedpanel.New(tabbedpanel.NewConfig())

	got, err := renderer.AssetURL(panel, jquery.AssetPlugin)
	if err != nil {
		t.Fatalf("asset url: %v", err)
	}
	if got != "/static/jquery/jquery.struts2.js" {
		t.Fatalf("unexpected plugin url %q", got)
	}

	cdn := jquery.DefaultManifest()
	cdn.Version = "2.0.0"
	cdn.Assets.Prefix = "https://cdn.example.com/jquery/"
	registry, err := jquery.NewThemeRegistry(cdn)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	renderer, err = jquery.New(jquery.WithThemeProvider(registry))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	got, err = renderer.AssetURL(panel, jquery.AssetUI)
	if err != nil {
		t.Fatalf("asset url: %v", err)
	}
	if got != "https://cdn.example.com/jquery/jquery-ui.min.js" {
		t.Fatalf("unexpected ui url %q", got)
	}

	if _, err := renderer.AssetURL(nil, jquery.AssetUI); !errors.Is(err, render.ErrWidgetRequired) {
		t.Fatalf("expected ErrWidgetRequired, got %v", err)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := jquery.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	panel := tabbedpanel.New(tabbedpanel.NewConfig())
	if _, err := renderer.Render(ctx, panel, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type stubTemplateRenderer struct {
	lastData           any
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.lastData = data
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}

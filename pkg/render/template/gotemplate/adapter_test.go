package gotemplate_test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-tabbedpanel/pkg/render/template/gotemplate"
	"github.com/goliatone/go-tabbedpanel/pkg/testsupport"
)

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte(`Hello {{ name }}`)},
		"use-global.tmpl": {Data: []byte(`env={{ settings.env }}`)},
		"use-filter.tmpl": {Data: []byte(`{{ name|shout }}`)},
		"typed.tmpl":      {Data: []byte(`{{ params.title }}|{% if params.animate %}on{% else %}off{% endif %}`)},
		"helpers.tmpl":    {Data: []byte(`{{ id|jsvar }}{% for topic in list|topics %}[{{ topic }}]{% endfor %}`)},
	}
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada" {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected result %q", result)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestEngine_NestedParams(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("typed", map[string]any{
		"params": map[string]any{"title": "Settings", "animate": true},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Settings|on" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_DefaultFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("helpers", map[string]any{
		"id":   "my-tabs.1",
		"list": " added, ,changed ",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "my_tabs_1[added][changed]" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_RenderStringAndDispatch(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "x-y" {
		t.Fatalf("unexpected result %q", result)
	}

	result, err = engine.Render("hello", map[string]any{"name": "Bob"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Bob" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); !errors.Is(err, gotemplate.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}

	if _, err := newEngine(t).RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngine_TemplateFuncAndGlobalData(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(fstest.MapFS{"page.tmpl": {Data: []byte(`{{ site }}:{{ id|jsvar }}`)}}),
		gotemplate.WithGlobalData(map[string]any{"site": "docs"}),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	result, err := engine.RenderTemplate("page", map[string]any{"id": "a.b"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "docs:a_b" {
		t.Fatalf("unexpected result %q", result)
	}
}

func TestSplitTopicsAndJSIdentifier(t *testing.T) {
	if got := gotemplate.SplitTopics(""); got != nil {
		t.Fatalf("expected nil for empty list, got %v", got)
	}
	if got := gotemplate.JSIdentifier(" tabs-1 "); got != "tabs_1" {
		t.Fatalf("unexpected identifier %q", got)
	}
}

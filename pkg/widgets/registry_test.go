package widgets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tabbedpanel/pkg/components/tabbedpanel"
	"github.com/goliatone/go-tabbedpanel/pkg/expr"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	for _, name := range []string{"tabbedpanel", "TabbedPanel", " sj:tabbedpanel "} {
		if _, ok := reg.Resolve(name); !ok {
			t.Fatalf("expected %q to resolve", name)
		}
	}
	if _, ok := reg.Resolve("accordion"); ok {
		t.Fatalf("expected unknown widget to miss")
	}
	if diff := cmp.Diff([]string{WidgetTabbedPanel}, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_TabbedPanelFromAttributes(t *testing.T) {
	reg := NewRegistry()

	w, err := reg.Build("sj:tabbedpanel", map[string]string{
		"id":          "tabs",
		"selectedTab": "2",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	panel, ok := w.(*tabbedpanel.Component)
	if !ok {
		t.Fatalf("expected *tabbedpanel.Component, got %T", w)
	}

	values, err := panel.Evaluate(expr.NewStack(expr.Context{}))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := map[string]any{"id": "tabs", "jqueryaction": "tabbedpanel", "selectedTab": 2}
	if diff := cmp.Diff(want, values.Map()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Errors(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Build("accordion", nil); !errors.Is(err, ErrUnknownWidget) {
		t.Fatalf("expected ErrUnknownWidget, got %v", err)
	}
	if _, err := reg.Build("tabbedpanel", map[string]string{"colour": "red"}); !errors.Is(err, widget.ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestRegister_LatestWins(t *testing.T) {
	reg := &Registry{}
	reg.Register("", func(map[string]string) (widget.Widget, error) { return nil, nil })
	reg.Register("panel", nil)
	if len(reg.Names()) != 0 {
		t.Fatalf("expected blank name and nil factory to be ignored, got %v", reg.Names())
	}

	first := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithID("first")))
	second := tabbedpanel.New(tabbedpanel.NewConfig(tabbedpanel.WithID("second")))
	reg.Register("panel", func(map[string]string) (widget.Widget, error) { return first, nil })
	reg.Register("PANEL", func(map[string]string) (widget.Widget, error) { return second, nil })

	got, err := reg.Build("panel", nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got != widget.Widget(second) {
		t.Fatalf("expected latest registration to win")
	}
}

// Package widgets maps tag names to widget factories.
package widgets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-tabbedpanel/pkg/components/tabbedpanel"
	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetTabbedPanel = "tabbedpanel"
)

// TagPrefix is the tag library prefix page authors use ("sj:tabbedpanel").
// Resolve accepts names with or without it.
const TagPrefix = "sj:"

// ErrUnknownWidget is returned when no factory is registered for a name.
var ErrUnknownWidget = errors.New("widgets: unknown widget")

// Factory builds a widget from raw tag attributes.
type Factory func(attrs map[string]string) (widget.Widget, error)

// Registry stores widget factories by tag name. Names are case-insensitive.
// The latest registration for a name wins.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry constructs a registry with the built-in widgets registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds or replaces the factory for name. Blank names and nil
// factories are ignored.
func (r *Registry) Register(name string, factory Factory) {
	if r == nil || factory == nil {
		return
	}
	key := normalize(name)
	if key == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[key] = factory
}

// Resolve returns the factory registered for name.
func (r *Registry) Resolve(name string) (Factory, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[normalize(name)]
	return factory, ok
}

// Names returns the registered widget names, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Build resolves name and invokes its factory with attrs.
func (r *Registry) Build(name string, attrs map[string]string) (widget.Widget, error) {
	factory, ok := r.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, name)
	}
	w, err := factory(attrs)
	if err != nil {
		return nil, fmt.Errorf("widgets: build %s: %w", normalize(name), err)
	}
	return w, nil
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetTabbedPanel, func(attrs map[string]string) (widget.Widget, error) {
		cfg, err := tabbedpanel.ConfigFromAttributes(attrs)
		if err != nil {
			return nil, err
		}
		return tabbedpanel.New(cfg), nil
	})
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, TagPrefix)
}

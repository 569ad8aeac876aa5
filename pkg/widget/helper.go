package widget

import (
	"fmt"

	"github.com/goliatone/go-tabbedpanel/pkg/params"
)

// Helper couples a parameter map with a Resolver. Components receive one per
// evaluation instead of inheriting parameter plumbing.
type Helper struct {
	params   *params.Params
	resolver Resolver
}

// NewHelper returns a Helper writing into a fresh parameter map.
func NewHelper(resolver Resolver) *Helper {
	return &Helper{params: params.New(), resolver: resolver}
}

// Params returns the map being built.
func (h *Helper) Params() *params.Params {
	return h.params
}

// AddParameter stores value under key; nil removes the key.
func (h *Helper) AddParameter(key string, value any) {
	h.params.Set(key, value)
}

// Resolve resolves raw with the given kind and stores the result under key.
// A nil raw value leaves the map untouched, as does a bound value that
// resolves to nothing.
func (h *Helper) Resolve(key string, raw *string, kind Kind) error {
	if raw == nil {
		return nil
	}
	if h.resolver == nil {
		return fmt.Errorf("widget: resolve %s: %w", key, ErrNoResolver)
	}

	var (
		value any
		found bool
		err   error
	)
	switch kind {
	case KindBoolean:
		value, found, err = h.resolver.FindBool(*raw)
	case KindInteger:
		value, found, err = h.resolver.FindInt(*raw)
	default:
		value, found, err = h.resolver.FindString(*raw)
	}
	if err != nil {
		return fmt.Errorf("widget: resolve %s: %w", key, err)
	}
	if !found {
		h.params.Delete(key)
		return nil
	}
	h.params.Set(key, value)
	return nil
}

// ResolveAll resolves each binding in order, stopping at the first error.
func (h *Helper) ResolveAll(bindings []Binding) error {
	for _, binding := range bindings {
		if err := h.Resolve(binding.Key, binding.Raw, binding.Kind); err != nil {
			return err
		}
	}
	return nil
}

// Binding pairs an attribute's raw value with its parameter key and kind.
type Binding struct {
	Key  string
	Raw  *string
	Kind Kind
}

package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-tabbedpanel/pkg/widget"
)

const unset = "(unset)"

var booleanOptions = []string{unset, "true", "false"}

// Collect prompts for every attribute not already present in preset and
// returns the merged attribute map. Empty answers leave an attribute unset.
func Collect(ctx context.Context, d Driver, attrs []widget.Attribute, preset map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(preset))
	for key, value := range preset {
		out[key] = value
	}

	for _, attr := range attrs {
		if _, ok := out[attr.Name]; ok {
			continue
		}
		value, err := ask(ctx, d, attr)
		if err != nil {
			return nil, fmt.Errorf("prompt: %s: %w", attr.Name, err)
		}
		if value != "" {
			out[attr.Name] = value
		}
	}
	return out, nil
}

func ask(ctx context.Context, d Driver, attr widget.Attribute) (string, error) {
	message := attr.Name
	if attr.Required {
		message += " (required)"
	}

	if attr.Kind == widget.KindBoolean {
		idx, err := d.Select(ctx, SelectConfig{
			Message:      message,
			Options:      booleanOptions,
			DefaultIndex: 0,
			Help:         attr.Description,
		})
		if err != nil {
			return "", err
		}
		if idx <= 0 || idx >= len(booleanOptions) {
			return "", nil
		}
		return booleanOptions[idx], nil
	}

	cfg := InputConfig{Message: message, Help: attr.Description}
	if attr.Kind == widget.KindInteger {
		cfg.Validator = validateInteger
	}
	answer, err := d.Input(ctx, cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// validateInteger accepts blanks, bound expressions and base-10 integers.
func validateInteger(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "%{") {
		return nil
	}
	if _, err := strconv.ParseInt(s, 10, 32); err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	return nil
}

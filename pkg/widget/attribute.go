package widget

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the declared type of an attribute.
type Kind string

const (
	KindString  Kind = "string"
	KindBoolean Kind = "boolean"
	KindInteger Kind = "integer"
)

// Attribute declares one widget attribute for documentation and schema
// export.
type Attribute struct {
	Name        string `json:"name" yaml:"name"`
	Kind        Kind   `json:"type" yaml:"type"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Lookup finds a declared attribute by name.
func Lookup(attrs []Attribute, name string) (Attribute, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return Attribute{}, false
}

// UnknownAttributes returns the sorted keys of raw that are not declared.
func UnknownAttributes(attrs []Attribute, raw map[string]string) []string {
	var unknown []string
	for key := range raw {
		if _, ok := Lookup(attrs, key); !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// ValidateAttributes rejects undeclared attribute names.
func ValidateAttributes(widgetName string, attrs []Attribute, raw map[string]string) error {
	unknown := UnknownAttributes(attrs, raw)
	if len(unknown) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s does not declare %s", ErrUnknownAttribute, widgetName, strings.Join(unknown, ", "))
}

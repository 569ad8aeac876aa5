package expr

import "strings"

// Context carries the values bound expressions read from. Values usually hold
// page or action data; Extras carry request-scoped data such as user roles or
// feature flags.
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// Lookup resolves a dotted path. Paths prefixed with "extras." read from
// Extras.
func (c Context) Lookup(path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}
	if strings.HasPrefix(strings.ToLower(path), "extras.") {
		return lookupMap(c.Extras, strings.TrimSpace(path[len("extras."):]))
	}
	return lookupMap(c.Values, path)
}

func lookupMap(values map[string]any, path string) (any, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}

	// Flattened keys such as "user.name" win over traversal.
	if v, ok := values[path]; ok {
		return v, true
	}

	var current any = values
	for _, part := range strings.Split(path, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false
		}
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[part]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := typed[part]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

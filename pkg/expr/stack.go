package expr

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	bindingOpen  = "%{"
	bindingClose = '}'
)

// Stack resolves raw attribute values against a Context. A Stack is built per
// render pass and is not shared.
type Stack struct {
	ctx   Context
	rules *Evaluator
}

// NewStack returns a Stack reading from ctx.
func NewStack(ctx Context) *Stack {
	return &Stack{ctx: ctx, rules: NewEvaluator()}
}

// Context returns the context the stack reads from.
func (s *Stack) Context() Context {
	return s.ctx
}

// FindString resolves raw as a string. found is false when raw is a single
// bound expression whose value is missing or null.
func (s *Stack) FindString(raw string) (value string, found bool, err error) {
	if body, ok := wholeBinding(raw); ok {
		resolved, found, err := s.evalBinding(body)
		if err != nil || !found {
			return "", found, wrapResolve(raw, err)
		}
		return toString(resolved), true, nil
	}
	text, err := s.interpolate(raw)
	if err != nil {
		return "", false, wrapResolve(raw, err)
	}
	return text, true, nil
}

// FindBool resolves raw as a boolean. Text that is not a boolean literal is
// evaluated as a bare expression, so "user.admin" reads the same value as
// "%{user.admin}".
func (s *Stack) FindBool(raw string) (value bool, found bool, err error) {
	resolved, found, err := s.findTyped(raw, func(v any) error {
		_, err := toBool(v)
		return err
	})
	if err != nil || !found {
		return false, found, wrapResolve(raw, err)
	}
	out, err := toBool(resolved)
	if err != nil {
		return false, false, wrapResolve(raw, err)
	}
	return out, true, nil
}

// FindInt resolves raw as a signed 32-bit integer. Text that is not an
// integer literal is evaluated as a bare expression.
func (s *Stack) FindInt(raw string) (value int, found bool, err error) {
	resolved, found, err := s.findTyped(raw, func(v any) error {
		_, err := toInt(v)
		return err
	})
	if err != nil || !found {
		return 0, found, wrapResolve(raw, err)
	}
	out, err := toInt(resolved)
	if err != nil {
		return 0, false, wrapResolve(raw, err)
	}
	return out, true, nil
}

// findTyped resolves raw like find. When raw carries no binding and fails
// coerce as a literal, the trimmed text is evaluated as an expression. An
// expression that errors or resolves to nothing leaves the literal's
// coercion error in place.
func (s *Stack) findTyped(raw string, coerce func(any) error) (any, bool, error) {
	resolved, found, err := s.find(raw)
	if err != nil || !found {
		return resolved, found, err
	}
	litErr := coerce(resolved)
	if litErr == nil || strings.Contains(raw, bindingOpen) {
		return resolved, true, nil
	}
	body := strings.TrimSpace(raw)
	if body == "" {
		return resolved, true, nil
	}
	value, ok, evalErr := s.evalBinding(body)
	if evalErr != nil || !ok {
		return nil, false, litErr
	}
	return value, true, nil
}

func (s *Stack) find(raw string) (any, bool, error) {
	if body, ok := wholeBinding(raw); ok {
		return s.evalBinding(body)
	}
	text, err := s.interpolate(raw)
	if err != nil {
		return nil, false, err
	}
	return text, true, nil
}

func (s *Stack) evalBinding(body string) (any, bool, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, false, syntaxErrorf("empty binding")
	}

	switch {
	case body[0] == '"' || body[0] == '\'':
		value, next, err := readQuoted(body, 0)
		if err != nil {
			return nil, false, err
		}
		if next != len(body) {
			return nil, false, syntaxErrorf("unexpected input after string literal in %q", body)
		}
		return value, true, nil
	case looksLikeNumber(body) && !strings.ContainsAny(body, " \t"):
		return body, true, nil
	}

	switch strings.ToLower(body) {
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	case "null", "nil":
		return nil, false, nil
	}

	if isPath(body) {
		value, ok := s.ctx.Lookup(body)
		if !ok || value == nil {
			return nil, false, nil
		}
		return value, true, nil
	}

	ok, err := s.rules.Eval(body, s.ctx)
	if err != nil {
		return nil, false, err
	}
	return ok, true, nil
}

func (s *Stack) interpolate(raw string) (string, error) {
	if !strings.Contains(raw, bindingOpen) {
		return raw, nil
	}

	var b strings.Builder
	rest := raw
	for {
		start := strings.Index(rest, bindingOpen)
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:start])
		end := findClose(rest, start+len(bindingOpen))
		if end < 0 {
			return "", syntaxErrorf("unterminated binding in %q", raw)
		}
		value, found, err := s.evalBinding(rest[start+len(bindingOpen) : end])
		if err != nil {
			return "", err
		}
		if found {
			b.WriteString(toString(value))
		}
		rest = rest[end+1:]
	}
}

// wholeBinding reports whether raw is exactly one %{...} expression.
func wholeBinding(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, bindingOpen) {
		return "", false
	}
	end := findClose(trimmed, len(bindingOpen))
	if end != len(trimmed)-1 {
		return "", false
	}
	return trimmed[len(bindingOpen):end], true
}

// findClose returns the index of the closing brace at or after from, skipping
// quoted literals, or -1.
func findClose(s string, from int) int {
	var quote byte
	for i := from; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == bindingClose:
			return i
		}
	}
	return -1
}

func isPath(s string) bool {
	for _, r := range s {
		if r == '.' || r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return !strings.HasPrefix(s, ".") && !strings.HasSuffix(s, ".")
}

func wrapResolve(raw string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("expr: resolve %q: %w", raw, err)
}

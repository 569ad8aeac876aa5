// Package params holds the ordered key/value map widgets hand to templates.
package params

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Params is an insertion-ordered parameter map. The zero value is ready to
// use. Params is not safe for concurrent mutation; one map belongs to one
// render pass.
type Params struct {
	keys   []string
	values map[string]any
}

// New returns an empty parameter map.
func New() *Params {
	return &Params{values: make(map[string]any)}
}

// Set stores value under key. A nil value removes the key so templates apply
// their own default. Re-setting a key keeps its original position.
func (p *Params) Set(key string, value any) {
	key = strings.TrimSpace(key)
	if p == nil || key == "" {
		return
	}
	if value == nil {
		p.Delete(key)
		return
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	value, ok := p.values[key]
	return value, ok
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (p *Params) Delete(key string) {
	if p == nil || p.values == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for idx, existing := range p.keys {
		if existing == key {
			p.keys = append(p.keys[:idx], p.keys[idx+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil || len(p.keys) == 0 {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of entries.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Map returns an unordered copy, suitable as template context.
func (p *Params) Map() map[string]any {
	out := make(map[string]any, p.Len())
	if p == nil {
		return out
	}
	for _, key := range p.keys {
		out[key] = p.values[key]
	}
	return out
}

// Merge copies every entry of other into p, in other's order.
func (p *Params) Merge(other *Params) {
	if p == nil || other == nil {
		return
	}
	for _, key := range other.keys {
		p.Set(key, other.values[key])
	}
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	out := New()
	out.Merge(p)
	return out
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if p != nil {
		for idx, key := range p.keys {
			if idx > 0 {
				buf.WriteByte(',')
			}
			encodedKey, err := json.Marshal(key)
			if err != nil {
				return nil, err
			}
			buf.Write(encodedKey)
			buf.WriteByte(':')
			encodedValue, err := json.Marshal(p.values[key])
			if err != nil {
				return nil, err
			}
			buf.Write(encodedValue)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Package event models a single decoded hook event as a loosely typed
// JSON tree. Upstream producers disagree on field names across
// versions, so events are not bound to a fixed schema; callers resolve
// each logical field through an ordered list of candidate keys and the
// accessors never fail, they report absence instead.
package event

import (
	"encoding/json"
	"fmt"
	"io"
)

// Map is one decoded event object. A nil Map is valid and behaves as
// an empty object, which lets lookups chain without nil checks.
type Map map[string]any

// Decode consumes r to EOF and parses the bytes as a single JSON
// object. The full stream is buffered before decoding; there is only
// ever one document per invocation.
func Decode(r io.Reader) (Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	return m, nil
}

// Str returns the string at key. The second return is false when the
// key is absent or holds a non-string value.
func (m Map) Str(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// StrOr returns the string at key, or def when absent or mistyped.
// A present empty string is returned as-is, not replaced by def.
func (m Map) StrOr(key, def string) string {
	if s, ok := m.Str(key); ok {
		return s
	}
	return def
}

// BoolOr returns the bool at key, or def when absent or mistyped.
func (m Map) BoolOr(key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// Map returns the nested object at key, or nil when absent or
// mistyped.
func (m Map) Map(key string) Map {
	if o, ok := m[key].(map[string]any); ok {
		return Map(o)
	}
	return nil
}

// Array returns the array at key. The second return is false when the
// key is absent or holds a non-array value.
func (m Map) Array(key string) ([]any, bool) {
	a, ok := m[key].([]any)
	return a, ok
}

// FirstStr resolves a dual-schema string field: it returns the value
// of the first candidate key holding a string. A present empty string
// wins over later candidates.
func (m Map) FirstStr(keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := m.Str(key); ok {
			return s, true
		}
	}
	return "", false
}

// FirstMap resolves a dual-schema object field: it returns the first
// candidate key holding an object, or nil when none does.
func (m Map) FirstMap(keys ...string) Map {
	for _, key := range keys {
		if o := m.Map(key); o != nil {
			return o
		}
	}
	return nil
}

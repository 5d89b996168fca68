package event

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid object",
			input: `{"tool_name": "Read", "tool_input": {"file_path": "/a/b"}}`,
		},
		{
			name:  "empty object",
			input: `{}`,
		},
		{
			name:    "not json",
			input:   "not json at all",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "json but not an object",
			input:   `[1, 2, 3]`,
			wantErr: true,
		},
		{
			name:    "truncated object",
			input:   `{"tool_name": "Re`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestMapAccessors(t *testing.T) {
	m := Map{
		"name":   "scout",
		"empty":  "",
		"count":  float64(3),
		"active": true,
		"nested": map[string]any{"key": "value"},
		"items":  []any{"a", "b"},
		"null":   nil,
	}

	t.Run("str", func(t *testing.T) {
		s, ok := m.Str("name")
		assert.True(t, ok)
		assert.Equal(t, "scout", s)

		s, ok = m.Str("count")
		assert.False(t, ok)
		assert.Empty(t, s)

		_, ok = m.Str("missing")
		assert.False(t, ok)
	})

	t.Run("str or default keeps present empty string", func(t *testing.T) {
		assert.Equal(t, "", m.StrOr("empty", "fallback"))
		assert.Equal(t, "fallback", m.StrOr("missing", "fallback"))
		assert.Equal(t, "fallback", m.StrOr("count", "fallback"))
		assert.Equal(t, "fallback", m.StrOr("null", "fallback"))
	})

	t.Run("bool or default", func(t *testing.T) {
		assert.True(t, m.BoolOr("active", false))
		assert.False(t, m.BoolOr("missing", false))
		assert.True(t, m.BoolOr("missing", true))
		assert.False(t, m.BoolOr("name", false))
	})

	t.Run("nested map", func(t *testing.T) {
		nested := m.Map("nested")
		assert.Equal(t, "value", nested.StrOr("key", ""))

		assert.Nil(t, m.Map("missing"))
		assert.Nil(t, m.Map("name"))
		assert.Nil(t, m.Map("null"))
	})

	t.Run("array", func(t *testing.T) {
		items, ok := m.Array("items")
		assert.True(t, ok)
		assert.Len(t, items, 2)

		_, ok = m.Array("missing")
		assert.False(t, ok)
		_, ok = m.Array("name")
		assert.False(t, ok)
	})
}

func TestMapDualSchemaLookups(t *testing.T) {
	t.Run("first str prefers earlier key", func(t *testing.T) {
		m := Map{"tool_name": "Read", "tool": "Legacy"}
		s, ok := m.FirstStr("tool_name", "tool")
		assert.True(t, ok)
		assert.Equal(t, "Read", s)
	})

	t.Run("first str falls back when preferred key is mistyped", func(t *testing.T) {
		m := Map{"tool_name": 42, "tool": "Legacy"}
		s, ok := m.FirstStr("tool_name", "tool")
		assert.True(t, ok)
		assert.Equal(t, "Legacy", s)
	})

	t.Run("present empty string wins over later candidates", func(t *testing.T) {
		m := Map{"tool_name": "", "tool": "Legacy"}
		s, ok := m.FirstStr("tool_name", "tool")
		assert.True(t, ok)
		assert.Equal(t, "", s)
	})

	t.Run("first str reports absence", func(t *testing.T) {
		m := Map{}
		_, ok := m.FirstStr("tool_name", "tool")
		assert.False(t, ok)
	})

	t.Run("first map prefers earlier key", func(t *testing.T) {
		m := Map{
			"tool_input": map[string]any{"file_path": "/new"},
			"args":       map[string]any{"file_path": "/old"},
		}
		got := m.FirstMap("tool_input", "args")
		assert.Equal(t, "/new", got.StrOr("file_path", ""))
	})

	t.Run("first map falls back to legacy key", func(t *testing.T) {
		m := Map{"args": map[string]any{"file_path": "/old"}}
		got := m.FirstMap("tool_input", "args")
		assert.Equal(t, "/old", got.StrOr("file_path", ""))
	})

	t.Run("first map nil when nothing resolves", func(t *testing.T) {
		m := Map{"tool_input": "not an object"}
		assert.Nil(t, m.FirstMap("tool_input", "args"))
	})
}

func TestNilMapIsSafe(t *testing.T) {
	var m Map

	_, ok := m.Str("key")
	assert.False(t, ok)
	assert.Equal(t, "def", m.StrOr("key", "def"))
	assert.True(t, m.BoolOr("key", true))
	assert.Nil(t, m.Map("key"))

	_, ok = m.Array("key")
	assert.False(t, ok)

	// Chained lookups on absent containers stay safe.
	_, ok = m.Map("args").Array("todos")
	assert.False(t, ok)
}

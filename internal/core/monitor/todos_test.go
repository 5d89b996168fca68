package monitor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoWriteSummary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "mixed statuses with current task",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "completed", "content": "done"},
				{"status": "in_progress", "content": "X"},
				{"status": "pending", "content": "later"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 1, In Progress: 1, Pending: 1\n" +
				"[14:03:07] [TODO] Current task: X\n",
		},
		{
			name: "first in-progress item wins",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "in_progress", "content": "first"},
				{"status": "in_progress", "content": "second"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 2, Pending: 0\n" +
				"[14:03:07] [TODO] Current task: first\n",
		},
		{
			name: "in-progress item without string content leaves the slot open",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "in_progress"},
				{"status": "in_progress", "content": "fallback"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 2, Pending: 0\n" +
				"[14:03:07] [TODO] Current task: fallback\n",
		},
		{
			name: "no in-progress item emits summary only",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "pending", "content": "a"},
				{"status": "completed", "content": "b"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 1, In Progress: 0, Pending: 1\n",
		},
		{
			name: "unrecognized and missing statuses are not tallied",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "cancelled", "content": "a"},
				{"content": "b"},
				{"status": "pending"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 0, Pending: 1\n",
		},
		{
			name:  "empty todos array",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": []}}`,
			want:  "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 0, Pending: 0\n",
		},
		{
			name:  "no todos array emits nothing",
			input: `{"tool_name": "TodoWrite", "tool_input": {}}`,
			want:  "",
		},
		{
			name:  "mistyped todos emits nothing",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": "not an array"}}`,
			want:  "",
		},
		{
			name: "legacy top-level args todos",
			input: `{"tool_name": "TodoWrite", "args": {"todos": [
				{"status": "in_progress", "content": "legacy task"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 1, Pending: 0\n" +
				"[14:03:07] [TODO] Current task: legacy task\n",
		},
		{
			name: "non-object todo items are skipped",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				"garbage",
				{"status": "in_progress", "content": "real"}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 1, Pending: 0\n" +
				"[14:03:07] [TODO] Current task: real\n",
		},
		{
			name: "empty current task content suppresses second line",
			input: `{"tool_name": "TodoWrite", "tool_input": {"todos": [
				{"status": "in_progress", "content": ""}
			]}}`,
			want: "[14:03:07] [TODO] Updated - Completed: 0, In Progress: 1, Pending: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mon, buf := newTestMonitor(t, Options{})
			mon.Process(decodeEvent(t, tt.input))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPersistTask(t *testing.T) {
	t.Run("writes raw task text with no trailing newline", func(t *testing.T) {
		taskFile := filepath.Join(t.TempDir(), "current-task")
		mon, _ := newTestMonitor(t, Options{TaskFile: taskFile})

		mon.Process(decodeEvent(t, `{"tool_name": "TodoWrite", "tool_input": {"todos": [
			{"status": "in_progress", "content": "ship it"}
		]}}`))

		data, err := os.ReadFile(taskFile)
		require.NoError(t, err)
		assert.Equal(t, "ship it", string(data))
	})

	t.Run("overwrites the whole file", func(t *testing.T) {
		taskFile := filepath.Join(t.TempDir(), "current-task")
		require.NoError(t, os.WriteFile(taskFile, []byte("a much longer previous task"), 0o644))

		mon, _ := newTestMonitor(t, Options{TaskFile: taskFile})
		mon.Process(decodeEvent(t, `{"tool_name": "TodoWrite", "tool_input": {"todos": [
			{"status": "in_progress", "content": "short"}
		]}}`))

		data, err := os.ReadFile(taskFile)
		require.NoError(t, err)
		assert.Equal(t, "short", string(data))
	})

	t.Run("no in-progress item leaves prior content untouched", func(t *testing.T) {
		taskFile := filepath.Join(t.TempDir(), "current-task")
		require.NoError(t, os.WriteFile(taskFile, []byte("previous"), 0o644))

		mon, _ := newTestMonitor(t, Options{TaskFile: taskFile})
		mon.Process(decodeEvent(t, `{"tool_name": "TodoWrite", "tool_input": {"todos": [
			{"status": "completed", "content": "done"}
		]}}`))

		data, err := os.ReadFile(taskFile)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		mon, buf := newTestMonitor(t, Options{
			TaskFile: filepath.Join(t.TempDir(), "missing-dir", "current-task"),
		})

		mon.Process(decodeEvent(t, `{"tool_name": "TodoWrite", "tool_input": {"todos": [
			{"status": "in_progress", "content": "X"}
		]}}`))

		// Lines still emitted, no panic, no error surfaced.
		assert.Contains(t, buf.String(), "Current task: X")
	})

	t.Run("no task file configured skips the write", func(t *testing.T) {
		mon, buf := newTestMonitor(t, Options{})
		mon.Process(decodeEvent(t, `{"tool_name": "TodoWrite", "tool_input": {"todos": [
			{"status": "in_progress", "content": "X"}
		]}}`))
		assert.Contains(t, buf.String(), "Current task: X")
	})
}

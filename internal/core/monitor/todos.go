package monitor

import (
	"fmt"
	"os"

	"github.com/colonyops/scout/internal/core/event"
)

// Todo item statuses tallied by the TodoWrite handler. Items with any
// other status are counted in none of the tallies.
const (
	statusPending    = "pending"
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

// todoWrite tallies the todos array and reports the current task.
//
// The primary location is the resolved tool input's "todos"; the
// legacy fallback is the top-level "args.todos" off the event itself,
// not off the resolved input. Legacy producers put the array exactly
// there, so the asymmetry must stay.
func (m *Monitor) todoWrite(ev event.Map, input event.Map, ts string) {
	todos, ok := input.Array("todos")
	if !ok {
		todos, ok = ev.Map("args").Array("todos")
	}
	if !ok {
		m.log.Debug().Msg("todo write without todos array, skipping")
		return
	}

	var pending, inProgress, completed int
	var currentTask string
	currentSet := false

	for _, raw := range todos {
		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		todo := event.Map(item)

		status, _ := todo.Str("status")
		switch status {
		case statusPending:
			pending++
		case statusInProgress:
			inProgress++
			// First in-progress item with a string content wins.
			if !currentSet {
				if content, ok := todo.Str("content"); ok {
					currentTask = content
					currentSet = true
				}
			}
		case statusCompleted:
			completed++
		}
	}

	m.emit(ts, TagTodo, fmt.Sprintf("Updated - Completed: %d, In Progress: %d, Pending: %d",
		completed, inProgress, pending))

	if currentTask != "" {
		m.emit(ts, TagTodo, "Current task: "+currentTask)
		m.persistTask(currentTask)
	}
}

// persistTask overwrites the configured task file with the raw task
// text, no trailing newline. The write is best-effort: failures are
// logged at debug and never propagate. Concurrent invocations race on
// this file last-write-wins; only the most recent task is meaningful.
func (m *Monitor) persistTask(task string) {
	if m.taskFile == "" {
		return
	}

	if err := os.WriteFile(m.taskFile, []byte(task), 0o644); err != nil {
		m.log.Debug().Err(err).Str("path", m.taskFile).Msg("write task file")
	}
}

// Package monitor classifies decoded hook events and emits timestamped
// activity lines on a diagnostic stream. Every path is best-effort: a
// missing field skips its line, nothing here ever returns an error to
// the caller.
package monitor

import (
	"fmt"
	"io"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/scout/internal/core/config"
	"github.com/colonyops/scout/internal/core/event"
	"github.com/colonyops/scout/internal/core/styles"
)

// Category tags prefixed to every emitted line.
const (
	TagRead   = "READ"
	TagWrite  = "WRITE"
	TagEdit   = "EDIT"
	TagBash   = "BASH"
	TagGrep   = "GREP"
	TagGlob   = "GLOB"
	TagLS     = "LS"
	TagWeb    = "WEB"
	TagSearch = "SEARCH"
	TagTask   = "TASK"
	TagTool   = "TOOL"
	TagTodo   = "TODO"
	TagAgent  = "AGENT"
)

// eventSubagentStop routes to the agent-lifecycle handler instead of
// tool dispatch.
const eventSubagentStop = "SubagentStop"

// toolRule describes how one tool category extracts its line from the
// resolved tool input.
type toolRule struct {
	tag string
	// field is the required tool input key; when absent the event is
	// silently skipped.
	field string
	// pathField marks field as a filesystem path subject to ignore rules.
	pathField bool
	// withPath appends the optional "path" input (default ".") as a
	// second format argument.
	withPath bool
	format   string
}

var toolRules = map[string]toolRule{
	"Read":      {tag: TagRead, field: "file_path", pathField: true, format: "Reading file: %s"},
	"Write":     {tag: TagWrite, field: "file_path", pathField: true, format: "Writing file: %s"},
	"Edit":      {tag: TagEdit, field: "file_path", pathField: true, format: "Editing file: %s"},
	"MultiEdit": {tag: TagEdit, field: "file_path", pathField: true, format: "Editing file: %s"},
	"Bash":      {tag: TagBash, field: "command", format: "Executing: %s"},
	"Grep":      {tag: TagGrep, field: "pattern", withPath: true, format: "Searching for '%s' in %s"},
	"Glob":      {tag: TagGlob, field: "pattern", withPath: true, format: "Finding files matching '%s' in %s"},
	"LS":        {tag: TagLS, field: "path", pathField: true, format: "Listing directory: %s"},
	"WebFetch":  {tag: TagWeb, field: "url", format: "Fetching: %s"},
	"WebSearch": {tag: TagSearch, field: "query", format: "Searching web for: %s"},
	"Task":      {tag: TagTask, field: "description", format: "Launching agent: %s"},
}

// Monitor formats hook events into activity lines.
type Monitor struct {
	out      io.Writer
	log      zerolog.Logger
	taskFile string
	ignore   config.IgnoreConfig
	painter  *styles.Painter
	now      func() time.Time
}

// Options configures a Monitor.
type Options struct {
	// TaskFile is the path the current in-progress task is persisted
	// to. Empty disables the write.
	TaskFile string
	// Ignore suppresses lines for matching tools or paths.
	Ignore config.IgnoreConfig
	// Painter styles category tags; nil renders plain text.
	Painter *styles.Painter
	// Now overrides the clock, for tests.
	Now func() time.Time
	// Logger receives debug diagnostics for suppressed or failed steps.
	Logger zerolog.Logger
}

// New creates a Monitor writing lines to out.
func New(out io.Writer, opts Options) *Monitor {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Monitor{
		out:      out,
		log:      opts.Logger,
		taskFile: opts.TaskFile,
		ignore:   opts.Ignore,
		painter:  opts.Painter,
		now:      now,
	}
}

// Process classifies one event and emits its line(s). The timestamp is
// captured once and shared by every line of the invocation.
func (m *Monitor) Process(ev event.Map) {
	ts := m.now().Format("15:04:05")

	if name, _ := ev.Str("hook_event_name"); name == eventSubagentStop {
		m.subagentStop(ev, ts)
		return
	}

	// Legacy producers use "tool"/"args" instead of "tool_name"/"tool_input".
	tool, _ := ev.FirstStr("tool_name", "tool")
	if tool == "" {
		return
	}

	if m.ignoredTool(tool) {
		m.log.Debug().Str("tool", tool).Msg("tool suppressed by ignore rule")
		return
	}

	input := ev.FirstMap("tool_input", "args")

	if tool == "TodoWrite" {
		m.todoWrite(ev, input, ts)
		return
	}

	rule, ok := toolRules[tool]
	if !ok {
		m.emit(ts, TagTool, "Using: "+tool)
		return
	}

	val, ok := input.Str(rule.field)
	if !ok {
		m.log.Debug().Str("tool", tool).Str("field", rule.field).Msg("required field missing, skipping")
		return
	}

	if rule.pathField && m.ignoredPath(val) {
		m.log.Debug().Str("tool", tool).Str("path", val).Msg("path suppressed by ignore rule")
		return
	}

	if rule.withPath {
		m.emit(ts, rule.tag, fmt.Sprintf(rule.format, val, input.StrOr("path", ".")))
		return
	}
	m.emit(ts, rule.tag, fmt.Sprintf(rule.format, val))
}

// subagentStop reports a delegated agent stopping. The transcript line
// is suppressed while the stop hook is active to avoid a feedback loop
// where reporting a stop event's transcript triggers another stop
// event; the transcript itself is never opened.
func (m *Monitor) subagentStop(ev event.Map, ts string) {
	sessionID := ev.StrOr("session_id", "unknown")
	transcriptPath := ev.StrOr("transcript_path", "unknown")
	stopHookActive := ev.BoolOr("stop_hook_active", false)

	m.emit(ts, TagAgent, "Subagent completed - Session: "+sessionID)

	if !stopHookActive && transcriptPath != "unknown" {
		m.emit(ts, TagAgent, "Transcript saved to: "+transcriptPath)
	}
}

func (m *Monitor) emit(ts, tag, msg string) {
	fmt.Fprintf(m.out, "[%s] [%s] %s\n", ts, m.painter.Tag(tag), msg)
}

func (m *Monitor) ignoredTool(tool string) bool {
	return matchAny(m.ignore.Tools, tool)
}

func (m *Monitor) ignoredPath(path string) bool {
	return matchAny(m.ignore.Paths, path)
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are validated at config load; a bad pattern here
		// simply doesn't match.
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Package watch implements a small TUI that displays the active-task
// file as hook invocations update it.
package watch

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/scout/internal/core/styles"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary)
	taskStyle  = lipgloss.NewStyle().Foreground(styles.ColorSuccess)
	pathStyle  = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	helpStyle  = lipgloss.NewStyle().Foreground(styles.ColorMuted)
)

// tickMsg triggers a re-read of the task file.
type tickMsg struct{}

// taskMsg carries the latest task file contents. ok is false when the
// file doesn't exist yet.
type taskMsg struct {
	task string
	ok   bool
}

// Model is the Bubble Tea model for the watch view.
type Model struct {
	path     string
	interval time.Duration
	spinner  spinner.Model

	task    string
	haveOne bool
}

// New creates a watch model polling path at the given interval.
func New(path string, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorAccent)

	return Model{
		path:     path,
		interval: interval,
		spinner:  s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, readTask(m.path), m.scheduleTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(readTask(m.path), m.scheduleTick())

	case taskMsg:
		m.task = msg.task
		m.haveOne = msg.ok
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Current task"))
	b.WriteString("  ")
	b.WriteString(pathStyle.Render(m.path))
	b.WriteString("\n\n")

	switch {
	case m.haveOne && strings.TrimSpace(m.task) != "":
		b.WriteString(taskStyle.Render(m.task))
	default:
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for an in-progress task...")
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q to quit"))
	b.WriteString("\n")

	return b.String()
}

// scheduleTick schedules the next poll of the task file.
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// readTask reads the task file. The file lifecycle is owned by the
// filesystem; a missing file just means no task yet.
func readTask(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return taskMsg{}
		}
		return taskMsg{task: string(data), ok: true}
	}
}

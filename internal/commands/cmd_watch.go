package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scout/internal/tui/watch"
)

// WatchCmd implements the scout watch command.
type WatchCmd struct {
	flags    *Flags
	interval time.Duration
}

// NewWatchCmd creates a new watch command.
func NewWatchCmd(flags *Flags) *WatchCmd {
	return &WatchCmd{flags: flags}
}

// Register adds the watch command to the application.
func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Watch the active-task file in a live view",
		UsageText: "scout watch [--interval <duration>]",
		Description: `Polls the active-task file and displays the current in-progress
task as hook invocations update it. Display-only: this command never
writes the file.

Examples:
  scout watch
  scout watch --interval 500ms`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:        "interval",
				Aliases:     []string{"i"},
				Usage:       "poll interval",
				Value:       time.Second,
				Destination: &cmd.interval,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.flags.ResolvedTodoFile()
	if path == "" {
		return fmt.Errorf("no task file configured: set --todo-file, SCOUT_TODO_FILE, or todo_file in the config")
	}

	p := tea.NewProgram(watch.New(path, cmd.interval), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run watch view: %w", err)
	}

	return nil
}

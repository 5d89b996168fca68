package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scout/internal/core/event"
	"github.com/colonyops/scout/internal/core/monitor"
	"github.com/colonyops/scout/internal/core/styles"
	"github.com/colonyops/scout/pkg/iojson"
)

// HookCmd implements the scout hook command.
type HookCmd struct {
	flags  *Flags
	source iojson.Source
}

// NewHookCmd creates a new hook command.
func NewHookCmd(flags *Flags) *HookCmd {
	return &HookCmd{flags: flags}
}

// Register adds the hook command to the application.
func (cmd *HookCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "hook",
		Usage:     "Process one agent hook event from stdin",
		UsageText: "scout hook [--file <path>]",
		Description: `Reads a single JSON hook event, classifies it, and prints a
timestamped activity line to stderr. The current in-progress task from
TodoWrite events is persisted to the --todo-file path when set.

This command is wired as a side-channel observer (e.g. a PostToolUse
hook in Claude Code settings) and must never make the observed action
look failed: it always exits 0, and malformed or partial input is a
silent no-op.

Examples:
  scout hook < event.json
  scout hook -f event.json
  SCOUT_TODO_FILE=/tmp/task scout hook < event.json`,
		Flags: []cli.Flag{
			cmd.source.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HookCmd) run(ctx context.Context, c *cli.Command) error {
	r, err := cmd.source.Open()
	if err != nil {
		log.Debug().Err(err).Msg("hook: no input")
		return nil
	}
	defer func() { _ = r.Close() }()

	ev, err := event.Decode(r)
	if err != nil {
		// Best effort, never break the caller: undecodable input is
		// a no-op, not a failure.
		log.Debug().Err(err).Msg("hook: discarding undecodable event")
		return nil
	}

	cfg := cmd.flags.ResolvedConfig()
	out := c.Root().ErrWriter

	mon := monitor.New(out, monitor.Options{
		TaskFile: cmd.flags.ResolvedTodoFile(),
		Ignore:   cfg.Ignore,
		Painter:  styles.NewPainter(out, cfg.Color),
		Logger:   log.Logger,
	})
	mon.Process(ev)

	return nil
}

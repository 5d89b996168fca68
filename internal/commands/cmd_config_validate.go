package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/scout/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config command group to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "scout config validate [options]",
				Description: "Validates the configuration file, checking color mode, ignore patterns, and the todo file path.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	verr := cmd.flags.ResolvedConfig().Validate()

	if cmd.format == "json" {
		out := struct {
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}{Valid: verr == nil}
		if verr != nil {
			out.Error = verr.Error()
		}

		if err := iojson.WriteWith(c.Root().Writer, out); err != nil {
			return err
		}
		return verr
	}

	if verr != nil {
		return fmt.Errorf("configuration invalid: %w", verr)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, "Configuration is valid")
	return nil
}

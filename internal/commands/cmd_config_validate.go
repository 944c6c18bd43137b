package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eisenhower/internal/core/config"
)

type ConfigValidateCmd struct {
	flags *Flags
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "eisenhower config validate",
				Description: "Loads the configuration file and reports unknown themes, unknown quadrants and blank labels.",
				Action:      cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(out, "no config file at %s, defaults apply\n", path)
	}

	if _, err := config.Load(path); err != nil {
		var fieldErrs criterio.FieldErrors
		if !errors.As(err, &fieldErrs) {
			return cli.Exit(err.Error(), 1)
		}

		_, _ = fmt.Fprintf(out, "%s has %d error(s):\n", path, len(fieldErrs))
		for _, fe := range fieldErrs {
			_, _ = fmt.Fprintf(out, "  %s: %v\n", fe.Field, fe.Err)
		}
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintln(out, "config is valid")
	return nil
}

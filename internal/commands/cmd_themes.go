package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/eisenhower/internal/core/styles"
)

type ThemesCmd struct {
	flags *Flags
}

// NewThemesCmd creates a new themes command.
func NewThemesCmd(flags *Flags) *ThemesCmd {
	return &ThemesCmd{flags: flags}
}

// Register adds the themes command to the application.
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List built-in color themes",
		UsageText: "eisenhower themes",
		Action:    cmd.run,
	})
	return app
}

func (cmd *ThemesCmd) run(_ context.Context, c *cli.Command) error {
	out := c.Root().Writer
	for _, name := range styles.ThemeNames() {
		marker := " "
		if name == styles.DefaultTheme {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eisenhower/internal/core/board"
	"github.com/colonyops/eisenhower/internal/core/config"
	"github.com/colonyops/eisenhower/internal/core/logging"
	"github.com/colonyops/eisenhower/internal/core/matrix"
	"github.com/colonyops/eisenhower/internal/core/styles"
	"github.com/colonyops/eisenhower/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "color theme, overrides tui.theme from the config file",
			Sources:     cli.EnvVars("EISENHOWER_THEME"),
			Destination: &cmd.flags.Theme,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg, err := cmd.loadConfig()
	if err != nil {
		return err
	}

	b := board.New(board.WithLogger(logging.Component("board")))
	mx := matrix.New(b, logging.Component("matrix"))

	log.Info().Ctx(ctx).Str("theme", cfg.TUI.Theme).Msg("starting tui")

	p := tea.NewProgram(tui.New(cfg, mx), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	counts := b.Counts()
	log.Info().Ctx(ctx).Int("active", counts.Active).Int("archived", counts.Archived).Msg("tui exited")
	return nil
}

// loadConfig reads the config file and applies the theme, letting --theme
// win over the file.
func (cmd *TuiCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cmd.flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.flags.Theme != "" {
		cfg.TUI.Theme = cmd.flags.Theme
	}

	palette, ok := styles.GetPalette(cfg.TUI.Theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q, run 'eisenhower themes' for the list", cfg.TUI.Theme)
	}
	styles.SetTheme(palette)

	return cfg, nil
}

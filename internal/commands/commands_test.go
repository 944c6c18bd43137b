package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/eisenhower/internal/core/styles"
)

func newTestApp(out *bytes.Buffer, flags *Flags) *cli.Command {
	app := &cli.Command{
		Name:           "eisenhower",
		Writer:         out,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewThemesCmd(flags).Register(app)
	return app
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, "/cfg/eisenhower/config.yaml", DefaultConfigPath())
	assert.Equal(t, "/state/eisenhower/eisenhower.log", DefaultLogFile())
}

func TestConfigValidateCmd(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		var out bytes.Buffer
		flags := &Flags{ConfigPath: writeConfig(t, "tui:\n  theme: gruvbox\n")}

		err := newTestApp(&out, flags).Run(context.Background(), []string{"eisenhower", "config", "validate"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "config is valid")
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		var out bytes.Buffer
		flags := &Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}

		err := newTestApp(&out, flags).Run(context.Background(), []string{"eisenhower", "config", "validate"})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "defaults apply")
		assert.Contains(t, out.String(), "config is valid")
	})

	t.Run("field errors", func(t *testing.T) {
		var out bytes.Buffer
		flags := &Flags{ConfigPath: writeConfig(t, "tui:\n  theme: neon\nquadrants:\n  bogus: Nope\n")}

		err := newTestApp(&out, flags).Run(context.Background(), []string{"eisenhower", "config", "validate"})
		require.Error(t, err)

		var exitErr cli.ExitCoder
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Contains(t, out.String(), "tui.theme")
		assert.Contains(t, out.String(), "bogus")
	})
}

func TestThemesCmd(t *testing.T) {
	var out bytes.Buffer
	err := newTestApp(&out, &Flags{}).Run(context.Background(), []string{"eisenhower", "themes"})
	require.NoError(t, err)

	for _, name := range styles.ThemeNames() {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "* "+styles.DefaultTheme)
}

func TestTuiCmd_LoadConfig(t *testing.T) {
	t.Cleanup(func() {
		p, _ := styles.GetPalette(styles.DefaultTheme)
		styles.SetTheme(p)
	})

	t.Run("flag overrides file", func(t *testing.T) {
		flags := &Flags{ConfigPath: writeConfig(t, "tui:\n  theme: gruvbox\n"), Theme: "paper"}
		cfg, err := NewTuiCmd(flags).loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "paper", cfg.TUI.Theme)

		want, _ := styles.GetPalette("paper")
		assert.Equal(t, want, styles.CurrentPalette)
	})

	t.Run("unknown flag theme", func(t *testing.T) {
		flags := &Flags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml"), Theme: "neon"}
		_, err := NewTuiCmd(flags).loadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown theme")
	})

	t.Run("invalid file", func(t *testing.T) {
		flags := &Flags{ConfigPath: writeConfig(t, "tui: [")}
		_, err := NewTuiCmd(flags).loadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load config")
	})
}

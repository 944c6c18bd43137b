package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/eisenhower/internal/core/styles"
	"github.com/colonyops/eisenhower/internal/core/task"
)

// Validate checks that the configuration is valid. Errors are returned as
// criterio.FieldErrors keyed by yaml path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		c.validateQuadrants(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q, available: %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

// validateQuadrants checks label overrides reference known quadrants and
// are not blank.
func (c *Config) validateQuadrants() error {
	keys := make([]string, 0, len(c.Quadrants))
	for k := range c.Quadrants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs criterio.FieldErrorsBuilder
	for _, key := range keys {
		field := fmt.Sprintf("quadrants[%q]", key)
		if _, ok := task.ParseQuadrant(key); !ok {
			errs = errs.Append(field, fmt.Errorf("unknown quadrant, expected one of: %s", quadrantIDs()))
			continue
		}
		if strings.TrimSpace(c.Quadrants[key]) == "" {
			errs = errs.Append(field, errors.New("label cannot be blank"))
		}
	}

	return errs.ToError()
}

func quadrantIDs() string {
	infos := task.Quadrants()
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, string(info.Quadrant))
	}
	return strings.Join(ids, ", ")
}

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/eisenhower/internal/core/config"
	"github.com/colonyops/eisenhower/internal/core/task"
)

func TestKeyMap_WithQuadrantLabels(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.DefaultConfig()
		k := DefaultKeyMap().WithQuadrantLabels(cfg.QuadrantInfos())

		assert.Equal(t, "urgent & important", k.Quadrant1.Help().Desc)
		assert.Equal(t, "1", k.Quadrant1.Help().Key)
	})

	t.Run("configured labels", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Quadrants[string(task.QuadrantUrgentImportant)] = "Do Now"
		cfg.Quadrants[string(task.QuadrantNotUrgentNotImportant)] = "Drop"
		k := DefaultKeyMap().WithQuadrantLabels(cfg.QuadrantInfos())

		assert.Equal(t, "do now", k.Quadrant1.Help().Desc)
		assert.Equal(t, "drop", k.Quadrant4.Help().Desc)

		var descs []string
		for _, s := range k.HelpSections() {
			for _, e := range s.Entries {
				descs = append(descs, e.Desc)
			}
		}
		assert.Contains(t, descs, "do now")
		assert.NotContains(t, descs, "urgent & important")
	})
}

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when loaded values cannot run a session
var ErrInvalidConfig = errors.New("invalid config")

var wasteTypes = []string{"recycle", "compost", "trash"}

// Validate checks the cross-file invariants the session relies on:
// one bin per waste type, a catalogue entry for every type, known enemy types,
// a positive round length and room on screen for the trash spawn area.
func (c *GameConfig) Validate() error {
	if c.Rules == nil || c.Entities == nil || c.Stage == nil {
		return fmt.Errorf("%w: missing section", ErrInvalidConfig)
	}

	d := c.Rules.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if c.Rules.Session.DurationSeconds <= 0 {
		return fmt.Errorf("%w: session duration %ds", ErrInvalidConfig, c.Rules.Session.DurationSeconds)
	}
	sp := c.Rules.Spawn
	if float64(d.ScreenWidth) <= sp.MinX+sp.MarginRight || float64(d.ScreenHeight) <= sp.MinY+sp.MarginBottom {
		return fmt.Errorf("%w: screen %dx%d leaves no spawn area", ErrInvalidConfig, d.ScreenWidth, d.ScreenHeight)
	}
	if c.Rules.EnemyAI.WanderMax < c.Rules.EnemyAI.WanderMin {
		return fmt.Errorf("%w: wanderMax < wanderMin", ErrInvalidConfig)
	}

	seen := make(map[string]int, len(c.Stage.Bins))
	for _, b := range c.Stage.Bins {
		seen[b.Type]++
	}
	for _, t := range wasteTypes {
		if seen[t] != 1 {
			return fmt.Errorf("%w: stage %s needs exactly one %s bin, has %d", ErrInvalidConfig, c.Stage.ID, t, seen[t])
		}
		if len(c.Entities.Trash[t]) == 0 {
			return fmt.Errorf("%w: no trash kinds for %s", ErrInvalidConfig, t)
		}
	}
	if len(c.Stage.Bins) != len(wasteTypes) {
		return fmt.Errorf("%w: stage %s has %d bins", ErrInvalidConfig, c.Stage.ID, len(c.Stage.Bins))
	}

	for _, e := range c.Stage.Enemies {
		if _, ok := c.Entities.Enemies[e.Type]; !ok {
			return fmt.Errorf("%w: unknown enemy type %q", ErrInvalidConfig, e.Type)
		}
	}
	return nil
}

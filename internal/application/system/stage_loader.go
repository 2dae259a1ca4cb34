package system

import (
	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into an empty world holding the stage's
// fixed layout: bins, obstacles and the player at its spawn point.
// Trash and enemies are spawned by the session.
func LoadStage(cfg *config.GameConfig) *entity.World {
	display := cfg.Rules.Display
	world := entity.NewWorld(float64(display.ScreenWidth), float64(display.ScreenHeight))

	for _, b := range cfg.Stage.Bins {
		world.Bins = append(world.Bins, &entity.Bin{
			Rect:  rectFromConfig(b.Rect),
			Type:  entity.WasteType(b.Type),
			Label: b.Label,
			Color: b.Color,
		})
	}

	for _, o := range cfg.Stage.Obstacles {
		world.Obstacles = append(world.Obstacles, &entity.Obstacle{
			Rect:  rectFromConfig(o.Rect),
			Kind:  o.Kind,
			Color: o.Color,
		})
	}

	p := cfg.Entities.Player
	world.Player = entity.NewPlayer(
		cfg.Stage.PlayerSpawn.X,
		cfg.Stage.PlayerSpawn.Y,
		p.Width,
		p.Height,
		p.Speed,
		cfg.Rules.Session.StartImmunity,
	)

	return world
}

// EnemyStats converts an enemy config entry into entity stats
func EnemyStats(cfg config.EnemyConfig) entity.EnemyStats {
	return entity.EnemyStats{
		Width:         cfg.Stats.Width,
		Height:        cfg.Stats.Height,
		Speed:         cfg.Stats.Speed,
		ChaseSpeed:    cfg.Stats.ChaseSpeed,
		AlertDistance: cfg.Stats.AlertDistance,
	}
}

func rectFromConfig(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

package system

import (
	"math/rand"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// Spawner places trash items on open ground
type Spawner struct {
	config    *config.SpawnConfig
	catalogue map[string][]config.TrashKind
	rng       *rand.Rand
}

// NewSpawner creates a new trash spawner
func NewSpawner(cfg *config.SpawnConfig, catalogue map[string][]config.TrashKind, rng *rand.Rand) *Spawner {
	return &Spawner{
		config:    cfg,
		catalogue: catalogue,
		rng:       rng,
	}
}

// Spawn tries up to attempts random positions for a new item of the given size.
// Returns false, and adds nothing, when every candidate overlaps an obstacle or bin.
func (s *Spawner) Spawn(world *entity.World, size float64, attempts int) (*entity.TrashItem, bool) {
	wasteType := entity.WasteTypes[s.rng.Intn(len(entity.WasteTypes))]
	kinds := s.catalogue[string(wasteType)]
	if len(kinds) == 0 {
		return nil, false
	}
	kind := kinds[s.rng.Intn(len(kinds))]

	spanX := world.Width - s.config.MinX - s.config.MarginRight
	spanY := world.Height - s.config.MinY - s.config.MarginBottom

	for i := 0; i < attempts; i++ {
		r := entity.Rect{
			X: s.rng.Float64()*spanX + s.config.MinX,
			Y: s.rng.Float64()*spanY + s.config.MinY,
			W: size,
			H: size,
		}
		if world.Blocked(r) {
			continue
		}

		item := &entity.TrashItem{
			ID:          world.NewEntity(),
			Rect:        r,
			Type:        wasteType,
			Kind:        kind.Kind,
			Shape:       kind.Shape,
			Color:       kind.Color,
			DetailColor: kind.DetailColor,
			Rotation:    (s.rng.Float64()*2 - 1) * s.config.MaxRotation,
		}
		world.AddTrash(item)
		return item, true
	}
	return nil, false
}

// SpawnInitial fills the park at session start and returns how many items landed
func (s *Spawner) SpawnInitial(world *entity.World) int {
	placed := 0
	for i := 0; i < s.config.InitialCount; i++ {
		if _, ok := s.Spawn(world, s.config.InitialSize, s.config.InitialAttempts); ok {
			placed++
		}
	}
	return placed
}

// Restock adds one smaller item after a deposit
func (s *Spawner) Restock(world *entity.World) (*entity.TrashItem, bool) {
	return s.Spawn(world, s.config.RestockSize, s.config.RestockAttempts)
}

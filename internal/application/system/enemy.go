package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// EnemySystem runs the bush turkey state machine
type EnemySystem struct {
	config *config.EnemyAIConfig
	rng    *rand.Rand

	// Event callbacks
	OnVocalize func(id entity.EntityID)
}

// NewEnemySystem creates a new enemy AI system
func NewEnemySystem(cfg *config.EnemyAIConfig, rng *rand.Rand) *EnemySystem {
	return &EnemySystem{
		config: cfg,
		rng:    rng,
	}
}

// SpawnEnemy creates an enemy of the given stats at a random position inside the canvas
func (s *EnemySystem) SpawnEnemy(world *entity.World, stats entity.EnemyStats) *entity.Enemy {
	x := s.rng.Float64() * math.Max(0, world.Width-stats.Width)
	y := s.rng.Float64() * math.Max(0, world.Height-stats.Height)

	enemy := entity.NewEnemy(world.NewEntity(), x, y, stats, s.rng.Float64()*2*math.Pi, s.wanderInterval())
	enemy.AnimPhase = s.rng.Float64() * 4
	world.Enemies = append(world.Enemies, enemy)
	return enemy
}

// Update advances every enemy one frame
func (s *EnemySystem) Update(world *entity.World) {
	player := world.Player
	if player == nil {
		return
	}
	for _, enemy := range world.Enemies {
		s.updateEnemy(world, enemy, player)
	}
}

func (s *EnemySystem) updateEnemy(world *entity.World, enemy *entity.Enemy, player *entity.Player) {
	cfg := s.config

	if enemy.SatisfiedTimer > 0 {
		enemy.SatisfiedTimer--
		enemy.Aggression = math.Max(enemy.Aggression-cfg.SatisfiedDecay, 0)
	}

	dist := math.Hypot(player.X-enemy.X, player.Y-enemy.Y)
	carrying := player.IsCarrying()
	provoked := carrying && !player.Immune() && !enemy.Satisfied()

	if provoked {
		enemy.Aggression = math.Min(enemy.Aggression+cfg.AggressionGain, cfg.MaxAggression)
	} else {
		enemy.Aggression = math.Max(enemy.Aggression-cfg.AggressionDecay, 0)
	}

	switch {
	case provoked && dist < enemy.AlertDistance && enemy.Aggression > cfg.ChaseThreshold:
		s.updateChase(enemy, player, dist)
	case enemy.Mode == entity.EnemyChasing && !carrying && dist < cfg.FleeDistance:
		enemy.Mode = entity.EnemyFleeing
		enemy.FleeTimer = cfg.FleeFrames
		s.moveAway(enemy, player, enemy.Speed*cfg.FleeBurst)
	case enemy.Mode == entity.EnemyFleeing && enemy.FleeTimer > 0:
		enemy.FleeTimer--
		s.moveAway(enemy, player, enemy.Speed*cfg.FleeSpeed)
		if enemy.FleeTimer <= 0 {
			enemy.Mode = entity.EnemyPatrol
		}
	default:
		s.updatePatrol(world, enemy)
	}

	s.avoidSolids(world, enemy)

	enemy.ClampTo(world.Width, world.Height)
	enemy.LastPlayerDistance = dist

	enemy.AnimPhase += cfg.AnimStep
	if enemy.AnimPhase >= cfg.AnimFrames {
		enemy.AnimPhase = 0
	}
}

// updateChase leads the player by its velocity and closes in
func (s *EnemySystem) updateChase(enemy *entity.Enemy, player *entity.Player, dist float64) {
	cfg := s.config
	enemy.Mode = entity.EnemyChasing

	if dist > 0 {
		speed := enemy.ChaseSpeed * (cfg.ChaseBase + enemy.Aggression*cfg.ChaseAggressionScale)

		tx := player.X + player.VX*cfg.LeadFrames
		ty := player.Y + player.VY*cfg.LeadFrames
		dx := tx - enemy.X
		dy := ty - enemy.Y
		if d := math.Hypot(dx, dy); d > 0 {
			enemy.X += dx / d * speed
			enemy.Y += dy / d * speed
		}

		enemy.X += (s.rng.Float64()*2 - 1) * cfg.Jitter
		enemy.Y += (s.rng.Float64()*2 - 1) * cfg.Jitter
	}

	if s.rng.Float64() < cfg.VocalizeChance && s.OnVocalize != nil {
		s.OnVocalize(enemy.ID)
	}
}

// moveAway steps directly away from the player
func (s *EnemySystem) moveAway(enemy *entity.Enemy, player *entity.Player, speed float64) {
	dx := enemy.X - player.X
	dy := enemy.Y - player.Y
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		enemy.X += dx / dist * speed
		enemy.Y += dy / dist * speed
	}
}

// updatePatrol wanders along a heading that changes every WanderInterval frames
// and turns back from the canvas edges
func (s *EnemySystem) updatePatrol(world *entity.World, enemy *entity.Enemy) {
	cfg := s.config
	enemy.Mode = entity.EnemyPatrol

	enemy.WanderTimer++
	if enemy.WanderTimer > enemy.WanderInterval {
		enemy.WanderAngle = s.rng.Float64() * 2 * math.Pi
		enemy.WanderTimer = 0
		enemy.WanderInterval = s.wanderInterval()
	}

	speed := enemy.Speed * cfg.PatrolSpeed
	enemy.X += math.Cos(enemy.WanderAngle) * speed
	enemy.Y += math.Sin(enemy.WanderAngle) * speed

	// Later checks win
	m := cfg.EdgeMargin
	if enemy.X < m {
		enemy.WanderAngle = s.rng.Float64()*math.Pi - math.Pi/2
	}
	if enemy.X > world.Width-m {
		enemy.WanderAngle = s.rng.Float64()*math.Pi + math.Pi/2
	}
	if enemy.Y < m {
		enemy.WanderAngle = s.rng.Float64() * math.Pi
	}
	if enemy.Y > world.Height-m {
		enemy.WanderAngle = s.rng.Float64()*math.Pi + math.Pi
	}
}

// avoidSolids pushes the enemy out of the first obstacle or bin it overlaps
func (s *EnemySystem) avoidSolids(world *entity.World, enemy *entity.Enemy) {
	spread := s.config.AvoidSpreadDeg * math.Pi / 180

	for _, solid := range world.Solids() {
		if !entity.Overlaps(enemy.Rect, solid) {
			continue
		}

		ex, ey := enemy.Center()
		sx, sy := solid.Center()
		dx := ex - sx
		dy := ey - sy

		enemy.WanderAngle = math.Atan2(dy, dx) + (s.rng.Float64()-0.5)*spread

		if dist := math.Hypot(dx, dy); dist > 0 {
			enemy.X += dx / dist * s.config.AvoidStep
			enemy.Y += dy / dist * s.config.AvoidStep
		}
		return
	}
}

// wanderInterval samples a frame count in [WanderMin, WanderMax]
func (s *EnemySystem) wanderInterval() int {
	span := s.config.WanderMax - s.config.WanderMin
	if span <= 0 {
		return s.config.WanderMin
	}
	return s.config.WanderMin + s.rng.Intn(span+1)
}

package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// Outcome reports what happened during one Resolve call
type Outcome struct {
	Picked    *entity.TrashItem
	Deposited *entity.TrashItem
	Correct   bool
	Points    int
	Struck    *entity.Enemy
	Restocked bool
}

// InteractionSystem resolves pickups, deposits and enemy strikes
type InteractionSystem struct {
	config    *config.InteractionConfig
	rng       *rand.Rand
	spawner   *Spawner
	particles *ParticleSystem

	// Event callbacks
	OnCue         func(cue entity.Cue)
	OnScreenShake func(frames int)
}

// NewInteractionSystem creates a new interaction system
func NewInteractionSystem(cfg *config.InteractionConfig, rng *rand.Rand, spawner *Spawner, particles *ParticleSystem) *InteractionSystem {
	return &InteractionSystem{
		config:    cfg,
		rng:       rng,
		spawner:   spawner,
		particles: particles,
	}
}

// Resolve runs pickup, then deposit, then strike against the current world
func (s *InteractionSystem) Resolve(world *entity.World) Outcome {
	var out Outcome
	player := world.Player
	if player == nil {
		return out
	}

	s.checkPickup(world, player, &out)
	s.checkDeposit(world, player, &out)
	s.checkStrike(world, player, &out)

	return out
}

// checkPickup moves the first overlapping item from the ground into the player's hands
func (s *InteractionSystem) checkPickup(world *entity.World, player *entity.Player, out *Outcome) {
	if player.IsCarrying() {
		return
	}
	for _, item := range world.Trash {
		if !entity.Overlaps(player.Rect, item.Rect) {
			continue
		}
		world.RemoveTrash(item.ID)
		player.Carrying = item
		out.Picked = item
		s.cue(entity.CuePickup)
		return
	}
}

// checkDeposit scores the carried item against the first overlapping bin
func (s *InteractionSystem) checkDeposit(world *entity.World, player *entity.Player, out *Outcome) {
	if !player.IsCarrying() {
		return
	}
	for _, bin := range world.Bins {
		if !entity.Overlaps(player.Rect, bin.Rect) {
			continue
		}

		item := player.Carrying
		cx, cy := bin.Center()
		if bin.Accepts(item) {
			out.Points = s.config.CorrectPoints
			out.Correct = true
			s.particles.Success(cx, cy)
			s.cue(entity.CueCorrect)
		} else {
			out.Points = s.config.WrongPoints
			s.particles.Fail(cx, cy)
			s.cue(entity.CueWrong)
		}
		player.Carrying = nil
		out.Deposited = item

		if s.rng.Float64() < s.config.RestockChance {
			_, out.Restocked = s.spawner.Restock(world)
		}
		return
	}
}

// checkStrike lets the first overlapping enemy take the carried item
func (s *InteractionSystem) checkStrike(world *entity.World, player *entity.Player, out *Outcome) {
	if !player.IsCarrying() || player.Immune() {
		return
	}
	for _, enemy := range world.Enemies {
		if !entity.Overlaps(player.Rect, enemy.Rect) {
			continue
		}

		player.Carrying = nil
		px, py := player.Center()
		s.particles.Peck(px, py)
		s.cue(entity.CueGobble)
		player.ImmuneTimer = s.config.StrikeImmunity

		dx := enemy.X - player.X
		dy := enemy.Y - player.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			enemy.X += dx / dist * s.config.Knockback
			enemy.Y += dy / dist * s.config.Knockback
		}
		enemy.ClampTo(world.Width, world.Height)
		enemy.Calm(s.config.SatisfiedFrames)

		if s.OnScreenShake != nil {
			s.OnScreenShake(s.config.ScreenShake)
		}
		out.Struck = enemy
		return
	}
}

func (s *InteractionSystem) cue(c entity.Cue) {
	if s.OnCue != nil {
		s.OnCue(c)
	}
}

package system

import (
	"math"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// PlayerSystem moves the player with the Intent & Apply model:
// input sets velocity, Update integrates it against the world.
type PlayerSystem struct {
	config *config.MovementConfig
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(cfg *config.MovementConfig) *PlayerSystem {
	return &PlayerSystem{config: cfg}
}

// ApplyIntent converts an input intent into player velocity
func (s *PlayerSystem) ApplyIntent(player *entity.Player, intent Intent) {
	switch in := intent.(type) {
	case MoveTowardIntent:
		s.moveToward(player, in.X, in.Y)
	case *MoveTowardIntent:
		if in != nil {
			s.moveToward(player, in.X, in.Y)
		}
	case DirectionIntent:
		s.steer(player, in.Dir)
	case DirectionsIntent:
		for _, d := range in.Dirs {
			s.steer(player, d)
		}
	}
}

// moveToward points the velocity from the player centre at (x, y)
func (s *PlayerSystem) moveToward(player *entity.Player, x, y float64) {
	cx, cy := player.Center()
	dx := x - cx
	dy := y - cy
	dist := math.Hypot(dx, dy)

	if dist > s.config.ArriveThreshold {
		player.VX = dx / dist * player.Speed
		player.VY = dy / dist * player.Speed
	} else {
		player.Stop()
	}
}

// steer sets a single axis; the other axis keeps its velocity
func (s *PlayerSystem) steer(player *entity.Player, dir entity.Direction) {
	switch dir {
	case entity.DirUp:
		player.VY = -player.Speed
	case entity.DirDown:
		player.VY = player.Speed
	case entity.DirLeft:
		player.VX = -player.Speed
	case entity.DirRight:
		player.VX = player.Speed
	}
}

// Update advances the player one frame
func (s *PlayerSystem) Update(world *entity.World) {
	player := world.Player
	if player == nil {
		return
	}

	if player.ImmuneTimer > 0 {
		player.ImmuneTimer--
	}

	if player.Moving() {
		s.applyMovement(world, player)
	}

	player.ClampTo(world.Width, world.Height)
	s.animate(player)
}

// applyMovement tries the move and reverts it when it runs into something solid
func (s *PlayerSystem) applyMovement(world *entity.World, player *entity.Player) {
	oldX, oldY := player.X, player.Y
	player.X += player.VX
	player.Y += player.VY

	if s.blocked(world, player.Rect) {
		player.X = oldX
		player.Y = oldY
		player.Stop()
		return
	}

	player.VX *= s.config.Friction
	player.VY *= s.config.Friction
	if math.Abs(player.VX) < s.config.StopThreshold {
		player.VX = 0
	}
	if math.Abs(player.VY) < s.config.StopThreshold {
		player.VY = 0
	}
}

// blocked reports a collision with any obstacle, or a deep overlap with a bin.
// Shallow bin overlaps are allowed so the player can reach in to deposit.
func (s *PlayerSystem) blocked(world *entity.World, r entity.Rect) bool {
	for _, o := range world.Obstacles {
		if entity.Overlaps(r, o.Rect) {
			return true
		}
	}
	tol := s.config.BinOverlapTolerance
	for _, b := range world.Bins {
		if !entity.Overlaps(r, b.Rect) {
			continue
		}
		dx, dy := entity.OverlapDepth(r, b.Rect)
		if dx > tol && dy > tol {
			return true
		}
	}
	return false
}

// animate advances the walk cycle and facing while moving
func (s *PlayerSystem) animate(player *entity.Player) {
	if !player.Moving() {
		return
	}

	player.AnimPhase += s.config.AnimStep
	if player.AnimPhase >= s.config.AnimFrames {
		player.AnimPhase = 0
	}

	if math.Abs(player.VX) > math.Abs(player.VY) {
		if player.VX > 0 {
			player.Facing = entity.DirRight
		} else {
			player.Facing = entity.DirLeft
		}
	} else {
		if player.VY > 0 {
			player.Facing = entity.DirDown
		} else {
			player.Facing = entity.DirUp
		}
	}
}

package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/recycle/internal/domain/entity"
)

const (
	autopilotStuckFrames  = 3
	autopilotDetourFrames = 30
	autopilotDetourReach  = 80.0
)

// Autopilot plays the game for headless runs: it walks to the nearest item,
// then to the bin that accepts it, sidestepping when something blocks the way.
type Autopilot struct {
	rng *rand.Rand

	lastX, lastY float64
	stuck        int
	detourLeft   int
	detourX      float64
	detourY      float64
}

// NewAutopilot creates a new autopilot
func NewAutopilot(rng *rand.Rand) *Autopilot {
	return &Autopilot{rng: rng, lastX: -1, lastY: -1}
}

// Next returns the intent for the coming frame, or nil when there is nothing to do
func (a *Autopilot) Next(world *entity.World) Intent {
	player := world.Player
	if player == nil {
		return nil
	}

	if a.detourLeft > 0 {
		a.detourLeft--
		a.remember(player)
		return MoveTowardIntent{X: a.detourX, Y: a.detourY}
	}

	tx, ty, ok := a.target(world, player)
	if !ok {
		return nil
	}

	if player.X == a.lastX && player.Y == a.lastY {
		a.stuck++
	} else {
		a.stuck = 0
	}
	a.remember(player)

	if a.stuck > autopilotStuckFrames {
		a.startDetour(player, tx, ty)
		return MoveTowardIntent{X: a.detourX, Y: a.detourY}
	}
	return MoveTowardIntent{X: tx, Y: ty}
}

func (a *Autopilot) remember(player *entity.Player) {
	a.lastX, a.lastY = player.X, player.Y
}

// target picks the matching bin while carrying, else the nearest item
func (a *Autopilot) target(world *entity.World, player *entity.Player) (float64, float64, bool) {
	if player.IsCarrying() {
		bin := world.BinFor(player.Carrying.Type)
		if bin == nil {
			return 0, 0, false
		}
		x, y := bin.Center()
		return x, y, true
	}

	px, py := player.Center()
	best := math.MaxFloat64
	var bx, by float64
	for _, item := range world.Trash {
		ix, iy := item.Center()
		if d := math.Hypot(ix-px, iy-py); d < best {
			best = d
			bx, by = ix, iy
		}
	}
	return bx, by, best < math.MaxFloat64
}

// startDetour heads sideways relative to the blocked direction
func (a *Autopilot) startDetour(player *entity.Player, tx, ty float64) {
	px, py := player.Center()
	dx := tx - px
	dy := ty - py
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}

	side := 1.0
	if a.rng.Intn(2) == 0 {
		side = -1
	}
	a.detourX = px - dy/dist*autopilotDetourReach*side
	a.detourY = py + dx/dist*autopilotDetourReach*side
	a.detourLeft = autopilotDetourFrames
	a.stuck = 0
}

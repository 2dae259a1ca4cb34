package entity

// EnemyMode is the movement mode of an enemy
type EnemyMode int

const (
	EnemyPatrol EnemyMode = iota
	EnemyChasing
	EnemyFleeing
)

// String returns the string representation of the mode
func (m EnemyMode) String() string {
	switch m {
	case EnemyPatrol:
		return "patrol"
	case EnemyChasing:
		return "chasing"
	case EnemyFleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// EnemyStats holds the per-type constants of an enemy
type EnemyStats struct {
	Width         float64
	Height        float64
	Speed         float64
	ChaseSpeed    float64
	AlertDistance float64
}

// Enemy represents a bush turkey.
// Every AI field is set by NewEnemy; nothing is initialised lazily.
type Enemy struct {
	ID EntityID
	Rect

	Speed         float64
	ChaseSpeed    float64
	AlertDistance float64

	// AI
	Aggression     float64
	Mode           EnemyMode
	FleeTimer      int
	SatisfiedTimer int
	WanderAngle    float64
	WanderTimer    int
	WanderInterval int

	LastPlayerDistance float64
	AnimPhase          float64
}

// NewEnemy creates a new enemy in patrol mode
func NewEnemy(id EntityID, x, y float64, stats EnemyStats, wanderAngle float64, wanderInterval int) *Enemy {
	return &Enemy{
		ID:                 id,
		Rect:               Rect{X: x, Y: y, W: stats.Width, H: stats.Height},
		Speed:              stats.Speed,
		ChaseSpeed:         stats.ChaseSpeed,
		AlertDistance:      stats.AlertDistance,
		Mode:               EnemyPatrol,
		WanderAngle:        wanderAngle,
		WanderInterval:     wanderInterval,
		LastPlayerDistance: 999,
	}
}

// Satisfied returns true during the post-strike cooldown
func (e *Enemy) Satisfied() bool {
	return e.SatisfiedTimer > 0
}

// Chasing returns true if the enemy is in chase mode
func (e *Enemy) Chasing() bool {
	return e.Mode == EnemyChasing
}

// Fleeing returns true if the enemy is in flee mode
func (e *Enemy) Fleeing() bool {
	return e.Mode == EnemyFleeing
}

// Calm resets the enemy after a successful strike
func (e *Enemy) Calm(satisfiedFrames int) {
	e.Aggression = 0
	e.Mode = EnemyPatrol
	e.FleeTimer = 0
	e.SatisfiedTimer = satisfiedFrames
}

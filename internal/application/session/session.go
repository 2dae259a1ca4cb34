// Package session runs one timed round of the game: it owns the world,
// steps the systems once per frame and counts down the clock.
package session

import (
	"math/rand"
	"time"

	"github.com/younwookim/recycle/internal/application/state"
	"github.com/younwookim/recycle/internal/application/system"
	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// Submitter receives the final score when a session ends.
// Submit must not block; implementations do their own I/O asynchronously.
type Submitter interface {
	Submit(playerName string, score int)
}

// Options configures a session
type Options struct {
	PlayerName string

	// Seed for the session RNG; 0 picks one from the clock
	Seed int64

	Submitter Submitter

	// OnCue is told about pickups, deposits, strikes and enemy calls
	OnCue func(cue entity.Cue)
}

// Stats counts what happened during the session
type Stats struct {
	Picked  int
	Correct int
	Wrong   int
	Pecked  int
}

// Session is a single round. It is not safe for concurrent use;
// one goroutine drives Step, Advance and Tick.
type Session struct {
	cfg  *config.GameConfig
	opts Options

	seed int64
	rng  *rand.Rand

	world        *entity.World
	players      *system.PlayerSystem
	enemies      *system.EnemySystem
	particles    *system.ParticleSystem
	spawner      *system.Spawner
	interactions *system.InteractionSystem
	countdown    *Task

	state     state.GameState
	score     int
	timeLeft  int
	frame     int
	shake     int
	stats     Stats
	pending   system.Intent
	submitted bool
}

// New creates a session and spawns its world
func New(cfg *config.GameConfig, opts Options) *Session {
	s := &Session{
		cfg:  cfg,
		opts: opts,
	}
	s.countdown = NewTask(time.Second, s.Tick)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.reset(seed)
	return s
}

// reset builds a fresh world from the config with the given seed
func (s *Session) reset(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))

	rules := s.cfg.Rules
	s.world = system.LoadStage(s.cfg)
	s.players = system.NewPlayerSystem(&rules.Movement)
	s.enemies = system.NewEnemySystem(&rules.EnemyAI, s.rng)
	s.particles = system.NewParticleSystem(&rules.Effects, s.rng)
	s.spawner = system.NewSpawner(&rules.Spawn, s.cfg.Entities.Trash, s.rng)
	s.interactions = system.NewInteractionSystem(&rules.Interaction, s.rng, s.spawner, s.particles)

	s.enemies.OnVocalize = func(entity.EntityID) {
		s.cue(entity.CueVocalize)
	}
	s.interactions.OnCue = s.cue
	s.interactions.OnScreenShake = func(frames int) {
		s.shake = frames
	}

	s.spawner.SpawnInitial(s.world)
	for _, spawn := range s.cfg.Stage.Enemies {
		enemyCfg, ok := s.cfg.Entities.Enemies[spawn.Type]
		if !ok {
			continue
		}
		stats := system.EnemyStats(enemyCfg)
		for i := 0; i < spawn.Count; i++ {
			s.enemies.SpawnEnemy(s.world, stats)
		}
	}

	s.state = state.StatePlaying
	s.score = 0
	s.timeLeft = rules.Session.DurationSeconds
	s.frame = 0
	s.shake = 0
	s.stats = Stats{}
	s.pending = nil
	s.submitted = false
	s.countdown.Reset()
}

// Restart begins a new round with the same config and collaborators.
// The new seed is drawn from the current RNG so replays stay reproducible.
func (s *Session) Restart() {
	s.reset(s.rng.Int63())
}

// SetIntent stores the input for the next Step. Later calls overwrite earlier ones.
func (s *Session) SetIntent(intent system.Intent) {
	s.pending = intent
}

// Step advances the simulation one frame. It does nothing once the session has ended.
func (s *Session) Step() {
	if s.state != state.StatePlaying {
		return
	}

	if s.pending != nil {
		s.players.ApplyIntent(s.world.Player, s.pending)
		s.pending = nil
	}

	s.players.Update(s.world)
	s.enemies.Update(s.world)
	s.particles.Update()

	out := s.interactions.Resolve(s.world)
	s.record(out)

	s.frame++
}

func (s *Session) record(out system.Outcome) {
	s.score += out.Points
	if out.Picked != nil {
		s.stats.Picked++
	}
	if out.Deposited != nil {
		if out.Correct {
			s.stats.Correct++
		} else {
			s.stats.Wrong++
		}
	}
	if out.Struck != nil {
		s.stats.Pecked++
	}
}

// Advance feeds wall-clock time to the countdown.
// Returns the number of seconds that ticked.
func (s *Session) Advance(elapsed time.Duration) int {
	return s.countdown.Advance(elapsed)
}

// Tick takes one second off the clock and ends the session at zero
func (s *Session) Tick() {
	if s.state != state.StatePlaying {
		return
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.End()
	}
}

// End stops the round and submits the score. Calling it again does nothing.
func (s *Session) End() {
	if s.state == state.StateEnded {
		return
	}
	s.state = state.StateEnded
	s.countdown.Stop()
	s.pending = nil

	if s.submitted {
		return
	}
	s.submitted = true
	if s.opts.Submitter != nil {
		s.opts.Submitter.Submit(s.opts.PlayerName, s.score)
	}
}

func (s *Session) cue(c entity.Cue) {
	if s.opts.OnCue != nil {
		s.opts.OnCue(c)
	}
}

// TakeShake returns the remaining screen shake and counts it down by one.
// Renderers call it once per drawn frame.
func (s *Session) TakeShake() int {
	shake := s.shake
	if s.shake > 0 {
		s.shake--
	}
	return shake
}

// State returns the current state
func (s *Session) State() state.GameState { return s.state }

// Ended returns true once the session is over
func (s *Session) Ended() bool { return s.state == state.StateEnded }

// Score returns the current score
func (s *Session) Score() int { return s.score }

// TimeLeft returns the seconds remaining
func (s *Session) TimeLeft() int { return s.timeLeft }

// Frame returns the number of simulated frames
func (s *Session) Frame() int { return s.frame }

// Seed returns the seed of the current round
func (s *Session) Seed() int64 { return s.seed }

// Stats returns the round's counters
func (s *Session) Stats() Stats { return s.stats }

// PlayerName returns the name scores are submitted under
func (s *Session) PlayerName() string { return s.opts.PlayerName }

// World exposes the live world to intent sources such as the autopilot.
// Callers must not modify it.
func (s *Session) World() *entity.World { return s.world }

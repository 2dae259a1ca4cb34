package system

import (
	"math/rand"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

// ParticleSystem owns every live particle
type ParticleSystem struct {
	config    *config.EffectsConfig
	rng       *rand.Rand
	particles []*entity.Particle
}

// NewParticleSystem creates a new particle system
func NewParticleSystem(cfg *config.EffectsConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		config:    cfg,
		rng:       rng,
		particles: make([]*entity.Particle, 0, 64),
	}
}

// Success spawns the correct-deposit burst at (x, y)
func (s *ParticleSystem) Success(x, y float64) {
	s.burst(x, y, &s.config.Success, entity.ParticleSuccess)
}

// Fail spawns the wrong-bin burst at (x, y)
func (s *ParticleSystem) Fail(x, y float64) {
	s.burst(x, y, &s.config.Fail, entity.ParticleFail)
}

// Peck spawns the feather burst at (x, y)
func (s *ParticleSystem) Peck(x, y float64) {
	s.burst(x, y, &s.config.Peck, entity.ParticleFeather)
}

func (s *ParticleSystem) burst(x, y float64, b *config.BurstConfig, kind entity.ParticleKind) {
	for i := 0; i < b.Count; i++ {
		color := ""
		if len(b.Colors) > 0 {
			color = b.Colors[s.rng.Intn(len(b.Colors))]
		}
		s.particles = append(s.particles, &entity.Particle{
			X:       x,
			Y:       y,
			VX:      (s.rng.Float64() - 0.5) * b.Spread,
			VY:      (s.rng.Float64()-0.5)*b.Spread + b.Lift,
			Life:    b.Life,
			MaxLife: b.Life,
			Kind:    kind,
			Color:   color,
			Size:    s.rng.Float64()*b.SizeRange + b.MinSize,
			Alpha:   1,
		})
	}

	if b.Text.Label == "" {
		return
	}
	s.particles = append(s.particles, &entity.Particle{
		X:       x,
		Y:       y + b.Text.OffsetY,
		VY:      b.Text.VY,
		Life:    b.Text.Life,
		MaxLife: b.Text.Life,
		Kind:    entity.ParticleText,
		Color:   b.Text.Color,
		Size:    b.Text.Size,
		Text:    b.Text.Label,
		Alpha:   1,
	})
}

// Update advances all particles and drops the dead ones
func (s *ParticleSystem) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.Update(s.config.Gravity)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	// Clear the tail so dropped particles can be collected
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
}

// Particles returns the live particles
func (s *ParticleSystem) Particles() []*entity.Particle {
	return s.particles
}

// Count returns the number of live particles
func (s *ParticleSystem) Count() int {
	return len(s.particles)
}

// Clear removes all particles
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

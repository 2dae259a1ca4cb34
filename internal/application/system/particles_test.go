package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

func createTestParticleSystem() *ParticleSystem {
	return NewParticleSystem(&config.DefaultRules().Effects, testRNG())
}

func countKinds(ps []*entity.Particle) map[entity.ParticleKind]int {
	counts := make(map[entity.ParticleKind]int)
	for _, p := range ps {
		counts[p.Kind]++
	}
	return counts
}

func TestParticleSystem_Success(t *testing.T) {
	s := createTestParticleSystem()
	s.Success(80, 90)

	counts := countKinds(s.Particles())
	assert.Equal(t, 15, counts[entity.ParticleSuccess])
	assert.Equal(t, 1, counts[entity.ParticleText])

	for _, p := range s.Particles() {
		if p.IsText() {
			assert.Equal(t, "+10", p.Text)
			assert.Equal(t, 70.0, p.Y)
			assert.Equal(t, -2.0, p.VY)
			assert.Equal(t, 60, p.Life)
			continue
		}
		assert.Equal(t, "#00FF00", p.Color)
		assert.Equal(t, 30, p.Life)
		assert.GreaterOrEqual(t, p.VX, -4.0)
		assert.Less(t, p.VX, 4.0)
		assert.GreaterOrEqual(t, p.VY, -6.0, "biased upward")
		assert.Less(t, p.VY, 2.0)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.Less(t, p.Size, 6.0)
	}
}

func TestParticleSystem_Fail(t *testing.T) {
	s := createTestParticleSystem()
	s.Fail(0, 0)

	counts := countKinds(s.Particles())
	assert.Equal(t, 8, counts[entity.ParticleFail])
	assert.Equal(t, 1, counts[entity.ParticleText])

	for _, p := range s.Particles() {
		if p.IsText() {
			assert.Equal(t, "+1", p.Text)
			assert.Equal(t, 40, p.Life)
			continue
		}
		assert.Equal(t, 20, p.Life)
		assert.Less(t, p.Size, 4.0)
	}
}

func TestParticleSystem_Peck(t *testing.T) {
	s := createTestParticleSystem()
	s.Peck(100, 100)

	counts := countKinds(s.Particles())
	assert.Equal(t, 15, counts[entity.ParticleFeather])
	require.Equal(t, 1, counts[entity.ParticleText])

	for _, p := range s.Particles() {
		if p.IsText() {
			assert.Equal(t, "PECKED!", p.Text)
			assert.Equal(t, 85.0, p.Y)
			continue
		}
		assert.Contains(t, []string{"#D2691E", "#8B4513"}, p.Color)
	}
}

func TestParticleSystem_Lifetime(t *testing.T) {
	s := createTestParticleSystem()
	s.Success(0, 0)
	require.Equal(t, 16, s.Count())

	for i := 0; i < 30; i++ {
		s.Update()
	}
	assert.Equal(t, 1, s.Count(), "only the score text outlives the burst")
	text := s.Particles()[0]
	assert.True(t, text.IsText())
	assert.InDelta(t, -60.0-20.0, text.Y, 0.0001, "text drifts without gravity")
	assert.InDelta(t, 0.5, text.Alpha, 0.0001)

	for i := 0; i < 30; i++ {
		s.Update()
	}
	assert.Equal(t, 0, s.Count())
}

func TestParticleSystem_Gravity(t *testing.T) {
	s := createTestParticleSystem()
	s.Fail(0, 0)

	var dot *entity.Particle
	for _, p := range s.Particles() {
		if !p.IsText() {
			dot = p
			break
		}
	}
	require.NotNil(t, dot)
	vy := dot.VY

	s.Update()
	assert.InDelta(t, vy+0.2, dot.VY, 0.0001)
}

func TestParticleSystem_Clear(t *testing.T) {
	s := createTestParticleSystem()
	s.Peck(0, 0)
	s.Clear()
	assert.Equal(t, 0, s.Count())
}

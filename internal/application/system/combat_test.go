package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/recycle/internal/domain/entity"
	"github.com/younwookim/recycle/internal/infrastructure/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// createTestWorld returns the park layout with the player parked on open ground
func createTestWorld() *entity.World {
	world := LoadStage(config.Default())
	world.Player.X = 600
	world.Player.Y = 450
	world.Player.ImmuneTimer = 0
	return world
}

type interactionFixture struct {
	world     *entity.World
	rules     *config.RulesConfig
	particles *ParticleSystem
	system    *InteractionSystem
	cues      []entity.Cue
	shakes    []int
}

func newInteractionFixture() *interactionFixture {
	rules := config.DefaultRules()
	rng := testRNG()
	f := &interactionFixture{
		world: createTestWorld(),
		rules: rules,
	}
	f.particles = NewParticleSystem(&rules.Effects, rng)
	spawner := NewSpawner(&rules.Spawn, config.DefaultEntities().Trash, rng)
	f.system = NewInteractionSystem(&rules.Interaction, rng, spawner, f.particles)
	f.system.OnCue = func(c entity.Cue) { f.cues = append(f.cues, c) }
	f.system.OnScreenShake = func(frames int) { f.shakes = append(f.shakes, frames) }
	return f
}

func (f *interactionFixture) addTrash(t entity.WasteType, x, y float64) *entity.TrashItem {
	item := &entity.TrashItem{
		ID:   f.world.NewEntity(),
		Rect: entity.Rect{X: x, Y: y, W: 24, H: 24},
		Type: t,
		Kind: "test",
	}
	f.world.AddTrash(item)
	return item
}

func (f *interactionFixture) addEnemy(x, y float64) *entity.Enemy {
	stats := EnemyStats(config.DefaultEntities().Enemies["bushTurkey"])
	enemy := entity.NewEnemy(f.world.NewEntity(), x, y, stats, 0, 60)
	f.world.Enemies = append(f.world.Enemies, enemy)
	return enemy
}

func TestInteraction_Pickup(t *testing.T) {
	f := newInteractionFixture()
	item := f.addTrash(entity.WasteRecycle, 610, 460)
	other := f.addTrash(entity.WasteCompost, 615, 465)

	out := f.system.Resolve(f.world)

	require.Same(t, item, out.Picked, "first overlapping item wins")
	assert.Same(t, item, f.world.Player.Carrying)
	require.Len(t, f.world.Trash, 1)
	assert.Same(t, other, f.world.Trash[0])
	assert.Equal(t, []entity.Cue{entity.CuePickup}, f.cues)
	assert.Equal(t, 0, out.Points)
}

func TestInteraction_PickupWhileCarrying(t *testing.T) {
	f := newInteractionFixture()
	held := &entity.TrashItem{ID: 99, Type: entity.WasteTrash}
	f.world.Player.Carrying = held
	f.world.Player.ImmuneTimer = 10
	f.addTrash(entity.WasteRecycle, 610, 460)

	out := f.system.Resolve(f.world)

	assert.Nil(t, out.Picked)
	assert.Same(t, held, f.world.Player.Carrying)
	assert.Len(t, f.world.Trash, 1)
}

func TestInteraction_Ownership(t *testing.T) {
	f := newInteractionFixture()
	f.addTrash(entity.WasteRecycle, 610, 460)

	f.system.Resolve(f.world)

	carried := f.world.Player.Carrying
	require.NotNil(t, carried)
	for _, item := range f.world.Trash {
		assert.NotEqual(t, carried.ID, item.ID, "carried item must not remain on the ground")
	}
}

func TestInteraction_Deposit(t *testing.T) {
	tests := []struct {
		name       string
		itemType   entity.WasteType
		wantPoints int
		wantCue    entity.Cue
		wantDots   int
	}{
		{"correct bin", entity.WasteRecycle, 10, entity.CueCorrect, 15},
		{"wrong bin", entity.WasteCompost, 1, entity.CueWrong, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInteractionFixture()
			f.rules.Interaction.RestockChance = 0
			item := &entity.TrashItem{ID: 42, Type: tt.itemType}
			f.world.Player.Carrying = item
			f.world.Player.ImmuneTimer = 60
			// Reaching into the recycle bin
			f.world.Player.X = 105
			f.world.Player.Y = 60

			out := f.system.Resolve(f.world)

			assert.Equal(t, tt.wantPoints, out.Points)
			assert.Equal(t, tt.wantPoints == 10, out.Correct)
			assert.Same(t, item, out.Deposited)
			assert.Nil(t, f.world.Player.Carrying)
			assert.Equal(t, []entity.Cue{tt.wantCue}, f.cues)
			assert.Equal(t, tt.wantDots+1, f.particles.Count(), "burst plus score text")
			assert.False(t, out.Restocked)
		})
	}
}

func TestInteraction_DepositEffectAtBinCenter(t *testing.T) {
	f := newInteractionFixture()
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
	f.world.Player.X = 105
	f.world.Player.Y = 60

	f.system.Resolve(f.world)

	var text *entity.Particle
	for _, p := range f.particles.Particles() {
		if p.IsText() {
			text = p
		}
	}
	require.NotNil(t, text)
	assert.Equal(t, "+10", text.Text)
	assert.Equal(t, 80.0, text.X)
	assert.Equal(t, 90.0-20.0, text.Y)
}

func TestInteraction_Restock(t *testing.T) {
	f := newInteractionFixture()
	f.rules.Interaction.RestockChance = 1
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteTrash}
	f.world.Player.X = 105
	f.world.Player.Y = 360

	out := f.system.Resolve(f.world)

	require.NotNil(t, out.Deposited)
	assert.True(t, out.Restocked)
	require.Len(t, f.world.Trash, 1)
	assert.Equal(t, 20.0, f.world.Trash[0].W)
}

func TestInteraction_Strike(t *testing.T) {
	f := newInteractionFixture()
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
	enemy := f.addEnemy(630, 450)
	enemy.Aggression = 0.5
	enemy.Mode = entity.EnemyChasing

	out := f.system.Resolve(f.world)

	require.Same(t, enemy, out.Struck)
	assert.Nil(t, f.world.Player.Carrying, "item is lost")
	assert.Equal(t, 90, f.world.Player.ImmuneTimer)
	assert.Equal(t, 0.0, enemy.Aggression)
	assert.Equal(t, entity.EnemyPatrol, enemy.Mode)
	assert.Equal(t, 180, enemy.SatisfiedTimer)
	assert.InDelta(t, 670.0, enemy.X, 0.0001, "pushed 40px away from the player")
	assert.InDelta(t, 450.0, enemy.Y, 0.0001)
	assert.Equal(t, []int{5}, f.shakes)
	assert.Equal(t, []entity.Cue{entity.CueGobble}, f.cues)
	assert.Equal(t, 16, f.particles.Count())
	assert.Equal(t, 0, out.Points)
}

func TestInteraction_StrikeSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		carrying bool
		immune   int
	}{
		{"immune", true, 30},
		{"empty handed", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInteractionFixture()
			var item *entity.TrashItem
			if tt.carrying {
				item = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
			}
			f.world.Player.Carrying = item
			f.world.Player.ImmuneTimer = tt.immune
			enemy := f.addEnemy(630, 450)
			enemy.Aggression = 0.5

			out := f.system.Resolve(f.world)

			assert.Nil(t, out.Struck)
			assert.Equal(t, item, f.world.Player.Carrying)
			assert.Equal(t, tt.immune, f.world.Player.ImmuneTimer)
			assert.Equal(t, 0.5, enemy.Aggression)
			assert.Equal(t, 630.0, enemy.X)
			assert.Empty(t, f.shakes)
		})
	}
}

func TestInteraction_OneStrikePerFrame(t *testing.T) {
	f := newInteractionFixture()
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
	first := f.addEnemy(630, 450)
	second := f.addEnemy(580, 450)
	second.Aggression = 0.5

	out := f.system.Resolve(f.world)

	assert.Same(t, first, out.Struck)
	assert.Equal(t, 0, second.SatisfiedTimer)
	assert.Equal(t, 0.5, second.Aggression, "second enemy keeps its aggression")
	assert.Equal(t, 580.0, second.X, "second enemy is not knocked back")
	assert.Equal(t, 450.0, second.Y)
	assert.Len(t, f.shakes, 1)
}

func TestInteraction_StrikeKnockbackStaysOnCanvas(t *testing.T) {
	f := newInteractionFixture()
	f.world.Player.X = 740
	f.world.Player.Y = 540
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
	enemy := f.addEnemy(760, 560)

	out := f.system.Resolve(f.world)

	require.Same(t, enemy, out.Struck)
	assert.Equal(t, f.world.Width-enemy.W, enemy.X)
	assert.Equal(t, f.world.Height-enemy.H, enemy.Y)
	assert.True(t, f.world.Contains(enemy.Rect))
}

func TestInteraction_StrikeKnockbackDiagonal(t *testing.T) {
	f := newInteractionFixture()
	f.world.Player.Carrying = &entity.TrashItem{ID: 1, Type: entity.WasteRecycle}
	enemy := f.addEnemy(620, 470)

	f.system.Resolve(f.world)

	d := 40 / math.Sqrt2
	assert.InDelta(t, 620+d, enemy.X, 0.0001)
	assert.InDelta(t, 470+d, enemy.Y, 0.0001)
}

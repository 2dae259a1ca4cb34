package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnemyStats() EnemyStats {
	return EnemyStats{Width: 40, Height: 40, Speed: 2, ChaseSpeed: 3.5, AlertDistance: 150}
}

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(7, 120, 340, testEnemyStats(), 1.5, 60)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(7), enemy.ID)
	assert.Equal(t, 120.0, enemy.X)
	assert.Equal(t, 340.0, enemy.Y)
	assert.Equal(t, 40.0, enemy.W)
	assert.Equal(t, 2.0, enemy.Speed)
	assert.Equal(t, 3.5, enemy.ChaseSpeed)
	assert.Equal(t, 150.0, enemy.AlertDistance)

	// AI state is fully initialised
	assert.Equal(t, EnemyPatrol, enemy.Mode)
	assert.Equal(t, 0.0, enemy.Aggression)
	assert.Equal(t, 0, enemy.FleeTimer)
	assert.Equal(t, 0, enemy.SatisfiedTimer)
	assert.Equal(t, 1.5, enemy.WanderAngle)
	assert.Equal(t, 0, enemy.WanderTimer)
	assert.Equal(t, 60, enemy.WanderInterval)
	assert.Equal(t, 999.0, enemy.LastPlayerDistance)
	assert.False(t, enemy.Satisfied())
}

func TestEnemy_Calm(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, testEnemyStats(), 0, 40)
	enemy.Aggression = 0.6
	enemy.Mode = EnemyFleeing
	enemy.FleeTimer = 30

	enemy.Calm(180)

	assert.Equal(t, 0.0, enemy.Aggression)
	assert.Equal(t, EnemyPatrol, enemy.Mode)
	assert.Equal(t, 0, enemy.FleeTimer)
	assert.Equal(t, 180, enemy.SatisfiedTimer)
	assert.True(t, enemy.Satisfied())
}

func TestEnemyMode_String(t *testing.T) {
	assert.Equal(t, "patrol", EnemyPatrol.String())
	assert.Equal(t, "chasing", EnemyChasing.String())
	assert.Equal(t, "fleeing", EnemyFleeing.String())
	assert.Equal(t, "unknown", EnemyMode(99).String())
}

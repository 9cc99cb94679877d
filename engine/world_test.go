package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/core"
)

func TestNewPopulatedWorld(t *testing.T) {
	rng := &ScriptedRandom{Floats: []float64{50}, Ints: []int{1}}
	w := NewPopulatedWorld(800, 400, rng)

	require.Len(t, w.Ufos, 2)

	enemy := w.Ufos[0]
	assert.Equal(t, component.StrategySine, enemy.Strategy)
	assert.Equal(t, core.Vec2{X: 800, Y: 150}, enemy.Pos)
	assert.Equal(t, core.Vec2{X: -1, Y: 0}, enemy.Vel)
	assert.Equal(t, core.Yellow, enemy.Color)

	player := w.Ufos[1]
	assert.Same(t, player, w.Player())
	assert.Equal(t, core.Vec2{X: 100, Y: 100}, player.Pos)
	assert.Equal(t, core.Vec2{X: 400, Y: 200}, w.Pointer, "pointer starts centered")
}

func TestNewEnemySpawnBand(t *testing.T) {
	r := NewFastRand(3)
	w := NewWorld(640, 480, r)
	for i := 0; i < 500; i++ {
		e := w.NewEnemy()
		require.Equal(t, 640.0, e.Pos.X)
		require.GreaterOrEqual(t, e.Pos.Y, 120.0)
		require.Less(t, e.Pos.Y, 360.0)
		require.False(t, e.IsPlayer())
	}
}

func TestWorldHooks(t *testing.T) {
	w := NewWorld(100, 100, NewConstRandom(0, 0))

	var spawned []*component.Ufo
	var pairs int
	w.Hooks = Hooks{
		OnSpawn:     func(u *component.Ufo) { spawned = append(spawned, u) },
		OnCollision: func(a, b *component.Ufo) { pairs++ },
	}

	e := w.NewEnemy()
	w.Spawn(e)
	w.ReportCollision(e, e)

	assert.Equal(t, []*component.Ufo{e}, spawned)
	assert.Equal(t, 1, pairs)
	assert.Nil(t, NewWorld(1, 1, nil).Player())

	// Nil hooks are skipped
	w.Hooks = Hooks{}
	assert.NotPanics(t, func() {
		w.Spawn(e)
		w.ReportCollision(e, e)
	})
	assert.Len(t, w.Ufos, 2)
}

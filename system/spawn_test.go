package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
)

func TestSpawnThreshold(t *testing.T) {
	tests := []struct {
		name      string
		roll      float64
		wantSpawn bool
	}{
		{"Exactly threshold", 994, true},
		{"Just below threshold", 993.999, false},
		{"Zero", 0, false},
		{"Top of range", 999.999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Roll, then y offset 10, strategy index 2
			rng := &engine.ScriptedRandom{Floats: []float64{tt.roll, 10}, Ints: []int{2}}
			w := engine.NewWorld(800, 600, rng)

			spawned := NewSpawnSystem().TrySpawn(w)

			assert.Equal(t, tt.wantSpawn, spawned)
			if !tt.wantSpawn {
				assert.Empty(t, w.Ufos)
				assert.Equal(t, 1, rng.RangeCalls(), "one roll per frame")
				return
			}
			require.Len(t, w.Ufos, 1)
			e := w.Ufos[0]
			assert.Equal(t, component.StrategyRandom, e.Strategy)
			assert.Equal(t, core.Red, e.Color)
			assert.Equal(t, core.Vec2{X: 800, Y: 160}, e.Pos)
			assert.Equal(t, core.Vec2{X: -1, Y: 0}, e.Vel)
		})
	}
}

func TestSpawnAppendsInOrderAndNotifies(t *testing.T) {
	rng := engine.NewConstRandom(995, 0)
	w := engine.NewPopulatedWorld(800, 600, rng)
	player := w.Player()

	var notified int
	w.Hooks.OnSpawn = func(u *component.Ufo) { notified++ }

	s := NewSpawnSystem()
	for i := 0; i < 5; i++ {
		s.Update(w)
	}

	assert.Len(t, w.Ufos, 7)
	assert.Equal(t, 5, notified)
	assert.Same(t, player, w.Ufos[1], "existing entities keep their slots")

	players := 0
	for _, u := range w.Ufos {
		if u.IsPlayer() {
			players++
		}
	}
	assert.Equal(t, 1, players, "spawner never creates players")
}

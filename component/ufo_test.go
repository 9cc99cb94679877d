package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pewpewpew/core"
)

func TestStrategyColors(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     core.Color
		name     string
	}{
		{StrategyPlayer, core.Blue, "player"},
		{StrategyLinear, core.Green, "linear"},
		{StrategySine, core.Yellow, "sine"},
		{StrategyRandom, core.Red, "random"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.strategy.Color())
			assert.Equal(t, tt.name, tt.strategy.String())
		})
	}
}

func TestEnemyStrategy(t *testing.T) {
	assert.Equal(t, StrategyLinear, EnemyStrategy(0))
	assert.Equal(t, StrategySine, EnemyStrategy(1))
	assert.Equal(t, StrategyRandom, EnemyStrategy(2))
	assert.Equal(t, StrategyRandom, EnemyStrategy(7))
	assert.Equal(t, StrategyRandom, EnemyStrategy(-1))
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer()
	assert.True(t, p.IsPlayer())
	assert.Equal(t, core.Vec2{X: 100, Y: 100}, p.Pos)
	assert.Equal(t, core.Vec2{}, p.Vel)
	assert.Equal(t, core.Blue, p.Color)
	assert.Zero(t, p.Trail.Len())
	assert.Len(t, p.ShortID(), 8)
}

func TestNewUfoDistinctIDs(t *testing.T) {
	a := NewUfo(StrategySine, core.Vec2{}, core.Vec2{})
	b := NewUfo(StrategySine, core.Vec2{}, core.Vec2{})
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.IsPlayer())
	assert.Equal(t, core.Yellow, a.Color)
}

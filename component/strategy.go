package component

import "github.com/lixenwraith/pewpewpew/core"

// Strategy selects how a UFO is steered each frame
type Strategy uint8

const (
	StrategyPlayer Strategy = iota
	StrategyLinear
	StrategySine
	StrategyRandom
)

// enemyStrategies is indexed by the spawn roll
var enemyStrategies = [...]Strategy{StrategyLinear, StrategySine, StrategyRandom}

// EnemyStrategy maps an integer roll in [0, 3) to an enemy strategy
// Out of range rolls fall back to Random
func EnemyStrategy(roll int) Strategy {
	if roll < 0 || roll >= len(enemyStrategies) {
		return StrategyRandom
	}
	return enemyStrategies[roll]
}

// Color returns the spawn color associated with the strategy
func (s Strategy) Color() core.Color {
	switch s {
	case StrategyPlayer:
		return core.Blue
	case StrategyLinear:
		return core.Green
	case StrategySine:
		return core.Yellow
	default:
		return core.Red
	}
}

func (s Strategy) String() string {
	switch s {
	case StrategyPlayer:
		return "player"
	case StrategyLinear:
		return "linear"
	case StrategySine:
		return "sine"
	case StrategyRandom:
		return "random"
	default:
		return "unknown"
	}
}

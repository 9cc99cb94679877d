package component

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
)

// Ufo is a flying object moved by its strategy
type Ufo struct {
	ID       uuid.UUID
	Pos      core.Vec2
	Vel      core.Vec2
	Color    core.Color
	Strategy Strategy
	Trail    *Trail
}

// NewUfo creates a UFO with the strategy's color and an empty trail
func NewUfo(strategy Strategy, pos, vel core.Vec2) *Ufo {
	return &Ufo{
		ID:       uuid.New(),
		Pos:      pos,
		Vel:      vel,
		Color:    strategy.Color(),
		Strategy: strategy,
		Trail:    NewDefaultTrail(),
	}
}

// NewPlayer creates the pointer-controlled UFO at its start position, at rest
func NewPlayer() *Ufo {
	return NewUfo(StrategyPlayer, core.Vec2{X: constant.PlayerStartX, Y: constant.PlayerStartY}, core.Vec2{})
}

// IsPlayer reports whether the UFO follows the pointer
func (u *Ufo) IsPlayer() bool {
	return u.Strategy == StrategyPlayer
}

// ShortID returns the first block of the UUID for log lines
func (u *Ufo) ShortID() string {
	return u.ID.String()[:8]
}

package system

import (
	"math"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
)

// SteerSystem recomputes every UFO's velocity from its strategy
type SteerSystem struct{}

// NewSteerSystem creates the steering phase
func NewSteerSystem() *SteerSystem {
	return &SteerSystem{}
}

// Priority returns the system's priority
func (s *SteerSystem) Priority() int {
	return PrioritySteer
}

// Update overwrites velocities; no state carries across frames
func (s *SteerSystem) Update(w *engine.World) {
	for _, u := range w.Ufos {
		u.Vel = Velocity(u, w.Pointer, w.Rand)
	}
}

// Velocity returns the velocity a UFO should take this frame
// Deterministic in (position, strategy, pointer) for every strategy except Random
func Velocity(u *component.Ufo, pointer core.Vec2, rng engine.Random) core.Vec2 {
	switch u.Strategy {
	case component.StrategyPlayer:
		// Head for the pointer; atan2(0, 0) is 0 so a reached pointer yields (Speed, 0)
		angle := math.Atan2(pointer.Y-u.Pos.Y, pointer.X-u.Pos.X)
		return core.Vec2{X: math.Cos(angle) * constant.Speed, Y: math.Sin(angle) * constant.Speed}
	case component.StrategyLinear:
		return core.Vec2{X: -constant.Speed, Y: 0}
	case component.StrategySine:
		return core.Vec2{X: -constant.Speed, Y: constant.Speed * math.Sin(u.Pos.X/constant.SineWavelength)}
	default:
		x := rng.Range(-constant.Speed, constant.Speed)
		y := rng.Range(-constant.Speed, constant.Speed)
		return core.Vec2{X: x, Y: y}
	}
}

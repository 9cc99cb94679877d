package system

import (
	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/engine"
)

// MoveSystem applies one Euler step and records the after-image
type MoveSystem struct{}

// NewMoveSystem creates the integrator
func NewMoveSystem() *MoveSystem {
	return &MoveSystem{}
}

// Priority returns the system's priority
func (s *MoveSystem) Priority() int {
	return PriorityMove
}

// Update moves every UFO by its velocity
func (s *MoveSystem) Update(w *engine.World) {
	for _, u := range w.Ufos {
		Integrate(u)
	}
}

// Integrate advances position by one frame of velocity and snapshots it into the trail
func Integrate(u *component.Ufo) {
	u.Pos = u.Pos.Add(u.Vel)
	u.Trail.Push(component.TrailPoint{Pos: u.Pos, Color: u.Color})
}

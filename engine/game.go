package engine

import (
	"sort"

	"github.com/lixenwraith/pewpewpew/core"
)

// System is one phase of the frame update
type System interface {
	Update(w *World)
	Priority() int // Lower values run first
}

// Game owns the world and runs systems once per frame
type Game struct {
	World   *World
	systems []System
}

// NewGame wraps a world with an empty system list
func NewGame(world *World) *Game {
	return &Game{World: world}
}

// AddSystem registers a system, keeping priority order stable for equal priorities
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// Systems returns registered systems in execution order
func (g *Game) Systems() []System {
	return g.systems
}

// Step advances one frame with the pointer sampled by the surface
func (g *Game) Step(pointer core.Vec2) {
	g.World.Frame++
	g.World.Pointer = pointer
	for _, s := range g.systems {
		s.Update(g.World)
	}
}

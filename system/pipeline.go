package system

import "github.com/lixenwraith/pewpewpew/engine"

// Register adds the frame phases to g: spawn, steer, move, collide
func Register(g *engine.Game) {
	g.AddSystem(NewSpawnSystem())
	g.AddSystem(NewSteerSystem())
	g.AddSystem(NewMoveSystem())
	g.AddSystem(NewCollisionSystem())
}

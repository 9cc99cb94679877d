package main

import (
	"log"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/engine"
	"github.com/lixenwraith/pewpewpew/metrics"
	"github.com/lixenwraith/pewpewpew/system"
)

// newGame registers the frame phases and routes world hooks to metrics and the log
func newGame(world *engine.World, rec *metrics.Recorder) *engine.Game {
	world.Hooks = engine.Hooks{
		OnSpawn: func(u *component.Ufo) {
			rec.Spawn(u)
			log.Printf("spawn %s %s at (%.1f, %.1f)", u.ShortID(), u.Strategy, u.Pos.X, u.Pos.Y)
		},
		OnCollision: func(a, b *component.Ufo) {
			rec.Collision(a, b)
			log.Printf("collision %s %s", a.ShortID(), b.ShortID())
		},
	}

	game := engine.NewGame(world)
	system.Register(game)
	game.AddSystem(metrics.NewSystem(rec))
	return game
}

package engine

import (
	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
)

// Hooks are optional observers invoked by systems; nil fields are skipped
type Hooks struct {
	OnSpawn     func(u *component.Ufo)
	OnCollision func(a, b *component.Ufo)
}

// World holds every UFO in spawn order plus the per-frame inputs
// Single-threaded: only the frame loop reads or writes it
type World struct {
	Ufos []*component.Ufo

	Width, Height float64
	Pointer       core.Vec2
	Frame         uint64

	Rand  Random
	Hooks Hooks
}

// NewWorld creates an empty world of the given size
func NewWorld(width, height float64, rng Random) *World {
	return &World{
		Width:   width,
		Height:  height,
		Pointer: core.Vec2{X: width / 2, Y: height / 2},
		Rand:    rng,
	}
}

// NewPopulatedWorld creates the starting world: one enemy, then the player
func NewPopulatedWorld(width, height float64, rng Random) *World {
	w := NewWorld(width, height, rng)
	w.Add(w.NewEnemy())
	w.Add(component.NewPlayer())
	return w
}

// Add appends a UFO, preserving spawn order
func (w *World) Add(u *component.Ufo) {
	w.Ufos = append(w.Ufos, u)
}

// Resize updates the visible area used for spawning
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}

// NewEnemy builds an enemy at the right edge inside the middle half of the height
// Draw order: vertical offset first, then strategy
func (w *World) NewEnemy() *component.Ufo {
	y := w.Height*constant.SpawnBandStart + w.Rand.Range(0, w.Height*constant.SpawnBandSize)
	strategy := component.EnemyStrategy(w.Rand.Intn(constant.EnemyStrategyCount))
	return component.NewUfo(
		strategy,
		core.Vec2{X: w.Width, Y: y},
		core.Vec2{X: -constant.Speed, Y: 0},
	)
}

// Player returns the pointer-controlled UFO, nil if absent
func (w *World) Player() *component.Ufo {
	for _, u := range w.Ufos {
		if u.IsPlayer() {
			return u
		}
	}
	return nil
}

// Spawn appends u and notifies observers
func (w *World) Spawn(u *component.Ufo) {
	w.Add(u)
	if w.Hooks.OnSpawn != nil {
		w.Hooks.OnSpawn(u)
	}
}

// ReportCollision notifies observers of a colliding pair
func (w *World) ReportCollision(a, b *component.Ufo) {
	if w.Hooks.OnCollision != nil {
		w.Hooks.OnCollision(a, b)
	}
}

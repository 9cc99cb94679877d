package system

import (
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
)

// CollisionSystem recolors every pair of UFOs closer than CollisionDistance
// Pairwise O(n²); entity counts stay small
type CollisionSystem struct{}

// NewCollisionSystem creates the collision phase
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return PriorityCollision
}

// Update runs the pairwise check
func (s *CollisionSystem) Update(w *engine.World) {
	s.Check(w)
}

// Check visits each unordered pair once and returns the number of colliding pairs
// A UFO in several pairs is recolored once per pair, last pair wins
func (s *CollisionSystem) Check(w *engine.World) int {
	hits := 0
	ufos := w.Ufos
	for i := 0; i < len(ufos); i++ {
		for j := i + 1; j < len(ufos); j++ {
			a, b := ufos[i], ufos[j]
			if a.Pos.Dist(b.Pos) >= constant.CollisionDistance {
				continue
			}
			a.Color = RandomColor(w.Rand)
			b.Color = RandomColor(w.Rand)
			hits++
			w.ReportCollision(a, b)
		}
	}
	return hits
}

// RandomColor draws an opaque color with independent uniform channels, in R, G, B order
func RandomColor(rng engine.Random) core.Color {
	r := rng.Range(0, 1)
	g := rng.Range(0, 1)
	b := rng.Range(0, 1)
	return core.NewOpaque(r, g, b)
}

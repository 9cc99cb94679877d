package system

import (
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/engine"
)

// SpawnSystem rolls once per frame and injects an enemy on a high roll
type SpawnSystem struct{}

// NewSpawnSystem creates the enemy spawner
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return PrioritySpawn
}

// Update spawns at most one enemy
func (s *SpawnSystem) Update(w *engine.World) {
	s.TrySpawn(w)
}

// TrySpawn draws the spawn roll and reports whether an enemy was added
func (s *SpawnSystem) TrySpawn(w *engine.World) bool {
	if w.Rand.Range(0, constant.SpawnRange) < constant.SpawnThreshold {
		return false
	}
	w.Spawn(w.NewEnemy())
	return true
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pewpewpew/core"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
}

func (s *recordingSystem) Priority() int {
	return s.priority
}

func TestGameRunsSystemsInPriorityOrder(t *testing.T) {
	var log []string
	g := NewGame(NewWorld(100, 100, NewConstRandom(0, 0)))

	g.AddSystem(&recordingSystem{"collide", 40, &log})
	g.AddSystem(&recordingSystem{"spawn", 10, &log})
	g.AddSystem(&recordingSystem{"move", 30, &log})
	g.AddSystem(&recordingSystem{"steer", 20, &log})

	g.Step(core.Vec2{X: 5, Y: 6})

	assert.Equal(t, []string{"spawn", "steer", "move", "collide"}, log)
	assert.Len(t, g.Systems(), 4)
	assert.Equal(t, uint64(1), g.World.Frame)
	assert.Equal(t, core.Vec2{X: 5, Y: 6}, g.World.Pointer)
}

func TestGameStableForEqualPriority(t *testing.T) {
	var log []string
	g := NewGame(NewWorld(100, 100, nil))
	g.AddSystem(&recordingSystem{"a", 1, &log})
	g.AddSystem(&recordingSystem{"b", 1, &log})
	g.AddSystem(&recordingSystem{"c", 1, &log})

	g.Step(core.Vec2{})
	g.Step(core.Vec2{})

	assert.Equal(t, []string{"a", "b", "c", "a", "b", "c"}, log)
	assert.Equal(t, uint64(2), g.World.Frame)
}

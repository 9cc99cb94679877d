package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pewpewpew/component"
	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
)

func TestRecorderSummary(t *testing.T) {
	rec := NewRecorder()
	w := engine.NewPopulatedWorld(800, 600, engine.NewConstRandom(0, 0))

	rec.Spawn(component.NewUfo(component.StrategySine, core.Vec2{}, core.Vec2{}))
	rec.Spawn(component.NewUfo(component.StrategyLinear, core.Vec2{}, core.Vec2{}))
	rec.Collision(w.Ufos[0], w.Ufos[1])
	rec.Observe(w)
	rec.Observe(w)

	summary, err := rec.Summary()
	require.NoError(t, err)
	assert.Equal(t, 2.0, summary["pewpewpew_frames_total"])
	assert.Equal(t, 2.0, summary["pewpewpew_spawns_total"])
	assert.Equal(t, 1.0, summary["pewpewpew_collisions_total"])
	assert.Equal(t, 2.0, summary["pewpewpew_entities"])

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.spawns.WithLabelValues("sine")))
	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}

func TestSystemRunsLast(t *testing.T) {
	rec := NewRecorder()
	game := engine.NewGame(engine.NewWorld(10, 10, engine.NewConstRandom(0, 0)))
	s := NewSystem(rec)
	game.AddSystem(s)

	game.Step(core.Vec2{})

	assert.Greater(t, s.Priority(), 40)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.frames))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.entities))
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pewpewpew/config"
	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
	"github.com/lixenwraith/pewpewpew/metrics"
)

func TestResolveConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("backend = \"window\"\nseed = 7\n"), 0644))

	cfg, err := resolveConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.BackendWindow, cfg.Backend)
	assert.Equal(t, uint64(7), cfg.Seed)

	// Explicit flags win over the file
	*backendFlag = config.BackendTerminal
	t.Cleanup(func() { *backendFlag = config.BackendTerminal })
	cfg, err = resolveConfig(path, map[string]bool{"backend": true})
	require.NoError(t, err)
	assert.Equal(t, config.BackendTerminal, cfg.Backend)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestResolveConfigRejectsBadFlag(t *testing.T) {
	*colorFlag = "sepia"
	t.Cleanup(func() { *colorFlag = "auto" })

	_, err := resolveConfig("", map[string]bool{"color": true})
	assert.ErrorIs(t, err, config.ErrUnknownColorMode)
}

func TestNewGameWiresMetrics(t *testing.T) {
	restoreLog(t)
	setupLogging(t.TempDir(), false)

	rng := engine.NewConstRandom(999, 0)
	world := engine.NewPopulatedWorld(800, 600, rng)
	rec := metrics.NewRecorder()
	game := newGame(world, rec)

	game.Step(core.Vec2{X: 200, Y: 100})

	summary, err := rec.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1.0, summary["pewpewpew_frames_total"])
	assert.Equal(t, 1.0, summary["pewpewpew_spawns_total"])
	assert.Equal(t, 3.0, summary["pewpewpew_entities"])
	assert.Len(t, game.Systems(), 5)
}

func TestNewRandom(t *testing.T) {
	a, b := newRandom(5), newRandom(5)
	assert.Equal(t, a.Intn(1000), b.Intn(1000))
	assert.NotNil(t, newRandom(0))
}

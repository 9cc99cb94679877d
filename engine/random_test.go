package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	assert.NotZero(t, r.Next(), "zero seed must not lock the generator")
}

func TestFastRandRangeBounds(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"Spawn roll", 0, 1000},
		{"Symmetric speed", -1, 1},
		{"Unit", 0, 1},
	}

	r := NewFastRand(7)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				v := r.Range(tt.lo, tt.hi)
				require.GreaterOrEqual(t, v, tt.lo)
				require.Less(t, v, tt.hi)
			}
		})
	}
}

func TestFastRandIntn(t *testing.T) {
	r := NewFastRand(99)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Intn(3)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3, "all enemy strategies reachable")
	assert.Zero(t, r.Intn(0))
	assert.Zero(t, r.Intn(-5))
}

func TestScriptedRandomWraps(t *testing.T) {
	r := &ScriptedRandom{Floats: []float64{1, 2}, Ints: []int{5}}
	assert.Equal(t, 1.0, r.Range(0, 10))
	assert.Equal(t, 2.0, r.Range(0, 10))
	assert.Equal(t, 1.0, r.Range(0, 10))
	assert.Equal(t, 3, r.RangeCalls())
	assert.Equal(t, 5, r.Intn(3))

	empty := &ScriptedRandom{}
	assert.Equal(t, -4.0, empty.Range(-4, 4))
	assert.Zero(t, empty.Intn(3))
}

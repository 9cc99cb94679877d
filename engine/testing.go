package engine

// ScriptedRandom replays fixed samples for deterministic tests
// Range returns the next scripted float (wrapping); Intn the next scripted int
type ScriptedRandom struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// NewConstRandom returns a source that always yields f for Range and i for Intn
func NewConstRandom(f float64, i int) *ScriptedRandom {
	return &ScriptedRandom{Floats: []float64{f}, Ints: []int{i}}
}

// Range ignores the bounds and returns the next scripted value
func (r *ScriptedRandom) Range(lo, hi float64) float64 {
	if len(r.Floats) == 0 {
		return lo
	}
	v := r.Floats[r.fi%len(r.Floats)]
	r.fi++
	return v
}

// Intn returns the next scripted integer
func (r *ScriptedRandom) Intn(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ii%len(r.Ints)]
	r.ii++
	return v
}

// RangeCalls reports how many floats were drawn
func (r *ScriptedRandom) RangeCalls() int {
	return r.fi
}

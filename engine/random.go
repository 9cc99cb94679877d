package engine

import "time"

// Random is the uniform sampling source consumed by the simulation
type Random interface {
	// Range returns a uniform sample in [lo, hi)
	Range(lo, hi float64) float64
	// Intn returns a uniform integer in [0, n)
	Intn(n int) int
}

// FastRand is a xorshift64 generator (13, 17, 5)
// Not safe for concurrent use; the frame loop owns it
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator; a zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeSeededRand seeds from the wall clock
func NewTimeSeededRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

// Next advances the state
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform sample in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform sample in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Intn returns a uniform integer in [0, n), 0 for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

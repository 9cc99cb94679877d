package component

import (
	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
)

// TrailPoint is one after-image: where the UFO was and what color it had
type TrailPoint struct {
	Pos   core.Vec2
	Color core.Color
}

// Trail is a bounded FIFO of after-images backed by a ring buffer
// Oldest entries are evicted first once capacity is reached
type Trail struct {
	points []TrailPoint
	head   int // index of the oldest point
	count  int
}

// NewTrail creates a trail holding at most capacity points
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{points: make([]TrailPoint, capacity)}
}

// NewDefaultTrail creates a trail with the standard after-image capacity
func NewDefaultTrail() *Trail {
	return NewTrail(constant.TrailCapacity)
}

// Push appends a point, evicting the oldest one when full
func (t *Trail) Push(p TrailPoint) {
	capacity := len(t.points)
	if t.count < capacity {
		t.points[(t.head+t.count)%capacity] = p
		t.count++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % capacity
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the maximum number of stored points
func (t *Trail) Cap() int {
	return len(t.points)
}

// At returns the i-th point, 0 being the oldest
func (t *Trail) At(i int) TrailPoint {
	if i < 0 || i >= t.count {
		panic("trail index out of range")
	}
	return t.points[(t.head+i)%len(t.points)]
}

// Each visits points oldest first
func (t *Trail) Each(fn func(TrailPoint)) {
	for i := 0; i < t.count; i++ {
		fn(t.points[(t.head+i)%len(t.points)])
	}
}

// Points returns a copy of the stored points, oldest first
func (t *Trail) Points() []TrailPoint {
	out := make([]TrailPoint, 0, t.count)
	t.Each(func(p TrailPoint) {
		out = append(out, p)
	})
	return out
}

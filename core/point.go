package core

import "math"

// Vec2 is a position or velocity in world units
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Point is an integer grid coordinate (terminal cell)
type Point struct {
	X, Y int
}

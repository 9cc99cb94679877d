package render

import "github.com/lixenwraith/pewpewpew/core"

// Canvas is the drawing surface a backend exposes to the renderer
// Coordinates are world units
type Canvas interface {
	Clear()
	FillCircle(center core.Vec2, radius float64, c core.Color)
	// FillPolygon draws a regular polygon; rotation is in degrees
	FillPolygon(center core.Vec2, sides int, radius, rotation float64, c core.Color)
}

package render

import (
	"math"

	"github.com/lixenwraith/pewpewpew/core"
)

// PolygonVertices returns the vertices of a regular polygon, counter-clockwise in screen space
// Vertex 0 sits at angle = rotation (degrees) from the +x axis
func PolygonVertices(center core.Vec2, sides int, radius, rotation float64) []core.Vec2 {
	if sides < 3 {
		sides = 3
	}
	verts := make([]core.Vec2, sides)
	rot := rotation * math.Pi / 180
	step := 2 * math.Pi / float64(sides)
	for i := range verts {
		a := rot + step*float64(i)
		verts[i] = core.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return verts
}

// InConvexPolygon reports whether p lies inside or on the edge of a convex polygon
// Works for either winding
func InConvexPolygon(p core.Vec2, verts []core.Vec2) bool {
	if len(verts) < 3 {
		return false
	}
	var pos, neg bool
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// InCircle reports whether p lies inside or on the circle
func InCircle(p, center core.Vec2, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy <= radius*radius
}

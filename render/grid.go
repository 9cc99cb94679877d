package render

import (
	"math"

	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/core"
)

// GridCanvas rasterizes world-space shapes onto a RenderBuffer
// A cell is painted when its center lies inside the shape; a shape covering
// no cell center still paints the cell holding its own center
type GridCanvas struct {
	buf        *RenderBuffer
	cellWidth  float64
	cellHeight float64
}

// NewGridCanvas binds a buffer with the world size of one cell
func NewGridCanvas(buf *RenderBuffer, cellWidth, cellHeight float64) *GridCanvas {
	return &GridCanvas{buf: buf, cellWidth: cellWidth, cellHeight: cellHeight}
}

// Buffer returns the backing buffer
func (g *GridCanvas) Buffer() *RenderBuffer {
	return g.buf
}

// WorldSize returns the buffer extent in world units
func (g *GridCanvas) WorldSize() (float64, float64) {
	w, h := g.buf.Size()
	return float64(w) * g.cellWidth, float64(h) * g.cellHeight
}

// CellAt maps a world position to the cell containing it
func (g *GridCanvas) CellAt(p core.Vec2) core.Point {
	return core.Point{
		X: int(math.Floor(p.X / g.cellWidth)),
		Y: int(math.Floor(p.Y / g.cellHeight)),
	}
}

// CellCenter maps a cell to the world position of its center
func (g *GridCanvas) CellCenter(c core.Point) core.Vec2 {
	return core.Vec2{
		X: (float64(c.X) + 0.5) * g.cellWidth,
		Y: (float64(c.Y) + 0.5) * g.cellHeight,
	}
}

// Clear empties the buffer
func (g *GridCanvas) Clear() {
	g.buf.Clear()
}

// FillCircle paints cells whose centers fall inside the circle
func (g *GridCanvas) FillCircle(center core.Vec2, radius float64, c core.Color) {
	g.fill(center, radius, c, func(p core.Vec2) bool {
		return InCircle(p, center, radius)
	})
}

// FillPolygon paints cells whose centers fall inside the regular polygon
func (g *GridCanvas) FillPolygon(center core.Vec2, sides int, radius, rotation float64, c core.Color) {
	verts := PolygonVertices(center, sides, radius, rotation)
	g.fill(center, radius, c, func(p core.Vec2) bool {
		return InConvexPolygon(p, verts)
	})
}

// fill scans the bounding box of a shape of given extent around center
func (g *GridCanvas) fill(center core.Vec2, extent float64, c core.Color, inside func(core.Vec2) bool) {
	fg := c.RGB()
	minCell := g.CellAt(core.Vec2{X: center.X - extent, Y: center.Y - extent})
	maxCell := g.CellAt(core.Vec2{X: center.X + extent, Y: center.Y + extent})

	painted := false
	for y := minCell.Y; y <= maxCell.Y; y++ {
		for x := minCell.X; x <= maxCell.X; x++ {
			cell := core.Point{X: x, Y: y}
			if inside(g.CellCenter(cell)) {
				g.buf.Set(x, y, constant.FillRune, fg)
				painted = true
			}
		}
	}

	if !painted {
		home := g.CellAt(center)
		g.buf.Set(home.X, home.Y, constant.FillRune, fg)
	}
}

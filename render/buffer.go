package render

import "github.com/lixenwraith/pewpewpew/core"

// Cell is one terminal character cell
type Cell struct {
	Rune rune
	Fg   core.RGB
}

// RenderBuffer is a cell grid with touched tracking, flushed to a backend once per frame
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns the grid dimensions in cells
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set overwrites a cell; later writes win. Out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg}
	b.touched[idx] = true
}

// Get returns the cell and whether it was written this frame
func (b *RenderBuffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	idx := y*b.width + x
	return b.cells[idx], b.touched[idx]
}

// EachTouched visits written cells in row-major order
func (b *RenderBuffer) EachTouched(fn func(x, y int, c Cell)) {
	for i, ok := range b.touched {
		if ok {
			fn(i%b.width, i/b.width, b.cells[i])
		}
	}
}

// SetString writes s starting at (x, y), clipped to the row
func (b *RenderBuffer) SetString(x, y int, s string, fg core.RGB) {
	for _, r := range s {
		b.Set(x, y, r, fg)
		x++
	}
}

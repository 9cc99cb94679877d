package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/render"
)

var (
	bgStyle     = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusColor = core.RGB{R: 200, G: 200, B: 200}
)

// Screen adapts a tcell screen to the simulation's display/input surface
// World units are pixels; each cell covers cellWidth x cellHeight of them
type Screen struct {
	screen  tcell.Screen
	buf     *render.RenderBuffer
	canvas  *render.GridCanvas
	pointer core.Vec2
	status  string
}

// Open creates and initializes the process terminal
func Open(mode ColorMode, cellWidth, cellHeight int) (*Screen, error) {
	applyColorMode(mode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, cellWidth, cellHeight), nil
}

// New wraps an already initialized tcell screen
func New(screen tcell.Screen, cellWidth, cellHeight int) *Screen {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(bgStyle)

	cols, rows := screen.Size()
	buf := render.NewRenderBuffer(cols, rows)
	s := &Screen{
		screen: screen,
		buf:    buf,
		canvas: render.NewGridCanvas(buf, float64(cellWidth), float64(cellHeight)),
	}
	w, h := s.Size()
	s.pointer = core.Vec2{X: w / 2, Y: h / 2}
	return s
}

// Size returns the visible area in world units
func (s *Screen) Size() (float64, float64) {
	return s.canvas.WorldSize()
}

// Pointer returns the last mouse position as the center of the hovered cell
func (s *Screen) Pointer() core.Vec2 {
	return s.pointer
}

// Canvas returns the rasterizing canvas for the current frame
func (s *Screen) Canvas() render.Canvas {
	return s.canvas
}

// Buffer exposes the cell buffer for inspection
func (s *Screen) Buffer() *render.RenderBuffer {
	return s.buf
}

// SetStatus sets the text drawn on the bottom row at the next Show
func (s *Screen) SetStatus(text string) {
	s.status = text
}

// HandleEvent consumes one tcell event and reports whether the user asked to quit
func (s *Screen) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			return r == 'q' || (r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.pointer = s.canvas.CellCenter(core.Point{X: x, Y: y})
	case *tcell.EventResize:
		s.resize()
	}
	return false
}

func (s *Screen) resize() {
	cols, rows := s.screen.Size()
	s.buf.Resize(cols, rows)
	s.screen.Sync()
}

// Show flushes the cell buffer and status line to the terminal
func (s *Screen) Show() {
	s.screen.Clear()
	s.buf.EachTouched(func(x, y int, c render.Cell) {
		style := bgStyle.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
		s.screen.SetContent(x, y, c.Rune, nil, style)
	})

	if s.status != "" {
		_, rows := s.buf.Size()
		style := bgStyle.Foreground(tcell.NewRGBColor(int32(statusColor.R), int32(statusColor.G), int32(statusColor.B)))
		x := 0
		for _, r := range s.status {
			s.screen.SetContent(x, rows-1, r, nil, style)
			x++
		}
	}
	s.screen.Show()
}

// PollEvent blocks for the next event; nil after Fini
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Fini restores the terminal
func (s *Screen) Fini() {
	s.screen.Fini()
}

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pewpewpew/constant"
	"github.com/lixenwraith/pewpewpew/engine"
	"github.com/lixenwraith/pewpewpew/render"
)

// Frame runs one simulation step with the current pointer and draws the result
func (s *Screen) Frame(game *engine.Game) {
	game.Step(s.pointer)
	render.DrawFrame(s.canvas, game.World.Ufos)
	s.status = fmt.Sprintf(" ufos: %d  frame: %d  [Esc] quit ", len(game.World.Ufos), game.World.Frame)
	s.Show()
}

// Run drives the game at the given interval until the user quits or input closes
// Only this goroutine touches the world; the poller only forwards events
func (s *Screen) Run(game *engine.Game, interval time.Duration) {
	if interval <= 0 {
		interval = constant.FrameUpdateInterval
	}
	s.syncWorldSize(game.World)

	eventCh := make(chan tcell.Event, constant.EventQueueSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		defer close(eventCh)

		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			if s.HandleEvent(ev) {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				s.syncWorldSize(game.World)
			}

		case <-ticker.C:
			s.Frame(game)
		}
	}
}

func (s *Screen) syncWorldSize(w *engine.World) {
	width, height := s.Size()
	w.Resize(width, height)
}

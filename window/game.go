package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/pewpewpew/core"
	"github.com/lixenwraith/pewpewpew/engine"
	"github.com/lixenwraith/pewpewpew/render"
)

// Game adapts the simulation to ebiten's Update/Draw/Layout cycle
// ebiten calls all three on one goroutine, so the world needs no locking
type Game struct {
	game   *engine.Game
	width  int
	height int
}

// NewGame wraps a simulation for an ebiten window of the given logical size
func NewGame(game *engine.Game, width, height int) *Game {
	return &Game{game: game, width: width, height: height}
}

// Update runs one frame with the cursor as the pointer
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	g.game.Step(core.Vec2{X: float64(x), Y: float64(y)})
	return nil
}

// Draw renders the world
func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawFrame(&imageCanvas{dst: screen}, g.game.World.Ufos)
}

// Layout keeps one world unit per window pixel and tracks resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.game.World.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or Escape is pressed
func Run(game *engine.Game, width, height int, title string) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game.World.Resize(float64(width), float64(height))
	if err := ebiten.RunGame(NewGame(game, width, height)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

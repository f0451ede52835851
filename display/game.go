package display

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/playground"
)

// Game adapts a playground.State to ebiten.Game. Update resolves input and
// steps the simulation; Draw paints the frame.
type Game struct {
	State    *playground.State
	Input    playground.InputSource
	Renderer *Renderer
}

// Update runs one playground tick. It returns ebiten.Termination once the
// input source reports quit.
func (g *Game) Update() error {
	if g.State.Tick(g.Input.Drain(), g.Input.Pointer()) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Target = screen
	g.State.Draw(g.Renderer)
}

// Layout keeps the logical screen at the playground's fixed size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.State.Size()
}

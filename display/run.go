package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/playground"
)

// Options configures Run beyond what playground.Config carries.
type Options struct {
	// Script, when set, replaces live mouse input with a scripted session.
	// Its screenshot steps capture PNGs from the window.
	Script *playground.Script
}

// Run opens the window and blocks until the playground quits. Font loading
// and window creation failures are returned before the first tick.
func Run(state *playground.State, cfg playground.Config, opts Options) error {
	face, err := LoadDefaultFace()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	r := NewRenderer(face, cfg.ScreenshotDir)
	r.shots.logf = state.Logf
	r.ShowFPS(cfg.ShowFPS)

	var input playground.InputSource
	if opts.Script != nil {
		opts.Script.OnScreenshot = r.Screenshot
		input = opts.Script
	} else {
		input = &Input{OnScreenshot: r.Screenshot}
	}

	w, h := state.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(playground.WindowTitle)
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowClosingHandled(true)

	g := &Game{State: state, Input: input, Renderer: r}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	for _, path := range r.shots.written {
		state.Logf("screenshot written: %s", path)
	}
	return nil
}

// Command playground opens the physics playground window, or replays a
// session script headlessly.
//
//	playground                         # interactive window
//	playground --hand-size 7 --fps     # wider hand with FPS overlay
//	playground --script s.json --headless --screenshots out/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/playground"
	"github.com/phanxgames/playground/display"
	"github.com/phanxgames/playground/ecs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	cfg        playground.Config
	scriptPath string
	headless   bool
}

func newRootCmd() *cobra.Command {
	opts := options{cfg: playground.DefaultConfig()}
	l := &opts.cfg.Layout

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Drag cards around and watch them fall",
		Long: `Playground deals a hand of coloured cards that can be dragged with the
mouse. Released cards fall under gravity until they rest on the bottom of
the window. The "Reset Hand" button restores the starting layout.

With --script the session is driven by a JSON script instead of the mouse;
add --headless to run it without a window.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&l.HandSize, "hand-size", l.HandSize, "number of cards in the hand")
	f.Float64Var(&l.CardWidth, "card-width", l.CardWidth, "card width in pixels")
	f.Float64Var(&l.CardHeight, "card-height", l.CardHeight, "card height in pixels")
	f.Float64Var(&l.Spacing, "spacing", l.Spacing, "horizontal gap between cards")
	f.Float64Var(&l.OriginX, "origin-x", l.OriginX, "x position of the first card")
	f.Float64Var(&l.OriginY, "origin-y", l.OriginY, "y position of the first card")
	f.Uint64Var(&opts.cfg.Seed, "seed", 0, "color seed (0 = random)")
	f.BoolVar(&opts.cfg.Debug, "debug", false, "log per-second tick statistics and card events")
	f.BoolVar(&opts.cfg.ShowFPS, "fps", false, "show the FPS/TPS overlay")
	f.StringVar(&opts.cfg.ScreenshotDir, "screenshots", opts.cfg.ScreenshotDir, "directory for screenshots")
	f.StringVar(&opts.scriptPath, "script", "", "JSON session script to replay")
	f.BoolVar(&opts.headless, "headless", false, "replay --script without opening a window")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if opts.headless && opts.scriptPath == "" {
		return fmt.Errorf("--headless requires --script")
	}

	state, err := playground.NewState(opts.cfg)
	if err != nil {
		return err
	}

	world := donburi.NewWorld()
	tally := &ecs.Tally{}
	tally.Attach(world)
	if opts.cfg.Debug {
		ecs.CardEventType.Subscribe(world, func(_ donburi.World, e playground.CardEvent) {
			state.Logf("tick %d: %s card#%d at (%.1f, %.1f)", e.Tick, e.Type, e.CardID, e.X, e.Y)
		})
	}
	state.SetEventSink(ecs.NewImmediateSink(world))

	var script *playground.Script
	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = playground.LoadScript(data); err != nil {
			return err
		}
	}

	if opts.headless {
		err = runHeadless(state, opts.cfg, script)
	} else {
		err = display.Run(state, opts.cfg, display.Options{Script: script})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ticks: %d, picked: %d, dropped: %d, landed: %d, resets: %d\n",
		state.Ticks(),
		tally.Count(playground.CardPicked),
		tally.Count(playground.CardDropped),
		tally.Count(playground.CardLanded),
		tally.Count(playground.HandReset))
	return nil
}

func runHeadless(state *playground.State, cfg playground.Config, script *playground.Script) error {
	rec := playground.NewRecorder(cfg.ScreenshotDir, state.Logf)
	script.OnScreenshot = rec.Screenshot
	loop := playground.Loop{State: state, Input: script, Renderer: rec, Clock: playground.NopClock{}}
	if err := loop.Run(); err != nil {
		return err
	}
	for _, path := range rec.Written() {
		state.Logf("screenshot written: %s", path)
	}
	return nil
}

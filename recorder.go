package playground

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DrawOp is one recorded drawing call.
type DrawOp struct {
	Kind   string  `json:"kind"` // "clear", "rect" or "text"
	Bounds Rect    `json:"bounds,omitzero"`
	Color  Color   `json:"color"`
	Radius float64 `json:"radius,omitempty"`
	Text   string  `json:"text,omitempty"`
	Anchor Vec2    `json:"anchor,omitzero"`
}

// Recorder is a Renderer that keeps the draw calls of the last presented
// frame instead of painting pixels. Headless runs and tests draw into it.
type Recorder struct {
	// Dir is where screenshots are written. Screenshots are JSON dumps of
	// the frame's draw calls.
	Dir string

	pending []DrawOp
	last    []DrawOp
	frames  int
	queue   []string
	written []string
	errOut  func(format string, args ...any)
}

// NewRecorder returns a Recorder writing screenshots to dir and reporting
// write failures through logf (nil discards them).
func NewRecorder(dir string, logf func(format string, args ...any)) *Recorder {
	return &Recorder{Dir: dir, errOut: logf}
}

func (r *Recorder) Clear(c Color) {
	r.pending = append(r.pending[:0], DrawOp{Kind: "clear", Color: c})
}

func (r *Recorder) DrawRect(bounds Rect, c Color, cornerRadius float64) {
	r.pending = append(r.pending, DrawOp{Kind: "rect", Bounds: bounds, Color: c, Radius: cornerRadius})
}

func (r *Recorder) DrawText(text string, c Color, anchor Vec2) {
	r.pending = append(r.pending, DrawOp{Kind: "text", Text: text, Color: c, Anchor: anchor})
}

// Present publishes the pending frame and writes any queued screenshots.
func (r *Recorder) Present() {
	r.last = append(r.last[:0], r.pending...)
	r.pending = r.pending[:0]
	r.frames++
	r.flushScreenshots()
}

// Frame returns the draw calls of the last presented frame.
func (r *Recorder) Frame() []DrawOp {
	return r.last
}

// Frames returns how many frames have been presented.
func (r *Recorder) Frames() int {
	return r.frames
}

// Screenshot queues a labeled capture of the next presented frame.
func (r *Recorder) Screenshot(label string) {
	r.queue = append(r.queue, label)
}

// Written returns the paths of every screenshot written so far.
func (r *Recorder) Written() []string {
	return r.written
}

func (r *Recorder) flushScreenshots() {
	if len(r.queue) == 0 {
		return
	}
	defer func() { r.queue = r.queue[:0] }()

	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		r.logf("screenshot: mkdir %s: %v", r.Dir, err)
		return
	}
	data, err := json.MarshalIndent(r.last, "", "  ")
	if err != nil {
		r.logf("screenshot: %v", err)
		return
	}
	now := time.Now()
	for _, label := range r.queue {
		path := ScreenshotPath(r.Dir, label, "json", now)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			r.logf("screenshot: %v", fmt.Errorf("write %s: %w", path, err))
			continue
		}
		r.written = append(r.written, path)
	}
}

func (r *Recorder) logf(format string, args ...any) {
	if r.errOut != nil {
		r.errOut(format, args...)
	}
}

package display

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/playground"
)

// LoadFace loads the label font from raw TTF/OTF data at the given size.
func LoadFace(ttfData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("display: failed to parse TTF data: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// LoadDefaultFace loads Go Regular at the playground label size.
func LoadDefaultFace() (*text.GoTextFace, error) {
	return LoadFace(goregular.TTF, playground.LabelSize*0.75)
}

// Renderer paints playground frames onto an ebiten.Image. Target must be set
// before each frame; Game does this from Draw.
type Renderer struct {
	Target *ebiten.Image
	Face   *text.GoTextFace

	fps   *fpsOverlay
	shots *screenshotQueue
}

// NewRenderer creates a renderer using face for all text.
func NewRenderer(face *text.GoTextFace, screenshotDir string) *Renderer {
	return &Renderer{
		Face:  face,
		shots: &screenshotQueue{dir: screenshotDir},
	}
}

// ShowFPS enables or disables the FPS/TPS overlay.
func (r *Renderer) ShowFPS(enabled bool) {
	if enabled && r.fps == nil {
		r.fps = newFPSOverlay()
	} else if !enabled {
		r.fps = nil
	}
}

// Screenshot queues a labeled PNG capture of the next presented frame.
func (r *Renderer) Screenshot(label string) {
	r.shots.add(label)
}

func (r *Renderer) Clear(c playground.Color) {
	r.Target.Fill(c.RGBA())
}

// DrawRect fills bounds with rounded corners. The radius is capped at half
// the shorter side.
func (r *Renderer) DrawRect(bounds playground.Rect, c playground.Color, cornerRadius float64) {
	clr := c.RGBA()
	x, y := float32(bounds.X), float32(bounds.Y)
	w, h := float32(bounds.Width), float32(bounds.Height)
	rad := float32(min(cornerRadius, bounds.Width/2, bounds.Height/2))
	if rad <= 0 {
		vector.DrawFilledRect(r.Target, x, y, w, h, clr, false)
		return
	}
	vector.DrawFilledRect(r.Target, x+rad, y, w-2*rad, h, clr, false)
	vector.DrawFilledRect(r.Target, x, y+rad, rad, h-2*rad, clr, false)
	vector.DrawFilledRect(r.Target, x+w-rad, y+rad, rad, h-2*rad, clr, false)
	vector.DrawFilledCircle(r.Target, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(r.Target, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(r.Target, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(r.Target, x+w-rad, y+h-rad, rad, clr, true)
}

// DrawText draws s centred on anchor.
func (r *Renderer) DrawText(s string, c playground.Color, anchor playground.Vec2) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(anchor.X, anchor.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(r.Target, s, r.Face, op)
}

// Present draws the overlay and writes queued screenshots. Ebitengine
// itself flips the frame once Draw returns.
func (r *Renderer) Present() {
	if r.fps != nil {
		r.fps.draw(r.Target)
	}
	r.shots.flush(r.Target)
}

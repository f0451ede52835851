package display

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/playground"
)

// screenshotQueue holds labels waiting for the next presented frame.
type screenshotQueue struct {
	dir     string
	labels  []string
	written []string
	logf    func(format string, args ...any)
}

func (q *screenshotQueue) add(label string) {
	q.labels = append(q.labels, label)
}

// flush captures the rendered frame for every queued label and writes each
// as a PNG file.
func (q *screenshotQueue) flush(screen *ebiten.Image) {
	if len(q.labels) == 0 {
		return
	}
	defer func() { q.labels = q.labels[:0] }()

	if err := os.MkdirAll(q.dir, 0o755); err != nil {
		q.report("screenshot: mkdir %s: %v", q.dir, err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := toNRGBA(pixels, w, h)

	now := time.Now()
	for _, label := range q.labels {
		path := playground.ScreenshotPath(q.dir, label, "png", now)
		if err := writePNG(path, img); err != nil {
			q.report("screenshot: %v", err)
			continue
		}
		q.written = append(q.written, path)
	}
}

func (q *screenshotQueue) report(format string, args ...any) {
	if q.logf != nil {
		q.logf(format, args...)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[playground] "+format+"\n", args...)
}

// toNRGBA converts premultiplied RGBA pixels to a straight-alpha image.
func toNRGBA(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

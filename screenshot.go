package playground

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ScreenshotPath builds the file name for a labeled capture:
// <dir>/<YYYYMMDD_HHMMSS>_<label>.<ext>.
func ScreenshotPath(dir, label, ext string, at time.Time) string {
	stamp := at.Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", stamp, sanitizeLabel(label), ext))
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"numlab/internal/models"
)

// Heatmap renders a scalar field as a 16-bit grayscale image. Values are
// normalized linearly so the field minimum maps to black and the maximum to
// white; a constant field renders as mid-gray. Row j of the field becomes
// image row N-1-j, so increasing y points up as in the course plots.
func Heatmap(field models.Field) (image.Image, error) {
	n := field.N
	if n <= 0 || len(field.Values) != n*n {
		return nil, fmt.Errorf("field has %d values, want %d for an %dx%d grid", len(field.Values), n*n, n, n)
	}

	lo, hi := field.Values[0], field.Values[0]
	for _, v := range field.Values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	img := image.NewGray16(image.Rect(0, 0, n, n))
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			t := 0.5
			if hi > lo {
				t = (field.At(i, j) - lo) / (hi - lo)
			}
			img.SetGray16(i, n-1-j, color.Gray16{Y: uint16(t * 65535)})
		}
	}
	return img, nil
}

// SaveHeatmap renders the field and writes it to path as a PNG, creating
// parent directories as needed.
func SaveHeatmap(field models.Field, path string) error {
	img, err := Heatmap(field)
	if err != nil {
		return fmt.Errorf("failed to render heatmap: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode image: %v", err)
	}
	return nil
}

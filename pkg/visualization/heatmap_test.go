package visualization

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"numlab/internal/models"
)

// TestHeatmapNormalization renders a small gradient field and checks the
// extreme pixels and the vertical flip.
func TestHeatmapNormalization(t *testing.T) {
	// 2x2 field: minimum at (0,0), maximum at (1,1).
	field := models.Field{N: 2, Values: []float64{-1, 0, 0, 3}}

	img, err := Heatmap(field)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Field row j=0 lands in image row 1 (y up).
	if got := img.At(0, 1).(color.Gray16).Y; got != 0 {
		t.Errorf("minimum pixel = %d, want 0", got)
	}
	if got := img.At(1, 0).(color.Gray16).Y; got != 65535 {
		t.Errorf("maximum pixel = %d, want 65535", got)
	}
}

// TestHeatmapConstantField maps a flat field to mid-gray instead of
// dividing by zero.
func TestHeatmapConstantField(t *testing.T) {
	field := models.Field{N: 2, Values: []float64{7, 7, 7, 7}}
	img, err := Heatmap(field)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := img.At(0, 0).(color.Gray16).Y
	if got < 32000 || got > 33600 {
		t.Errorf("constant field pixel = %d, want mid-gray", got)
	}
}

// TestHeatmapRejectsBadField covers the dimension check.
func TestHeatmapRejectsBadField(t *testing.T) {
	if _, err := Heatmap(models.Field{N: 3, Values: make([]float64, 4)}); err == nil {
		t.Errorf("Heatmap accepted a mis-sized field")
	}
}

// TestSaveHeatmap writes a PNG and decodes it back.
func TestSaveHeatmap(t *testing.T) {
	field := models.Field{N: 2, Values: []float64{0, 1, 2, 3}}
	path := filepath.Join(t.TempDir(), "out", "solution.png")

	if err := SaveHeatmap(field, path); err != nil {
		t.Fatalf("SaveHeatmap failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written file is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("decoded image is %dx%d, want 2x2", b.Dx(), b.Dy())
	}
}

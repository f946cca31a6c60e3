package images

import (
	"image"
	"testing"
)

func rgb8(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func sample(img image.Image, x, y int) [3]uint8 {
	r, g, b := rgb8(img, x, y)
	return [3]uint8{r, g, b}
}

// assertGrayNear checks the pixel is neutral gray within a small tolerance,
// absorbing anti-aliasing and rounding in the rasterizer.
func assertGrayNear(t *testing.T, img image.Image, x, y int, want uint8, tol int) {
	t.Helper()
	r, g, b := rgb8(img, x, y)
	if r != g || g != b {
		t.Errorf("pixel (%d,%d) not gray: %d,%d,%d", x, y, r, g, b)
		return
	}
	diff := int(r) - int(want)
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		t.Errorf("pixel (%d,%d) gray %d, want %d±%d", x, y, r, want, tol)
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	img := Checkerboard(64, 64)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Fatalf("bounds %v", img.Bounds())
	}

	// Sample cell centers: (0,0) light, one cell right dark, the diagonal
	// neighbor light again.
	light := sample(img, 8, 8)
	dark := sample(img, 24, 8)
	diag := sample(img, 24, 24)

	if light == dark {
		t.Error("adjacent cells share a color; no checker pattern")
	}
	if light != diag {
		t.Errorf("diagonal cells differ: %v vs %v", light, diag)
	}
	if light[0] <= dark[0] {
		t.Errorf("expected the first cell to be the lighter one: %v vs %v", light, dark)
	}

	// Two cells over repeats the first color.
	if rep := sample(img, 8+2*checkerCell, 8); rep != light {
		t.Errorf("pattern does not repeat with period %d", 2*checkerCell)
	}
}

func TestCheckerboardClampsTinySizes(t *testing.T) {
	img := Checkerboard(0, -5)
	if img.Bounds().Dx() < 1 || img.Bounds().Dy() < 1 {
		t.Errorf("expected at least one pixel, got %v", img.Bounds())
	}
}

func TestBrokenPlaceholderMarks(t *testing.T) {
	img := BrokenPlaceholder(64, 64)

	// The cross meets in the middle.
	assertGrayNear(t, img, 32, 32, 128, 14)
	// The frame runs along the top edge.
	assertGrayNear(t, img, 32, 1, 128, 14)
	// Off the cross and frame the panel shows through.
	assertGrayNear(t, img, 32, 8, 230, 10)
}

func TestBrokenPlaceholderClampsTinySizes(t *testing.T) {
	img := BrokenPlaceholder(1, 1)
	if img.Bounds().Dx() < 4 || img.Bounds().Dy() < 4 {
		t.Errorf("expected clamped minimum size, got %v", img.Bounds())
	}
}

package imageutil

import "testing"

func TestResizeDimensions(t *testing.T) {
	img := NewRGBAImage(100, 60)

	resized := Resize(img, 50, 30, InterpolationArea)
	if resized.Width() != 50 || resized.Height() != 30 {
		t.Errorf("Expected 50x30, got %dx%d", resized.Width(), resized.Height())
	}

	up := Resize(img, 200, 120, InterpolationLinear)
	if up.Width() != 200 || up.Height() != 120 {
		t.Errorf("Expected 200x120, got %dx%d", up.Width(), up.Height())
	}
}

func TestResizeToWidthKeepsAspect(t *testing.T) {
	img := NewRGBAImage(100, 50)
	resized := ResizeToWidth(img, 40, InterpolationNearest)
	if resized.Width() != 40 || resized.Height() != 20 {
		t.Errorf("Expected 40x20, got %dx%d", resized.Width(), resized.Height())
	}
}

func TestResizeGridPreservesColorSet(t *testing.T) {
	a := RGB{R: 255}
	b := RGB{B: 255}
	g := CheckerboardGrid(8, 8, 2, a, b)

	small := ResizeGrid(g, 4, 4)
	if small.Rows() != 4 || small.Cols() != 4 {
		t.Fatalf("Expected 4x4, got %dx%d", small.Rows(), small.Cols())
	}

	// Nearest-neighbor sampling introduces no new colors, which is
	// what keeps the tile alphabet small after downscaling.
	allowed := map[RGB]bool{a: true, b: true}
	for i := range small {
		for j := range small[i] {
			if !allowed[small[i][j]] {
				t.Errorf("Cell (%d,%d) has interpolated color %v", i, j, small[i][j])
			}
		}
	}
}

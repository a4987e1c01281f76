package imageutil

import (
	"path/filepath"
	"testing"
)

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(3, 7)
	if g.Rows() != 3 || g.Cols() != 7 {
		t.Errorf("Expected 3x7, got %dx%d", g.Rows(), g.Cols())
	}

	var empty Grid
	if empty.Rows() != 0 || empty.Cols() != 0 {
		t.Error("Empty grid should report zero dimensions")
	}
}

func TestGridImageRoundTrip(t *testing.T) {
	g := NewGrid(4, 5)
	g[0][0] = RGB{R: 255}
	g[3][4] = RGB{B: 255}
	g[2][1] = RGB{R: 10, G: 20, B: 30}

	back := GridFromImage(ImageFromGrid(g))
	if back.Rows() != 4 || back.Cols() != 5 {
		t.Fatalf("Expected 4x5 after round trip, got %dx%d", back.Rows(), back.Cols())
	}
	for i := range g {
		for j := range g[i] {
			if back[i][j] != g[i][j] {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", i, j, g[i][j], back[i][j])
			}
		}
	}
}

func TestGridDistinctColors(t *testing.T) {
	g := CheckerboardGrid(4, 4, 1, RGB{R: 255}, RGB{B: 255})
	if n := g.DistinctColors(); n != 2 {
		t.Errorf("Expected 2 distinct colors, got %d", n)
	}

	solid := SolidGrid(3, 3, RGB{G: 128})
	if n := solid.DistinctColors(); n != 1 {
		t.Errorf("Expected 1 distinct color, got %d", n)
	}
}

func TestSaveLoadGridPNG(t *testing.T) {
	g := CheckerboardGrid(6, 8, 2, RGB{R: 200, G: 40, B: 40}, RGB{R: 240, G: 230, B: 200})
	path := filepath.Join(t.TempDir(), "sample.png")

	if err := SaveGrid(g, path); err != nil {
		t.Fatalf("SaveGrid failed: %v", err)
	}

	back, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	if back.Rows() != g.Rows() || back.Cols() != g.Cols() {
		t.Fatalf("Expected %dx%d, got %dx%d", g.Rows(), g.Cols(), back.Rows(), back.Cols())
	}
	for i := range g {
		for j := range g[i] {
			if back[i][j] != g[i][j] {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", i, j, g[i][j], back[i][j])
			}
		}
	}
}

func TestSaveGridEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	if err := SaveGrid(Grid{}, path); err == nil {
		t.Error("Expected error saving empty grid")
	}
}

package imageutil

import (
	"github.com/ojrac/opensimplex-go"
)

// Sample generators used by tests and by the driver's -gen mode.
// Each returns a grid with a small, known color set so the encoder
// produces a manageable tile alphabet.

// SolidGrid creates a grid filled with one color.
func SolidGrid(rows, cols int, c RGB) Grid {
	g := NewGrid(rows, cols)
	for i := range g {
		for j := range g[i] {
			g[i][j] = c
		}
	}
	return g
}

// CheckerboardGrid creates a two-color checkerboard with a at (0,0),
// alternating every squareSize cells.
func CheckerboardGrid(rows, cols, squareSize int, a, b RGB) Grid {
	g := NewGrid(rows, cols)
	for i := range g {
		for j := range g[i] {
			if ((i/squareSize)+(j/squareSize))%2 == 0 {
				g[i][j] = a
			} else {
				g[i][j] = b
			}
		}
	}
	return g
}

// StripeGrid creates horizontal stripes of the given colors, one row
// per color, repeating top to bottom.
func StripeGrid(rows, cols int, colors ...RGB) Grid {
	g := NewGrid(rows, cols)
	for i := range g {
		c := colors[i%len(colors)]
		for j := range g[i] {
			g[i][j] = c
		}
	}
	return g
}

// NoiseGrid creates an organic test sample from opensimplex noise,
// thresholded onto the given colors. scale controls feature size;
// values around 0.1 give blobs a few cells across. Deterministic for
// a fixed seed.
func NoiseGrid(rows, cols int, seed int64, scale float64, colors ...RGB) Grid {
	noise := opensimplex.NewNormalized(seed)
	g := NewGrid(rows, cols)
	for i := range g {
		for j := range g[i] {
			v := noise.Eval2(float64(j)*scale, float64(i)*scale)
			idx := int(v * float64(len(colors)))
			if idx >= len(colors) {
				idx = len(colors) - 1
			}
			g[i][j] = colors[idx]
		}
	}
	return g
}

package imageutil

// Grid is a row-major 2-D raster of RGB values with row 0 at the top.
// It is the surface the pattern encoder consumes and Decode produces.
type Grid [][]RGB

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// NewGrid allocates a rows×cols grid of zero (black) values.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]RGB, cols)
	}
	return g
}

// GridFromImage converts an image to a grid, dropping alpha.
func GridFromImage(img *RGBAImage) Grid {
	g := NewGrid(img.Height(), img.Width())
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			g[y][x] = img.GetRGB(x, y)
		}
	}
	return g
}

// ImageFromGrid converts a grid back to an image with opaque alpha.
func ImageFromGrid(g Grid) *RGBAImage {
	img := NewRGBAImage(g.Cols(), g.Rows())
	for y := range g {
		for x := range g[y] {
			img.SetRGB(x, y, g[y][x])
		}
	}
	return img
}

// DistinctColors counts the unique RGB values in the grid.
func (g Grid) DistinctColors() int {
	seen := make(map[uint32]struct{})
	for _, row := range g {
		for _, c := range row {
			seen[c.Packed()] = struct{}{}
		}
	}
	return len(seen)
}

package wfc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/wfc/imageutil"
)

// End-to-end over the image surface: encode a raster sample, collapse,
// decode back to pixels.

func TestPipelineSolidRed(t *testing.T) {
	red := imageutil.RGB{R: 255}
	sample := imageutil.SolidGrid(4, 4, red)

	var enc MatrixEncoder[imageutil.RGB]
	pat := enc.Fit([][]imageutil.RGB(sample), 2, false, false, false)

	require.Equal(t, 1, pat.Tiles())
	assert.Equal(t, []float64{1.0}, pat.Probs)
	for dir := 0; dir < 4; dir++ {
		assert.Equal(t, []int{0}, pat.Edges[0][dir])
	}

	wave, ok := Collapse(pat, 3, 3, rand.New(rand.NewSource(1)))
	require.True(t, ok, "single-tile patterns always collapse")

	decoded := imageutil.Grid(enc.Decode(wave))
	require.Equal(t, 4, decoded.Rows())
	require.Equal(t, 4, decoded.Cols())
	for i := range decoded {
		for j := range decoded[i] {
			assert.Equal(t, red, decoded[i][j], "(%d,%d)", i, j)
		}
	}
}

func TestPipelineCheckerboardImage(t *testing.T) {
	a := imageutil.RGB{R: 255}
	b := imageutil.RGB{B: 255}
	sample := imageutil.CheckerboardGrid(4, 4, 1, a, b)

	var enc MatrixEncoder[imageutil.RGB]
	pat := enc.Fit([][]imageutil.RGB(sample), 2, true, true, false)
	require.Equal(t, 2, pat.Tiles())

	wave, ok := Collapse(pat, 9, 9, rand.New(rand.NewSource(6)))
	require.True(t, ok)

	decoded := imageutil.Grid(enc.Decode(wave))
	require.Equal(t, 10, decoded.Rows())
	require.Equal(t, 10, decoded.Cols())
	assert.Equal(t, 2, decoded.DistinctColors())
	for i := range decoded {
		for j := range decoded[i] {
			want := decoded[0][0]
			if (i+j)%2 == 1 {
				if want == a {
					want = b
				} else {
					want = a
				}
			}
			assert.Equal(t, want, decoded[i][j], "(%d,%d)", i, j)
		}
	}
}

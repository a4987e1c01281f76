package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionInverse(t *testing.T) {
	tests := []struct {
		give Direction
		want Direction
	}{
		{Down, Up},
		{Up, Down},
		{Left, Right},
		{Right, Left},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.give.Inverse())
		assert.Equal(t, tt.give, tt.give.Inverse().Inverse())
	}
}

func TestDirectionOffsets(t *testing.T) {
	// Stepping in a direction and then in its inverse must cancel.
	for dir := Direction(0); dir < 4; dir++ {
		inv := dir.Inverse()
		assert.Zero(t, dirDn[dir]+dirDn[inv], "dn for %s", dir)
		assert.Zero(t, dirDm[dir]+dirDm[inv], "dm for %s", dir)
		assert.Equal(t, 1, abs(dirDn[dir])+abs(dirDm[dir]), "unit step for %s", dir)
	}
}

func TestPatternTiles(t *testing.T) {
	pat := &Pattern{
		Edges: make([][4][]int, 3),
		Probs: []float64{0.5, 0.25, 0.25},
	}
	assert.Equal(t, 3, pat.Tiles())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

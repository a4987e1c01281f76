package wfc

import "math"

// cell tracks the remaining possibilities for one output position.
// Cells monotonically lose possibilities over a collapse attempt; a
// possibility never comes back.
type cell struct {
	// possible[id] is true while tile id is still compatible with
	// every constraint seen so far. nPossible is its cardinality.
	possible  []bool
	nPossible int

	// nCompatible[dir][id] counts the tiles still possible in the
	// neighbor on side Inverse(dir) that support tile id here. When
	// a count reaches zero while id is still possible, id has lost
	// its last support from that side and must be eliminated.
	nCompatible [4][]int32

	// neighbors[dir] points into the engine's flat cell slice; nil
	// at the grid boundary. Back-references only, never ownership.
	neighbors [4]*cell

	// Shannon entropy over the possible tiles weighted by Probs,
	// maintained incrementally: val = −sumPlogP/sumP + log(sumP).
	sumP     float64
	sumPlogP float64
	entropy  float64

	observed bool
}

// init readies the cell with every tile possible and compatibility
// counts taken from the pattern's edge lists.
func (c *cell) init(pat *Pattern) {
	tiles := pat.Tiles()

	c.possible = make([]bool, tiles)
	for i := range c.possible {
		c.possible[i] = true
	}
	c.nPossible = tiles

	for dir := 0; dir < 4; dir++ {
		counts := make([]int32, tiles)
		inv := Direction(dir).Inverse()
		for id := 0; id < tiles; id++ {
			counts[id] = int32(len(pat.Edges[id][inv]))
		}
		c.nCompatible[dir] = counts
	}

	c.sumP = 0
	c.sumPlogP = 0
	for _, p := range pat.Probs {
		c.sumP += p
		c.sumPlogP += p * math.Log(p)
	}
	c.entropy = -c.sumPlogP/c.sumP + math.Log(c.sumP)
	c.observed = false
}

// randomState picks a still-possible tile biased by occurrence
// probability: rnd in [0, 1) is scaled to sumP and walked down the
// possible tiles in ascending id order. The ascending scan is part of
// the determinism contract.
func (c *cell) randomState(pat *Pattern, rnd float64) int {
	rnd *= c.sumP

	idx := -1
	for i := 0; i < len(c.possible) && rnd > 0; i++ {
		if c.possible[i] {
			idx = i
			rnd -= pat.Probs[i]
		}
	}
	if idx < 0 {
		// rnd drew exactly zero; take the first possibility.
		for i, ok := range c.possible {
			if ok {
				return i
			}
		}
	}
	return idx
}

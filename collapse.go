package wfc

import (
	"fmt"
	"math"
	"math/rand"
)

// noiseScale perturbs entropy comparisons to break ties. It is small
// enough never to reorder genuinely different entropies in double
// precision; the magnitude is part of the determinism contract.
const noiseScale = 1e-12

// Engine runs a single collapse attempt over a rows×cols grid of
// cells. It is single-threaded and synchronous; the Pattern is
// borrowed read-only and no state survives into another attempt.
//
// Collapse wraps the usual lifecycle. The stepwise surface exists for
// callers that want to watch an attempt converge, such as the live
// progress server.
type Engine struct {
	pat  *Pattern
	rows int
	cols int
	rng  *rand.Rand

	cells      []cell
	wave       Wave
	unobserved int

	// Pending eliminations, drained by propagate. A queue rather
	// than recursion: large grids would otherwise risk stack depth
	// proportional to the total possibility count.
	queue []removal

	failed bool
}

// removal records a tile eliminated from a cell whose effect on the
// cell's neighbors has not been applied yet.
type removal struct {
	cell *cell
	id   int
}

// NewEngine allocates the cell grid for one collapse attempt. The
// rng drives tie-breaking and sampling and must be non-nil for
// reproducible output; a nil rng gets an unseeded source.
func NewEngine(pat *Pattern, rows, cols int, rng *rand.Rand) *Engine {
	if pat.Tiles() == 0 {
		panic("wfc: empty pattern")
	}
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("wfc: output dimensions must be positive, got %d×%d", rows, cols))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	e := &Engine{
		pat:        pat,
		rows:       rows,
		cols:       cols,
		rng:        rng,
		cells:      make([]cell, rows*cols),
		unobserved: rows * cols,
	}
	for i := range e.cells {
		e.cells[i].init(pat)
	}

	e.wave = make(Wave, rows)
	for i := range e.wave {
		e.wave[i] = make([]int, cols)
	}

	return e
}

// Init wires neighbor references and runs the initial propagation
// pass: tiles that start without support from a side that has a
// neighbor behind it are eliminated before the first observation.
// Returns false if that alone empties a cell.
func (e *Engine) Init() bool {
	for i := 0; i < e.rows; i++ {
		for j := 0; j < e.cols; j++ {
			c := &e.cells[i*e.cols+j]
			for dir := 0; dir < 4; dir++ {
				i2 := i + dirDn[dir]
				j2 := j + dirDm[dir]
				if i2 < 0 || i2 >= e.rows || j2 < 0 || j2 >= e.cols {
					continue
				}
				c.neighbors[dir] = &e.cells[i2*e.cols+j2]
			}
		}
	}

	for idx := range e.cells {
		c := &e.cells[idx]
		for dir := 0; dir < 4; dir++ {
			if c.neighbors[Direction(dir).Inverse()] == nil {
				continue
			}
			for id := range c.possible {
				if c.possible[id] && c.nCompatible[dir][id] <= 0 {
					if !e.eliminate(c, id) || !e.propagate() {
						e.failed = true
						return false
					}
				}
			}
		}
	}
	return true
}

// Step performs one observation round: pick the unobserved cell with
// minimum entropy, sample a tile for it, and propagate the resulting
// eliminations. done reports that every cell is observed; ok is false
// on contradiction, which kills the attempt.
func (e *Engine) Step() (done, ok bool) {
	if e.failed {
		return true, false
	}
	if e.unobserved == 0 {
		return true, true
	}

	// Row-major scan; <= keeps later cells on ties and the noise
	// spreads the choice among them. Both are part of the contract.
	minEntropy := math.MaxFloat64
	argmin := -1
	for idx := range e.cells {
		c := &e.cells[idx]
		if c.observed {
			continue
		}
		noisy := c.entropy + noiseScale*e.rng.Float64()
		if noisy > minEntropy {
			continue
		}
		minEntropy = noisy
		argmin = idx
	}

	c := &e.cells[argmin]
	id := c.randomState(e.pat, e.rng.Float64())
	if !e.observe(c, id) {
		e.failed = true
		return true, false
	}

	e.wave[argmin/e.cols][argmin%e.cols] = id
	e.unobserved--
	return e.unobserved == 0, true
}

// Wave returns the grid of chosen tile ids. Entries are meaningful
// once the corresponding cell has been observed.
func (e *Engine) Wave() Wave {
	return e.wave
}

// PossibleCounts snapshots the per-cell possibility counts, for
// viewers that visualize convergence.
func (e *Engine) PossibleCounts() [][]int {
	counts := make([][]int, e.rows)
	for i := range counts {
		counts[i] = make([]int, e.cols)
		for j := range counts[i] {
			counts[i][j] = e.cells[i*e.cols+j].nPossible
		}
	}
	return counts
}

// observe pins the cell to exactly tile id and queues every other
// still-possible tile for propagation.
func (e *Engine) observe(c *cell, id int) bool {
	c.observed = true

	for dir := range c.nCompatible {
		counts := c.nCompatible[dir]
		for i := range counts {
			counts[i] = 0
		}
	}

	for i := range c.possible {
		if c.possible[i] && i != id {
			c.possible[i] = false
			e.queue = append(e.queue, removal{c, i})
		}
	}
	c.nPossible = 1
	c.sumP = e.pat.Probs[id]
	c.entropy = 0

	return e.propagate()
}

// eliminate removes tile id from the cell's possibility set, updates
// the incremental entropy, and queues the removal for propagation.
// Returns false when the cell runs out of possibilities.
func (e *Engine) eliminate(c *cell, id int) bool {
	c.possible[id] = false
	c.nPossible--

	if c.nPossible == 0 {
		return false
	}

	if c.nPossible == 1 {
		// Analytic limit; recomputing would drift around zero.
		c.entropy = 0
	} else {
		p := e.pat.Probs[id]
		c.sumP -= p
		c.sumPlogP -= p * math.Log(p)
		c.entropy = -c.sumPlogP/c.sumP + math.Log(c.sumP)
	}

	e.queue = append(e.queue, removal{c, id})
	return true
}

// propagate drains the removal queue, decrementing support counters
// in each removal's neighbors. A counter hitting zero eliminates the
// supported tile there, which in turn enqueues more removals. The
// total possibility count strictly decreases, so the drain
// terminates. Returns false on contradiction.
func (e *Engine) propagate() bool {
	for head := 0; head < len(e.queue); head++ {
		rm := e.queue[head]
		for dir := 0; dir < 4; dir++ {
			nb := rm.cell.neighbors[dir]
			if nb == nil {
				continue
			}
			for _, id := range e.pat.Edges[rm.id][dir] {
				nb.nCompatible[dir][id]--
				if nb.nCompatible[dir][id] == 0 && nb.possible[id] {
					if !e.eliminate(nb, id) {
						return false
					}
				}
			}
		}
	}
	e.queue = e.queue[:0]
	return true
}

// Collapse runs one attempt to fill a rows×cols wave from the
// pattern. It returns false on contradiction; there is no
// backtracking and no internal retry, callers loop with fresh random
// state. With a fixed rng the result is identical across runs and
// platforms.
func Collapse(pat *Pattern, rows, cols int, rng *rand.Rand) (Wave, bool) {
	e := NewEngine(pat, rows, cols, rng)
	if !e.Init() {
		return nil, false
	}
	for {
		done, ok := e.Step()
		if !ok {
			return nil, false
		}
		if done {
			return e.Wave(), true
		}
	}
}

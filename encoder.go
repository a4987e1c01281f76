package wfc

import (
	"fmt"
	"log"
)

// MatrixEncoder extracts the tile alphabet of a 2-D sample and maps
// waves back to sample elements. The element type only needs
// equality; the driver instantiates it with imageutil.RGB, tests use
// bytes. The encoder keeps the id → window mapping between Fit and
// Decode, so a single encoder value must serve both calls.
type MatrixEncoder[T comparable] struct {
	reg *tileRegistry[T]
	k   int
}

// Fit scans the sample and builds a Pattern: it deduplicates and
// counts every k×k window (optionally including the three 90°-step
// rotations and toroidal wrap) and computes the four-directional
// adjacency relation by overlap matching.
//
// The sample must be rectangular with at least k rows and columns.
// Violations are programmer errors and panic.
func (e *MatrixEncoder[T]) Fit(sample [][]T, k int, hwrap, vwrap, rotate bool) *Pattern {
	if k < 1 {
		panic("wfc: window size must be positive")
	}
	if len(sample) < k {
		panic(fmt.Sprintf("wfc: sample has %d rows, need at least %d", len(sample), k))
	}
	n := len(sample)
	m := len(sample[0])
	if m < k {
		panic(fmt.Sprintf("wfc: sample has %d columns, need at least %d", m, k))
	}
	for i, row := range sample {
		if len(row) != m {
			panic(fmt.Sprintf("wfc: ragged sample: row %d has %d columns, row 0 has %d", i, len(row), m))
		}
	}

	e.k = k
	e.reg = newTileRegistry[T]()

	upperI := n - k + 1
	if vwrap {
		upperI = n
	}
	upperJ := m - k + 1
	if hwrap {
		upperJ = m
	}

	for i := 0; i < upperI; i++ {
		for j := 0; j < upperJ; j++ {
			e.reg.Add(flattenWindow(sample, i, j, k, 0))
			if rotate {
				for rot := 1; rot < 4; rot++ {
					e.reg.Add(flattenWindow(sample, i, j, k, rot))
				}
			}
		}
	}

	tiles := e.reg.Len()
	pat := &Pattern{
		Edges: make([][4][]int, tiles),
		Probs: make([]float64, tiles),
	}

	// The denominator is the number of windows processed, so Probs
	// sums to exactly 1. Only ratios are observable downstream.
	total := float64(upperI * upperJ)
	if rotate {
		total *= 4
	}
	for id, cnt := range e.reg.occ {
		pat.Probs[id] = float64(cnt) / total
	}

	for p := 0; p < tiles; p++ {
		for dir := 0; dir < 4; dir++ {
			for q := 0; q < tiles; q++ {
				if overlapCompatible(e.reg.Window(p), e.reg.Window(q), k, Direction(dir)) {
					pat.Edges[p][dir] = append(pat.Edges[p][dir], q)
				}
			}
		}
	}

	if !hwrap || !vwrap {
		warnCoverage(pat)
	}

	return pat
}

// flattenWindow produces the k×k window with top-left corner (i, j)
// in row-major order, rotated rot 90°-steps clockwise. Rotations read
// straight from the source grid so orientation stays consistent.
// Index arithmetic is modular, which is only visible when wrap lets
// corners run past the sample edge.
func flattenWindow[T comparable](sample [][]T, i, j, k, rot int) []T {
	n := len(sample)
	m := len(sample[0])
	res := make([]T, 0, k*k)
	switch rot {
	case 0:
		for di := 0; di < k; di++ {
			for dj := 0; dj < k; dj++ {
				res = append(res, sample[(i+di)%n][(j+dj)%m])
			}
		}
	case 1:
		for dj := 0; dj < k; dj++ {
			for di := k - 1; di >= 0; di-- {
				res = append(res, sample[(i+di)%n][(j+dj)%m])
			}
		}
	case 2:
		for di := k - 1; di >= 0; di-- {
			for dj := k - 1; dj >= 0; dj-- {
				res = append(res, sample[(i+di)%n][(j+dj)%m])
			}
		}
	case 3:
		for dj := k - 1; dj >= 0; dj-- {
			for di := 0; di < k; di++ {
				res = append(res, sample[(i+di)%n][(j+dj)%m])
			}
		}
	}
	return res
}

// overlapCompatible reports whether window p2, shifted one step in
// direction dir relative to p1, agrees with p1 on every overlapping
// element. Coordinates of p2 outside its own k×k grid impose no
// constraint.
func overlapCompatible[T comparable](p1, p2 []T, k int, dir Direction) bool {
	dn := dirDn[dir]
	dm := dirDm[dir]
	for i1 := 0; i1 < k; i1++ {
		for j1 := 0; j1 < k; j1++ {
			i2 := i1 - dn
			j2 := j1 - dm
			if i2 < 0 || i2 == k {
				break
			}
			if j2 < 0 || j2 == k {
				continue
			}
			if p1[k*i1+j1] != p2[k*i2+j2] {
				return false
			}
		}
	}
	return true
}

// warnCoverage emits a single advisory when some tile has no
// compatible neighbor in some direction. Without wrap on both axes
// the sample's border windows can end up without legal extensions,
// which makes large outputs prone to contradiction. Advisory only.
func warnCoverage(pat *Pattern) {
	for id := range pat.Edges {
		for dir := range pat.Edges[id] {
			if len(pat.Edges[id][dir]) == 0 {
				log.Printf("wfc: tile %d has no compatible neighbor %s; collapse may contradict",
					id, Direction(dir))
				return
			}
		}
	}
}

// Decode maps a wave of tile ids back to sample elements. For a wave
// of shape (H, W) the result has shape (H+k−1, W+k−1): the interior
// takes each window's top-left element, and the right/bottom margins
// are filled from the last column's, last row's, and corner windows.
//
// Decode panics if called before Fit or on an empty wave.
func (e *MatrixEncoder[T]) Decode(wave Wave) [][]T {
	if e.k == 0 {
		panic("wfc: Decode called before Fit")
	}
	if len(wave) == 0 || len(wave[0]) == 0 {
		panic("wfc: empty wave")
	}

	n := len(wave)
	m := len(wave[0])
	k := e.k

	res := make([][]T, n+k-1)
	for i := range res {
		res[i] = make([]T, m+k-1)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			res[i][j] = e.reg.Window(wave[i][j])[0]
		}
	}

	for di := 0; di < k-1; di++ {
		for j := 0; j < m; j++ {
			res[n+di][j] = e.reg.Window(wave[n-1][j])[k*(di+1)]
		}
	}

	for i := 0; i < n; i++ {
		for dj := 0; dj < k-1; dj++ {
			res[i][m+dj] = e.reg.Window(wave[i][m-1])[dj+1]
		}
	}

	corner := e.reg.Window(wave[n-1][m-1])
	for di := 0; di < k-1; di++ {
		for dj := 0; dj < k-1; dj++ {
			res[n+di][m+dj] = corner[k*(di+1)+dj+1]
		}
	}

	return res
}

package life

import (
	"strings"
	"sync"
)

// Conway rules: a dead cell with exactly resurrectionThreshold live neighbors
// comes alive, a live cell survives with lifeThreshold or
// resurrectionThreshold live neighbors.
const (
	lifeThreshold         = 2
	resurrectionThreshold = 3
)

const (
	deadCharacter  = "  "
	aliveCharacter = "[]"
)

// Cell addresses one board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Glider is the default seed pattern.
var Glider = []Cell{{0, 2}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}

// Grid is a Game of Life board with periodic boundary conditions: neighbor
// lookups wrap around both edges, so the board is a torus.
type Grid struct {
	rows, cols int
	cells      []uint8
}

func NewGrid(rows, cols int, seed []Cell) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, rows*cols),
	}
	for _, c := range seed {
		if c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols {
			g.cells[c.Row*cols+c.Col] = 1
		}
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// CellCount returns the total number of board positions, the problem size
// the benchmark scales over.
func (g *Grid) CellCount() int { return g.rows * g.cols }

// Alive reports whether the cell at (row, col) is live, wrapping coordinates.
func (g *Grid) Alive(row, col int) bool {
	return g.at(row, col) == 1
}

func (g *Grid) at(row, col int) uint8 {
	row = ((row % g.rows) + g.rows) % g.rows
	col = ((col % g.cols) + g.cols) % g.cols
	return g.cells[row*g.cols+col]
}

func (g *Grid) liveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			count += int(g.at(row+dr, col+dc))
		}
	}
	return count
}

type change struct {
	index int
	value uint8
}

// nextState returns the change for one cell, or a negative index when the
// cell keeps its state.
func (g *Grid) nextState(index int) change {
	row, col := index/g.cols, index%g.cols
	n := g.liveNeighbors(row, col)
	alive := g.cells[index] == 1

	switch {
	case !alive && n == resurrectionThreshold:
		return change{index: index, value: 1}
	case alive && n != lifeThreshold && n != resurrectionThreshold:
		return change{index: index, value: 0}
	default:
		return change{index: -1}
	}
}

// StepSingle advances the board one generation on the calling goroutine.
func (g *Grid) StepSingle() {
	changes := make([]change, 0, len(g.cells))
	for i := range g.cells {
		if ch := g.nextState(i); ch.index >= 0 {
			changes = append(changes, ch)
		}
	}
	g.apply(changes)
}

// StepParallel advances the board one generation, splitting the cells into
// contiguous bands scanned by workers goroutines. The changes are collected
// per band and applied after all workers finish, so every worker reads a
// consistent board.
func (g *Grid) StepParallel(workers int) {
	if workers < 2 || len(g.cells) < workers {
		g.StepSingle()
		return
	}

	bands := make([][]change, workers)
	bandSize := (len(g.cells) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * bandSize
		hi := lo + bandSize
		if hi > len(g.cells) {
			hi = len(g.cells)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var changes []change
			for i := lo; i < hi; i++ {
				if ch := g.nextState(i); ch.index >= 0 {
					changes = append(changes, ch)
				}
			}
			bands[w] = changes
		}(w, lo, hi)
	}
	wg.Wait()

	for _, band := range bands {
		g.apply(band)
	}
}

func (g *Grid) apply(changes []change) {
	for _, ch := range changes {
		g.cells[ch.index] = ch.value
	}
}

// String renders the board for console playback.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == 1 {
				b.WriteString(aliveCharacter)
			} else {
				b.WriteString(deadCharacter)
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

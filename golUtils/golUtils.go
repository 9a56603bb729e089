package golUtils

import (
	"fmt"
	"math/rand"
)

const LiveCell byte = 1
const DeadCell byte = 0

// MaxCells bounds width*height for a single world.
const MaxCells = 1 << 28

// World is a fixed-size grid of cells for a single generation. Cells live in a
// flat buffer indexed by y*width+x.
type World struct {
	width  int
	height int
	cells  []byte
}

type CoOrds struct {
	X int
	Y int
}

// FitsCells reports whether a width x height world is non-empty and holds at
// most MaxCells cells.
func FitsCells(height, width int) bool {
	return height >= 1 && width >= 1 && width <= MaxCells/height
}

// MakeWorld returns an all-dead world. Both dimensions must be at least 1 and
// the world must fit in MaxCells.
func MakeWorld(height, width int) World {
	if !FitsCells(height, width) {
		panic(fmt.Sprintf("golUtils: invalid world size %dx%d", width, height))
	}
	return World{
		width:  width,
		height: height,
		cells:  make([]byte, width*height),
	}
}

// RandomWorld fills a new world with cells that are alive with probability 1/2.
func RandomWorld(height, width int, rng *rand.Rand) World {
	w := MakeWorld(height, width)
	for i := range w.cells {
		if rng.Intn(2) == 1 {
			w.cells[i] = LiveCell
		}
	}
	return w
}

func (w World) Width() int  { return w.width }
func (w World) Height() int { return w.height }

func (w World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func (w World) index(x, y int) int {
	if !w.InBounds(x, y) {
		panic(fmt.Sprintf("golUtils: cell (%d,%d) outside %dx%d world", x, y, w.width, w.height))
	}
	return y*w.width + x
}

func (w World) Get(x, y int) byte {
	return w.cells[w.index(x, y)]
}

func (w World) Alive(x, y int) bool {
	return w.Get(x, y) == LiveCell
}

func (w World) Set(x, y int, state byte) {
	w.cells[w.index(x, y)] = state
}

// Clone returns a copy that shares no storage with w.
func (w World) Clone() World {
	cells := make([]byte, len(w.cells))
	copy(cells, w.cells)
	return World{width: w.width, height: w.height, cells: cells}
}

func (w World) CountAlive() int {
	liveCount := 0
	for _, c := range w.cells {
		if c == LiveCell {
			liveCount++
		}
	}
	return liveCount
}

// AliveCells lists live cells in row-major order.
func (w World) AliveCells() []CoOrds {
	cells := make([]CoOrds, 0)
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			if w.cells[y*w.width+x] == LiveCell {
				cells = append(cells, CoOrds{X: x, Y: y})
			}
		}
	}
	return cells
}

func (w World) Equal(other World) bool {
	if w.width != other.width || w.height != other.height {
		return false
	}
	for i := range w.cells {
		if w.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

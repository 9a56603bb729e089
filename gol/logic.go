package gol

import "uk.ac.bris.cs/boundedgol/golUtils"

// CountLiveNeighbours counts the live cells among the 8 surrounding (x, y).
// The board does not wrap: neighbours past any edge count as dead.
func CountLiveNeighbours(w golUtils.World, x, y int) int {
	aliveNeighbours := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if w.InBounds(nx, ny) && w.Alive(nx, ny) {
				aliveNeighbours++
			}
		}
	}
	return aliveNeighbours
}

func nextCellState(alive bool, neighbours int) byte {
	switch {
	case alive && (neighbours == 2 || neighbours == 3):
		return golUtils.LiveCell
	case !alive && neighbours == 3:
		return golUtils.LiveCell
	default:
		return golUtils.DeadCell
	}
}

// Step computes the next generation. snapshot is only read.
func Step(snapshot golUtils.World) golUtils.World {
	next := golUtils.MakeWorld(snapshot.Height(), snapshot.Width())
	for y := 0; y < snapshot.Height(); y++ {
		for x := 0; x < snapshot.Width(); x++ {
			next.Set(x, y, nextCellState(snapshot.Alive(x, y), CountLiveNeighbours(snapshot, x, y)))
		}
	}
	return next
}

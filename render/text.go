package render

import (
	"bufio"
	"fmt"
	"io"

	"uk.ac.bris.cs/boundedgol/golUtils"
)

const clearScreen = "\033[H\033[2J"

// Text writes each generation as rows of space separated 0/1 values.
type Text struct {
	out   io.Writer
	clear bool
}

func NewText(out io.Writer, clear bool) *Text {
	return &Text{out: out, clear: clear}
}

func (t *Text) Render(turn int, world golUtils.World) error {
	w := bufio.NewWriter(t.out)
	if turn == 0 {
		fmt.Fprint(w, "Starting board:")
	} else {
		if t.clear {
			fmt.Fprint(w, clearScreen)
		}
		fmt.Fprintf(w, "Iteration: %d", turn)
	}
	for y := 0; y < world.Height(); y++ {
		fmt.Fprint(w, "\n\t")
		for x := 0; x < world.Width(); x++ {
			fmt.Fprintf(w, "%d ", world.Get(x, y))
		}
	}
	fmt.Fprintln(w)
	return w.Flush()
}

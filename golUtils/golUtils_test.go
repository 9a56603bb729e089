package golUtils

import (
	"math/rand"
	"testing"
)

func TestMakeWorldIsDead(t *testing.T) {
	w := MakeWorld(3, 4)
	if w.Width() != 4 || w.Height() != 3 {
		t.Fatalf("expected 4x3 world, got %dx%d", w.Width(), w.Height())
	}
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.Get(x, y) != DeadCell {
				t.Errorf("cell (%d,%d) should be dead", x, y)
			}
		}
	}
}

func TestSetOnlyTouchesTarget(t *testing.T) {
	w := MakeWorld(3, 3)
	w.Set(2, 1, LiveCell)
	if !w.Alive(2, 1) {
		t.Fatal("expected (2,1) alive")
	}
	if got := w.CountAlive(); got != 1 {
		t.Errorf("expected 1 alive cell, got %d", got)
	}
	if cells := w.AliveCells(); len(cells) != 1 || cells[0] != (CoOrds{X: 2, Y: 1}) {
		t.Errorf("unexpected alive cells %v", cells)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := MakeWorld(2, 2)
	w.Set(0, 0, LiveCell)
	c := w.Clone()
	if !c.Equal(w) {
		t.Fatal("clone should equal original")
	}
	c.Set(1, 1, LiveCell)
	w.Set(0, 0, DeadCell)
	if w.Alive(1, 1) {
		t.Error("write to clone leaked into original")
	}
	if !c.Alive(0, 0) {
		t.Error("write to original leaked into clone")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	w := MakeWorld(2, 3)
	tests := []CoOrds{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for _, c := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d,%d) did not panic", c.X, c.Y)
				}
			}()
			w.Get(c.X, c.Y)
		}()
	}
}

func TestMakeWorldRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero width")
		}
	}()
	MakeWorld(1, 0)
}

func TestRandomWorldIsSeeded(t *testing.T) {
	a := RandomWorld(16, 16, rand.New(rand.NewSource(42)))
	b := RandomWorld(16, 16, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Error("same seed should give the same world")
	}
	if n := a.CountAlive(); n == 0 || n == 256 {
		t.Errorf("random world should be mixed, got %d alive", n)
	}
}

func TestEqualChecksDimensions(t *testing.T) {
	if MakeWorld(2, 3).Equal(MakeWorld(3, 2)) {
		t.Error("worlds of different shapes must not be equal")
	}
}

func TestMakeWorldRejectsOversized(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"overflowing product", 1 << 32, 1 << 32},
		{"one row too many", MaxCells/4 + 1, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("MakeWorld(%d, %d) did not panic", test.height, test.width)
				}
			}()
			MakeWorld(test.height, test.width)
		})
	}
}

func TestFitsCells(t *testing.T) {
	if !FitsCells(MaxCells/4, 4) {
		t.Error("world of exactly MaxCells should fit")
	}
	if FitsCells(0, 4) || FitsCells(4, 0) {
		t.Error("empty worlds should not fit")
	}
}

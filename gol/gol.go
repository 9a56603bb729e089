package gol

import (
	"context"
	"errors"
	"fmt"
	"time"

	"uk.ac.bris.cs/boundedgol/golUtils"
)

var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrWorldMismatch = errors.New("world does not match parameters")
)

// Params provides the details of how to run the Game of Life.
type Params struct {
	Width  int
	Height int
	Turns  int
	// Delay is the wait between consecutive iterations.
	Delay time.Duration
	// StartDelay is the wait after the starting board is rendered.
	StartDelay time.Duration
}

func (p Params) Validate() error {
	switch {
	case p.Width < 1:
		return fmt.Errorf("%w: width %d must be at least 1", ErrInvalidParams, p.Width)
	case p.Height < 1:
		return fmt.Errorf("%w: height %d must be at least 1", ErrInvalidParams, p.Height)
	case !golUtils.FitsCells(p.Height, p.Width):
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidParams, p.Width, p.Height, golUtils.MaxCells)
	case p.Turns < 0:
		return fmt.Errorf("%w: turns %d must not be negative", ErrInvalidParams, p.Turns)
	case p.Delay < 0 || p.StartDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidParams)
	}
	return nil
}

// Renderer receives every generation in order, starting with turn 0.
type Renderer interface {
	Render(turn int, world golUtils.World) error
}

type RendererFunc func(turn int, world golUtils.World) error

func (f RendererFunc) Render(turn int, world golUtils.World) error {
	return f(turn, world)
}

type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimerSleeper blocks on a real timer, returning early if ctx is done.
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run renders initial, then steps it p.Turns times, rendering each result.
// It returns the last completed generation. Cancellation is only observed
// between iterations.
func Run(ctx context.Context, p Params, initial golUtils.World, r Renderer, s Sleeper) (golUtils.World, error) {
	if err := p.Validate(); err != nil {
		return initial, err
	}
	if initial.Width() != p.Width || initial.Height() != p.Height {
		return initial, fmt.Errorf("%w: world is %dx%d, params say %dx%d",
			ErrWorldMismatch, initial.Width(), initial.Height(), p.Width, p.Height)
	}
	return distributor(ctx, p, initial, r, s)
}

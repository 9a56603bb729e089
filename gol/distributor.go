package gol

import (
	"context"
	"fmt"

	"uk.ac.bris.cs/boundedgol/golUtils"
)

// Frame is one rendered generation.
type Frame struct {
	CompletedTurns int
	World          golUtils.World
}

// FrameChannel forwards each generation to a UI loop running on another
// goroutine. Frames carry their own copy of the world. The consumer must keep
// receiving until the channel is closed.
type FrameChannel chan<- Frame

func (c FrameChannel) Render(turn int, world golUtils.World) error {
	c <- Frame{CompletedTurns: turn, World: world.Clone()}
	return nil
}

// distributor runs the render, wait, step loop.
func distributor(ctx context.Context, p Params, initial golUtils.World, r Renderer, s Sleeper) (golUtils.World, error) {
	current := initial.Clone()

	if err := r.Render(0, current); err != nil {
		return current, fmt.Errorf("render starting board: %w", err)
	}

	for turn := 1; turn <= p.Turns; turn++ {
		wait := p.Delay
		if turn == 1 {
			wait = p.StartDelay
		}
		if err := s.Sleep(ctx, wait); err != nil {
			return current, err
		}
		if err := ctx.Err(); err != nil {
			return current, err
		}

		next := Step(current)
		if err := r.Render(turn, next); err != nil {
			return next, fmt.Errorf("render iteration %d: %w", turn, err)
		}
		current = next
	}

	return current, nil
}

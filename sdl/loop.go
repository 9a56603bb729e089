package sdl

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/boundedgol/gol"
)

const pollInterval = 10 * time.Millisecond

// Run shows frames as they arrive. Once the channel is closed the last frame
// stays up until the window is closed, q or Escape is pressed or ctx is done.
// A quit request while frames are still coming calls quit, and the remaining
// frames are drained without drawing so the sender never blocks. It must run
// on the main OS thread.
func Run(ctx context.Context, w *Window, frames <-chan gol.Frame, quit func()) error {
	defer w.Destroy()

	draw := func(f gol.Frame) error {
		w.Draw(f.World)
		w.SetTitle(f.CompletedTurns, f.World.CountAlive())
		return w.RenderFrame()
	}
	return loop(ctx, frames, draw, pollQuit, quit)
}

func loop(ctx context.Context, frames <-chan gol.Frame, draw func(gol.Frame) error, poll func() bool, quit func()) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	quitting, finished := false, false
	for {
		select {
		case f, ok := <-frames:
			if !ok {
				if quitting {
					return nil
				}
				finished = true
				frames = nil
				continue
			}
			if quitting {
				continue
			}
			if err := draw(f); err != nil {
				quit()
				drain(frames)
				return err
			}
		case <-ticker.C:
			if quitting || !(poll() || ctx.Err() != nil) {
				continue
			}
			quit()
			if finished {
				return nil
			}
			quitting = true
		}
	}
}

func pollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && (e.Keysym.Sym == sdl.K_q || e.Keysym.Sym == sdl.K_ESCAPE) {
				return true
			}
		}
	}
	return false
}

func drain(frames <-chan gol.Frame) {
	for range frames {
	}
}

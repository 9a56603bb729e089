package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/boundedgol/config"
	"uk.ac.bris.cs/boundedgol/gol"
	"uk.ac.bris.cs/boundedgol/golUtils"
	"uk.ac.bris.cs/boundedgol/render"
	"uk.ac.bris.cs/boundedgol/sdl"
)

const sdlScale = 16

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix("[gol] ")
	log.SetOutput(os.Stderr)

	settings, err := config.Load(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := golUtils.RandomWorld(settings.Params.Height, settings.Params.Width, rand.New(rand.NewSource(seed)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var final golUtils.World
	switch settings.Renderer {
	case config.RendererScreen:
		final, err = runScreen(ctx, settings.Params, world)
	case config.RendererSDL:
		final, err = runSDL(ctx, settings.Params, world)
	default:
		final, err = gol.Run(ctx, settings.Params, world, render.NewText(os.Stdout, settings.ClearScreen), gol.TimerSleeper{})
	}

	if errors.Is(err, context.Canceled) {
		log.Printf("stopped early, %d cells alive", final.CountAlive())
		return
	}
	if err != nil {
		log.Fatalf("simulation: %v", err)
	}
	fmt.Printf("Finished %d iterations, %d cells alive\n", settings.Params.Turns, final.CountAlive())
}

func runScreen(ctx context.Context, p gol.Params, world golUtils.World) (golUtils.World, error) {
	screen, err := render.NewScreen()
	if err != nil {
		return world, err
	}
	defer screen.Close()

	final := world
	err = screen.Play(ctx, func(ctx context.Context) error {
		var err error
		final, err = gol.Run(ctx, p, world, screen, gol.TimerSleeper{})
		return err
	})
	return final, err
}

func runSDL(ctx context.Context, p gol.Params, world golUtils.World) (golUtils.World, error) {
	window, err := sdl.NewWindow(p.Width, p.Height, sdlScale)
	if err != nil {
		return world, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan gol.Frame)
	final := world
	var g errgroup.Group
	g.Go(func() error {
		defer close(frames)
		var err error
		final, err = gol.Run(ctx, p, world, gol.FrameChannel(frames), gol.TimerSleeper{})
		return err
	})

	uiErr := sdl.Run(ctx, window, frames, cancel)
	if err := g.Wait(); err != nil {
		return final, err
	}
	return final, uiErr
}

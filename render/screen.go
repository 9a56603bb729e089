package render

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"uk.ac.bris.cs/boundedgol/golUtils"
)

var (
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	aliveStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	deadStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// Screen draws generations full screen, two columns per cell.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal. Close must be called to restore it.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

func (s *Screen) Render(turn int, world golUtils.World) error {
	s.screen.Clear()
	label := "Starting board"
	if turn > 0 {
		label = fmt.Sprintf("Iteration: %d", turn)
	}
	label = fmt.Sprintf("%s  alive: %d  (q to quit)", label, world.CountAlive())
	for i, r := range label {
		s.screen.SetContent(i, 0, r, nil, labelStyle)
	}

	for y := 0; y < world.Height(); y++ {
		for x := 0; x < world.Width(); x++ {
			style, r := deadStyle, '0'
			if world.Alive(x, y) {
				style, r = aliveStyle, '1'
			}
			s.screen.SetContent(x*2, y+1, r, nil, style)
			s.screen.SetContent(x*2+1, y+1, ' ', nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// WatchKeys calls quit when q, Escape or Ctrl-C is pressed. It returns once
// that happens, ctx is done or the screen has been closed.
func (s *Screen) WatchKeys(ctx context.Context, quit func()) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
				return nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// Play runs drive while watching keys. When drive finishes without error the
// last frame stays up until a quit key is pressed or ctx is done. A quit key
// during drive cancels the context passed to it.
func (s *Screen) Play(ctx context.Context, drive func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return drive(gctx)
	})
	g.Go(func() error {
		return s.WatchKeys(gctx, cancel)
	})
	return g.Wait()
}

func (s *Screen) Close() {
	s.screen.Fini()
}

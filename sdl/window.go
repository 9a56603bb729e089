package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"uk.ac.bris.cs/boundedgol/golUtils"
)

// Window shows one generation at a time, scale pixels per cell.
type Window struct {
	Width, Height int32
	scale         int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	pixels        []byte
}

// MaxWindowSide bounds each window dimension in pixels. It also bounds the
// texture, which holds one pixel per cell.
const MaxWindowSide = 8192

// fitScale returns the largest scale no greater than want at which a
// cellsWide x cellsHigh board fits in MaxWindowSide on both axes.
func fitScale(cellsWide, cellsHigh, want int) (int32, error) {
	if cellsWide < 1 || cellsHigh < 1 || want < 1 {
		return 0, fmt.Errorf("invalid window %dx%d at scale %d", cellsWide, cellsHigh, want)
	}
	largest := cellsWide
	if cellsHigh > largest {
		largest = cellsHigh
	}
	if largest > MaxWindowSide {
		return 0, fmt.Errorf("board %dx%d is larger than %d cells per side", cellsWide, cellsHigh, MaxWindowSide)
	}
	scale := want
	if limit := MaxWindowSide / largest; scale > limit {
		scale = limit
	}
	return int32(scale), nil
}

// NewWindow opens a window showing cellsWide x cellsHigh cells at up to scale
// pixels per cell. It must be called from the main OS thread.
func NewWindow(cellsWide, cellsHigh, scale int) (*Window, error) {
	s, err := fitScale(cellsWide, cellsHigh, scale)
	if err != nil {
		return nil, err
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	w := &Window{Width: int32(cellsWide), Height: int32(cellsHigh), scale: s}

	w.window, err = sdl.CreateWindow("Game of Life",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w.Width*s, w.Height*s, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, w.Width, w.Height)
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("create texture: %w", err)
	}
	w.pixels = make([]byte, 4*cellsWide*cellsHigh)
	return w, nil
}

// Draw copies world into the pixel buffer. Live cells are white.
func (w *Window) Draw(world golUtils.World) {
	for y := 0; y < world.Height() && y < int(w.Height); y++ {
		for x := 0; x < world.Width() && x < int(w.Width); x++ {
			var v byte
			if world.Alive(x, y) {
				v = 0xFF
			}
			i := 4 * (y*int(w.Width) + x)
			w.pixels[i] = v
			w.pixels[i+1] = v
			w.pixels[i+2] = v
			w.pixels[i+3] = 0xFF
		}
	}
}

func (w *Window) SetTitle(turn, alive int) {
	w.window.SetTitle(fmt.Sprintf("Game of Life - turn %d - %d alive", turn, alive))
}

func (w *Window) RenderFrame() error {
	if err := w.texture.Update(nil, w.pixels, int(w.Width)*4); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

func (w *Window) Destroy() {
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}

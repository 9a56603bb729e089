// Package config supplies the settings for a run, either interactively or from
// a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"uk.ac.bris.cs/boundedgol/gol"
)

const (
	DefaultWidth        = 20
	DefaultHeight       = 20
	DefaultIterations   = 100
	DefaultDelayMs      = 100
	DefaultStartDelayMs = 3000
)

const (
	RendererText   = "text"
	RendererScreen = "screen"
	RendererSDL    = "sdl"
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Settings is everything main needs to start a run.
type Settings struct {
	Params      gol.Params
	Seed        int64
	Renderer    string
	ClearScreen bool
}

// File mirrors the YAML configuration file.
type File struct {
	Width        *int   `yaml:"width"`
	Height       *int   `yaml:"height"`
	Iterations   *int   `yaml:"iterations"`
	DelayMs      *int   `yaml:"delay_ms"`
	StartDelayMs *int   `yaml:"start_delay_ms"`
	Seed         int64  `yaml:"seed"`
	Renderer     string `yaml:"renderer"`
	ClearScreen  *bool  `yaml:"clear_screen"`
}

func Default() Settings {
	return Settings{
		Params: gol.Params{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Turns:      DefaultIterations,
			Delay:      DefaultDelayMs * time.Millisecond,
			StartDelay: DefaultStartDelayMs * time.Millisecond,
		},
		Renderer:    RendererText,
		ClearScreen: true,
	}
}

func (s Settings) Validate() error {
	if err := s.Params.Validate(); err != nil {
		return err
	}
	switch s.Renderer {
	case RendererText, RendererScreen, RendererSDL:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRenderer, s.Renderer)
	}
}

// LoadFile reads settings from a YAML file. Keys that are absent keep their
// default values.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	s := f.apply(Default())
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

func (f File) apply(s Settings) Settings {
	if f.Width != nil {
		s.Params.Width = *f.Width
	}
	if f.Height != nil {
		s.Params.Height = *f.Height
	}
	if f.Iterations != nil {
		s.Params.Turns = *f.Iterations
	}
	if f.DelayMs != nil {
		s.Params.Delay = time.Duration(*f.DelayMs) * time.Millisecond
	}
	if f.StartDelayMs != nil {
		s.Params.StartDelay = time.Duration(*f.StartDelayMs) * time.Millisecond
	}
	if f.Renderer != "" {
		s.Renderer = f.Renderer
	}
	if f.ClearScreen != nil {
		s.ClearScreen = *f.ClearScreen
	}
	s.Seed = f.Seed
	return s
}

// Load reads the file named by GOL_CONFIG, or prompts on in/out when it is
// unset. GOL_RENDERER overrides the renderer in either case.
func Load(in io.Reader, out io.Writer) (Settings, error) {
	var (
		s   Settings
		err error
	)
	if path := os.Getenv("GOL_CONFIG"); path != "" {
		s, err = LoadFile(path)
	} else {
		s, err = Prompt(in, out)
	}
	if err != nil {
		return Settings{}, err
	}
	if r := os.Getenv("GOL_RENDERER"); r != "" {
		s.Renderer = r
	}
	return s, s.Validate()
}

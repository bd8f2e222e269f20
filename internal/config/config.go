// Package config provides loading and validation of the game's configuration
// document. The document is YAML; JSON is accepted as well since it is a
// subset of YAML.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no configuration file could be located.
	ErrNotFound = errors.New("config: no configuration file found")

	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("config: missing required field")

	// ErrInvalidValue is returned when a field holds an unusable value.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the validated configuration.
type Config struct {
	MainWindow MainWindow `yaml:"main_window"`
}

// MainWindow describes the game window.
type MainWindow struct {
	Width  int `yaml:"width"`  // Window width in pixels
	Height int `yaml:"height"` // Window height in pixels
	FPS    int `yaml:"fps"`    // Target frame rate
}

// rawConfig mirrors Config with pointer fields so absent keys can be told
// apart from zero values.
type rawConfig struct {
	MainWindow *rawMainWindow `yaml:"main_window"`
}

type rawMainWindow struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
	FPS    *int `yaml:"fps"`
}

// validate converts the raw document into a Config, rejecting missing or
// non-positive fields.
func (r rawConfig) validate() (Config, error) {
	if r.MainWindow == nil {
		return Config{}, fmt.Errorf("%w: main_window", ErrMissingField)
	}

	fields := []struct {
		name string
		val  *int
	}{
		{"main_window.width", r.MainWindow.Width},
		{"main_window.height", r.MainWindow.Height},
		{"main_window.fps", r.MainWindow.FPS},
	}
	for _, f := range fields {
		if f.val == nil {
			return Config{}, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if *f.val <= 0 {
			return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, f.name, *f.val)
		}
	}

	return Config{
		MainWindow: MainWindow{
			Width:  *r.MainWindow.Width,
			Height: *r.MainWindow.Height,
			FPS:    *r.MainWindow.FPS,
		},
	}, nil
}

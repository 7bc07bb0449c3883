// Package config loads display settings from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Display holds the window configuration for the platformer.
type Display struct {
	ScreenWidth  int  `env:"HOPPER_SCREEN_WIDTH" envDefault:"960"`
	ScreenHeight int  `env:"HOPPER_SCREEN_HEIGHT" envDefault:"600"`
	Resizable    bool `env:"HOPPER_WINDOW_RESIZABLE" envDefault:"false"`
}

// ParseDisplay loads display configuration from environment variables.
func ParseDisplay() (Display, error) {
	var cfg Display
	if err := env.Parse(&cfg); err != nil {
		return Display{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

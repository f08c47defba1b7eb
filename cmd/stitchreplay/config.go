package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
)

// Config is the replay configuration read from an ini file.
type Config struct {
	Display DisplayConfig
	Log     LogConfig
	Raster  RasterConfig
}

type DisplayConfig struct {
	Audit          bool `ini:"audit"`
	MoveCanvasOnly bool `ini:"move-canvas-only"`
}

type LogConfig struct {
	Level string `ini:"level"`
}

type RasterConfig struct {
	Width  int `ini:"width"`
	Height int `ini:"height"`
}

func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{Audit: true, MoveCanvasOnly: true},
		Log:     LogConfig{Level: "warn"},
		Raster:  RasterConfig{Width: 256, Height: 256},
	}
}

// loadConfig reads an ini file name or raw []byte on top of the defaults.
func loadConfig(source any) (Config, error) {
	config := defaultConfig()
	file, err := ini.Load(source)
	if err != nil {
		return config, errors.Wrap(err, "config")
	}
	sections := []struct {
		name string
		v    any
	}{
		{"display", &config.Display},
		{"log", &config.Log},
		{"raster", &config.Raster},
	}
	for _, s := range sections {
		sec, err := file.GetSection(s.name)
		if err != nil {
			continue
		}
		if err := sec.MapTo(s.v); err != nil {
			return config, errors.Wrapf(err, "config: [%s]", s.name)
		}
	}
	if err := config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func (config *Config) validate() error {
	if config.Raster.Width <= 0 || config.Raster.Height <= 0 {
		return fmt.Errorf("config: [raster] size must be positive, got %dx%d",
			config.Raster.Width, config.Raster.Height)
	}
	if _, err := config.Log.level(); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return level, fmt.Errorf("config: [log] level: %w", err)
	}
	return level, nil
}

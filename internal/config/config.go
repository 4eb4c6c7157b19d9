// Package config loads the game's TOML settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Garsondee/No-Loose-Threads/internal/board"
	"github.com/Garsondee/No-Loose-Threads/internal/log"
)

// Config holds every user-tunable setting. Zero values are not meaningful;
// start from Default.
type Config struct {
	Seed        int64   `toml:"seed"`
	Level       int     `toml:"level"`
	SFX         bool    `toml:"sfx"`
	Volume      float64 `toml:"volume"`
	LogLevel    string  `toml:"log_level"`
	Debug       bool    `toml:"debug"`
	WindowScale float64 `toml:"window_scale"`
}

func Default() Config {
	return Config{
		Seed:        1,
		Level:       0,
		SFX:         true,
		Volume:      0.6,
		LogLevel:    "info",
		WindowScale: 0.8,
	}
}

// Load decodes path over the defaults. Keys the file sets that Config does
// not know are an error, so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Level < 0 || c.Level >= board.LevelCount {
		errs = append(errs, fmt.Errorf("level %d outside 0..%d", c.Level, board.LevelCount-1))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume %.2f outside 0..1", c.Volume))
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if c.WindowScale <= 0 || c.WindowScale > 4 {
		errs = append(errs, fmt.Errorf("window_scale %.2f outside (0, 4]", c.WindowScale))
	}
	return errors.Join(errs...)
}

// LoggerLevel returns the parsed log level.
func (c Config) LoggerLevel() log.Level {
	l, _ := log.ParseLevel(c.LogLevel)
	return l
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gravshot/gravshot/internal/world"
)

// EnvPath names the environment variable that overrides DefaultPath.
const (
	EnvPath     = "GRAVSHOT_CONFIG"
	DefaultPath = "config/gravshot.toml"
)

type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Tuning     world.Tuning     `toml:"tuning"`
	Content    ContentConfig    `toml:"content"`
	Input      InputConfig      `toml:"input"`
	Logging    LoggingConfig    `toml:"logging"`
}

type SimulationConfig struct {
	TickRate   time.Duration `toml:"tick_rate"`
	Seed       int64         `toml:"seed"`
	MaxFrames  int           `toml:"max_frames"`  // 0 = run until the last level is won
	StartLevel int           `toml:"start_level"` // 1-based
}

type ContentConfig struct {
	Levels  string `toml:"levels"`  // YAML level list
	Scripts string `toml:"scripts"` // Lua script root
}

type InputConfig struct {
	Source    string  `toml:"source"` // "fixed", "sway" or "script"
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Amplitude float64 `toml:"amplitude"` // sway only
	Period    int     `toml:"period"`    // sway only, frames
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Path returns the config path from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %s", c.Simulation.TickRate))
	}
	if c.Simulation.StartLevel < 1 {
		errs = append(errs, fmt.Errorf("simulation.start_level must be at least 1, got %d", c.Simulation.StartLevel))
	}
	if c.Simulation.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("simulation.max_frames must not be negative, got %d", c.Simulation.MaxFrames))
	}

	t := &c.Tuning
	if t.ScreenWidth < 1 || t.ScreenHeight < 1 {
		errs = append(errs, fmt.Errorf("tuning screen %gx%g too small", t.ScreenWidth, t.ScreenHeight))
	}
	if t.AdversaryMinDist < 0 || t.AdversaryMaxDist < t.AdversaryMinDist {
		errs = append(errs, fmt.Errorf("tuning adversary distance range [%d, %d) invalid", t.AdversaryMinDist, t.AdversaryMaxDist))
	}
	if t.DustCount < 0 {
		errs = append(errs, fmt.Errorf("tuning.dust_count must not be negative, got %d", t.DustCount))
	}
	// A zero delay would schedule a marker on a frame that has already been evaluated.
	for name, v := range map[string]int{
		"win_delay":     t.WinDelay,
		"lose_delay":    t.LoseDelay,
		"win_duration":  t.WinDuration,
		"lose_duration": t.LoseDuration,
	} {
		if v < 1 {
			errs = append(errs, fmt.Errorf("tuning.%s must be at least 1, got %d", name, v))
		}
	}

	switch c.Input.Source {
	case "fixed", "sway", "script":
	default:
		errs = append(errs, fmt.Errorf("input.source %q unknown", c.Input.Source))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q unknown", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TickRate:   16 * time.Millisecond,
			Seed:       1,
			MaxFrames:  0,
			StartLevel: 1,
		},
		Tuning: world.DefaultTuning(),
		Content: ContentConfig{
			Levels:  "data/yaml/levels.yaml",
			Scripts: "scripts",
		},
		Input: InputConfig{
			Source:    "fixed",
			X:         0,
			Y:         -1,
			Amplitude: 0.5,
			Period:    240,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

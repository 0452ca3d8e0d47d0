package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvpattern/fixture"
)

// ErrInvalidConfig is returned when a Config cannot drive a run.
var ErrInvalidConfig = errors.New("harness: invalid config")

// Mode names accepted in Config.Modes.
const (
	ModeSoft = "soft"
	ModeHard = "hard"
)

// Config describes a verification run. It is usually loaded from a TOML profile:
//
//	trials = 50
//	seed = 7
//	workers = 4
//	modes = ["soft", "hard"]
//	oracle = true
//	plant = 3
//	max_attempts = 1000
//
//	[source]
//	min_size = 6
//	max_size = 9
//	min_value = -3
//	max_value = 3
//	density = 0.4
//
//	[pattern]
//	min_size = 2
//	max_size = 4
//	min_value = -3
//	max_value = 3
//	density = 0.6
type Config struct {
	Trials      int                `toml:"trials"`
	Seed        int64              `toml:"seed"`
	Workers     int                `toml:"workers"`
	Modes       []string           `toml:"modes"`
	Oracle      bool               `toml:"oracle"` // compare against the brute-force resolver
	Plant       int                `toml:"plant"`  // plantings per trial
	MaxAttempts int                `toml:"max_attempts"`
	Source      fixture.MatrixSpec `toml:"source"`
	Pattern     fixture.MatrixSpec `toml:"pattern"`
}

// DefaultConfig returns a profile small enough for the oracle to finish quickly.
func DefaultConfig() Config {
	return Config{
		Trials:      20,
		Seed:        1,
		Workers:     4,
		Modes:       []string{ModeSoft, ModeHard},
		Oracle:      true,
		Plant:       3,
		MaxAttempts: 1000,
		Source:      fixture.MatrixSpec{MinSize: 6, MaxSize: 9, MinValue: -3, MaxValue: 3, Density: 0.4},
		Pattern:     fixture.MatrixSpec{MinSize: 2, MaxSize: 4, MinValue: -3, MaxValue: 3, Density: 0.6},
	}
}

// LoadConfig decodes a TOML profile on top of DefaultConfig and validates it.
// Keys the profile does not know are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load %s: unknown keys %v: %w", path, undecoded, ErrInvalidConfig)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials=%d: %w", c.Trials, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalidConfig)
	}
	if _, err := c.hardModes(); err != nil {
		return err
	}
	if c.Plant < 0 || c.MaxAttempts < c.Plant {
		return fmt.Errorf("plant=%d max_attempts=%d: %w", c.Plant, c.MaxAttempts, ErrInvalidConfig)
	}
	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w: %w", ErrInvalidConfig, err)
	}
	if err := c.Pattern.Validate(); err != nil {
		return fmt.Errorf("pattern: %w: %w", ErrInvalidConfig, err)
	}
	if c.Pattern.MaxSize > c.Source.MinSize {
		return fmt.Errorf("pattern max_size %d > source min_size %d: %w",
			c.Pattern.MaxSize, c.Source.MinSize, ErrInvalidConfig)
	}

	return nil
}

// hardModes maps Modes to HardCheck flags, in order, without duplicates.
func (c Config) hardModes() ([]bool, error) {
	if len(c.Modes) == 0 {
		return nil, fmt.Errorf("modes: empty: %w", ErrInvalidConfig)
	}
	var out []bool
	seen := map[string]bool{}
	for _, m := range c.Modes {
		m = strings.ToLower(strings.TrimSpace(m))
		if seen[m] {
			continue
		}
		seen[m] = true
		switch m {
		case ModeSoft:
			out = append(out, false)
		case ModeHard:
			out = append(out, true)
		default:
			return nil, fmt.Errorf("mode %q: %w", m, ErrInvalidConfig)
		}
	}

	return out, nil
}

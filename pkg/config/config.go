// Package config loads waypoint's TOML configuration.
//
// A configuration names the floors dots may be placed on, tunes the weight
// policy and sets up logging and the HTTP server:
//
//	[[floors]]
//	name = "Ground"
//	ordinal = 0
//	image = "ground.png"
//
//	[policy]
//	floor_hop_cost = 25.0
//
//	[log]
//	level = "debug"
//
//	[server]
//	addr = "127.0.0.1:8080"
//	shutdown_timeout = "5s"
//
// Every section is optional. Missing values fall back to [Default].
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/floor"
	"github.com/matzehuels/waypoint/pkg/plan"
)

// Defaults for values omitted from the file.
const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
)

// Config is a validated configuration.
type Config struct {
	Floors []floor.Floor
	Policy PolicyConfig
	Log    LogConfig
	Server ServerConfig
}

// PolicyConfig tunes connection weights.
type PolicyConfig struct {
	// FloorHopCost scales the cost of a cross-floor connection per floor.
	// Zero keeps the plain ordinal difference.
	FloorHopCost float64
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level log.Level
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// file mirrors the TOML layout. Pointers distinguish absent from zero.
type file struct {
	Floors []struct {
		Name    string `toml:"name"`
		Ordinal *int   `toml:"ordinal"`
		Image   string `toml:"image"`
	} `toml:"floors"`
	Policy struct {
		FloorHopCost float64 `toml:"floor_hop_cost"`
	} `toml:"policy"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Server struct {
		Addr            string `toml:"addr"`
		ShutdownTimeout string `toml:"shutdown_timeout"`
	} `toml:"server"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Floors: floor.Default().Floors(),
		Log:    LogConfig{Level: log.InfoLevel},
		Server: ServerConfig{Addr: DefaultAddr, ShutdownTimeout: DefaultShutdownTimeout},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates TOML configuration data.
func Parse(data []byte) (*Config, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	cfg := Default()
	if len(f.Floors) > 0 {
		cfg.Floors = make([]floor.Floor, 0, len(f.Floors))
		for _, ff := range f.Floors {
			fl := floor.Floor{Name: ff.Name, Image: ff.Image}
			if ff.Ordinal != nil {
				fl.Ordinal = *ff.Ordinal
			} else if ord, ok := floor.ParseOrdinal(ff.Name); ok {
				fl.Ordinal = ord
			} else {
				return nil, errors.New(errors.ErrCodeInvalidConfig,
					"floor %q needs an ordinal: none given and none in its name", ff.Name)
			}
			cfg.Floors = append(cfg.Floors, fl)
		}
	}

	cfg.Policy.FloorHopCost = f.Policy.FloorHopCost
	if level := strings.TrimSpace(f.Log.Level); level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log level %q", level)
		}
		cfg.Log.Level = lvl
	}
	if f.Server.Addr != "" {
		cfg.Server.Addr = f.Server.Addr
	}
	if f.Server.ShutdownTimeout != "" {
		d, err := time.ParseDuration(f.Server.ShutdownTimeout)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "shutdown_timeout %q", f.Server.ShutdownTimeout)
		}
		cfg.Server.ShutdownTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c *Config) Validate() error {
	if len(c.Floors) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one floor is required")
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	if c.Policy.FloorHopCost < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "floor_hop_cost must be non-negative, got %v", c.Policy.FloorHopCost)
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "shutdown_timeout must be non-negative")
	}
	return nil
}

// Registry builds the floor registry. Invalid floor names are reported as
// INVALID_CONFIG.
func (c *Config) Registry() (*floor.Registry, error) {
	r, err := floor.NewRegistry(c.Floors)
	if err != nil {
		if errors.Is(err, errors.ErrCodeInvalidConfig) {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "floors")
	}
	return r, nil
}

// WeightPolicy builds the connection weight policy over reg.
func (c *Config) WeightPolicy(reg *floor.Registry) plan.Policy {
	return plan.Policy{Floors: reg, HopCost: c.Policy.FloorHopCost}
}

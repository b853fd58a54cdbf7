package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the command-line parameters for the application.
//
// Values are layered: NewConfig defaults, then GOL_* environment variables,
// then the YAML file named by -config, then explicit flags.
type Config struct {
	Sim   string `yaml:"sim" env:"GOL_SIM"`
	Steps int    `yaml:"steps" env:"GOL_STEPS"`
	Seed  int64  `yaml:"seed" env:"GOL_SEED"`
	Scale int    `yaml:"scale" env:"GOL_SCALE"`
	TPS   int    `yaml:"tps" env:"GOL_TPS"`
	Play  bool   `yaml:"play" env:"GOL_PLAY"`
	DB    string `yaml:"db" env:"GOL_DB"`
	// Replay plays back the stored recording with this id instead of running.
	Replay int64 `yaml:"replay" env:"GOL_REPLAY"`
	// List prints the runs stored in DB and exits.
	List bool `yaml:"-"`

	// Options are scenario knobs such as w, h, density or pattern.
	Options map[string]string `yaml:"options" env:"GOL_OPTIONS"`
	// Patterns defines extra named shapes usable as the pattern option.
	Patterns map[string][]string `yaml:"patterns"`

	Path string `yaml:"-" env:"GOL_CONFIG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Steps: 200, Scale: 3, TPS: 15, Seed: 42, Options: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of snapshots to produce")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "playback frames per second")
	fs.BoolVar(&c.Play, "play", c.Play, "play the run back in the terminal")
	fs.StringVar(&c.DB, "db", c.DB, "SQLite file to save the run into")
	fs.Int64Var(&c.Replay, "replay", c.Replay, "id of a stored run to play back (requires -db)")
	fs.BoolVar(&c.List, "list", c.List, "list the runs stored in -db and exit")
	fs.StringVar(&c.Path, "config", c.Path, "YAML configuration file")
	fs.Var((*optionsFlag)(&c.Options), "o", "scenario option key=value (repeatable)")
}

// LoadEnv overlays GOL_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from the environment, an optional YAML file and args.
// Flags are parsed twice so that explicit flags win over the file.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	if err := c.LoadEnv(); err != nil {
		return nil, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.Path != "" {
		if err := c.LoadFile(c.Path); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings that cannot produce a run.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Sim) == "" {
		errs = append(errs, errors.New("sim is required"))
	}
	if c.Steps < 1 {
		errs = append(errs, fmt.Errorf("steps must be at least 1, got %d", c.Steps))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if c.TPS < 1 {
		errs = append(errs, fmt.Errorf("tps must be at least 1, got %d", c.TPS))
	}
	if (c.Replay != 0 || c.List) && c.DB == "" {
		errs = append(errs, errors.New("replay and list require db"))
	}
	for name, rows := range c.Patterns {
		if len(rows) == 0 {
			errs = append(errs, fmt.Errorf("pattern %q has no rows", name))
		}
	}
	return errors.Join(errs...)
}

// ScenarioOptions returns the options for the scenario factory. A pattern
// option naming one of Patterns is replaced by its shape.
func (c *Config) ScenarioOptions() map[string]string {
	out := make(map[string]string, len(c.Options))
	for k, v := range c.Options {
		out[k] = v
	}
	if rows, ok := c.Patterns[out["pattern"]]; ok {
		delete(out, "pattern")
		out["shape"] = strings.Join(rows, "/")
	}
	return out
}

type optionsFlag map[string]string

func (o *optionsFlag) String() string {
	if o == nil || *o == nil {
		return ""
	}
	keys := make([]string, 0, len(*o))
	for k := range *o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + (*o)[k]
	}
	return strings.Join(parts, ",")
}

func (o *optionsFlag) Set(v string) error {
	key, val, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q is not key=value", v)
	}
	if *o == nil {
		*o = map[string]string{}
	}
	(*o)[key] = strings.TrimSpace(val)
	return nil
}

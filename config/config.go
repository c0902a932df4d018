// Package config holds the settings of the demo shell.
//
// The tree itself has no runtime configuration; its order is fixed at
// compile time. This package only covers seeding, output and tracing.
package config

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

/*
Config mirrors a TOML file like:

	[seed]
	enabled = true
	records = 1000

	[output]
	color = true
	dump_after_set = false

	[trace]
	level = "info"
*/
type Config struct {
	Seed   SeedConfig
	Output OutputConfig
	Trace  TraceConfig
}

type SeedConfig struct {
	Enabled bool
	Records int
}

type OutputConfig struct {
	Color        bool
	DumpAfterSet bool
}

type TraceConfig struct {
	Level string
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Seed:   SeedConfig{Enabled: false, Records: 1000},
		Output: OutputConfig{Color: true, DumpAfterSet: true},
		Trace:  TraceConfig{Level: "info"},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (Config, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	cfg := Default()
	if err := apply(tree, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func apply(tree *toml.Tree, cfg *Config) error {
	for key, dst := range map[string]*bool{
		"seed.enabled":          &cfg.Seed.Enabled,
		"output.color":          &cfg.Output.Color,
		"output.dump_after_set": &cfg.Output.DumpAfterSet,
	} {
		if !tree.Has(key) {
			continue
		}
		b, ok := tree.Get(key).(bool)
		if !ok {
			return errors.Errorf("%s must be a boolean", key)
		}
		*dst = b
	}
	if tree.Has("seed.records") {
		n, ok := tree.Get("seed.records").(int64)
		if !ok {
			return errors.New("seed.records must be an integer")
		}
		cfg.Seed.Records = int(n)
	}
	if tree.Has("trace.level") {
		l, ok := tree.Get("trace.level").(string)
		if !ok {
			return errors.New("trace.level must be a string")
		}
		cfg.Trace.Level = l
	}
	return nil
}

var traceLevels = []string{"debug", "info", "error"}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Seed.Records < 0 {
		return errors.Errorf("seed.records must not be negative, is %d", c.Seed.Records)
	}
	level := strings.ToLower(c.Trace.Level)
	for _, l := range traceLevels {
		if level == l {
			return nil
		}
	}
	return errors.Errorf("trace.level must be one of %s, is %q",
		strings.Join(traceLevels, ", "), c.Trace.Level)
}

// Flags carries command-line values. A nil field means the flag was not
// given and the file or default value stands.
type Flags struct {
	Seed    *bool
	Records *int
	NoColor *bool
	Quiet   *bool
	Trace   *string
}

// Override copies every flag that was given into c.
// -no-color and -quiet switch their settings off.
func (c *Config) Override(f Flags) {
	if f.Seed != nil {
		c.Seed.Enabled = *f.Seed
	}
	if f.Records != nil {
		c.Seed.Records = *f.Records
	}
	if f.NoColor != nil {
		c.Output.Color = !*f.NoColor
	}
	if f.Quiet != nil {
		c.Output.DumpAfterSet = !*f.Quiet
	}
	if f.Trace != nil {
		c.Trace.Level = *f.Trace
	}
}

// Package config holds run settings decoded from viper: defaults, an
// optional config file, KBLAST_* environment variables and command flags,
// in increasing priority.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"kblast/core/kmer"
	"kblast/internal/output"
)

// EnvPrefix is the environment variable prefix (KBLAST_K, KBLAST_TOP, ...).
const EnvPrefix = "KBLAST"

// Defaults.
const (
	DefaultK      = 11
	DefaultTop    = 2
	DefaultOutput = output.FormatText
)

// Config is the effective configuration of one invocation.
type Config struct {
	// inputs
	DB    string `mapstructure:"db" toml:"db"`
	Query string `mapstructure:"query" toml:"query"`

	// search
	K   int `mapstructure:"k" toml:"k"`
	Top int `mapstructure:"top" toml:"top"` // 0 = all

	// output
	Output          string `mapstructure:"output" toml:"output"`
	NoHeader        bool   `mapstructure:"no-header" toml:"no-header"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code" toml:"no-match-exit-code"`
	Dump            bool   `mapstructure:"dump" toml:"dump"`

	// diagnostics
	Quiet    bool `mapstructure:"quiet" toml:"quiet"`
	Verbose  bool `mapstructure:"verbose" toml:"verbose"`
	Progress bool `mapstructure:"progress" toml:"progress"`
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("query", "")
	v.SetDefault("k", DefaultK)
	v.SetDefault("top", DefaultTop)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("no-header", false)
	v.SetDefault("no-match-exit-code", 0)
	v.SetDefault("dump", false)
	v.SetDefault("quiet", false)
	v.SetDefault("verbose", false)
	v.SetDefault("progress", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges a config file (toml, yaml or json by extension).
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	return nil
}

// Load decodes v into a Config. It does not validate.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decode config")
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	return c, nil
}

// Validate checks the parameters shared by every command.
func (c Config) Validate() error {
	if err := kmer.ValidateK(c.K); err != nil {
		return err
	}
	if c.Top < 0 {
		return errors.Errorf("--top must be >= 0, got %d", c.Top)
	}
	if !output.IsFormat(c.Output) {
		return errors.Errorf("invalid --output %q (want one of %s)", c.Output, strings.Join(output.Formats, ", "))
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.Errorf("--no-match-exit-code must be in 0..255, got %d", c.NoMatchExitCode)
	}
	return nil
}

// ValidateSearch additionally requires both inputs.
func (c Config) ValidateSearch() error {
	if c.DB == "" || c.Query == "" {
		return errors.New("--db and --query are required")
	}
	return c.Validate()
}

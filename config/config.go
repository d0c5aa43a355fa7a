// Package config holds the analysis settings and binds them to command-line
// flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sarchlab/mvprune/core"
	"github.com/spf13/pflag"
)

// Config collects every knob of an analysis run.
type Config struct {
	// Separator introduces the variant suffix in function names.
	Separator string

	// Resolver and Default are the reserved suffix words.
	Resolver string
	Default  string

	// Baseline is the baseline policy name, "default" or "first-two".
	Baseline string

	// MinVariants is the family size that triggers a decision.
	MinVariants int

	// Dump activates the diagnostic line stream.
	Dump bool

	// Summary prints the per-family table at the end of the session.
	Summary bool

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string
}

// Default returns the settings that match target-clone compilers.
func Default() Config {
	names := core.DefaultNameOptions()

	return Config{
		Separator:   names.Separator,
		Resolver:    names.Resolver,
		Default:     names.Default,
		Baseline:    core.BaselineDefault.String(),
		MinVariants: 2,
		Dump:        true,
		Summary:     false,
		LogLevel:    "warn",
	}
}

// BindFlags registers the settings on fs, using the current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Separator, "separator", c.Separator,
		"string that introduces the clone variant suffix")
	fs.StringVar(&c.Resolver, "resolver-suffix", c.Resolver,
		"suffix word of resolver functions, which are never analyzed")
	fs.StringVar(&c.Default, "default-suffix", c.Default,
		"suffix word of the default variant")
	fs.StringVar(&c.Baseline, "baseline", c.Baseline,
		"baseline policy: default or first-two")
	fs.IntVar(&c.MinVariants, "min-variants", c.MinVariants,
		"number of variants that completes a clone family")
	fs.BoolVar(&c.Dump, "dump", c.Dump,
		"write the diagnostic line stream to stdout")
	fs.BoolVar(&c.Summary, "summary", c.Summary,
		"print a per-family summary table")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel,
		"log level: trace, debug, info, warn, error")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}

	if c.Resolver == "" || c.Default == "" {
		return errors.New("resolver and default suffixes must not be empty")
	}

	if c.Resolver == c.Default {
		return fmt.Errorf("resolver and default suffixes are both %q",
			c.Resolver)
	}

	if c.MinVariants < 2 {
		return fmt.Errorf("min-variants must be at least 2, got %d",
			c.MinVariants)
	}

	if _, err := core.ParseBaselinePolicy(c.Baseline); err != nil {
		return err
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// NameOptions returns the naming convention described by c.
func (c Config) NameOptions() core.NameOptions {
	return core.NameOptions{
		Separator: c.Separator,
		Resolver:  c.Resolver,
		Default:   c.Default,
	}
}

// TrackerBuilder returns a tracker builder configured from c.
func (c Config) TrackerBuilder() (core.Builder, error) {
	if err := c.Validate(); err != nil {
		return core.Builder{}, fmt.Errorf("invalid config: %w", err)
	}

	policy, _ := core.ParseBaselinePolicy(c.Baseline)

	return core.NewBuilder().
		WithNameOptions(c.NameOptions()).
		WithBaseline(policy).
		WithMinVariants(c.MinVariants), nil
}

// SlogLevel converts LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

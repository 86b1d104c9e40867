package config

import (
	"errors"
	"fmt"
	"strings"
)

type Config struct {
	Format  Format
	Output  Output
	Runtime Runtime
}

type Format struct {
	// Platform selects the formatter (see --platform).
	// Allowed values: github, gitlab, generic, auto.
	// "auto" detects the platform from CI environment variables and falls
	// back to generic.
	Platform string
}

type Output struct {
	// Out duplicates the formatted output to this path (see --out).
	Out string

	// Emit writes an additional structured event stream to stdout (see --emit).
	// Allowed values: json, ndjson.
	Emit []string

	// NoConsole suppresses the console sink (see --no-console).
	// Use with --emit/--out for machine-readable output.
	NoConsole bool

	// Color controls colorized output for the generic formatter (see --color).
	// Allowed values: auto, always, never.
	Color string
}

type Runtime struct {
	// Verbose enables more detailed diagnostics on stderr.
	Verbose bool
}

func New() *Config {
	return &Config{
		Format: Format{
			Platform: "auto",
		},
		Output: Output{
			Color: "auto",
		},
	}
}

func (c *Config) Validate() error {
	c.Output.Emit = splitCommaList(c.Output.Emit)

	c.Format.Platform = normalizeEnumValue(c.Format.Platform)
	if c.Format.Platform == "" {
		c.Format.Platform = "auto"
	}
	switch c.Format.Platform {
	case "github", "gitlab", "generic", "auto":
	default:
		return fmt.Errorf("unsupported --platform: %s (must be one of: github, gitlab, generic, auto)", c.Format.Platform)
	}

	for i, emit := range c.Output.Emit {
		v := normalizeEnumValue(emit)
		if v == "" {
			return errors.New("--emit must be one of: json, ndjson")
		}
		if v != "json" && v != "ndjson" {
			return fmt.Errorf("unsupported --emit value: %s (must be one of: json, ndjson)", v)
		}
		c.Output.Emit[i] = v
	}

	c.Output.Color = normalizeEnumValue(c.Output.Color)
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.Color != "auto" && c.Output.Color != "always" && c.Output.Color != "never" {
		return fmt.Errorf("unsupported --color: %s (must be one of: auto, always, never)", c.Output.Color)
	}

	if c.Output.NoConsole && c.Output.Out == "" && len(c.Output.Emit) == 0 {
		return errors.New("--no-console requires --out or --emit (a run with no sinks writes nothing)")
	}

	return nil
}

func normalizeEnumValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

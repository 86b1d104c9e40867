package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// config layers. Keeping these as constants helps avoid drift between Cobra
// flag wiring and the code paths that check whether a flag was set (config
// file precedence).
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Format
	FlagPlatform = "platform"

	// Output
	FlagOut       = "out"
	FlagEmit      = "emit"
	FlagNoConsole = "no-console"
	FlagColor     = "color"

	// Runtime
	FlagConfig = "config"
)

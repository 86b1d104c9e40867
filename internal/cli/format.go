package cli

import (
	"fmt"

	"cifmt/internal/config"
	"cifmt/internal/flags"
	"cifmt/internal/output"
	"cifmt/internal/pipeline"
	"cifmt/internal/platform"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cfg = config.New()
var configPath string

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a diagnostic event stream from stdin",
	Long: `Format a diagnostic event stream for a CI platform's log renderer.

Input is read from stdin, one JSON object per line:
	{"kind":"error","text":"missing semicolon","file":"src/main.rs","line":10,"column":5}

Recognized kinds: error, warning, notice, group_start, group_end, raw.
Malformed lines are reported on stderr and skipped; the stream continues.
Groups still open at end of input are closed automatically so the rendered
log is always balanced.

Platform selection:
	--platform github|gitlab|generic picks the output syntax explicitly.
	--platform auto (the default) detects GitHub Actions (GITHUB_ACTIONS) or
	GitLab CI (GITLAB_CI) from the environment and falls back to generic.

Configuration:
	Defaults can be placed in .cifmt.toml in the working directory (or a file
	named via --config). Command-line flags win over file values.

Exit codes:
	0 = run completed (malformed lines and unmatched group ends are tolerated)
	1 = fatal error (unreadable input, unwritable output, bad configuration)

Examples:
	# Annotate cargo-style diagnostics for GitHub Actions
	mytool --json | cifmt format --platform github

	# Keep a copy of the formatted log
	mytool --json | cifmt format --out build.log

	# AI agent: stream machine-readable events to stdout, no console output
	mytool --json | cifmt format --no-console --emit ndjson
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfigFile(cmd); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		switch cfg.Output.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}

		f, err := platform.Select(cfg.Format.Platform)
		if err != nil {
			return err
		}

		mgr := output.NewManager()
		if !cfg.Output.NoConsole {
			if err := mgr.AddSink(output.NewConsoleSink(cmd.OutOrStdout())); err != nil {
				return err
			}
		}
		if cfg.Output.Out != "" {
			fileSink, err := output.NewFileSink(cfg.Output.Out)
			if err != nil {
				return err
			}
			if err := mgr.AddSink(fileSink); err != nil {
				return err
			}
		}
		for _, emitFormat := range cfg.Output.Emit {
			emitSink, err := output.NewEmitSink(cmd.OutOrStdout(), emitFormat)
			if err != nil {
				return err
			}
			if err := mgr.AddSink(emitSink); err != nil {
				return err
			}
		}

		d := pipeline.New(f, mgr, cmd.ErrOrStderr())
		runErr := d.Run(cmd.InOrStdin())
		closeErr := mgr.Close()
		if runErr != nil {
			return runErr
		}
		if closeErr != nil {
			return closeErr
		}

		if cfg.Runtime.Verbose {
			if n := d.Diagnostics().Incidents(); n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "cifmt: %d input line(s) skipped or tolerated\n", n)
			}
		}
		return nil
	},
}

// applyConfigFile loads TOML defaults and applies them for every value the
// command line did not set.
func applyConfigFile(cmd *cobra.Command) error {
	path := configPath
	explicit := cmd.Flags().Changed(flags.FlagConfig)
	if path == "" {
		path = config.DefaultFileName
	}

	file, err := config.LoadFile(path, explicit)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	if !cmd.Flags().Changed(flags.FlagPlatform) && file.Platform != "" {
		cfg.Format.Platform = file.Platform
	}
	if !cmd.Flags().Changed(flags.FlagColor) && file.Color != "" {
		cfg.Output.Color = file.Color
	}
	if !cmd.Flags().Changed(flags.FlagOut) && file.Out != "" {
		cfg.Output.Out = file.Out
	}
	if !cmd.Flags().Changed(flags.FlagEmit) && len(file.Emit) > 0 {
		cfg.Output.Emit = file.Emit
	}
	return nil
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&cfg.Format.Platform, flags.FlagPlatform, "auto", "Target platform: github|gitlab|generic|auto (default: auto)")
	formatCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Duplicate formatted output to this path")
	formatCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	formatCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out)")
	formatCmd.Flags().StringVar(&cfg.Output.Color, flags.FlagColor, "auto", "Colorize generic output: auto|always|never (default: auto)")
	formatCmd.Flags().StringVar(&configPath, flags.FlagConfig, "", "Config file path (default: .cifmt.toml if present)")
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cifmt",
	Short: "Format diagnostic event streams for CI log renderers",
	Long: `cifmt reads a stream of structured diagnostic events (one JSON object per
line on stdin) and rewrites it as annotated text for a CI platform's log
renderer, so build output appears grouped, colorized, and clickable.

Examples:
	# Show available commands and global flags
	cifmt --help

	# Format a diagnostic stream for GitHub Actions
	mytool --json | cifmt format --platform github

	# List supported platforms
	cifmt platforms list

	# Print build info
	cifmt version

Output:
	Formatted lines are written to stdout; malformed-line and unmatched-group
	diagnostics go to stderr, one line per incident.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose diagnostics on stderr")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"io"

	"cifmt/internal/platform"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var platformsListQuiet bool
var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "Manage and list output platforms",
	Long: `Discover which CI platforms cifmt can format for and how each one is
selected.

Examples:
  # List all supported platforms
  cifmt platforms list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var platformsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported platforms",
	Long: `List all platforms supported by this build, in selection-name order.

Examples:
  cifmt platforms list

Output:
  A vertical list of platforms:
    ----------------------------------------
    PLATFORM: {NAME}
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, info := range platform.List() {
			if platformsListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), info.Name)
			} else {
				printPlatform(cmd.OutOrStdout(), info)
			}
		}
		return nil
	},
}

func printPlatform(w io.Writer, info platform.Info) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "PLATFORM: %s\n", info.Name)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, info.Title)
	fmt.Fprintln(w, info.Description)
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	platformsCmd.AddCommand(platformsListCmd)
	platformsListCmd.Flags().BoolVarP(&platformsListQuiet, "quiet", "q", false, "Only print platform names")
}

// Package app contains the Cobra command tree for treedoc.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/treedoc/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "treedoc",
	Short: "Generate architecture reports for a directory tree",
	Long: `treedoc scans a directory tree and writes a Markdown report describing
its structure: a file-type distribution chart, an annotated directory tree
with a one-line brief per text file, and a deeper per-file content analysis
driven by extension-specific heuristics.

Run 'treedoc scan' to analyze the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetect()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("treedoc", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  scan      Analyze a directory and write an architecture report")
		fmt.Println("  history   List previous scan snapshots")
		fmt.Println("  types     Show the recognized file types and their rules")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/treedoc/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

package cmd

import (
	"os"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/output"

	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath         string
	flagConfig       string
	flagOutput       string
	flagShowVariable string
	flagShowConfig   bool
	flagExplain      bool
	flagVerbosity    string
	flagWindowSize   int
	flagRemote       string
)

// rootCmd is the top-level command for go-pushdelta.
var rootCmd = &cobra.Command{
	Use:   "go-pushdelta",
	Short: "List the commits not yet pushed to the remote",
	Long: "go-pushdelta finds the last commit of the current branch that was published " +
		"to its remote and lists the commits made since, oldest first.",
	// Default action is detect.
	RunE:          detectRunE,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "json", "output format: json, env, or table")
	rootCmd.PersistentFlags().StringVar(&flagShowVariable, "show-variable", "", "output a single variable (e.g. COMMIT_RANGE)")
	rootCmd.PersistentFlags().BoolVar(&flagShowConfig, "show-config", false, "display the effective configuration and exit")
	rootCmd.PersistentFlags().BoolVar(&flagExplain, "explain", false, "show how the push point and range were found (stderr)")
	rootCmd.PersistentFlags().StringVarP(&flagVerbosity, "verbosity", "v", "info", "log verbosity: quiet, info, debug")
	rootCmd.PersistentFlags().IntVar(&flagWindowSize, "window-size", 0, "commits to report when nothing was published (default: config)")
	rootCmd.PersistentFlags().StringVar(&flagRemote, "remote", "", "remote to compare against (default: branch configuration)")
}

// Execute runs the root command. Failures are reported as a JSON error
// document on stderr with exit status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_ = output.WriteError(os.Stderr, err)
		os.Exit(1)
	}
}

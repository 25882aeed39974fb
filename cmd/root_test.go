package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args and fresh flag values,
// returning what it wrote to stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	flagPath = "."
	flagConfig = ""
	flagOutput = "json"
	flagShowVariable = ""
	flagShowConfig = false
	flagExplain = false
	flagVerbosity = "info"
	flagWindowSize = 0
	flagRemote = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("path"))
	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("output"))
	require.NotNil(t, flags.Lookup("show-variable"))
	require.NotNil(t, flags.Lookup("show-config"))
	require.NotNil(t, flags.Lookup("explain"))
	require.NotNil(t, flags.Lookup("verbosity"))
	require.NotNil(t, flags.Lookup("window-size"))
	require.NotNil(t, flags.Lookup("remote"))

	require.Equal(t, "p", flags.Lookup("path").Shorthand)
	require.Equal(t, "o", flags.Lookup("output").Shorthand)
	require.Equal(t, "v", flags.Lookup("verbosity").Shorthand)
	require.Equal(t, "json", flags.Lookup("output").DefValue)
}

func TestRootCmd_HasVersionSubcommand(t *testing.T) {
	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "version" {
			found = true
			break
		}
	}
	require.True(t, found, "version subcommand should be registered")
}

func TestRootCmd_SilencesCobraErrors(t *testing.T) {
	require.True(t, rootCmd.SilenceErrors)
	require.True(t, rootCmd.SilenceUsage)
}

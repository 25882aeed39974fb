package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/logging"
	"github.com/MyCarrier-DevOps/go-pushdelta/internal/output"
	"github.com/MyCarrier-DevOps/go-pushdelta/pkg/sdk"

	"github.com/spf13/cobra"
)

func detectRunE(cmd *cobra.Command, _ []string) error {
	// 1. Build the logger; stdout carries only the result.
	log, err := logging.New(cmd.ErrOrStderr(), flagVerbosity)
	if err != nil {
		return err
	}

	opts := sdk.Options{
		Path:       flagPath,
		ConfigPath: flagConfig,
		WindowSize: flagWindowSize,
		Remote:     flagRemote,
		Explain:    flagExplain,
		Logger:     log,
	}

	// 2. Show config mode: print and exit.
	if flagShowConfig {
		return showConfig(cmd.OutOrStdout(), opts)
	}

	// 3. Detect.
	result, err := sdk.Detect(opts)
	if err != nil {
		return err
	}

	// 4. Write explain output to stderr if requested.
	if flagExplain {
		if err := output.WriteExplanation(cmd.ErrOrStderr(), result.Delta); err != nil {
			return fmt.Errorf("writing explanation: %w", err)
		}
	}

	// 5. Write output.
	return writeOutput(cmd.OutOrStdout(), result)
}

// showConfig prints the merged configuration as JSON.
func showConfig(w io.Writer, opts sdk.Options) error {
	cfg, err := sdk.LoadConfiguration(opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeOutput writes the result in the requested format.
func writeOutput(w io.Writer, result *sdk.Result) error {
	if flagShowVariable != "" {
		return output.WriteVariable(w, result.Variables, flagShowVariable)
	}

	switch flagOutput {
	case "json", "":
		return output.WriteJSON(w, result.Delta)
	case "env":
		return output.WriteAll(w, result.Variables)
	case "table":
		return output.WriteTable(w, result.Delta, time.Now())
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}

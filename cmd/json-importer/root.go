package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errInvalidInput is returned when a payload does not match its structure.
// The report has already been printed by then.
var errInvalidInput = errors.New("input does not match structure")

const (
	exitInvalidInput = 1
	exitFailure      = 2
)

var (
	flagLogLevel string
	log          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "json-importer",
	Short: "Validate and import JSON documents against declared structures",
	Long: `json-importer checks JSON objects against structures described in a YAML
descriptor file. Each declared field must be present with the declared type,
nullable fields may hold an explicit null, and exact structures reject any
field they do not declare.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errInvalidInput) {
		return exitInvalidInput
	}

	fmt.Fprintln(os.Stderr, err)

	return exitFailure
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info",
		"log level: trace, debug, info, warn, error")

	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	log = zerolog.New(cmd.ErrOrStderr()).With().Timestamp().Logger().Level(lvl)

	return nil
}

// SPDX-License-Identifier: MIT

// Command shapecalc computes areas of circles and triangles from the
// command line.
//
//	shapecalc circle 5
//	shapecalc triangle 3 4 5
//	shapecalc --locale de --precision 3 triangle 5 5 5
//
// Defaults come from SHAPECALC_* environment variables (see Config) and can
// be overridden with flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/shapecalc/shapes"
	"github.com/spf13/cobra"
)

// Exit statuses. Construction errors get their own codes so scripts can
// tell malformed input from an impossible triangle.
const (
	exitFailure          = 1
	exitInvalidArgument  = 2
	exitValidationFailed = 3
)

func main() {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitFailure)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by the command tree to a process status.
func exitCode(err error) int {
	switch {
	case errors.Is(err, shapes.ErrValidationFailed):
		return exitValidationFailed
	case errors.Is(err, shapes.ErrInvalidArgument):
		return exitInvalidArgument
	default:
		return exitFailure
	}
}

// newRootCmd builds the command tree. cfg supplies flag defaults; flags
// parsed on the command line are written back into a private copy.
func newRootCmd(cfg Config) *cobra.Command {
	opts := cfg

	root := &cobra.Command{
		Use:           "shapecalc",
		Short:         "Compute areas of circles and triangles",
		Long:          "shapecalc validates circle radii and triangle sides and prints the area of the resulting shape.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Validate()
		},
		// No Run: prints help by default.
	}

	root.PersistentFlags().StringVar(&opts.Locale, "locale", cfg.Locale, "BCP 47 locale used to format numbers (env SHAPECALC_LOCALE)")
	root.PersistentFlags().IntVar(&opts.Precision, "precision", cfg.Precision, "fraction digits printed for lengths and areas (env SHAPECALC_PRECISION)")
	root.PersistentFlags().Float64Var(&opts.RightTolerance, "tolerance", cfg.RightTolerance, "absolute tolerance of the right-triangle check (env SHAPECALC_RIGHT_TOLERANCE)")

	root.AddCommand(newCircleCmd(&opts))
	root.AddCommand(newTriangleCmd(&opts))

	return root
}

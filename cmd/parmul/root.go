// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every sub-command.
type globalFlags struct {
	workers int  // pool size; <= 0 means GOMAXPROCS
	verbose bool // debug logging on stderr
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "parmul",
		Short:         "Multiply matrix chains by spreading cell dot products over a worker pool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&g.workers, "workers", "w", 0, "number of pool workers (0 = GOMAXPROCS)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log per-batch progress to stderr")

	root.AddCommand(newMultiplyCmd(g), newValidateCmd())

	return root
}

// newLogger returns a text logger on w; Debug records only with verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

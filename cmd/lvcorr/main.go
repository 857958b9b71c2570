// SPDX-License-Identifier: MIT

// Command lvcorr reports the Linear, Spearman and Kendall correlation between
// two named columns of a CSV measurements file.
//
//	lvcorr run --file data.csv --first Height --second Age
//	lvcorr run --file data.csv --first Height --second Age --format json --plot scatter.png
//	lvcorr run                 # prompts for the file and both column names
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvcorr",
		Short: "lvcorr - correlation between two measurement columns",
		Long: `lvcorr loads two named numeric columns from a delimited measurements file
and reports their Linear (Pearson), Spearman and Kendall correlation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lvcorr v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})
	root.AddCommand(newRunCmd())

	return root
}

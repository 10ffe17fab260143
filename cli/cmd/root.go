package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is reported by the version command. Overridden at link time with
// -ldflags "-X github.com/katalvlaran/boundmem/cli/cmd.Version=...".
var Version = "dev"

// Execute is the main entry point for the boundmem command line.
func Execute() {
	root := newRoot()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Return a new root command.
func newRoot() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "boundmem",
		Short: "Bounds-checked arrays and safe cursors",
		Long: `Exercise the safearray library: build NUL-terminated strings in
fixed-size arrays, compare them, and provoke the range checks that stop every
out-of-bounds or cross-array cursor operation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log bounds violations at debug level")

	root.AddCommand(newDemo(&verbose))
	root.AddCommand(newVersion())

	return root
}

// Return a new version command.
func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boundmem version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "boundmem %s\n", Version)
		},
	}
}

package cmd

import (
	"fmt"
	"io"

	"github.com/katalvlaran/boundmem/cstr"
	"github.com/katalvlaran/boundmem/safearray"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoConfig holds the flags of the demo command.
type demoConfig struct {
	text      string
	length    int
	maxLength int
}

// Return a new demo command.
func newDemo(verbose *bool) *cobra.Command {
	cfg := demoConfig{}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Build two strings, compare them and provoke every range check.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd.ErrOrStderr(), *verbose)
			defer func() { _ = log.Sync() }()

			return runDemo(cmd.OutOrStdout(), log, cfg)
		},
	}

	flags := demo.Flags()
	flags.StringVarP(&cfg.text, "text", "t", "hello", "string stored in the first array")
	flags.IntVarP(&cfg.length, "length", "l", 8, "array length, including the NUL padding")
	flags.IntVar(&cfg.maxLength, "max-length", safearray.DefaultMaxLength, "largest array length accepted")

	return demo
}

// runDemo prints one line per step. Range failures are reported and the demo
// carries on; only a failure to build the first array aborts it.
func runDemo(out io.Writer, log *zap.Logger, cfg demoConfig) error {
	if cfg.maxLength < 1 {
		return errors.Errorf("invalid --max-length %d", cfg.maxLength)
	}
	opts := []safearray.Option{
		safearray.WithMaxLength(cfg.maxLength),
		safearray.WithLogger(log),
	}

	str1, err := cstr.FromString(cfg.text, cfg.length, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to build the first array")
	}
	if _, err = cstr.WriteTo(out, str1); err != nil {
		return errors.Wrap(err, "failed to print the first array")
	}
	fmt.Fprintln(out)

	str2 := str1.Clone()
	fmt.Fprintln(out, flag(cstr.Equal(str1, str2)))
	fmt.Fprintln(out, flag(cstr.EqualIndexed(str2, str2)))
	same, err := cstr.EqualFrom(str1.Begin(), str2.Begin())
	if err != nil {
		report(out, log, "positional walk", err)
	} else {
		fmt.Fprintln(out, flag(same))
	}

	// No cursor exists one past the end, let alone two. The original program
	// tries this twice: once discarding the result, once keeping it.
	for i := 0; i < 2; i++ {
		if _, err = str1.Advance(str1.Len() + 1); err != nil {
			report(out, log, "array advance", err)
		}
	}

	sp1, err := str1.Advance(min(5, str1.Len()-1))
	if err != nil {
		report(out, log, "array advance", err)
		return nil
	}
	// A single in-window step; it only fails when the array is shorter than 7.
	if _, err = sp1.PostInc(); err != nil {
		report(out, log, "cursor increment", err)
	}

	sp2, err := str2.Advance(min(2, str2.Len()-1))
	if err != nil {
		report(out, log, "array advance", err)
		return nil
	}
	if _, err = safearray.Distance(sp2, sp1); err != nil {
		report(out, log, "cursor distance", err)
	}
	fmt.Fprintln(out, flag(safearray.Equal(sp2, sp1)))

	for i := 0; i < 2; i++ {
		if _, err = sp2.PostDec(); err != nil {
			report(out, log, "cursor decrement", err)
			break
		}
	}
	fmt.Fprintln(out, flag(safearray.Equal(str2.Begin(), sp2)))

	ch, err := sp2.Load()
	if err != nil {
		report(out, log, "cursor load", err)
		return nil
	}
	fmt.Fprintf(out, "%c%c\n", printable(*str2.First()), printable(ch))

	return nil
}

// report writes err as a line of output and logs it, then lets the caller
// continue.
func report(out io.Writer, log *zap.Logger, step string, err error) {
	log.Warn("range check failed", zap.String("step", step), zap.Error(err))
	fmt.Fprintln(out, err)
}

// flag renders a bool the way a C++ stream does.
func flag(b bool) int {
	if b {
		return 1
	}

	return 0
}

func printable(ch byte) byte {
	if ch == cstr.NUL {
		return '.'
	}

	return ch
}

// Command galactic loads a context from a YAML file and renders it.
//
//	galactic show shop.yaml
//	galactic show --format string - < shop.yaml
//	galactic types
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/galactic-lattice/galactic"
	"github.com/galactic-lattice/galactic/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	debug  bool
	format string
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "galactic",
		Short:         "Inspect typed contexts of individuals and attributes",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&o.debug, "debug", false, "log model and population changes to stderr")

	show := &cobra.Command{
		Use:   "show FILE",
		Short: "Load a context and print it (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, o, args[0])
		},
	}
	show.Flags().StringVarP(&o.format, "format", "f", "table", "output format: table or string")

	types := &cobra.Command{
		Use:   "types",
		Short: "List the builtin type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range galactic.NewRegistry().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	root.AddCommand(show, types)
	return root
}

func runShow(cmd *cobra.Command, o *options, path string) error {
	if o.format != "table" && o.format != "string" {
		return errors.Valuef("unknown format %q", o.format)
	}

	logger := zap.NewNop()
	if o.debug {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(cmd.ErrOrStderr()), zap.DebugLevel))
		defer func() { _ = logger.Sync() }()
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	ctx, err := galactic.Decode(r, nil, galactic.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, path)
	}

	switch o.format {
	case "string":
		fmt.Fprintln(cmd.OutOrStdout(), ctx)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), ctx.Table())
	}
	return nil
}

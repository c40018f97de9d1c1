// Package cmd implements the decmath command tree.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/internal/config"
)

// Error is the class of command line errors.
var Error = errs.Class("decmath")

// app holds the state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	output  string
	verbose bool

	cfg *config.Config
	log *slog.Logger
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns a fresh decmath command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:   "decmath",
		Short: "Decimal math functions with 28 digits of precision",
		Long: `decmath evaluates transcendental and utility functions on 96 bits
fixed-precision decimal numbers.

Arguments are decimal literals such as 2, -0.5 or 1.5e3. Every result is
rounded to at most 28 fractional digits.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newVersionCmd(),
		newSqrtCmd(a),
		newPowCmd(a),
		newExpCmd(a),
		newFactorialCmd(a),
		newLnCmd(a),
		newLogCmd(a),
		newTrigCmd(a),
		newQuadCmd(a),
		newRemCmd(a),
		newRoundCmd(a),
		newPlacesCmd(a),
		newAggCmd(a),
		newConstCmd(a),
	)
	return root
}

// setup loads the configuration and applies the command line overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.verbose {
		cfg.Log.Verbose = true
	}
	a.cfg = cfg

	level := slog.LevelWarn
	if cfg.Log.Verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configuration loaded",
		"file", a.cfgFile,
		"format", cfg.Output.Format,
		"style", cfg.Output.Style)
	return nil
}

// parseArgs parses every argument as a Decimal.
func parseArgs(args []string) ([]decimal.Decimal, error) {
	ds := make([]decimal.Decimal, len(args))
	for i, s := range args {
		d, err := decimal.Parse(s)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

// eval parses args, applies f to them and prints the results.
func (a *app) eval(cmd *cobra.Command, op string, args []string, f func([]decimal.Decimal) ([]decimal.Decimal, error)) (err error) {
	defer Error.WrapP(&err)
	ds, err := parseArgs(args)
	if err != nil {
		return err
	}
	a.log.Debug("evaluating", "op", op, "args", args)
	vs, err := f(ds)
	if err != nil {
		return err
	}
	return a.emit(cmd, op, args, vs...)
}

// unary builds the RunE function of a command that applies f to its single
// argument.
func (a *app) unary(op string, f func(decimal.Decimal) (decimal.Decimal, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.eval(cmd, op, args, func(x []decimal.Decimal) ([]decimal.Decimal, error) {
			r, err := f(x[0])
			return []decimal.Decimal{r}, err
		})
	}
}

// binary is like unary for functions of two arguments.
func (a *app) binary(op string, f func(x, y decimal.Decimal) (decimal.Decimal, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return a.eval(cmd, op, args, func(x []decimal.Decimal) ([]decimal.Decimal, error) {
			r, err := f(x[0], x[1])
			return []decimal.Decimal{r}, err
		})
	}
}

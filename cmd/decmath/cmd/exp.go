package cmd

import (
	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

func newSqrtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt <x>",
		Short: "Square root",
		Args:  cobra.ExactArgs(1),
		RunE:  a.unary("sqrt", math.Sqrt),
	}
}

func newPowCmd(a *app) *cobra.Command {
	var squaring bool
	cmd := &cobra.Command{
		Use:   "pow <x> <y>",
		Short: "Raise x to the power y",
		Long: `Raise x to the power y.

With --squaring, y must be a non-negative integer and the result is computed
by repeated squaring only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := math.Pow
			if squaring {
				f = math.ExpBySquaring
			}
			return a.binary("pow", f)(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&squaring, "squaring", false, "use exponentiation by squaring")
	return cmd
}

func newExpCmd(a *app) *cobra.Command {
	var base string
	cmd := &cobra.Command{
		Use:   "exp <x>",
		Short: "Exponential function",
		Long: `Compute e**x, or 10**x and 2**x with --base 10 and --base 2.

Large negative arguments underflow to 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f func(decimal.Decimal) (decimal.Decimal, error)
			switch base {
			case "e":
				f = math.Exp
			case "10":
				f = math.Pow10
			case "2":
				f = math.Pow2
			default:
				return Error.New("unsupported base %q", base)
			}
			return a.unary("exp", f)(cmd, args)
		},
	}
	cmd.Flags().StringVar(&base, "base", "e", "base: e, 10 or 2")
	return cmd
}

func newFactorialCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factorial <n>",
		Short: "Factorial of a non-negative integer",
		Args:  cobra.ExactArgs(1),
		RunE:  a.unary("factorial", math.Factorial),
	}
}

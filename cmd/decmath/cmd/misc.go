package cmd

import (
	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

func newQuadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quad <a> <b> <c>",
		Short: "Real roots of a×x² + b×x + c",
		Long: `Solve the quadratic equation a×x² + b×x + c = 0 over the reals.

Use -- before the coefficients if one of them is negative.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eval(cmd, "quad", args, func(x []decimal.Decimal) ([]decimal.Decimal, error) {
				return math.SolveQuadratic(x[0], x[1], x[2])
			})
		},
	}
}

func newRemCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rem <x> <y>",
		Short: "Remainder of x/y with the sign of x",
		Args:  cobra.ExactArgs(2),
		RunE:  a.binary("rem", math.Remainder),
	}
}

func newRoundCmd(a *app) *cobra.Command {
	var (
		places int
		mode   string
	)
	cmd := &cobra.Command{
		Use:   "round <x>",
		Short: "Round to a number of fractional digits",
		Long: `Round x to the given number of fractional digits.

Modes:
  away   halves away from zero
  even   halves to even
  floor  toward negative infinity
  ceil   toward positive infinity`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f func(decimal.Decimal, int) (decimal.Decimal, error)
			switch mode {
			case "away":
				f = math.RoundFromZero
			case "even":
				f = func(x decimal.Decimal, n int) (decimal.Decimal, error) {
					if n < 0 {
						return decimal.Zero, math.RangeError.New("negative number of places %d", n)
					}
					return x.Round(n), nil
				}
			case "floor":
				f = math.Floor
			case "ceil":
				f = math.Ceiling
			default:
				return Error.New("unsupported rounding mode %q", mode)
			}
			return a.unary("round", func(x decimal.Decimal) (decimal.Decimal, error) {
				return f(x, places)
			})(cmd, args)
		},
	}
	cmd.Flags().IntVarP(&places, "places", "p", 0, "number of fractional digits")
	cmd.Flags().StringVarP(&mode, "mode", "m", "away", "rounding mode: away, even, floor or ceil")
	return cmd
}

func newPlacesCmd(a *app) *cobra.Command {
	var trailing bool
	cmd := &cobra.Command{
		Use:   "places <x>",
		Short: "Number of fractional digits of x",
		Args:  cobra.ExactArgs(1),
		RunE: a.unary("places", func(x decimal.Decimal) (decimal.Decimal, error) {
			return decimal.NewFromInt64(int64(math.GetDecimalPlaces(x, trailing))), nil
		}),
	}
	cmd.Flags().BoolVar(&trailing, "trailing", false, "count trailing zeros")
	return cmd
}

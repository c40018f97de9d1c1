package cmd

import (
	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

func newLnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ln <x>",
		Short: "Natural logarithm",
		Args:  cobra.ExactArgs(1),
		RunE:  a.unary("ln", math.Ln),
	}
}

func newLogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log <x> [base]",
		Short: "Logarithm, in base 10 by default",
		Long: `Compute the logarithm of x in the given base, 10 if omitted.

Integral powers of the base give exact results in base 10 and 2.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.unary("log", math.Log10)(cmd, args)
			}
			return a.binary("log", logBase)(cmd, args)
		},
	}
}

func logBase(x, b decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case b.Equal(decimal.NewFromInt64(10)):
		return math.Log10(x)
	case b.Equal(decimal.NewFromInt64(2)):
		return math.Log2(x)
	}
	return math.Log(x, b)
}

package cmd

import (
	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

type aggFunc struct {
	min, max int // number of values, max < 0 for no limit
	eval     func(v []decimal.Decimal) (decimal.Decimal, error)
}

var aggFuncs = map[string]aggFunc{
	"gcf": {2, -1, func(v []decimal.Decimal) (decimal.Decimal, error) {
		return math.GCF(v[0], v[1], v[2:]...)
	}},
	"agm": {2, 2, func(v []decimal.Decimal) (decimal.Decimal, error) {
		return math.AGMean(v[0], v[1])
	}},
	"avg": {1, -1, variadic(math.Average)},
	"max": {1, -1, variadic(math.Max)},
	"min": {1, -1, variadic(math.Min)},
}

func variadic(f func(...decimal.Decimal) (decimal.Decimal, error)) func([]decimal.Decimal) (decimal.Decimal, error) {
	return func(v []decimal.Decimal) (decimal.Decimal, error) { return f(v...) }
}

func newAggCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "agg <fn> <values>...",
		Short: "Aggregate functions",
		Long: `Aggregate a list of values.

Functions:
  gcf  greatest common factor of two or more values
  agm  arithmetic-geometric mean of two values
  avg  average
  max  largest value
  min  smallest value`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := aggFuncs[args[0]]
			if !ok {
				return Error.New("unknown function %q", args[0])
			}
			if n := len(args) - 1; n < fn.min || fn.max >= 0 && n > fn.max {
				return Error.New("wrong number of values for %s: %d", args[0], n)
			}
			return a.eval(cmd, args[0], args[1:], func(v []decimal.Decimal) ([]decimal.Decimal, error) {
				r, err := fn.eval(v)
				return []decimal.Decimal{r}, err
			})
		},
	}
}

package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

type trigFunc struct {
	args int
	// eval computes the function; deg reports whether angles are in degrees.
	eval func(x []decimal.Decimal, deg bool) (decimal.Decimal, error)
}

// direct applies f to an angle.
func direct(f func(decimal.Decimal) (decimal.Decimal, error)) trigFunc {
	return trigFunc{1, func(x []decimal.Decimal, deg bool) (decimal.Decimal, error) {
		t := x[0]
		if deg {
			var err error
			if t, err = math.ToRad(t); err != nil {
				return decimal.Zero, err
			}
		}
		return f(t)
	}}
}

// inverse applies f and returns an angle.
func inverse(f func(decimal.Decimal) (decimal.Decimal, error)) trigFunc {
	return trigFunc{1, func(x []decimal.Decimal, deg bool) (decimal.Decimal, error) {
		return toDeg(f(x[0]))(deg)
	}}
}

func toDeg(r decimal.Decimal, err error) func(bool) (decimal.Decimal, error) {
	return func(deg bool) (decimal.Decimal, error) {
		if err != nil || !deg {
			return r, err
		}
		return math.ToDeg(r)
	}
}

var trigFuncs = map[string]trigFunc{
	"sin":  direct(math.Sin),
	"cos":  direct(math.Cos),
	"tan":  direct(math.Tan),
	"asin": inverse(math.ASin),
	"acos": inverse(math.ACos),
	"atan": inverse(math.ATan),

	"atan2": {2, func(x []decimal.Decimal, deg bool) (decimal.Decimal, error) {
		return toDeg(math.ATan2(x[0], x[1]))(deg)
	}},
	"norm": {1, func(x []decimal.Decimal, deg bool) (decimal.Decimal, error) {
		if deg {
			return math.NormalizeAngleDeg(x[0])
		}
		return math.NormalizeAngle(x[0])
	}},
	"rad": {1, func(x []decimal.Decimal, _ bool) (decimal.Decimal, error) {
		return math.ToRad(x[0])
	}},
	"deg": {1, func(x []decimal.Decimal, _ bool) (decimal.Decimal, error) {
		return math.ToDeg(x[0])
	}},
}

func trigNames() string {
	names := make([]string, 0, len(trigFuncs))
	for n := range trigFuncs {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newTrigCmd(a *app) *cobra.Command {
	var deg bool
	cmd := &cobra.Command{
		Use:   "trig <fn> <x> [y]",
		Short: "Trigonometric functions and angle conversions",
		Long: `Evaluate a trigonometric function.

Functions: ` + trigNames() + `.

atan2 takes the arguments y and x. With --deg, angles given to or returned
by the function are in degrees; rad and deg always convert from degrees and
radians respectively.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := trigFuncs[args[0]]
			if !ok {
				return Error.New("unknown function %q", args[0])
			}
			if len(args)-1 != fn.args {
				return Error.New("%s takes %d argument(s), got %d", args[0], fn.args, len(args)-1)
			}
			return a.eval(cmd, args[0], args[1:], func(x []decimal.Decimal) ([]decimal.Decimal, error) {
				r, err := fn.eval(x, deg)
				return []decimal.Decimal{r}, err
			})
		},
	}
	cmd.Flags().BoolVar(&deg, "deg", false, "angles in degrees")
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/math"
)

var constants = []struct {
	name  string
	value decimal.Decimal
}{
	{"pi", math.Pi},
	{"pi/2", math.PiHalf},
	{"pi/4", math.PiQuarter},
	{"pi/12", math.PiTwelfth},
	{"2pi", math.TwoPi},
	{"e", math.E},
	{"ln10", math.Ln10},
	{"ln2", math.Ln2},
	{"epsilon", math.SmallestNonZeroDec},
}

func lookupConst(name string) (decimal.Decimal, bool) {
	for _, c := range constants {
		if c.name == name {
			return c.value, true
		}
	}
	return decimal.Zero, false
}

func newConstCmd(a *app) *cobra.Command {
	var compute bool
	cmd := &cobra.Command{
		Use:   "const [name]...",
		Short: "Print mathematical constants",
		Long: `Print the named constants, or all of them.

Names: pi, pi/2, pi/4, pi/12, 2pi, e, ln10, ln2 and epsilon, the smallest
positive value. With --compute, π is computed with the Gauss-Legendre
algorithm instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if compute {
				if len(args) > 0 {
					return Error.New("--compute takes no arguments")
				}
				return a.eval(cmd, "pi", nil, func([]decimal.Decimal) ([]decimal.Decimal, error) {
					pi, err := math.ComputePi()
					return []decimal.Decimal{pi}, err
				})
			}
			if len(args) == 0 {
				for _, c := range constants {
					args = append(args, c.name)
				}
			}
			values := make([]decimal.Decimal, len(args))
			for i, name := range args {
				v, ok := lookupConst(name)
				if !ok {
					return Error.New("unknown constant %q", name)
				}
				values[i] = v
			}
			return a.emit(cmd, "const", args, values...)
		},
	}
	cmd.Flags().BoolVar(&compute, "compute", false, "compute π")
	return cmd
}

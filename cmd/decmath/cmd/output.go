package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	decimal "github.com/db47h/decmath"
	"github.com/db47h/decmath/internal/config"
)

var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")

	opStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	argStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSecondary)
)

// result is the printable outcome of one evaluation.
type result struct {
	Op     string   `json:"op" yaml:"op"`
	Args   []string `json:"args" yaml:"args"`
	Values []string `json:"values" yaml:"values"`
}

func newResult(op string, args []string, values ...decimal.Decimal) result {
	r := result{Op: op, Args: args, Values: make([]string, len(values))}
	for i, v := range values {
		r.Values[i] = v.String()
	}
	return r
}

// emit prints the result of op to the command's output in the configured
// format.
func (a *app) emit(cmd *cobra.Command, op string, args []string, values ...decimal.Decimal) error {
	r := newResult(op, args, values...)
	a.log.Debug("evaluated", "op", op, "args", args, "values", r.Values)
	return a.write(cmd.OutOrStdout(), r)
}

func (a *app) write(w io.Writer, r result) error {
	switch a.cfg.Output.Format {
	case config.FormatJSON:
		return json.NewEncoder(w).Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, r.text(a.cfg.Output.Style))
	return err
}

// text formats r as op(args) = values.
func (r result) text(styled bool) string {
	op, args := r.Op, strings.Join(r.Args, ", ")
	values := strings.Join(r.Values, ", ")
	if len(r.Values) == 0 {
		values = "none"
	}
	if styled {
		op, args, values = opStyle.Render(op), argStyle.Render(args), valueStyle.Render(values)
	}
	return fmt.Sprintf("%s(%s) = %s", op, args, values)
}

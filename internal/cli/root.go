// Package cli implements the scalargrad command line interface.
//
// The CLI is a demonstration surface over the autodiff engine: expressions
// are parsed with internal/expr, variables bind to leaves via name=value
// arguments, and results print to the command's output stream.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scalar-ml/scalargrad/internal/autodiff"
)

// NewRootCommand creates the scalargrad root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scalargrad",
		Short: "Reverse-mode automatic differentiation for scalar expressions",
		Long: `scalargrad builds computation graphs from scalar arithmetic expressions
and computes exact derivatives via reverse-mode automatic differentiation.

Variables bind to values with name=value arguments:

  scalargrad eval "a*a - b*b + a/b" a=2 b=3
  scalargrad grad "a*a - b*b + a/b" a=2 b=3
  scalargrad dot  "(a+b)*(a+b)" a=2 b=3 | dot -Tpng -o graph.png`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewEvalCommand())
	cmd.AddCommand(NewGradCommand())
	cmd.AddCommand(NewDotCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// parseBindings converts trailing name=value arguments into leaf nodes.
func parseBindings(args []string) (map[string]*autodiff.Node, error) {
	vars := make(map[string]*autodiff.Node, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("binding %q is not of the form name=value", arg)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("binding %q: invalid value: %w", arg, err)
		}
		if _, dup := vars[name]; dup {
			return nil, fmt.Errorf("variable %q bound twice", name)
		}
		vars[name] = autodiff.Leaf(v)
	}
	return vars, nil
}

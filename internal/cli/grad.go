package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/scalar-ml/scalargrad/internal/autodiff"
	"github.com/scalar-ml/scalargrad/internal/expr"
)

// GradOptions holds flags for the grad command.
type GradOptions struct {
	Wrt []string
}

// NewGradCommand creates the grad command.
func NewGradCommand() *cobra.Command {
	opts := &GradOptions{}

	cmd := &cobra.Command{
		Use:   "grad <expression> [name=value...]",
		Short: "Compute gradients of an expression",
		Long: `Compute the gradient of an expression with respect to its variables
using reverse-mode automatic differentiation.

By default gradients are reported for every bound variable, in name order.
Use --wrt to restrict or reorder them.

Example:
  scalargrad grad "a*a - b*b + a/b" a=2 b=3
  scalargrad grad "a*b" --wrt b a=2 b=3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrad(opts, args, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Wrt, "wrt", nil, "variables to differentiate against (default: all, sorted)")

	return cmd
}

func runGrad(opts *GradOptions, args []string, cmd *cobra.Command) error {
	vars, err := parseBindings(args[1:])
	if err != nil {
		return err
	}
	output, err := expr.Parse(args[0], vars)
	if err != nil {
		return err
	}

	names := opts.Wrt
	if len(names) == 0 {
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	wrt := make([]*autodiff.Node, len(names))
	for i, name := range names {
		node, ok := vars[name]
		if !ok {
			return fmt.Errorf("--wrt %s: variable is not bound", name)
		}
		wrt[i] = node
	}

	grads := autodiff.Gradients(output, wrt)
	for i, grad := range grads {
		v, err := grad.Eval()
		if err != nil {
			return fmt.Errorf("grad d/d%s: %w", names[i], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "d/d%s = %g\n", names[i], v)
	}
	return nil
}

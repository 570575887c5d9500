package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalar-ml/scalargrad/internal/expr"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression> [name=value...]",
		Short: "Evaluate an expression",
		Long: `Evaluate a scalar arithmetic expression.

Example:
  scalargrad eval "a*a - b*b + a/b" a=2 b=3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars, err := parseBindings(args[1:])
			if err != nil {
				return err
			}
			node, err := expr.Parse(args[0], vars)
			if err != nil {
				return err
			}
			v, err := node.Eval()
			if err != nil {
				return fmt.Errorf("eval: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scalar-ml/scalargrad/internal/autodiff"
	"github.com/scalar-ml/scalargrad/internal/expr"
)

// NewDotCommand creates the dot command.
func NewDotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dot <expression> [name=value...]",
		Short: "Render an expression graph in Graphviz DOT format",
		Long: `Render the computation graph of an expression in Graphviz DOT format.

Example:
  scalargrad dot "(a+b)*(a+b)" a=2 b=3 | dot -Tpng -o graph.png`,
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
			fmt.Fprint(cmd.OutOrStdout(), autodiff.Dot(node))
			return nil
		},
	}
}

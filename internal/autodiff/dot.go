package autodiff

import (
	"fmt"
	"strconv"
	"strings"
)

// Dot renders the graph reachable from output in Graphviz DOT format.
//
// Node ids are positions in the topological order, so the output is
// deterministic for a fixed graph regardless of construction history. Leaves
// are labeled with their value, internal nodes with their operator name.
// Edges point from input to consumer, in input order.
func Dot(output *Node) string {
	order := topoOrder(output)
	ids := make(map[*Node]int, len(order))
	for i, node := range order {
		ids[node] = i
	}

	var b strings.Builder
	b.WriteString("digraph autodiff {\n")
	b.WriteString("  rankdir=BT;\n")
	for i, node := range order {
		if node.op == nil {
			label := "?"
			if node.cached {
				label = strconv.FormatFloat(node.value, 'g', -1, 64)
			}
			fmt.Fprintf(&b, "  n%d [label=%q shape=ellipse];\n", i, label)
		} else {
			fmt.Fprintf(&b, "  n%d [label=%q shape=box];\n", i, node.op.Name())
		}
	}
	for i, node := range order {
		for _, input := range node.inputs {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", ids[input], i)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

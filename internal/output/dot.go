package output

import (
	"fmt"
	"strings"

	"csdep/internal/graph"
)

// DOTGenerator serializes a dependency graph into Graphviz DOT text, the
// tool's sole externally consumed artifact.
type DOTGenerator struct {
	graph *graph.Graph
}

func NewDOTGenerator(g *graph.Graph) *DOTGenerator {
	return &DOTGenerator{graph: g}
}

// Generate renders the graph top-to-bottom with boxed filled nodes. Cycle
// membership is color-coded: lightcoral/lightgreen for nodes, red/darkgreen
// for edges. Only circular edges carry a label, and the label is bounded so
// large graphs stay readable.
func (d *DOTGenerator) Generate(circ graph.CircularSet) (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph Dependencies {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=filled];\n")
	buf.WriteString("  edge [fontsize=8];\n\n")

	for _, node := range d.graph.Nodes() {
		color := "lightgreen"
		if circ.Nodes[node] {
			color = "lightcoral"
		}
		buf.WriteString(fmt.Sprintf("  \"%s\" [fillcolor=%s];\n", escape(node), color))
	}

	buf.WriteString("\n")

	for _, edge := range d.graph.Edges() {
		color := "darkgreen"
		label := ""
		if circ.Edges[edge] {
			color = "red"
			label = edgeLabel(d.graph.Reasons(edge.From, edge.To))
		}

		if label != "" {
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=%s, label=\"%s\"];\n",
				escape(edge.From), escape(edge.To), color, label))
		} else {
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [color=%s];\n",
				escape(edge.From), escape(edge.To), color))
		}
	}

	buf.WriteString("}")

	return buf.String(), nil
}

// edgeLabel bounds the rendered reason list: two reasons at most are shown
// in full, anything longer collapses to the first reason plus a count.
func edgeLabel(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}

	// Reasons are escaped one by one so the literal \n separators below
	// reach Graphviz intact.
	escaped := make([]string, len(reasons))
	for i, r := range reasons {
		escaped[i] = escape(r)
	}

	if len(escaped) <= 2 {
		return strings.Join(escaped, `\n`)
	}
	return fmt.Sprintf(`%s\n...and %d more`, escaped[0], len(escaped)-1)
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

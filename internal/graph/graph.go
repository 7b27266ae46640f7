package graph

import (
	"fmt"
	"sort"

	"csdep/internal/parser"
)

// Edge identifies a directed dependency by qualified symbol names.
type Edge struct {
	From string
	To   string
}

// Graph is the aggregated dependency graph: unique edges, each backed by a
// deduplicated list of human-readable reasons. All iteration helpers return
// data sorted by qualified name so rendering is byte-reproducible.
type Graph struct {
	symbols   map[string]parser.Symbol
	adjacency map[string]map[string]bool
	reasons   map[Edge]map[string]bool
}

// Build aggregates raw references into a graph. Self-edges are dropped.
// Isolated symbols (discovered but with no references either way) are kept
// as nodes; system mode relies on this to show standalone systems.
func Build(refs []parser.Reference, isolated []parser.Symbol) *Graph {
	g := &Graph{
		symbols:   make(map[string]parser.Symbol),
		adjacency: make(map[string]map[string]bool),
		reasons:   make(map[Edge]map[string]bool),
	}

	for _, sym := range isolated {
		g.symbols[sym.Qualified] = sym
	}

	for _, ref := range refs {
		if ref.From.Qualified == ref.To.Qualified {
			continue
		}

		g.symbols[ref.From.Qualified] = ref.From
		g.symbols[ref.To.Qualified] = ref.To

		if g.adjacency[ref.From.Qualified] == nil {
			g.adjacency[ref.From.Qualified] = make(map[string]bool)
		}
		g.adjacency[ref.From.Qualified][ref.To.Qualified] = true

		edge := Edge{From: ref.From.Qualified, To: ref.To.Qualified}
		if g.reasons[edge] == nil {
			g.reasons[edge] = make(map[string]bool)
		}
		g.reasons[edge][fmt.Sprintf("%s (%s:%d)", ref.Kind.Label(), ref.File, ref.Line)] = true
	}

	return g
}

// Nodes returns every symbol appearing as a source or target, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.symbols))
	for q := range g.symbols {
		nodes = append(nodes, q)
	}
	sort.Strings(nodes)
	return nodes
}

// Targets returns the sorted dependency targets of a node.
func (g *Graph) Targets(from string) []string {
	targets := make([]string, 0, len(g.adjacency[from]))
	for to := range g.adjacency[from] {
		targets = append(targets, to)
	}
	sort.Strings(targets)
	return targets
}

// Edges returns every edge sorted by (from, to).
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, from := range g.Nodes() {
		for _, to := range g.Targets(from) {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// Reasons returns the sorted, deduplicated reason list for an edge.
func (g *Graph) Reasons(from, to string) []string {
	set := g.reasons[Edge{From: from, To: to}]
	reasons := make([]string, 0, len(set))
	for r := range set {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}

func (g *Graph) HasEdge(from, to string) bool {
	return g.adjacency[from][to]
}

func (g *Graph) NodeCount() int {
	return len(g.symbols)
}

func (g *Graph) EdgeCount() int {
	n := 0
	for _, targets := range g.adjacency {
		n += len(targets)
	}
	return n
}

// SourceCount returns how many nodes have at least one outgoing edge.
func (g *Graph) SourceCount() int {
	n := 0
	for _, targets := range g.adjacency {
		if len(targets) > 0 {
			n++
		}
	}
	return n
}

package graph

import "sort"

// CircularSet is the validated result of cycle detection: the edges proven
// to lie on a directed cycle and the union of their endpoints.
type CircularSet struct {
	Edges map[Edge]bool
	Nodes map[string]bool
}

// SortedEdges returns the circular edges sorted by (from, to).
func (c CircularSet) SortedEdges() []Edge {
	edges := make([]Edge, 0, len(c.Edges))
	for e := range c.Edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From == edges[j].From {
			return edges[i].To < edges[j].To
		}
		return edges[i].From < edges[j].From
	})
	return edges
}

// DetectCircular finds the edges that are part of a genuine directed cycle.
// An edge (a, b) is circular exactly when a directed path from b back to a
// exists, so every edge is validated with an independent reachability search
// over a fresh visited set. Nominating candidates off the DFS recursion
// stack would be cheaper but under-reports: a successor finished in an
// earlier subtree is never on the stack, and the closing edge of a real
// cycle through it goes missing.
func (g *Graph) DetectCircular() CircularSet {
	result := CircularSet{
		Edges: make(map[Edge]bool),
		Nodes: make(map[string]bool),
	}
	for _, edge := range g.Edges() {
		if g.reaches(edge.To, edge.From) {
			result.Edges[edge] = true
			result.Nodes[edge.From] = true
			result.Nodes[edge.To] = true
		}
	}
	return result
}

// reaches reports whether a directed walk from start to target exists using
// only graph edges.
func (g *Graph) reaches(start, target string) bool {
	if start == target {
		return true
	}
	visited := make(map[string]bool)
	stack := []string{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == target {
			return true
		}
		if visited[node] {
			continue
		}
		visited[node] = true
		for _, next := range g.Targets(node) {
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}

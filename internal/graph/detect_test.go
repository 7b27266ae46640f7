package graph

import (
	"testing"

	"csdep/internal/parser"
)

func buildFromAdjacency(adj map[string][]string) *Graph {
	var refs []parser.Reference
	line := 1
	for from, targets := range adj {
		for _, to := range targets {
			refs = append(refs, parser.Reference{
				From: parser.Symbol{Name: from, Qualified: from, Kind: parser.KindClass},
				To:   parser.Symbol{Name: to, Qualified: to, Kind: parser.KindClass},
				Kind: parser.RelGeneralRef,
				File: "x.cs",
				Line: line,
			})
			line++
		}
	}
	return Build(refs, nil)
}

func TestDetectCircular_SimpleCycleWithTail(t *testing.T) {
	// A -> B -> C -> A, plus D -> A which merely feeds the cycle.
	g := buildFromAdjacency(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"A"},
		"D": {"A"},
	})

	circ := g.DetectCircular()

	want := []Edge{{"A", "B"}, {"B", "C"}, {"C", "A"}}
	if len(circ.Edges) != len(want) {
		t.Fatalf("Expected %d circular edges, got %d: %v", len(want), len(circ.Edges), circ.SortedEdges())
	}
	for _, e := range want {
		if !circ.Edges[e] {
			t.Errorf("Expected edge %v to be circular", e)
		}
	}
	if circ.Edges[Edge{"D", "A"}] {
		t.Error("Edge D->A reported circular, but no path returns to D")
	}
	if circ.Nodes["D"] {
		t.Error("Node D reported circular")
	}
	for _, n := range []string{"A", "B", "C"} {
		if !circ.Nodes[n] {
			t.Errorf("Expected node %s to be circular", n)
		}
	}
}

func TestDetectCircular_NoCycle(t *testing.T) {
	g := buildFromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
	})

	circ := g.DetectCircular()
	if len(circ.Edges) != 0 {
		t.Errorf("Expected no circular edges, got %v", circ.SortedEdges())
	}
	if len(circ.Nodes) != 0 {
		t.Errorf("Expected no circular nodes, got %v", circ.Nodes)
	}
}

func TestDetectCircular_SharedSuccessorArtifact(t *testing.T) {
	// A and D both point into the B <-> C cycle. Feeder edges are not
	// circular: nothing leads from B back to A or D.
	g := buildFromAdjacency(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"B"},
		"D": {"B"},
	})

	circ := g.DetectCircular()

	if !circ.Edges[Edge{"B", "C"}] || !circ.Edges[Edge{"C", "B"}] {
		t.Errorf("Expected B<->C edges circular, got %v", circ.SortedEdges())
	}
	if circ.Edges[Edge{"A", "B"}] || circ.Edges[Edge{"D", "B"}] {
		t.Errorf("Feeder edges wrongly reported circular: %v", circ.SortedEdges())
	}
}

func TestDetectCircular_EdgeIntoFinishedNode(t *testing.T) {
	// A's edge to C is only examined after the DFS has fully explored C
	// through A -> B -> C. The 2-cycle A -> C -> A must still be reported.
	g := buildFromAdjacency(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {"A"},
	})

	circ := g.DetectCircular()

	want := []Edge{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"C", "A"}}
	if len(circ.Edges) != len(want) {
		t.Fatalf("Expected %d circular edges, got %d: %v", len(want), len(circ.Edges), circ.SortedEdges())
	}
	for _, e := range want {
		if !circ.Edges[e] {
			t.Errorf("Expected edge %v to be circular", e)
		}
	}
}

func TestDetectCircular_TwoNodeCycle(t *testing.T) {
	g := buildFromAdjacency(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})

	circ := g.DetectCircular()
	if !circ.Edges[Edge{"A", "B"}] || !circ.Edges[Edge{"B", "A"}] {
		t.Errorf("Expected both edges of the 2-cycle, got %v", circ.SortedEdges())
	}
}

func TestDetectCircular_SubsetOfEdges(t *testing.T) {
	g := buildFromAdjacency(map[string][]string{
		"A": {"B", "E"},
		"B": {"C"},
		"C": {"A", "D"},
	})

	circ := g.DetectCircular()
	for e := range circ.Edges {
		if !g.HasEdge(e.From, e.To) {
			t.Errorf("Circular edge %v is not a graph edge", e)
		}
	}
}

func TestDetectCircular_ReachabilityEquivalence(t *testing.T) {
	// An edge is circular iff a directed path from its head back to its
	// tail exists, regardless of DFS discovery order.
	g := buildFromAdjacency(map[string][]string{
		"A": {"B"},
		"B": {"C", "D"},
		"C": {"A"},
		"D": {"E"},
		"E": {"B"},
	})

	circ := g.DetectCircular()
	for _, e := range g.Edges() {
		want := g.reaches(e.To, e.From)
		if circ.Edges[e] != want {
			t.Errorf("Edge %v: circular=%v but reachability says %v", e, circ.Edges[e], want)
		}
	}
}

func TestDetectCircular_Idempotent(t *testing.T) {
	g := buildFromAdjacency(map[string][]string{
		"A": {"B"},
		"B": {"C"},
		"C": {"A"},
		"D": {"A"},
	})

	first := g.DetectCircular()
	second := g.DetectCircular()

	if len(first.Edges) != len(second.Edges) {
		t.Fatalf("Runs disagree: %d vs %d edges", len(first.Edges), len(second.Edges))
	}
	for e := range first.Edges {
		if !second.Edges[e] {
			t.Errorf("Edge %v present in first run only", e)
		}
	}
}

func TestDetectCircular_EmptyGraph(t *testing.T) {
	g := Build(nil, nil)
	circ := g.DetectCircular()
	if len(circ.Edges) != 0 || len(circ.Nodes) != 0 {
		t.Error("Expected empty result for empty graph")
	}
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

const maxReasonsShown = 3

// printSummary renders the human-facing report. It is a thin wrapper over
// the result: the DOT artifact is the tool's real output and downstream
// consumers only need that string.
func printSummary(w io.Writer, result *Result) {
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Dependency analysis (%s level)", result.Mode)))
	fmt.Fprintln(w, statusStyle.Render(fmt.Sprintf("%d files | %d symbols | %d dependencies",
		result.FileCount, result.SymbolCount, result.Graph.EdgeCount())))

	if len(result.Circular.Edges) > 0 {
		fmt.Fprintln(w, cycleStyle.Render(fmt.Sprintf("Found %d circular dependencies:", len(result.Circular.Edges))))
		for _, e := range result.Circular.SortedEdges() {
			fmt.Fprintf(w, "  %s -> %s\n", e.From, e.To)
		}
	} else {
		fmt.Fprintln(w, successStyle.Render("No circular dependencies found."))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Dependencies:")
	for _, from := range result.Graph.Nodes() {
		targets := result.Graph.Targets(from)
		if len(targets) == 0 {
			continue
		}

		marker := successStyle.Render("ok")
		if result.Circular.Nodes[from] {
			marker = cycleStyle.Render("cycle")
		}
		fmt.Fprintf(w, "  [%s] %s\n", marker, from)

		for _, to := range targets {
			fmt.Fprintf(w, "    -> %s\n", to)
			reasons := result.Graph.Reasons(from, to)
			for i, reason := range reasons {
				if i == maxReasonsShown {
					fmt.Fprintf(w, "       ...and %d more reasons\n", len(reasons)-maxReasonsShown)
					break
				}
				fmt.Fprintf(w, "       - %s\n", reason)
			}
		}
	}

	if len(result.Circular.Edges) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cycleStyle.Render("Circular dependency detail:"))
		for _, e := range result.Circular.SortedEdges() {
			fmt.Fprintf(w, "  %s -> %s\n", e.From, e.To)
			for _, reason := range result.Graph.Reasons(e.From, e.To) {
				fmt.Fprintf(w, "    - %s\n", reason)
			}
		}
	}

	fmt.Fprintln(w, strings.Repeat("-", 40))
}

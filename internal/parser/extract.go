package parser

import (
	"regexp"
	"strings"
)

var classDeclRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:public|internal|private)?\s*(?:static\s+)?(?:partial\s+)?(?:abstract\s+)?(?:sealed\s+)?class\s+(\w+)`),
	regexp.MustCompile(`(?:public|internal|private)?\s*struct\s+(\w+)`),
}

var systemDeclRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:public|internal|private)?\s*(?:partial\s+)?(?:struct|class)\s+(\w*System\w*)(?:\s*:|\s+implements|\s*\{)`),
	regexp.MustCompile(`(?:public|internal|private)?\s*(?:partial\s+)?(?:struct|class)\s+(\w+)\s*:\s*.*ISystem`),
}

var anyDeclRe = regexp.MustCompile(`\b(?:class|struct)\s+\w+`)

// ExtractOptions tunes symbol extraction.
type ExtractOptions struct {
	// Namespace assigned to units without a declaration.
	DefaultNamespace string

	// Maximum number of prior lines scanned when deciding whether a
	// declaration is nested inside an enclosing type.
	NestingLookback int

	// Name suffixes excluded from the system table.
	SystemSuffixes []string
}

// ExtractClasses builds the top-level class/struct symbol table for a set of
// units. Nested declarations are excluded via the backward brace-balance
// heuristic; declarations deeper than NestingLookback lines below their
// enclosing type escape it, a documented precision limit.
func ExtractClasses(units []*Unit, opts ExtractOptions) *Table {
	table := NewTable()

	for _, unit := range units {
		namespace := unit.Namespace
		if namespace == "" {
			namespace = opts.DefaultNamespace
		}

		for i, line := range unit.Lines {
			stripped := strings.TrimSpace(line)
			if stripped == "" || strings.HasPrefix(stripped, "//") {
				continue
			}

			for _, re := range classDeclRes {
				m := re.FindStringSubmatch(stripped)
				if m == nil {
					continue
				}
				name := m[1]
				if !isNested(unit.Lines, i, opts.NestingLookback) {
					table.Add(Symbol{
						Name:      name,
						Namespace: namespace,
						Qualified: namespace + "." + name,
						Kind:      KindClass,
					})
				}
				break
			}
		}
	}

	return table
}

// ExtractSystems builds the system symbol table: types whose name contains
// "System" or that conform to ISystem, minus configured helper suffixes.
func ExtractSystems(units []*Unit, opts ExtractOptions) *Table {
	table := NewTable()

	for _, unit := range units {
		namespace := unit.Namespace
		if namespace == "" {
			namespace = opts.DefaultNamespace
		}

		content := strings.Join(unit.Lines, "\n")
		for _, re := range systemDeclRes {
			for _, m := range re.FindAllStringSubmatch(content, -1) {
				name := m[1]
				if name == "" || hasAnySuffix(name, opts.SystemSuffixes) {
					continue
				}
				table.Add(Symbol{
					Name:      name,
					Namespace: namespace,
					Qualified: namespace + "." + name,
					Kind:      KindSystem,
				})
			}
		}
	}

	return table
}

// isNested reports whether the declaration at line index decl sits inside an
// enclosing class/struct. It scans backward up to lookback lines; when an
// earlier declaration is found, the brace balance counted from that line up
// to (but excluding) the current one decides: still positive means the
// enclosing type is still open.
func isNested(lines []string, decl, lookback int) bool {
	for j := decl - 1; j >= 0 && j >= decl-lookback; j-- {
		prev := strings.TrimSpace(lines[j])
		if prev == "" || strings.HasPrefix(prev, "//") {
			continue
		}

		if !anyDeclRe.MatchString(prev) {
			continue
		}

		balance := 0
		for k := j; k < decl; k++ {
			balance += strings.Count(lines[k], "{") - strings.Count(lines[k], "}")
		}
		return balance > 0
	}
	return false
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

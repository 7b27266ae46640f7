package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// ScopeLine is one line of an isolated lexical scope, tagged with its
// 1-based position in the unit.
type ScopeLine struct {
	Line int
	Text string
}

// ExtractScope isolates the lexical scope of a type declared in the unit:
// starting at the declaration line it accumulates lines while tracking a
// running brace depth, stopping once the depth returns to zero after having
// gone positive. The declaration line itself is part of the scope, so a base
// list on that line counts as evidence. Only this slice of the unit is
// searched for the symbol's outgoing references, which keeps multi-type
// files from contaminating each other. Returns nil when the declaration is
// not found.
func (u *Unit) ExtractScope(name string) []ScopeLine {
	declRe := regexp.MustCompile(fmt.Sprintf(`(?:class|struct)\s+%s(?:\s*:|<|\s+|\s*\{|\s*$)`, regexp.QuoteMeta(name)))

	start := -1
	for i, line := range u.Lines {
		if declRe.MatchString(line) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var scope []ScopeLine
	depth := 0
	opened := false

	for i := start; i < len(u.Lines); i++ {
		line := u.Lines[i]
		scope = append(scope, ScopeLine{Line: i + 1, Text: line})

		if n := strings.Count(line, "{"); n > 0 {
			depth += n
			opened = true
		}
		depth -= strings.Count(line, "}")

		if opened && depth <= 0 {
			break
		}
	}

	return scope
}

// DeclaresType reports whether the unit textually declares the named
// class/struct. Partial types split across files are merged by scanning
// every unit that declares them.
func (u *Unit) DeclaresType(name string) bool {
	re := regexp.MustCompile(fmt.Sprintf(`(?:class|struct)\s+%s\b`, regexp.QuoteMeta(name)))
	for _, line := range u.Lines {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

package parser

import (
	"regexp"
	"strings"
)

var (
	namespaceRe = regexp.MustCompile(`^namespace\s+([\w.]+)`)
	usingRe     = regexp.MustCompile(`^using\s+([\w.]+);`)
)

// ParseUnit splits a source file into lines and pulls out the first
// namespace declaration and every using-directive. It never fails: a unit
// with no recognizable declarations is still a valid (empty) unit.
func ParseUnit(path, relPath string, content []byte) *Unit {
	u := &Unit{
		Path:    path,
		RelPath: relPath,
		Lines:   strings.Split(string(content), "\n"),
	}

	for i, line := range u.Lines {
		trimmed := strings.TrimSpace(line)

		if u.Namespace == "" {
			if m := namespaceRe.FindStringSubmatch(trimmed); m != nil {
				u.Namespace = m[1]
			}
		}

		if m := usingRe.FindStringSubmatch(trimmed); m != nil {
			u.Usings = append(u.Usings, Using{Target: m[1], Line: i + 1})
		}
	}

	return u
}

// CustomUsings returns the unit's imported namespaces with framework imports
// filtered out. Framework namespaces are never treated as custom
// dependencies.
func (u *Unit) CustomUsings(frameworkPrefixes []string) []Using {
	var custom []Using
	for _, using := range u.Usings {
		if isFramework(using.Target, frameworkPrefixes) {
			continue
		}
		custom = append(custom, using)
	}
	return custom
}

func isFramework(target string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(target, p) {
			return true
		}
	}
	return false
}

package parser

import "regexp"

// ScanOptions tunes reference scanning.
type ScanOptions struct {
	DefaultNamespace  string
	FrameworkPrefixes []string
}

// NamespaceSymbol wraps a namespace path as a graph symbol.
func NamespaceSymbol(ns string) Symbol {
	return Symbol{Name: ns, Qualified: ns, Kind: KindNamespace}
}

// ScanNamespaces produces namespace-level references: every non-framework
// using-directive of a unit is a dependency of the unit's own namespace.
// Units without a namespace declaration contribute nothing in this mode.
func ScanNamespaces(units []*Unit, frameworkPrefixes []string) []Reference {
	var refs []Reference

	for _, unit := range units {
		if unit.Namespace == "" {
			continue
		}
		from := NamespaceSymbol(unit.Namespace)

		for _, using := range unit.CustomUsings(frameworkPrefixes) {
			if using.Target == unit.Namespace {
				continue
			}
			refs = append(refs, Reference{
				From: from,
				To:   NamespaceSymbol(using.Target),
				Kind: RelUsingDirective,
				File: unit.RelPath,
				Line: using.Line,
			})
		}
	}

	return refs
}

// scanner caches compiled per-target catalogs; every declared symbol is
// matched against every other visible symbol, so recompiling per pair would
// be wasteful.
type scanner struct {
	opts      ScanOptions
	templates []patternTemplate
	catalogs  map[string][]Pattern
	guards    map[string][]*regexp.Regexp
}

func newScanner(opts ScanOptions, templates []patternTemplate) *scanner {
	return &scanner{
		opts:      opts,
		templates: templates,
		catalogs:  make(map[string][]Pattern),
		guards:    make(map[string][]*regexp.Regexp),
	}
}

func (s *scanner) catalog(target string) []Pattern {
	if c, ok := s.catalogs[target]; ok {
		return c
	}
	c := compileCatalog(s.templates, target)
	s.catalogs[target] = c
	return c
}

func (s *scanner) guard(target string) []*regexp.Regexp {
	if g, ok := s.guards[target]; ok {
		return g
	}
	g := legitimateCatalog(target)
	s.guards[target] = g
	return g
}

func (s *scanner) visible(target Symbol, unitNamespace string, usings map[string]bool) bool {
	return target.Namespace == unitNamespace ||
		usings[target.Namespace] ||
		target.Namespace == s.opts.DefaultNamespace
}

// declaredIn returns the table symbols textually declared in the unit, in
// deterministic order.
func declaredIn(unit *Unit, table *Table, namespace string) []Symbol {
	var locals []Symbol
	for _, sym := range table.Symbols() {
		if sym.Namespace == namespace && unit.DeclaresType(sym.Name) {
			locals = append(locals, sym)
		}
	}
	return locals
}

func usingSet(unit *Unit, frameworkPrefixes []string) map[string]bool {
	set := make(map[string]bool)
	for _, u := range unit.CustomUsings(frameworkPrefixes) {
		set[u.Target] = true
	}
	return set
}

// ScanClasses produces class-level references. Each declared class is
// matched only within its own isolated scope; same-file targets additionally
// pass the co-location guard before any pattern evidence counts.
func ScanClasses(units []*Unit, table *Table, opts ScanOptions) []Reference {
	s := newScanner(opts, classTemplates)
	var refs []Reference

	for _, unit := range units {
		namespace := unit.Namespace
		if namespace == "" {
			namespace = opts.DefaultNamespace
		}

		usings := usingSet(unit, opts.FrameworkPrefixes)
		locals := declaredIn(unit, table, namespace)

		localNames := make(map[string]bool, len(locals))
		for _, l := range locals {
			localNames[l.Name] = true
		}

		for _, sym := range locals {
			scope := unit.ExtractScope(sym.Name)
			if len(scope) == 0 {
				continue
			}

			for _, other := range table.Symbols() {
				if other.Qualified == sym.Qualified {
					continue
				}
				if localNames[other.Name] && !s.legitimateUsage(scope, other.Name) {
					continue
				}
				if !s.visible(other, namespace, usings) {
					continue
				}

				catalog := s.catalog(other.Name)
				for _, line := range scope {
					for _, p := range catalog {
						if p.Re.MatchString(line.Text) {
							refs = append(refs, Reference{
								From: sym,
								To:   other,
								Kind: p.Kind,
								File: unit.RelPath,
								Line: line.Line,
							})
							break
						}
					}
				}
			}
		}
	}

	return refs
}

// ScanSystems produces system-level references. Unlike class mode the whole
// unit is searched: ordering attributes sit above the declaration line,
// outside any brace scope.
func ScanSystems(units []*Unit, table *Table, opts ScanOptions) []Reference {
	s := newScanner(opts, systemTemplates)
	var refs []Reference

	for _, unit := range units {
		namespace := unit.Namespace
		if namespace == "" {
			namespace = opts.DefaultNamespace
		}

		usings := usingSet(unit, opts.FrameworkPrefixes)
		locals := declaredIn(unit, table, namespace)

		for _, sym := range locals {
			for _, other := range table.Symbols() {
				if other.Qualified == sym.Qualified {
					continue
				}
				if !s.visible(other, namespace, usings) {
					continue
				}

				catalog := s.catalog(other.Name)
				for i, text := range unit.Lines {
					for _, p := range catalog {
						if p.Re.MatchString(text) {
							refs = append(refs, Reference{
								From: sym,
								To:   other,
								Kind: p.Kind,
								File: unit.RelPath,
								Line: i + 1,
							})
							break
						}
					}
				}
			}
		}
	}

	return refs
}

func (s *scanner) legitimateUsage(scope []ScopeLine, target string) bool {
	for _, line := range scope {
		for _, re := range s.guard(target) {
			if re.MatchString(line.Text) {
				return true
			}
		}
	}
	return false
}

package parser

import (
	"fmt"
	"regexp"
)

// RelationKind is the closed set of semantic labels a reference pattern can
// attach to a dependency.
type RelationKind int

const (
	RelUsingDirective RelationKind = iota
	RelInheritance
	RelInterfaceImpl
	RelFieldDecl
	RelGenericParam
	RelRefRW
	RelRefRO
	RelSystemAPICall
	RelInstantiation
	RelStaticAccess
	RelGetComponent
	RelHasComponent
	RelAddComponent
	RelTypeof
	RelUpdateBefore
	RelUpdateAfter
	RelParamOrVar
	RelGeneralRef
	RelSingletonAccess
	RelSystemRef
	RelVarOrField
)

var relationLabels = map[RelationKind]string{
	RelUsingDirective:  "using directive",
	RelInheritance:     "inheritance",
	RelInterfaceImpl:   "interface implementation",
	RelFieldDecl:       "field declaration",
	RelGenericParam:    "generic type parameter",
	RelRefRW:           "component reference (RefRW)",
	RelRefRO:           "component reference (RefRO)",
	RelSystemAPICall:   "SystemAPI call",
	RelInstantiation:   "object instantiation",
	RelStaticAccess:    "static member access",
	RelGetComponent:    "GetComponent call",
	RelHasComponent:    "HasComponent call",
	RelAddComponent:    "AddComponent call",
	RelTypeof:          "typeof reference",
	RelUpdateBefore:    "UpdateBefore dependency",
	RelUpdateAfter:     "UpdateAfter dependency",
	RelParamOrVar:      "method parameter/variable",
	RelGeneralRef:      "general reference",
	RelSingletonAccess: "SystemAPI singleton access",
	RelSystemRef:       "system reference",
	RelVarOrField:      "variable/field reference",
}

func (k RelationKind) Label() string {
	if label, ok := relationLabels[k]; ok {
		return label
	}
	return "unknown"
}

// Pattern is one compiled reference matcher bound to its semantic label.
type Pattern struct {
	Re   *regexp.Regexp
	Kind RelationKind
}

// patternTemplate holds a format string with exactly one %s slot for the
// regexp-quoted target symbol name.
type patternTemplate struct {
	format string
	kind   RelationKind
}

// Catalog order matters: the first pattern matching a line wins, so the
// specific forms come before the catch-all general reference.
var classTemplates = []patternTemplate{
	{`:\s*%s`, RelInheritance},
	{`:\s*.*,\s*%s`, RelInterfaceImpl},
	{`(?:public|private|protected|internal)\s+%s\s+\w+`, RelFieldDecl},
	{`(?:public|private|protected|internal)\s+.*%s\s+\w+`, RelFieldDecl},
	{`<%s>`, RelGenericParam},
	{`RefRW<%s>`, RelRefRW},
	{`RefRO<%s>`, RelRefRO},
	{`SystemAPI\..*<.*%s.*>`, RelSystemAPICall},
	{`new\s+%s\s*[\({]`, RelInstantiation},
	{`%s\.\w+`, RelStaticAccess},
	{`GetComponent<%s>`, RelGetComponent},
	{`HasComponent<%s>`, RelHasComponent},
	{`AddComponent\([^,]*,\s*new\s+%s\b\s*\(`, RelAddComponent},
	{`typeof\(%s\)`, RelTypeof},
	{`\[UpdateBefore\(typeof\(%s\)\)\]`, RelUpdateBefore},
	{`\[UpdateAfter\(typeof\(%s\)\)\]`, RelUpdateAfter},
	{`UpdateBefore.*%s`, RelUpdateBefore},
	{`UpdateAfter.*%s`, RelUpdateAfter},
	{`\b%s\b.*\s+\w+\s*[\(;]`, RelParamOrVar},
	{`\b%s\b`, RelGeneralRef},
}

var systemTemplates = []patternTemplate{
	{`\[UpdateBefore\(typeof\(%s\)\)\]`, RelUpdateBefore},
	{`\[UpdateAfter\(typeof\(%s\)\)\]`, RelUpdateAfter},
	{`UpdateBefore.*%s`, RelUpdateBefore},
	{`UpdateAfter.*%s`, RelUpdateAfter},
	{`SystemAPI\.GetSingleton<%s>`, RelSingletonAccess},
	{`World\.GetOrCreateSystem<%s>`, RelSystemRef},
	{`typeof\(%s\)`, RelTypeof},
	{`\b%s\b.*\s+\w+\s*[;=]`, RelVarOrField},
	{`\b%s\b`, RelGeneralRef},
}

// legitimateTemplates is the stricter subset used by the co-location guard:
// when source and target live in the same file, textual co-presence alone is
// not evidence of a dependency.
var legitimateTemplates = []string{
	`new\s+%s\s*[\({]`,
	`:\s*%s`,
	`<%s>`,
	`AddComponent\([^,]*,\s*new\s+%s\b`,
	`typeof\(%s\)`,
	`(?:public|private|protected|internal)\s+%s\s+\w+`,
	`%s\.\w+`,
}

func compileCatalog(templates []patternTemplate, target string) []Pattern {
	quoted := regexp.QuoteMeta(target)
	patterns := make([]Pattern, 0, len(templates))
	for _, t := range templates {
		patterns = append(patterns, Pattern{
			Re:   regexp.MustCompile(fmt.Sprintf(t.format, quoted)),
			Kind: t.kind,
		})
	}
	return patterns
}

// ClassCatalog compiles the ordered class-mode reference catalog for one
// target symbol name.
func ClassCatalog(target string) []Pattern {
	return compileCatalog(classTemplates, target)
}

// SystemCatalog compiles the ordered system-mode reference catalog for one
// target symbol name.
func SystemCatalog(target string) []Pattern {
	return compileCatalog(systemTemplates, target)
}

func legitimateCatalog(target string) []*regexp.Regexp {
	quoted := regexp.QuoteMeta(target)
	res := make([]*regexp.Regexp, 0, len(legitimateTemplates))
	for _, format := range legitimateTemplates {
		res = append(res, regexp.MustCompile(fmt.Sprintf(format, quoted)))
	}
	return res
}

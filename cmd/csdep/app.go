package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	gitignore "github.com/sabhiram/go-gitignore"

	"csdep/internal/config"
	"csdep/internal/graph"
	"csdep/internal/output"
	"csdep/internal/parser"
)

type App struct {
	Config *config.Config
}

// Result is the outcome of one analysis run. Nothing persists between runs.
type Result struct {
	Mode        string
	FileCount   int
	SymbolCount int
	Graph       *graph.Graph
	Circular    graph.CircularSet
	DOT         string
}

func NewApp(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Run executes the whole pipeline sequentially: enumerate, parse, extract,
// scan, build, detect, render. Any unreadable unit fails the run; an empty
// result is valid.
func (a *App) Run() (*Result, error) {
	files, err := a.scanSources()
	if err != nil {
		return nil, err
	}

	units, err := a.parseUnits(files)
	if err != nil {
		return nil, err
	}

	extractOpts := parser.ExtractOptions{
		DefaultNamespace: a.Config.Analysis.DefaultNamespace,
		NestingLookback:  a.Config.Analysis.NestingLookback,
		SystemSuffixes:   a.Config.Analysis.SystemSuffixes,
	}
	scanOpts := parser.ScanOptions{
		DefaultNamespace:  a.Config.Analysis.DefaultNamespace,
		FrameworkPrefixes: a.Config.Analysis.FrameworkPrefixes,
	}

	var (
		refs        []parser.Reference
		isolated    []parser.Symbol
		symbolCount int
	)

	switch a.Config.Analysis.Mode {
	case config.ModeNamespace:
		refs = parser.ScanNamespaces(units, a.Config.Analysis.FrameworkPrefixes)
		symbolCount = countNamespaces(units)
	case config.ModeClass:
		table := parser.ExtractClasses(units, extractOpts)
		refs = parser.ScanClasses(units, table, scanOpts)
		symbolCount = table.Len()
	case config.ModeSystem:
		table := parser.ExtractSystems(units, extractOpts)
		refs = parser.ScanSystems(units, table, scanOpts)
		// Standalone systems stay visible in the graph even with no edges.
		isolated = table.Symbols()
		symbolCount = table.Len()
	default:
		return nil, fmt.Errorf("unknown analysis mode %q", a.Config.Analysis.Mode)
	}

	g := graph.Build(refs, isolated)
	circ := g.DetectCircular()

	dot, err := output.NewDOTGenerator(g).Generate(circ)
	if err != nil {
		return nil, err
	}

	return &Result{
		Mode:        a.Config.Analysis.Mode,
		FileCount:   len(units),
		SymbolCount: symbolCount,
		Graph:       g,
		Circular:    circ,
		DOT:         dot,
	}, nil
}

// scanSources enumerates source units under the configured root, honoring
// exclude globs and the root's .gitignore.
func (a *App) scanSources() ([]string, error) {
	root := a.Config.SourceRoot

	dirGlobs, err := compileGlobs(a.Config.Exclude.Dirs)
	if err != nil {
		return nil, err
	}
	fileGlobs, err := compileGlobs(a.Config.Exclude.Files)
	if err != nil {
		return nil, err
	}

	var ignore *gitignore.GitIgnore
	if matcher, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		ignore = matcher
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		base := filepath.Base(path)
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			for _, g := range dirGlobs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			if ignore != nil && rel != "." && ignore.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != a.Config.Extension {
			return nil
		}
		for _, g := range fileGlobs {
			if g.Match(base) {
				return nil
			}
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("enumerated source units", "count", len(files), "root", root)
	return files, nil
}

// parseUnits reads every file fully into memory. A read failure is fatal
// for the whole run; there is no partial-result recovery.
func (a *App) parseUnits(files []string) ([]*parser.Unit, error) {
	units := make([]*parser.Unit, 0, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		rel, err := filepath.Rel(a.Config.SourceRoot, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		units = append(units, parser.ParseUnit(path, rel, content))
	}
	return units, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func countNamespaces(units []*parser.Unit) int {
	seen := make(map[string]bool)
	for _, u := range units {
		if u.Namespace != "" {
			seen[u.Namespace] = true
		}
	}
	return len(seen)
}

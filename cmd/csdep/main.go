package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"csdep/internal/config"
)

const (
	defaultConfigPath = "./csdep.toml"
	exampleConfigPath = "./csdep.example.toml"
)

var (
	configPath = flag.String("config", defaultConfigPath, "Path to config file")
	mode       = flag.String("mode", "", "Analysis mode: namespace, class or system (overrides config)")
	out        = flag.String("out", "", "Write the DOT artifact to this path (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("csdep v%s\n", VERSION)
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	runID := uuid.NewString()

	cfg, err := resolveConfig(*configPath, *configPath != defaultConfigPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		cfg.SourceRoot = flag.Arg(0)
	}
	if *mode != "" {
		cfg.Analysis.Mode = *mode
		if err := cfg.Validate(); err != nil {
			slog.Error("invalid mode", "error", err)
			os.Exit(1)
		}
	}
	if *out != "" {
		cfg.Output.DOT = *out
	}

	slog.Info("starting analysis",
		"run_id", runID,
		"mode", cfg.Analysis.Mode,
		"root", cfg.SourceRoot,
	)

	app := NewApp(cfg)
	result, err := app.Run()
	if err != nil {
		slog.Error("analysis failed", "run_id", runID, "error", err)
		os.Exit(1)
	}

	slog.Info("analysis complete",
		"run_id", runID,
		"files", result.FileCount,
		"symbols", result.SymbolCount,
		"edges", result.Graph.EdgeCount(),
		"circular_edges", len(result.Circular.Edges),
	)

	if cfg.Output.DOT != "" {
		if err := os.WriteFile(cfg.Output.DOT, []byte(result.DOT), 0644); err != nil {
			slog.Error("failed to write DOT artifact", "path", cfg.Output.DOT, "error", err)
			os.Exit(1)
		}
		slog.Info("wrote DOT artifact", "path", cfg.Output.DOT)
	} else {
		fmt.Println(result.DOT)
	}

	if cfg.Output.Terminal {
		printSummary(os.Stdout, result)
	}
}

// resolveConfig loads the effective configuration. Only a config missing at
// the default path falls back, first to the example file and then to the
// built-in defaults. A malformed config, or an explicitly requested path
// that does not exist, fails the run.
func resolveConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg, err = config.Load(exampleConfigPath)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading config %s: %w", exampleConfigPath, err)
	}
	return config.Default(), nil
}

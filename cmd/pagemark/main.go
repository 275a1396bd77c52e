package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/pagemark/internal/adapter"
	"github.com/mmcdole/pagemark/internal/store"
	"github.com/mmcdole/pagemark/internal/tracker"
	"github.com/mmcdole/pagemark/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion, summary, initConfig bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&summary, "summary", false, "print library summary and exit")
	flag.BoolVar(&initConfig, "init-config", false, "write default config.yaml and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("pagemark %s\n", Version)
		return
	}

	if initConfig {
		path, err := adapter.SaveConfig(adapter.DefaultConfig(), adapter.DefaultConfigPath())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	// Piped output gets the summary instead of the TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		summary = true
	}

	if err := run(summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(summary bool) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting pagemark", "version", Version, "backend", cfg.Storage.Backend)

	slots, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := slots.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	tr := tracker.New(slots, logger)

	if summary {
		return writeSummary(os.Stdout, tr)
	}

	model := tui.NewModel(tr, tui.Options{
		RecentNotes: cfg.Preferences.RecentNotes,
		StartPage:   cfg.Preferences.DefaultPage,
		Logger:      logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

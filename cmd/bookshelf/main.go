package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/bookshelf/internal/adapter"
	"github.com/mmcdole/bookshelf/internal/catalog"
	"github.com/mmcdole/bookshelf/internal/circulation"
	"github.com/mmcdole/bookshelf/internal/domain"
	"github.com/mmcdole/bookshelf/internal/store"
	"github.com/mmcdole/bookshelf/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// changeBuffer bounds the observer channel feeding the TUI
const changeBuffer = 64

func main() {
	// Handle version flag
	var showVersion, memoryOnly, clearData bool
	var profile string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&memoryOnly, "memory", false, "keep loans, holds and tags in memory only")
	flag.BoolVar(&clearData, "clear-data", false, "delete all saved library data and exit")
	flag.StringVar(&profile, "profile", "", "library profile (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookshelf %s\n", Version)
		return
	}

	if clearData {
		if err := runClearData(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(profile, memoryOnly); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(profile string, memoryOnly bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bookshelf needs an interactive terminal")
	}

	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if profile != "" {
		cfg.Data.Profile = profile
	}
	if memoryOnly {
		cfg.Data.Dir = ""
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookshelf", "version", Version, "profile", cfg.Data.Profile)

	// Open state store
	st, err := store.NewSlotStore(cfg.Data.Dir, cfg.Data.Profile)
	if err != nil {
		return fmt.Errorf("failed to open library data: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	// Catalog and quick filters
	cat := catalog.Default()
	filters, err := catalog.CompileFilters(
		slices.Concat(catalog.DefaultFilterDefs, catalog.FilterDefsFromMap(cfg.Catalog.Filters)),
	)
	if err != nil {
		return fmt.Errorf("invalid catalog filter: %w", err)
	}

	// Circulation service feeds mutations to the TUI through a channel
	changes := make(chan domain.CommandResult, changeBuffer)
	svc := circulation.NewService(st, cat, logger, tui.NewChannelObserver(changes))

	model := tui.NewModel(svc, cat, filters, cfg, changes)
	model.Logger = logger

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI",
		"books", cat.Len(), "loans", len(svc.LoanIDs()), "holds", len(svc.HoldIDs()))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runClearData removes every profile's saved state
func runClearData() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := adapter.ClearData(cfg); err != nil {
		return err
	}
	fmt.Println("✓ Library data cleared")
	return nil
}

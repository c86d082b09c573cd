// shopfront - a terminal dashboard over a remote product catalog.
//
// The catalog is fetched once at startup; searching, sorting, and paging all
// happen client-side against the in-memory collection.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/calebwray/shopfront/internal/catalog"
	"github.com/calebwray/shopfront/internal/config"
	"github.com/calebwray/shopfront/internal/logging"
	"github.com/calebwray/shopfront/internal/store"
	"github.com/calebwray/shopfront/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	offline := flag.Bool("offline", false, "browse the last fetched snapshot without touching the network")
	flag.Parse()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".shopfront")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	cache, err := store.New(filepath.Join(dataDir, "catalog.db"))
	if err != nil {
		// Continue without snapshot persistence
		logging.Warn("snapshot store unavailable", "err", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	if *offline && cache == nil {
		fatal("Offline mode needs the snapshot store, which could not be opened")
	}

	source := catalog.NewSource(catalog.DefaultEndpoint, 15*time.Second)

	app := ui.New(source, cache, cfg, *offline)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("Error running program: %v", err)
	}
}

func fatal(format string, args ...interface{}) {
	logging.Error(fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

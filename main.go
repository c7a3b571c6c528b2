package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"artshelf/internal/catalog"
	"artshelf/internal/config"
	"artshelf/internal/eventbus"
	"artshelf/internal/ui"
)

func main() {
	var (
		startPage  int
		configPath string
		baseURL    string
	)
	flag.IntVar(&startPage, "page", 1, "Page to open at startup")
	flag.IntVar(&startPage, "p", 1, "Page to open at startup (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&baseURL, "url", "", "Catalog API URL (overrides config)")
	flag.StringVar(&baseURL, "u", "", "Catalog API URL (shorthand)")
	flag.Parse()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	// Set up logging. The terminal belongs to the TUI, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.WithError(err).Warn("could not open log file")
	} else {
		defer logFile.Close()
		logrus.SetOutput(logFile)
	}
	if os.Getenv("ARTSHELF_DEBUG") != "" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize the catalog fetch service; it subscribes to page requests
	// on the bus and runs fetches in the background
	client := catalog.NewClient(cfg.BaseURL, cfg.PageSize, cfg.Retries)
	client.SetFields(cfg.Fields)
	_ = catalog.NewService(ctx, client, bus)

	// Create UI model
	logrus.Info("starting artshelf")
	uiModel := ui.NewModel(bus, cfg, startPage)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Create event channel for the UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logrus.Warn("event channel full, dropping event")
		}
	}

	// Forward domain events into the program; the update loop applies them
	// one at a time, in arrival order
	forwarded := []eventbus.EventType{
		eventbus.EventPageLoaded,
		eventbus.EventPageLoadFailed,
		eventbus.EventSelectionChanged,
		eventbus.EventSelectionCleared,
		eventbus.EventBulkStarted,
		eventbus.EventBulkFinished,
		eventbus.EventError,
	}
	unsubscribes := make([]func(), 0, len(forwarded))
	for _, et := range forwarded {
		unsubscribes = append(unsubscribes, bus.Subscribe(et, forwardEvent))
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		logrus.WithError(err).Error("program failed")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logrus.Info("artshelf exited")

	// Cleanup: detach from the bus before closing the channel so a late
	// fetch result cannot be forwarded into it
	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	close(eventChan)
	cancel()
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"alescout/internal/catalog"
	"alescout/internal/config"
	"alescout/internal/eventbus"
	"alescout/internal/logging"
	"alescout/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		endpoint   string
		debounce   time.Duration
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&endpoint, "endpoint", "", "Catalog endpoint URL")
	flag.DurationVar(&debounce, "debounce", config.DefaultDebounce, "Search debounce delay")
	flag.StringVar(&logPath, "log", "", "Path to the log file")
	flag.Parse()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	}
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	// Flags win over the file
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if setFlags["debounce"] {
		cfg.Debounce = config.Duration{Duration: debounce}
	}
	if logPath != "" {
		cfg.Log.File = logPath
	}

	// Set up logging
	closer, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer closer.Close()
	}
	log := logging.Component("main")

	if loadErr != nil {
		log.Error().Err(loadErr).Str("path", configSvc.Path()).Msg("error loading config, using defaults")
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
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

	bus := eventbus.New()

	client := catalog.NewClient(cfg.Endpoint,
		catalog.WithUserAgent(cfg.UserAgent),
		catalog.WithTimeout(cfg.Timeout.Duration),
	)
	_ = catalog.NewService(ctx, bus, client) // subscribes to catalog requests

	model := ui.NewModel(bus, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward fetch outcomes to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventCatalogFailed, forward)

	log.Info().
		Str("endpoint", cfg.Endpoint).
		Dur("debounce", cfg.Debounce.Duration).
		Msg("starting UI")
	if err := run(ctx, p); err != nil {
		log.Error().Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("UI exited normally")

	// Cleanup
	cancel()
	bus.Close()
}

// run treats an interrupt or a cancelled context as a normal exit
func run(ctx context.Context, p *tea.Program) error {
	_, err := p.Run()
	switch {
	case err == nil, errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	}
	return err
}

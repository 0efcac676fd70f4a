package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"pupfinder/internal/api"
	"pupfinder/internal/config"
	"pupfinder/internal/eventbus"
	"pupfinder/internal/logging"
	"pupfinder/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		baseURL    string
		logPath    string
		debug      bool
	)
	flag.StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	flag.StringVar(&baseURL, "base-url", "", "API base URL (overrides config and "+config.EnvBaseURL+")")
	flag.StringVar(&logPath, "log", "pupfinder.log", "Path to the log file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logging
	if err := logging.Init(logPath, debug); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer logging.Close()

	if err := config.LoadDotEnv(); err != nil {
		logging.Warn("ignoring .env", "err", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration with event bus support
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		logging.Error("failed to load config, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultConfig()
		config.ApplyEnv(cfg)
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	logging.Info("configuration loaded", "path", configPath, "base_url", cfg.BaseURL)

	// Remember the last login so the form is prefilled next time
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.Login = config.LoginPrefill{Name: event.LoginName, Email: event.LoginEmail}
			if err := configSvc.Save(cfg); err != nil {
				logging.Error("failed to save config", "err", err)
			} else {
				logging.Info("config saved", "path", configSvc.Path())
			}
		}
	})

	logDomainEvents(bus)

	client, err := api.New(api.Options{
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.HTTP.Timeout.Duration,
		RequestsPerSecond: cfg.HTTP.RequestsPerSecond,
		Burst:             cfg.HTTP.Burst,
	})
	if err != nil {
		logging.Error("failed to create API client", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, client)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward failures and session changes to the UI
	for _, eventType := range []eventbus.EventType{eventbus.EventError, eventbus.EventSessionChanged} {
		bus.Subscribe(eventType, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	// Run the UI
	logging.Info("starting UI")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logging.Error("error running program", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	logging.Info("UI exited normally")
}

// logDomainEvents records search, match and breed activity in the log
func logDomainEvents(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			logging.Info("search completed", "page", event.Page, "pages", event.TotalPages, "total", event.Total, "count", event.Count)
		}
	})
	bus.Subscribe(eventbus.EventMatchFound, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MatchFoundEvent); ok {
			logging.Info("match found", "id", event.Dog.ID, "name", event.Dog.Name, "breed", event.Dog.Breed)
		}
	})
	bus.Subscribe(eventbus.EventBreedsLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BreedsLoadedEvent); ok {
			logging.Debug("breeds loaded", "count", event.Count)
		}
	})
}

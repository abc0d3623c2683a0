// Package app wires configuration, logging, the event bus and the UI into a
// running program.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"scrollshow/internal/config"
	"scrollshow/internal/eventbus"
	"scrollshow/internal/ui"
)

// E2EEnv makes the UI print a ready marker for the pty test suite
const E2EEnv = "SCROLLSHOW_E2E_TEST"

// Flags are the command line settings
type Flags struct {
	ConfigPath  string
	CooldownMs  int64
	CooldownSet bool // -cooldown was given; any value, even negative, overrides the file
	LogPath     string
	NoMouse     bool
}

// ParseFlags parses args (without the program name)
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("scrollshow", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.ConfigPath, "config", "", "Path to the showcase config (default ./"+config.FileName+")")
	fs.StringVar(&f.ConfigPath, "c", "", "Path to the showcase config (shorthand)")
	fs.Int64Var(&f.CooldownMs, "cooldown", 0, "Override the gesture cooldown in milliseconds")
	fs.StringVar(&f.LogPath, "log", "scrollshow.log", "Log file path")
	fs.BoolVar(&f.NoMouse, "no-mouse", false, "Disable mouse reporting (keyboard only)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "cooldown" {
			f.CooldownSet = true
		}
	})

	// A bare argument is taken as the config path
	if f.ConfigPath == "" && fs.NArg() > 0 {
		f.ConfigPath = fs.Arg(0)
	}
	if f.ConfigPath == "" {
		f.ConfigPath = config.FileName
	}
	return f, nil
}

// Main runs the program and returns the process exit code
func Main(args []string) int {
	flags, err := ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if err := Run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// Run starts the showcase and blocks until it exits
func Run(flags *Flags) error {
	// Set up logging
	logFile, err := os.OpenFile(flags.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	bus := eventbus.New()
	defer bus.Close()
	subscribeTelemetry(bus)

	// Forward user-facing events to the UI, including those from startup
	forwarder := &uiForwarder{}
	bus.Subscribe(eventbus.EventConfigSaved, forwarder.handle)
	bus.Subscribe(eventbus.EventError, forwarder.handle)

	configPath, err := filepath.Abs(flags.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	configSvc := config.NewServiceWithBus(configPath, bus)

	cfg, err := LoadOrCreateConfig(configSvc, bus, flags)
	if err != nil {
		return err
	}

	model, err := ui.NewModel(bus, cfg, ui.Options{
		ReadyMarker: os.Getenv(E2EEnv) == "1",
	})
	if err != nil {
		return fmt.Errorf("failed to build showcase: %w", err)
	}
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !flags.NoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)
	forwarder.attach(p, model)

	log.Printf("Starting %q with %d sections, cooldown %s", cfg.Title, cfg.SectionCount(), cfg.Cooldown())
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Printf("Interrupted")
			return nil
		}
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	return nil
}

// LoadOrCreateConfig loads the config, writes the defaults out when no file
// existed yet, then applies flag overrides and validates the result.
// A failed first-run save is published on bus and does not stop startup.
func LoadOrCreateConfig(svc config.Service, bus eventbus.EventBus, flags *Flags) (*config.Config, error) {
	_, statErr := os.Stat(svc.Path())
	existed := statErr == nil

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", svc.Path(), err)
	}

	// Saved before overrides so flags never end up in the file
	if !existed {
		log.Printf("Creating new config at %s", svc.Path())
		if err := svc.Save(cfg); err != nil {
			if bus != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "Failed to save config", Err: err})
			} else {
				log.Printf("Failed to save config: %v", err)
			}
		}
	}

	if flags != nil && flags.CooldownSet {
		cfg.Gesture.CooldownMs = flags.CooldownMs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// uiForwarder hands bus events to the program. Events that arrive before
// the program is attached are applied to the model when it is.
type uiForwarder struct {
	mu      sync.Mutex
	program *tea.Program
	pending []eventbus.DomainEvent
}

func (f *uiForwarder) handle(e eventbus.DomainEvent) {
	f.mu.Lock()
	p := f.program
	if p == nil {
		f.pending = append(f.pending, e)
	}
	f.mu.Unlock()

	if p != nil {
		p.Send(ui.EventMsg{Event: e})
	}
}

// attach must be called before the program runs
func (f *uiForwarder) attach(p *tea.Program, model *ui.Model) {
	f.mu.Lock()
	pending := f.pending
	f.pending = nil
	f.program = p
	f.mu.Unlock()

	for _, e := range pending {
		model.Notify(e)
	}
}

// subscribeTelemetry logs what the navigator did
func subscribeTelemetry(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSectionChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SectionChangedEvent); ok {
			log.Printf("Section %d -> %d (%s) %q", event.Transition.From, event.Transition.To, event.Direction, event.Title)
		}
	})
	bus.Subscribe(eventbus.EventBoundaryReached, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.BoundaryReachedEvent); ok {
			log.Printf("Boundary at section %d, %s ignored", event.Section, event.Direction)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded config from %s (%d sections)", event.Path, event.SectionCount)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventAppReady, func(eventbus.DomainEvent) {
		log.Printf("UI ready")
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}

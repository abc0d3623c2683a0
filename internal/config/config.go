package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"scrollshow/internal/eventbus"
)

// FileName is the per-directory configuration file
const FileName = ".scrollshow.toml"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Positive delta mappings accepted in [gesture]
const (
	PositiveForward  = "forward"
	PositiveBackward = "backward"
)

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Title     string            `toml:"title"`
	Gesture   GestureSettings   `toml:"gesture"`
	Navigator NavigatorSettings `toml:"navigator"`
	Render    RenderSettings    `toml:"render"`
	Sections  []Section         `toml:"sections"`
}

// GestureSettings configures the scroll gesture classifier
type GestureSettings struct {
	CooldownMs    int64  `toml:"cooldown_ms"`
	PositiveDelta string `toml:"positive_delta"`
}

// NavigatorSettings configures the section cursor
type NavigatorSettings struct {
	SectionCount  int  `toml:"section_count"` // 0 means len(Sections)
	RevealInitial bool `toml:"reveal_initial"`
}

// RenderSettings configures the frame loop and camera readout
type RenderSettings struct {
	FrameMs    int64 `toml:"frame_ms"`
	ShowCamera bool  `toml:"show_camera"`
}

// Section is the content of one narrative panel
type Section struct {
	Title  string     `toml:"title"`
	Body   string     `toml:"body"`
	Camera [3]float64 `toml:"camera"`
	LookAt [3]float64 `toml:"look_at"`
}

// Cooldown returns the gesture cooldown window
func (c *Config) Cooldown() time.Duration {
	return time.Duration(c.Gesture.CooldownMs) * time.Millisecond
}

// FrameInterval returns the render loop period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Render.FrameMs) * time.Millisecond
}

// SectionCount returns the number of navigable sections (N)
func (c *Config) SectionCount() int {
	if c.Navigator.SectionCount > 0 {
		return c.Navigator.SectionCount
	}
	return len(c.Sections)
}

// Validate checks the configuration once at startup
func (c *Config) Validate() error {
	if c.Navigator.SectionCount < 0 {
		return fmt.Errorf("%w: section_count must not be negative, got %d", ErrInvalidConfig, c.Navigator.SectionCount)
	}
	if c.SectionCount() < 1 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalidConfig)
	}
	if c.Gesture.CooldownMs < 0 {
		return fmt.Errorf("%w: cooldown_ms must not be negative, got %d", ErrInvalidConfig, c.Gesture.CooldownMs)
	}
	switch c.Gesture.PositiveDelta {
	case PositiveForward, PositiveBackward:
	default:
		return fmt.Errorf("%w: positive_delta must be %q or %q, got %q", ErrInvalidConfig, PositiveForward, PositiveBackward, c.Gesture.PositiveDelta)
	}
	if c.Render.FrameMs <= 0 {
		return fmt.Errorf("%w: frame_ms must be positive, got %d", ErrInvalidConfig, c.Render.FrameMs)
	}
	return nil
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service bound to a file path
func NewService(path string) Service {
	return &service{filePath: path}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(path string, bus eventbus.EventBus) Service {
	return &service{filePath: path, bus: bus}
}

// Path returns the file the service loads from and saves to
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration from the service path.
// A missing file yields the defaults.
func (s *service) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = s.LoadFromPath(s.filePath)
		if err != nil {
			return nil, err
		}
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:         s.filePath,
			SectionCount: cfg.SectionCount(),
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service path
func (s *service) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{Path: s.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Fields absent from the file keep their default values.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Sections are replaced wholesale when the file declares any
	cfg.Sections = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Sections) == 0 && cfg.Navigator.SectionCount == 0 {
		cfg.Sections = DefaultSections()
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "Night Market",
		Gesture: GestureSettings{
			CooldownMs:    800,
			PositiveDelta: PositiveForward,
		},
		Navigator: NavigatorSettings{
			RevealInitial: true,
		},
		Render: RenderSettings{
			FrameMs:    33,
			ShowCamera: true,
		},
		Sections: DefaultSections(),
	}
}

// DefaultSections returns the five built-in showcase sections
func DefaultSections() []Section {
	return []Section{
		{
			Title:  "Arrival",
			Body:   "Rain over the overpass. The camera drops toward the lit street below.",
			Camera: [3]float64{-20.7, 75.7, 18.4},
			LookAt: [3]float64{-19, 82.1, -81.3},
		},
		{
			Title:  "TV Store",
			Body:   "A wall of screens loops the same broadcast, glowing blue through the glass.",
			Camera: [3]float64{-20.5, 84.5, 2.3},
			LookAt: [3]float64{-23, 119, -5.7},
		},
		{
			Title:  "Second Store",
			Body:   "Neon signage stacked three floors high, every sign flickering out of sync.",
			Camera: [3]float64{20.1, 120.4, 48.0},
			LookAt: [3]float64{38.5, 145.9, 21.3},
		},
		{
			Title:  "The Alley",
			Body:   "Behind the market the light thins out to a single lamp and the hum of generators.",
			Camera: [3]float64{-72.0, 130.0, -20.0},
			LookAt: [3]float64{-100, 141, -67},
		},
		{
			Title:  "Rooftops",
			Body:   "The whole block spreads out underneath. Scroll back up to walk it again.",
			Camera: [3]float64{0, 210, 60},
			LookAt: [3]float64{-19, 82.1, -81.3},
		},
	}
}

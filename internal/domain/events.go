package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSectionChanged  EventType = "SectionChanged"
	EventBoundaryReached EventType = "BoundaryReached"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SectionChangedEvent is emitted after the navigator moved to another section
type SectionChangedEvent struct {
	Transition SectionTransition
	Direction  Direction
	Title      string
}

func (e SectionChangedEvent) Type() EventType { return EventSectionChanged }

// BoundaryReachedEvent is emitted when a direction was dropped at the first or last section
type BoundaryReachedEvent struct {
	Section   int
	Direction Direction
}

func (e BoundaryReachedEvent) Type() EventType { return EventBoundaryReached }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path         string
	SectionCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the program has rendered its first frame
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }

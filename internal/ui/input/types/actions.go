package types

import "scrollshow/internal/domain"

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// ScrollAction carries one raw wheel tick to the gesture classifier
type ScrollAction struct {
	DeltaY float64
}

func (a ScrollAction) Type() string { return "scroll" }

// NavigateAction moves the section cursor directly, without debouncing
type NavigateAction struct {
	Direction domain.Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// ToggleHelpAction switches between short and full help
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// OpenOutlineAction shows every section in the pager
type OpenOutlineAction struct{}

func (a OpenOutlineAction) Type() string { return "open_outline" }

// QuitAction exits the program
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }

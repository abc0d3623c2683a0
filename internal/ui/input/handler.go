package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scrollshow/internal/domain"
	"scrollshow/internal/ui/input/types"
)

// Handler translates terminal input into actions
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) HandleKey(msg tea.KeyMsg) []types.Action {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, h.keys.Next):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionForward}}
	case key.Matches(msg, h.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: domain.DirectionBackward}}
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}
	case key.Matches(msg, h.keys.Outline):
		return []types.Action{types.OpenOutlineAction{}}
	}
	return nil
}

// HandleMouse maps wheel ticks to raw scroll samples with the browser's
// sign convention: wheel down is a positive delta. Horizontal wheel ticks
// carry no vertical magnitude and become zero-delta samples.
func (h *Handler) HandleMouse(msg tea.MouseMsg) []types.Action {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return []types.Action{types.ScrollAction{DeltaY: 1}}
	case tea.MouseButtonWheelUp:
		return []types.Action{types.ScrollAction{DeltaY: -1}}
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return []types.Action{types.ScrollAction{DeltaY: 0}}
	}
	return nil
}

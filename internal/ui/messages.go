package ui

import (
	"time"

	"scrollshow/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg is sent by the render loop once per frame
type frameMsg time.Time

// pagerMsg contains the result of a pager run
type pagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals that an external pager owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals that the terminal is back
type resumeRenderingMsg struct{}

package sections

import (
	"errors"
	"fmt"
	"log"

	"scrollshow/internal/domain"
)

// ErrInvalidSectionCount is returned by NewNavigator when fewer than one section is configured
var ErrInvalidSectionCount = errors.New("sections: section count must be at least 1")

// Section is one presentation resource whose visibility the navigator owns
type Section interface {
	SetVisible(visible bool)
}

// Surface addresses sections by index 1..N.
// A false second result means the index has no backing resource.
type Surface interface {
	Section(index int) (Section, bool)
}

// DirectionSource delivers discrete directions, e.g. a gesture classifier
type DirectionSource interface {
	Subscribe(handler func(domain.Direction)) domain.Subscription
}

// Options configures a Navigator
type Options struct {
	Count         int  // N
	RevealInitial bool // mark section 1 visible at construction
}

// Navigator owns the bounded section cursor.
// It is not safe for concurrent use.
type Navigator struct {
	surface  Surface
	count    int
	current  int
	previous int
}

// NewNavigator creates a navigator positioned on section 1
func NewNavigator(surface Surface, opts Options) (*Navigator, error) {
	if opts.Count < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSectionCount, opts.Count)
	}

	n := &Navigator{
		surface:  surface,
		count:    opts.Count,
		current:  1,
		previous: 1,
	}
	if opts.RevealInitial {
		n.setVisible(1, true)
	}
	return n, nil
}

// Advance moves the cursor one step in the given direction.
// At a boundary nothing changes and false is returned.
func (n *Navigator) Advance(dir domain.Direction) (domain.SectionTransition, bool) {
	target := n.current + dir.Delta()
	if target == n.current || target < 1 || target > n.count {
		return domain.SectionTransition{}, false
	}

	from := n.current
	n.setVisible(n.previous, false)
	n.current = target
	n.setVisible(n.current, true)
	n.previous = n.current

	return domain.SectionTransition{From: from, To: n.current}, true
}

// Bind subscribes the navigator to a direction source.
// onTransition, when non-nil, is called for real transitions only.
func (n *Navigator) Bind(src DirectionSource, onTransition func(domain.SectionTransition)) domain.Subscription {
	return src.Subscribe(func(dir domain.Direction) {
		tr, ok := n.Advance(dir)
		if ok && onTransition != nil {
			onTransition(tr)
		}
	})
}

// Current returns the section the cursor is on
func (n *Navigator) Current() int {
	return n.current
}

// Previous returns the section whose visibility flag is cleared on the next move
func (n *Navigator) Previous() int {
	return n.previous
}

// Count returns N
func (n *Navigator) Count() int {
	return n.count
}

// AtStart reports whether a backward move would be a no-op
func (n *Navigator) AtStart() bool {
	return n.current == 1
}

// AtEnd reports whether a forward move would be a no-op
func (n *Navigator) AtEnd() bool {
	return n.current == n.count
}

func (n *Navigator) setVisible(index int, visible bool) {
	if n.surface == nil {
		return
	}
	s, ok := n.surface.Section(index)
	if !ok || s == nil {
		log.Printf("Section %d has no presentation resource, skipping visibility update", index)
		return
	}
	s.SetVisible(visible)
}

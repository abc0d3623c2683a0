// Package gesture turns raw, bursty scroll samples into discrete directions.
//
// A single physical scroll produces many wheel ticks in quick succession.
// The Classifier collapses such a burst into one Direction by refusing to
// emit again until a cooldown window has elapsed since the last emission.
// The window is an elapsed-time check made when the next sample arrives;
// no timer is ever scheduled.
package gesture

import (
	"errors"
	"fmt"
	"time"

	"scrollshow/internal/domain"
)

// ErrInvalidCooldown is returned by New for a negative cooldown
var ErrInvalidCooldown = errors.New("gesture: cooldown must not be negative")

// Mapping fixes which sign of DeltaY means which direction
type Mapping int

const (
	// PositiveIsBackward maps DeltaY > 0 to backward and DeltaY < 0 to forward
	PositiveIsBackward Mapping = iota
	// PositiveIsForward maps DeltaY > 0 to forward and DeltaY < 0 to backward
	PositiveIsForward
)

// Sample is one raw scroll tick. A zero At means the sample arrived now.
type Sample struct {
	DeltaY float64
	At     time.Time
}

// Options configures a Classifier
type Options struct {
	Cooldown time.Duration
	Mapping  Mapping
	Clock    func() time.Time
}

// Stats counts what happened to incoming samples
type Stats struct {
	Emitted    int
	Suppressed int
	Ignored    int // zero-delta samples
}

// Classifier is not safe for concurrent use; it belongs to the input
// handler that feeds it.
type Classifier struct {
	cooldown time.Duration
	mapping  Mapping
	clock    func() time.Time

	lastEmittedAt time.Time
	hasEmitted    bool
	stats         Stats

	nextID      uint64
	subscribers []subscriber
}

type subscriber struct {
	id      uint64
	handler func(domain.Direction)
}

// New creates a classifier
func New(opts Options) (*Classifier, error) {
	if opts.Cooldown < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCooldown, opts.Cooldown)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Classifier{
		cooldown: opts.Cooldown,
		mapping:  opts.Mapping,
		clock:    clock,
	}, nil
}

// Classify decides whether the sample starts a new gesture.
// It returns the direction and true when one is emitted.
func (c *Classifier) Classify(s Sample) (domain.Direction, bool) {
	if s.DeltaY == 0 {
		c.stats.Ignored++
		return "", false
	}

	dir := c.direction(s.DeltaY)

	at := s.At
	if at.IsZero() {
		at = c.clock()
	}

	if c.hasEmitted && at.Sub(c.lastEmittedAt) < c.cooldown {
		c.stats.Suppressed++
		return "", false
	}

	c.lastEmittedAt = at
	c.hasEmitted = true
	c.stats.Emitted++
	return dir, true
}

// Feed classifies the sample and hands an emitted direction to every
// subscriber in subscription order before returning.
func (c *Classifier) Feed(s Sample) (domain.Direction, bool) {
	dir, ok := c.Classify(s)
	if !ok {
		return dir, false
	}

	// Handlers may unsubscribe while being called
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	for _, sub := range subs {
		sub.handler(dir)
	}
	return dir, true
}

// Subscribe registers a handler for emitted directions
func (c *Classifier) Subscribe(handler func(domain.Direction)) domain.Subscription {
	c.nextID++
	id := c.nextID
	c.subscribers = append(c.subscribers, subscriber{id: id, handler: handler})

	return domain.SubscriptionFunc(func() {
		for i, sub := range c.subscribers {
			if sub.id == id {
				c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
				return
			}
		}
	})
}

// LastEmittedAt returns when the last direction was emitted, if any
func (c *Classifier) LastEmittedAt() (time.Time, bool) {
	return c.lastEmittedAt, c.hasEmitted
}

// Cooldown returns the configured cooldown window
func (c *Classifier) Cooldown() time.Duration {
	return c.cooldown
}

// Stats returns the sample counters
func (c *Classifier) Stats() Stats {
	return c.stats
}

func (c *Classifier) direction(deltaY float64) domain.Direction {
	forward := deltaY < 0
	if c.mapping == PositiveIsForward {
		forward = !forward
	}
	if forward {
		return domain.DirectionForward
	}
	return domain.DirectionBackward
}

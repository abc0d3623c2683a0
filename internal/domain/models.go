package domain

// Direction is the discrete classification of a scroll gesture
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Delta returns the cursor step for the direction
func (d Direction) Delta() int {
	switch d {
	case DirectionForward:
		return 1
	case DirectionBackward:
		return -1
	default:
		return 0
	}
}

// SectionTransition is a real move of the section cursor
type SectionTransition struct {
	From int
	To   int
}

// Subscription is returned by every Subscribe call in the core.
// Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// SubscriptionFunc adapts a plain function to Subscription
type SubscriptionFunc func()

func (f SubscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

package toast

import (
	"context"
	"sync"
)

// EventKind identifies a state change in the Center.
type EventKind string

const (
	EventShown     EventKind = "shown"
	EventDismissed EventKind = "dismissed"
	EventExpired   EventKind = "expired"
	EventCleared   EventKind = "cleared"
)

// Event describes one state change. Toast is the notification the event is
// about (nil for EventCleared) and Active is a snapshot of the collection
// after the change was applied.
type Event struct {
	Kind   EventKind      `json:"kind"`
	Toast  *Notification  `json:"toast,omitempty"`
	Active []Notification `json:"active"`
}

// Subscription receives Center change events. Events are delivered through a
// buffered channel with non-blocking sends: a subscriber that falls behind
// misses events instead of stalling the Center.
type Subscription struct {
	ch     chan Event
	closed bool
	mu     sync.Mutex
}

// Events returns the channel change events arrive on. The channel is closed
// when the subscription or the owning Center is closed.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close detaches the subscription and closes its channel.
// Close is idempotent and safe to call multiple times.
func (s *Subscription) Close() error {
	s.close()
	return nil
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *Subscription) send(ev Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- ev:
		return true
	default:
		return false
	}
}

// Subscribe registers a change-feed subscription. The subscription is cleaned
// up automatically when the provided context is cancelled. Subscribing to a
// closed Center returns an already-closed subscription.
func (c *Center) Subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{ch: make(chan Event, c.feedBuffer)}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		sub.close()
		return sub
	}
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			c.unsubscribe(sub)
		}()
	}

	return sub
}

func (c *Center) unsubscribe(sub *Subscription) {
	c.mu.Lock()
	delete(c.subs, sub)
	c.mu.Unlock()
	sub.close()
}

// publishLocked fans the event out to all subscriptions. Callers must hold
// c.mu. Sends never block; slow subscribers drop events.
func (c *Center) publishLocked(ev Event) {
	for sub := range c.subs {
		if !sub.send(ev) {
			c.logger.Debug("toast event dropped for slow subscriber")
		}
	}
}

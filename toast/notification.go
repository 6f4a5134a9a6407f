package toast

import (
	"time"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Valid reports whether t is one of the defined notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeError:
		return true
	}
	return false
}

// Position determines where the rendering collaborator places the toast stack.
type Position string

const (
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionTopCenter   Position = "top-center"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
)

// Valid reports whether p is one of the defined positions.
func (p Position) Valid() bool {
	switch p {
	case PositionTopLeft, PositionTopRight, PositionTopCenter, PositionBottomLeft, PositionBottomRight:
		return true
	}
	return false
}

// OverflowPolicy tells the rendering collaborator which toasts to hide when
// the active count exceeds the visible maximum. The Center always tracks the
// full active set regardless of policy.
type OverflowPolicy string

const (
	// OverflowHideNewest keeps the oldest toasts on screen (FIFO display).
	OverflowHideNewest OverflowPolicy = "hide-newest"
	// OverflowHideOldest keeps the most recent toasts on screen.
	OverflowHideOldest OverflowPolicy = "hide-oldest"
)

// Spec describes a notification to be shown. A zero Duration means the
// notification persists until explicitly dismissed; negative durations are
// clamped to zero.
type Spec struct {
	Type     Type          `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Notification is a single active toast. It is a value object: once created
// it is never mutated, only removed.
type Notification struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Persistent reports whether the notification stays on screen until
// explicitly dismissed.
func (n *Notification) Persistent() bool {
	return n.Duration == 0
}

package toast

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultMaxVisible = 5
	defaultFeedBuffer = 32
)

// Center owns the authoritative list of active notifications. All mutations
// go through its methods; consumers only ever receive snapshot copies.
type Center struct {
	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
	subs   map[*Subscription]struct{}
	closed bool

	renderer   Renderer
	catalog    *Catalog
	position   Position
	maxVisible int
	overflow   OverflowPolicy
	feedBuffer int
	newID      func() string
	logger     *slog.Logger
}

// Option configures a Center.
type Option func(*Center)

// WithRenderer sets the rendering collaborator notified after every state
// change. A nil renderer disables rendering callbacks.
func WithRenderer(r Renderer) Option {
	return func(c *Center) { c.renderer = r }
}

// WithCatalog sets the template catalog used by ShowTemplate.
// Nil catalogs are ignored so the built-in default stays in place.
func WithCatalog(cat *Catalog) Option {
	return func(c *Center) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// WithPosition sets the display position handed to the renderer.
// Panics for unknown positions to enforce fail-fast initialization.
func WithPosition(p Position) Option {
	if !p.Valid() {
		panic(fmt.Sprintf("toast: invalid position %q", p))
	}
	return func(c *Center) { c.position = p }
}

// WithMaxVisible sets the maximum number of simultaneously visible toasts
// handed to the renderer. Non-positive values are ignored.
func WithMaxVisible(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.maxVisible = n
		}
	}
}

// WithOverflowPolicy sets which toasts the renderer hides when the active
// count exceeds the visible maximum.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(c *Center) { c.overflow = p }
}

// WithFeedBuffer sets the per-subscription event buffer size.
// Non-positive values are ignored.
func WithFeedBuffer(n int) Option {
	return func(c *Center) {
		if n > 0 {
			c.feedBuffer = n
		}
	}
}

// WithIDGenerator overrides notification ID generation. Generated IDs must be
// unique per Center instance; the default is uuid v4.
func WithIDGenerator(fn func() string) Option {
	return func(c *Center) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithLogger sets the logger for the Center.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Center) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCenter creates a notification center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		timers:     make(map[string]*time.Timer),
		subs:       make(map[*Subscription]struct{}),
		catalog:    DefaultCatalog(),
		position:   PositionTopRight,
		maxVisible: defaultMaxVisible,
		overflow:   OverflowHideNewest,
		feedBuffer: defaultFeedBuffer,
		newID:      uuid.NewString,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Show appends a new notification built from spec and returns its generated
// id. If the spec carries a positive duration, the notification is removed
// automatically once it elapses, unless dismissed earlier. Show never fails;
// negative durations are clamped to zero (persistent).
func (c *Center) Show(spec Spec) string {
	if spec.Duration < 0 {
		spec.Duration = 0
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Warn("show on closed center dropped", slog.String("title", spec.Title))
		return ""
	}

	n := Notification{
		ID:        c.newID(),
		Type:      spec.Type,
		Title:     spec.Title,
		Message:   spec.Message,
		Duration:  spec.Duration,
		CreatedAt: time.Now(),
	}
	c.active = append(c.active, n)

	if n.Duration > 0 {
		id := n.ID
		c.timers[id] = time.AfterFunc(n.Duration, func() {
			c.expire(id)
		})
	}

	snapshot := c.snapshotLocked()
	c.publishLocked(Event{Kind: EventShown, Toast: &n, Active: snapshot})
	c.mu.Unlock()

	c.render(snapshot)
	return n.ID
}

// Success shows a success notification and returns its id.
func (c *Center) Success(title, message string, d time.Duration) string {
	return c.Show(Spec{Type: TypeSuccess, Title: title, Message: message, Duration: d})
}

// Error shows an error notification and returns its id.
func (c *Center) Error(title, message string, d time.Duration) string {
	return c.Show(Spec{Type: TypeError, Title: title, Message: message, Duration: d})
}

// Info shows an info notification and returns its id.
func (c *Center) Info(title, message string, d time.Duration) string {
	return c.Show(Spec{Type: TypeInfo, Title: title, Message: message, Duration: d})
}

// Warning shows a warning notification and returns its id.
func (c *Center) Warning(title, message string, d time.Duration) string {
	return c.Show(Spec{Type: TypeWarning, Title: title, Message: message, Duration: d})
}

// ShowTemplate shows a notification built from a named template in the
// configured catalog. Returns ErrTemplateNotFound for unknown template ids
// and ErrCenterClosed after Close.
func (c *Center) ShowTemplate(id TemplateID, params Params) (string, error) {
	tmpl, ok := c.catalog.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return "", ErrCenterClosed
	}

	return c.Show(tmpl(params)), nil
}

// Dismiss removes the notification with the given id and cancels its expiry
// timer. Unknown ids are a no-op: dismissal races with auto-expiry are
// expected and must not surface as failures.
func (c *Center) Dismiss(id string) {
	c.remove(id, EventDismissed)
}

// expire is the auto-removal path triggered by a fired timer. The id may
// already be gone if an explicit dismissal won the race.
func (c *Center) expire(id string) {
	c.remove(id, EventExpired)
}

func (c *Center) remove(id string, kind EventKind) {
	c.mu.Lock()
	idx := -1
	for i := range c.active {
		if c.active[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	removed := c.active[idx]
	c.active = append(c.active[:idx], c.active[idx+1:]...)

	snapshot := c.snapshotLocked()
	c.publishLocked(Event{Kind: kind, Toast: &removed, Active: snapshot})
	c.mu.Unlock()

	c.render(snapshot)
}

// DismissAll clears the active collection and cancels every pending expiry
// timer so no stale removal fires afterwards.
func (c *Center) DismissAll() {
	c.mu.Lock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.active = nil

	snapshot := c.snapshotLocked()
	c.publishLocked(Event{Kind: EventCleared, Active: snapshot})
	c.mu.Unlock()

	c.render(snapshot)
}

// Notifications returns a snapshot copy of the active collection in
// insertion order. Mutating the returned slice has no effect on the Center.
func (c *Center) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Len returns the number of active notifications, including ones the
// renderer may currently hide.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

// Position returns the configured display position.
func (c *Center) Position() Position { return c.position }

// MaxVisible returns the configured maximum of simultaneously visible toasts.
func (c *Center) MaxVisible() int { return c.maxVisible }

// Close cancels all timers, closes all feed subscriptions and marks the
// Center closed. Show becomes a logged no-op afterwards. Close is idempotent.
func (c *Center) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true

	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.active = nil

	for sub := range c.subs {
		sub.close()
	}
	clear(c.subs)
	c.mu.Unlock()

	return nil
}

func (c *Center) snapshotLocked() []Notification {
	snapshot := make([]Notification, len(c.active))
	copy(snapshot, c.active)
	return snapshot
}

// render hands the current state to the rendering collaborator. Called
// outside the Center lock so a renderer may call Dismiss re-entrantly.
func (c *Center) render(snapshot []Notification) {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(snapshot, c.Dismiss, c.position, c.maxVisible, c.overflow)
}

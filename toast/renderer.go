package toast

// DismissFunc removes the notification with the given id from the Center.
type DismissFunc func(id string)

// Renderer is the external rendering collaborator. The Center hands it a
// snapshot of the full active collection after every state change; deciding
// which toasts to hide beyond maxVisible is the renderer's job, guided by the
// overflow policy. Render is called outside the Center lock, so renderers may
// call dismiss synchronously.
type Renderer interface {
	Render(toasts []Notification, dismiss DismissFunc, position Position, maxVisible int, overflow OverflowPolicy)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(toasts []Notification, dismiss DismissFunc, position Position, maxVisible int, overflow OverflowPolicy)

func (f RendererFunc) Render(toasts []Notification, dismiss DismissFunc, position Position, maxVisible int, overflow OverflowPolicy) {
	f(toasts, dismiss, position, maxVisible, overflow)
}

// NoOpRenderer is a renderer that does nothing.
// Useful for testing or headless usage.
type NoOpRenderer struct{}

func (NoOpRenderer) Render([]Notification, DismissFunc, Position, int, OverflowPolicy) {}

// Visible applies the overflow policy to a snapshot, returning the subset a
// renderer should display. Provided as a helper so renderers don't reimplement
// the truncation rule.
func Visible(toasts []Notification, maxVisible int, overflow OverflowPolicy) []Notification {
	if maxVisible <= 0 || len(toasts) <= maxVisible {
		return toasts
	}
	if overflow == OverflowHideOldest {
		return toasts[len(toasts)-maxVisible:]
	}
	return toasts[:maxVisible]
}

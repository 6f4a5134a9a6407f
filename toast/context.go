package toast

import "context"

type ctxKey struct{}

// NewContext returns a context carrying the given Center. This is the
// provider side of the access point: application composition roots attach one
// Center near startup and pass the context down.
func NewContext(ctx context.Context, c *Center) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext retrieves the Center attached by NewContext. It returns
// ErrNoProvider when the context was never routed through a provider,
// which always indicates incorrect composition rather than a runtime fault.
func FromContext(ctx context.Context) (*Center, error) {
	c, ok := ctx.Value(ctxKey{}).(*Center)
	if !ok || c == nil {
		return nil, ErrNoProvider
	}
	return c, nil
}

// MustFromContext is like FromContext but panics when no provider is present.
// Use in code paths where a missing provider should fail fast.
func MustFromContext(ctx context.Context) *Center {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

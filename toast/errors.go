package toast

import "errors"

var (
	// ErrNoProvider is returned when the context access point is used outside
	// an initialized provider scope. It signals a composition bug and is not
	// recoverable at the call site.
	ErrNoProvider = errors.New("toast: must be used within provider")

	// ErrCenterClosed is returned when an operation requires an open Center.
	ErrCenterClosed = errors.New("toast: center is closed")

	// ErrTemplateNotFound is returned for unknown template ids.
	ErrTemplateNotFound = errors.New("toast: template not found")

	// ErrInvalidCatalog is returned when a catalog definition cannot be parsed.
	ErrInvalidCatalog = errors.New("toast: invalid catalog definition")
)

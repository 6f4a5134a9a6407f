// Package toast provides an in-process notification state container with
// typed convenience constructors, cancellable auto-expiry and delegated
// rendering.
//
// The package owns the authoritative list of active notifications and leaves
// the visual side entirely to an external rendering collaborator, so it can
// back any UI layer (server-rendered fragments, SSE-driven frontends,
// terminal UIs) without knowing about markup.
//
// # Architecture
//
// The package is built from three pieces:
//
//   - Center: the state container. Owns the active collection and the expiry
//     timers; every mutation goes through it.
//   - Renderer: the rendering collaborator. Receives a snapshot, a dismiss
//     callback and the display configuration after every state change.
//   - Catalog: an immutable table of named templates mapping domain events to
//     fully-formed notification specs.
//
// # Basic Usage
//
//	center := toast.NewCenter(
//	    toast.WithPosition(toast.PositionBottomRight),
//	    toast.WithMaxVisible(3),
//	)
//	defer center.Close()
//
//	// Show a toast that auto-expires after 4 seconds
//	id := center.Success("Saved", "Your changes were saved", 4*time.Second)
//
//	// A zero duration keeps the toast until explicitly dismissed
//	center.Error("Payment failed", "Card was declined", 0)
//
//	center.Dismiss(id)
//	center.DismissAll()
//
// # Access Point
//
// Applications attach one Center to their root context and retrieve it
// anywhere below:
//
//	ctx = toast.NewContext(ctx, center)
//
//	c, err := toast.FromContext(ctx)
//	if err != nil {
//	    // errors.Is(err, toast.ErrNoProvider): composition bug, fix the wiring
//	}
//
// # Templates
//
// Named templates turn domain events into notification specs without
// scattering copy across the codebase:
//
//	id, err := center.ShowTemplate(toast.TemplatePurchaseSucceeded, toast.Params{
//	    "item": "Season 2",
//	})
//
// Custom catalogs can be defined in YAML and merged over the built-in table,
// see ParseCatalog.
//
// # Change Feed
//
// Subscribe streams state changes for transport layers (see pkg/toasthttp
// for an SSE facade):
//
//	sub := center.Subscribe(ctx)
//	defer sub.Close()
//	for ev := range sub.Events() {
//	    // ev.Kind, ev.Toast, ev.Active
//	}
//
// # Concurrency
//
// All Center methods are safe for concurrent use. Auto-expiry runs on
// per-notification timers that are cancelled on every removal path, so a
// dismissal racing an expiry never produces a stale removal.
package toast

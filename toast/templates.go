package toast

import (
	"regexp"
	"slices"
	"time"
)

// TemplateID names an entry in a Catalog.
type TemplateID string

// Built-in templates covering the common domain events of a content
// storefront: purchase flow, balance checks, transport failures, sessions.
const (
	TemplatePurchaseSucceeded   TemplateID = "purchase_succeeded"
	TemplateInsufficientBalance TemplateID = "insufficient_balance"
	TemplateNetworkError        TemplateID = "network_error"
	TemplateSessionExpired      TemplateID = "session_expired"
	TemplateContentUnavailable  TemplateID = "content_unavailable"
)

// Params holds the values interpolated into a template's title and message.
type Params map[string]string

// Template is a pure function producing a fully-formed Spec from params.
type Template func(Params) Spec

// Catalog is an immutable mapping from template id to template. Build one
// with NewCatalog or ParseCatalog, or use DefaultCatalog.
type Catalog struct {
	templates map[TemplateID]Template
}

// NewCatalog creates a catalog from the given mapping. The mapping is copied;
// later changes to m do not affect the catalog.
func NewCatalog(m map[TemplateID]Template) *Catalog {
	templates := make(map[TemplateID]Template, len(m))
	for id, tmpl := range m {
		if tmpl != nil {
			templates[id] = tmpl
		}
	}
	return &Catalog{templates: templates}
}

// Lookup returns the template registered under id.
func (c *Catalog) Lookup(id TemplateID) (Template, bool) {
	tmpl, ok := c.templates[id]
	return tmpl, ok
}

// IDs returns the registered template ids in sorted order.
func (c *Catalog) IDs() []TemplateID {
	ids := make([]TemplateID, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Merge returns a new catalog containing the templates of both catalogs.
// Entries in other win on id collisions, so applications can override the
// built-in table selectively.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := make(map[TemplateID]Template, len(c.templates)+len(other.templates))
	for id, tmpl := range c.templates {
		merged[id] = tmpl
	}
	for id, tmpl := range other.templates {
		merged[id] = tmpl
	}
	return &Catalog{templates: merged}
}

// DefaultCatalog returns the built-in template table.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[TemplateID]Template{
		TemplatePurchaseSucceeded: func(p Params) Spec {
			return Spec{
				Type:     TypeSuccess,
				Title:    "Purchase complete",
				Message:  Interpolate("You now own {item}.", p),
				Duration: 4 * time.Second,
			}
		},
		TemplateInsufficientBalance: func(p Params) Spec {
			return Spec{
				Type:    TypeError,
				Title:   "Insufficient balance",
				Message: Interpolate("Your balance is too low to buy {item}. Top up and try again.", p),
			}
		},
		TemplateNetworkError: func(p Params) Spec {
			return Spec{
				Type:     TypeError,
				Title:    "Network error",
				Message:  "Could not reach the server. Check your connection and retry.",
				Duration: 6 * time.Second,
			}
		},
		TemplateSessionExpired: func(p Params) Spec {
			return Spec{
				Type:    TypeWarning,
				Title:   "Session expired",
				Message: "Please sign in again to continue.",
			}
		},
		TemplateContentUnavailable: func(p Params) Spec {
			return Spec{
				Type:     TypeInfo,
				Title:    "Content unavailable",
				Message:  Interpolate("{title} is not available right now.", p),
				Duration: 5 * time.Second,
			}
		},
	})
}

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Interpolate replaces {name} placeholders in s with values from params.
// Placeholders without a matching param are left as-is so missing values
// stay visible instead of silently producing empty strings.
func Interpolate(s string, params Params) string {
	if len(params) == 0 {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(match string) string {
		key := match[1 : len(match)-1]
		if v, ok := params[key]; ok {
			return v
		}
		return match
	})
}

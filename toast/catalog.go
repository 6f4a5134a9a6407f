package toast

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// catalogEntry is the YAML shape of one template definition.
type catalogEntry struct {
	Type       Type   `yaml:"type"`
	Title      string `yaml:"title"`
	Message    string `yaml:"message"`
	DurationMS int64  `yaml:"duration_ms"`
}

// ParseCatalog reads template definitions from YAML and builds a catalog.
// The expected document is a map of template id to definition:
//
//	upload_done:
//	  type: success
//	  title: Upload finished
//	  message: "{file} is ready."
//	  duration_ms: 4000
//
// Title and message support {name} placeholder interpolation. A zero or
// negative duration_ms produces a persistent toast.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	var entries map[TemplateID]catalogEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no templates defined", ErrInvalidCatalog)
	}

	templates := make(map[TemplateID]Template, len(entries))
	for id, entry := range entries {
		entry := entry // the closure below must capture this iteration's entry (pre-1.22 loop semantics)
		if !entry.Type.Valid() {
			return nil, fmt.Errorf("%w: template %q has unknown type %q", ErrInvalidCatalog, id, entry.Type)
		}
		if entry.Title == "" {
			return nil, fmt.Errorf("%w: template %q has no title", ErrInvalidCatalog, id)
		}

		duration := time.Duration(entry.DurationMS) * time.Millisecond
		if duration < 0 {
			duration = 0
		}

		templates[id] = func(p Params) Spec {
			return Spec{
				Type:     entry.Type,
				Title:    Interpolate(entry.Title, p),
				Message:  Interpolate(entry.Message, p),
				Duration: duration,
			}
		}
	}

	return &Catalog{templates: templates}, nil
}

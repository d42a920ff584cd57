package font

import (
	"errors"
	"fmt"
)

// ErrUnknownFont is returned when a font id is not registered.
var ErrUnknownFont = errors.New("font: unknown font id")

// Registry resolves font ids to loaded fonts. It is the metrics source
// the layout engine and line fitter measure text through. Registration
// happens once at composition time; afterwards the registry is read-only
// and safe to share between the build worker and the render path.
type Registry struct {
	fonts map[int]*Font
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[int]*Font)}
}

// Register adds a font under its own id. Re-registering an id is an error.
func (r *Registry) Register(f *Font) error {
	if _, dup := r.fonts[f.ID()]; dup {
		return fmt.Errorf("font: id %d already registered", f.ID())
	}
	r.fonts[f.ID()] = f
	return nil
}

// Font returns the font registered under id.
func (r *Registry) Font(id int) (*Font, error) {
	f, ok := r.fonts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return f, nil
}

// LineHeight returns the line height for a font id, or 0 for an unknown
// id. Metric queries follow the catalog's degrade-to-no-effect rule
// rather than failing the layout pass.
func (r *Registry) LineHeight(id int) int {
	f, ok := r.fonts[id]
	if !ok {
		return 0
	}
	return f.LineHeight()
}

// TextWidth measures a string in the given font, or 0 for an unknown id.
func (r *Registry) TextWidth(id int, s string, kerningEnabled bool) int {
	f, ok := r.fonts[id]
	if !ok {
		return 0
	}
	return f.TextWidth(s, kerningEnabled)
}

// SpaceWidth returns the space advance for a font id, or 0 for an
// unknown id.
func (r *Registry) SpaceWidth(id int) int {
	f, ok := r.fonts[id]
	if !ok {
		return 0
	}
	return f.SpaceWidth()
}

package render

import (
	"image"
	"strings"

	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

// Backend names accepted in configuration and on the command line
const (
	BackendASCII = "ascii"
	BackendANSI  = "ansi"
)

// DefaultBackendOrder is the precedence used when nothing else is configured
var DefaultBackendOrder = []string{BackendASCII, BackendANSI}

// Backend turns a decoded image into displayable text
type Backend interface {
	Name() string
	// Accepts reports whether the backend may be used for src at all
	Accepts(src types.ImageSource) bool
	Render(img image.Image, src types.ImageSource) (string, error)
}

// NewBackend returns the built-in backend registered under name
func NewBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendASCII:
		return NewASCIIBackend(), nil
	case BackendANSI:
		return NewANSIBackend(), nil
	default:
		return nil, errors.Newf(errors.ErrBackendUnknown, "unknown rendering backend %q", name).
			WithDetail("known", DefaultBackendOrder)
	}
}

// ParseBackends builds a prioritized backend list from names, dropping duplicates
func ParseBackends(names []string) ([]Backend, error) {
	seen := make(map[string]bool, len(names))
	backends := make([]Backend, 0, len(names))
	for _, n := range names {
		b, err := NewBackend(n)
		if err != nil {
			return nil, err
		}
		if seen[b.Name()] {
			continue
		}
		seen[b.Name()] = true
		backends = append(backends, b)
	}
	return backends, nil
}

// DefaultBackends returns the built-in backends in default precedence
func DefaultBackends() []Backend {
	backends, _ := ParseBackends(DefaultBackendOrder)
	return backends
}

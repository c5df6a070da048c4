package export

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/curve2svg/internal/svg"
)

// Exporter writes a built document in one output format.
type Exporter interface {
	// Name is the short identifier used with --format.
	Name() string
	// Label is the menu text shown when listing formats.
	Label() string
	// Extension is the file extension including the dot.
	Extension() string
	Export(w io.Writer, doc *svg.Document) error
}

// Registry holds exporters by name.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{exporters: make(map[string]Exporter)}
}

// Default returns a registry with the svg and json exporters.
func Default() *Registry {
	return &Registry{exporters: map[string]Exporter{
		SVG{}.Name():  SVG{},
		JSON{}.Name(): JSON{},
	}}
}

// Register adds an exporter. Names must be unique.
func (r *Registry) Register(exp Exporter) error {
	name := strings.ToLower(exp.Name())
	if _, exists := r.exporters[name]; exists {
		return fmt.Errorf("exporter %q already registered", name)
	}
	r.exporters[name] = exp
	return nil
}

// Lookup returns the exporter registered under name.
func (r *Registry) Lookup(name string) (Exporter, error) {
	exp, ok := r.exporters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return exp, nil
}

// ForPath picks the exporter whose extension matches path.
func (r *Registry) ForPath(path string) (Exporter, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, exp := range r.List() {
		if exp.Extension() == ext {
			return exp, nil
		}
	}
	return nil, fmt.Errorf("no exporter for %q files (available: %s)", ext, strings.Join(r.Names(), ", "))
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// List returns the exporters sorted by name.
func (r *Registry) List() []Exporter {
	names := r.Names()
	out := make([]Exporter, 0, len(names))
	for _, name := range names {
		out = append(out, r.exporters[name])
	}
	return out
}

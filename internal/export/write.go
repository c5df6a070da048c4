package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/curve2svg/internal/logging"
	"github.com/gorewood/curve2svg/internal/scene"
	"github.com/gorewood/curve2svg/internal/svg"
)

// Result describes a finished export.
type Result struct {
	Object string  `json:"object"`
	Format string  `json:"format"`
	Paths  int     `json:"paths"`
	Scale  float64 `json:"scale"`
	Bytes  int     `json:"bytes"`
	Path   string  `json:"path,omitempty"`
}

// Render builds obj and encodes it with exp entirely in memory.
func Render(ctx context.Context, exp Exporter, obj *scene.Object, opts svg.Options) ([]byte, *Result, error) {
	log := logging.From(ctx)

	doc, err := svg.Build(obj, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", exp.Name(), err)
	}
	log.Debug().
		Str("object", doc.Object).
		Int("paths", len(doc.Paths)).
		Float64("scale", doc.Scale).
		Int("precision", doc.Precision).
		Bool("minify", doc.Minify).
		Msg("built document")

	var buf bytes.Buffer
	if err := exp.Export(&buf, doc); err != nil {
		return nil, nil, fmt.Errorf("encoding %s: %w", exp.Name(), err)
	}

	return buf.Bytes(), &Result{
		Object: doc.Object,
		Format: exp.Name(),
		Paths:  len(doc.Paths),
		Scale:  doc.Scale,
		Bytes:  buf.Len(),
	}, nil
}

// WriteFile renders obj and atomically writes it to path. Nothing is
// written when the object is rejected or encoding fails.
func WriteFile(ctx context.Context, path string, exp Exporter, obj *scene.Object, opts svg.Options) (*Result, error) {
	data, res, err := Render(ctx, exp, obj, opts)
	if err != nil {
		return nil, err
	}
	if err := writeAtomic(path, data); err != nil {
		return nil, err
	}
	res.Path = path
	logging.From(ctx).Debug().Str("path", path).Int("bytes", res.Bytes).Msg("wrote export")
	return res, nil
}

// writeAtomic writes data to a temporary file in path's directory and
// renames it over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

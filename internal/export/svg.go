package export

import (
	"io"

	"github.com/gorewood/curve2svg/internal/svg"
)

// SVG writes the document as SVG text.
type SVG struct{}

// Name implements Exporter.
func (SVG) Name() string { return "svg" }

// Label implements Exporter.
func (SVG) Label() string { return "Curves to SVG" }

// Extension implements Exporter.
func (SVG) Extension() string { return ".svg" }

// Export implements Exporter.
func (SVG) Export(w io.Writer, doc *svg.Document) error {
	_, err := doc.WriteTo(w)
	return err
}

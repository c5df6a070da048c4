package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gorewood/curve2svg/internal/svg"
)

// JSON writes the document's paths as structured JSON.
type JSON struct{}

// jsonDocument is the JSON shape of a document.
type jsonDocument struct {
	Object    string     `json:"object"`
	Scale     float64    `json:"scale"`
	Precision int        `json:"precision"`
	ViewBox   [4]float64 `json:"view_box"`
	Paths     []jsonPath `json:"paths"`
}

type jsonPath struct {
	ID          string  `json:"id"`
	D           string  `json:"d"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Name implements Exporter.
func (JSON) Name() string { return "json" }

// Label implements Exporter.
func (JSON) Label() string { return "Curve paths to JSON" }

// Extension implements Exporter.
func (JSON) Extension() string { return ".json" }

// Export implements Exporter. Minified documents are written on one line.
func (JSON) Export(w io.Writer, doc *svg.Document) error {
	out := jsonDocument{
		Object:    doc.Object,
		Scale:     doc.Scale,
		Precision: doc.Precision,
		ViewBox:   [4]float64{doc.ViewBox.X, doc.ViewBox.Y, doc.ViewBox.Width, doc.ViewBox.Height},
		Paths:     make([]jsonPath, 0, len(doc.Paths)),
	}
	for i := range doc.Paths {
		p := &doc.Paths[i]
		out.Paths = append(out.Paths, jsonPath{
			ID:          p.ID,
			D:           p.Data(doc.Precision, doc.Minify),
			Fill:        p.Fill,
			Stroke:      p.Stroke,
			StrokeWidth: p.StrokeWidth,
		})
	}

	enc := json.NewEncoder(w)
	if !doc.Minify {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

package svg

import (
	"encoding/xml"
	"io"
	"strings"
)

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	svgDoctype     = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
	indentUnit     = "  "
	layoutDecimals = 1
	strokeDecimals = 2
	groupID        = "curves"
)

// ViewBox is the document's visible region in user units.
type ViewBox struct {
	X, Y          float64
	Width, Height float64
}

// Document is a built SVG document for one curve object.
type Document struct {
	Object    string
	Generator string
	Scale     float64 // effective scale after auto-scaling
	Precision int
	Minify    bool
	ViewBox   ViewBox
	Paths     []Path
}

// String renders the document.
func (d *Document) String() string {
	var b strings.Builder
	d.render(&b)
	return b.String()
}

// WriteTo renders the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func (d *Document) render(b *strings.Builder) {
	xw := &xmlWriter{b: b, minify: d.Minify}

	b.WriteString(xmlDeclaration)
	if !d.Minify {
		b.WriteByte('\n')
		b.WriteString(svgDoctype)
		b.WriteByte('\n')
	}

	width := FormatCoord(d.ViewBox.Width, layoutDecimals)
	height := FormatCoord(d.ViewBox.Height, layoutDecimals)
	xw.open("svg", false,
		attr{"xmlns", "http://www.w3.org/2000/svg"},
		attr{"xmlns:xlink", "http://www.w3.org/1999/xlink"},
		attr{"version", "1.1"},
		attr{"x", "0px"},
		attr{"y", "0px"},
		attr{"width", width + "px"},
		attr{"height", height + "px"},
		attr{"viewBox", strings.Join([]string{
			FormatCoord(d.ViewBox.X, layoutDecimals),
			FormatCoord(d.ViewBox.Y, layoutDecimals),
			width,
			height,
		}, " ")},
		attr{"xml:space", "preserve"},
	)
	xw.comment(" Generated by " + d.generator() + " - Curve to SVG Exporter ")

	if len(d.Paths) == 0 {
		xw.open("g", true, attr{"id", groupID})
	} else {
		xw.open("g", false, attr{"id", groupID})
		for i := range d.Paths {
			p := &d.Paths[i]
			xw.open("path", true,
				attr{"id", p.ID},
				attr{"d", p.Data(d.Precision, d.Minify)},
				attr{"fill", p.Fill},
				attr{"stroke", p.Stroke},
				attr{"stroke-width", FormatCoord(p.StrokeWidth, strokeDecimals)},
			)
		}
		xw.close("g")
	}
	xw.close("svg")
}

func (d *Document) generator() string {
	if d.Generator == "" {
		return "curve2svg"
	}
	// "--" may not appear inside an XML comment.
	return strings.ReplaceAll(d.Generator, "--", "-")
}

type attr struct {
	name, value string
}

// xmlWriter emits elements either one per line with indentation or packed
// onto a single line.
type xmlWriter struct {
	b      *strings.Builder
	minify bool
	depth  int
}

func (x *xmlWriter) indent() {
	if !x.minify {
		x.b.WriteString(strings.Repeat(indentUnit, x.depth))
	}
}

func (x *xmlWriter) newline() {
	if !x.minify {
		x.b.WriteByte('\n')
	}
}

func (x *xmlWriter) open(name string, selfClose bool, attrs ...attr) {
	x.indent()
	x.b.WriteByte('<')
	x.b.WriteString(name)
	for _, a := range attrs {
		x.b.WriteByte(' ')
		x.b.WriteString(a.name)
		x.b.WriteString(`="`)
		_ = xml.EscapeText(x.b, []byte(a.value)) // strings.Builder never fails
		x.b.WriteByte('"')
	}
	if selfClose {
		x.b.WriteString("/>")
	} else {
		x.b.WriteByte('>')
		x.depth++
	}
	x.newline()
}

func (x *xmlWriter) close(name string) {
	x.depth--
	x.indent()
	x.b.WriteString("</")
	x.b.WriteString(name)
	x.b.WriteByte('>')
	x.newline()
}

func (x *xmlWriter) comment(text string) {
	x.indent()
	x.b.WriteString("<!--")
	x.b.WriteString(text)
	x.b.WriteString("-->")
	x.newline()
}

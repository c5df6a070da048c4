// Package export registers the curve exporters and writes their output.
//
// An [Exporter] turns a built [svg.Document] into bytes. The [Registry]
// plays the part of a File > Export menu: each exporter has a short name
// for --format, a menu label, and a file extension used to pick an exporter
// from an output path.
//
//	reg := export.Default()
//	exp, err := reg.ForPath("drawing.svg")
//	res, err := export.WriteFile(ctx, "drawing.svg", exp, obj, opts)
//
// # Supported Formats
//
//   - svg: the SVG document itself
//   - json: the same paths as structured JSON, for pipelines that want the
//     path data without parsing XML
//
// # Atomic Writes
//
// WriteFile renders the whole document in memory before touching the
// filesystem, then writes a temporary file next to the target and renames
// it into place. A rejected object (for example a 3D curve) or a failed
// write never leaves a partial file behind.
package export

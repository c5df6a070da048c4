// Package svg converts curve objects into SVG documents.
//
// [Build] walks an object's splines and produces a [Document] holding one
// [Path] per spline. Bezier splines become M/C commands, poly splines M/L,
// and NURBS splines are flattened to a polyline; cyclic splines close with Z.
// Every coordinate goes through the object's world matrix, is multiplied by
// the scale factor with Y flipped (SVG's Y axis points down), and is rounded
// to the configured number of decimals.
//
// A Document renders either as indented, one-element-per-line XML or as a
// single minified line:
//
//	doc, err := svg.Build(obj, svg.DefaultOptions())
//	if err != nil {
//		return err // errors.Is(err, svg.ErrUnsupportedInput) for 3D curves
//	}
//	_, err = doc.WriteTo(w)
//
// Fill and stroke come from the object's first material's flat diffuse
// color when fills are enabled, or a black placeholder otherwise. Shader
// node graphs are not evaluated.
package svg

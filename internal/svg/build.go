package svg

import (
	"errors"
	"fmt"
	"math"

	"github.com/gorewood/curve2svg/internal/geom"
	"github.com/gorewood/curve2svg/internal/scene"
)

// Placeholder style used when no material color applies.
const (
	PlaceholderStroke = "#000000"
	NoFill            = "none"
)

// Build converts a 2D curve object into a Document with one path per
// spline. Options are clamped with Normalize first. Objects that are not
// 2D curves are rejected with an error matching ErrUnsupportedInput.
func Build(obj *scene.Object, opts Options) (*Document, error) {
	if obj == nil {
		return nil, errors.New("no object to export")
	}
	if !obj.IsCurve() {
		return nil, &UnsupportedError{Object: obj.Name, Reason: fmt.Sprintf("%s object is not a curve", obj.Type)}
	}
	if !obj.Is2D() {
		return nil, &UnsupportedError{Object: obj.Name, Reason: "curve is 3D; only 2D curves can be exported"}
	}

	opts, _ = opts.Normalize()
	world := obj.WorldMatrix()
	scale := opts.Scale
	if opts.AutoScale {
		scale = autoScale(obj, world, scale)
	}

	pr := projector{world: world, scale: scale, precision: opts.Precision}
	fill, stroke := style(obj, opts.IncludeFills)
	strokeWidth := math.Max(1.0, 2.0/scale)

	doc := &Document{
		Object:    obj.Name,
		Generator: opts.Generator,
		Scale:     scale,
		Precision: opts.Precision,
		Minify:    opts.Minify,
		Paths:     make([]Path, 0, len(obj.Splines)),
	}

	var bounds geom.BBox
	for i := range obj.Splines {
		path := Path{
			ID:          pathID(obj, i),
			Commands:    pr.splineCommands(&obj.Splines[i]),
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: strokeWidth,
		}
		for _, cmd := range path.Commands {
			for _, pt := range cmd.Points {
				bounds.Extend(pt.X, pt.Y)
			}
		}
		doc.Paths = append(doc.Paths, path)
	}

	doc.ViewBox = ViewBox{
		X:      bounds.MinX,
		Y:      bounds.MinY,
		Width:  bounds.Width(),
		Height: bounds.Height(),
	}
	return doc, nil
}

// pathID names a spline's path after its object, numbering from 1 when the
// object has more than one spline.
func pathID(obj *scene.Object, index int) string {
	if len(obj.Splines) == 1 {
		return obj.Name
	}
	return fmt.Sprintf("%s-%d", obj.Name, index+1)
}

func style(obj *scene.Object, includeFills bool) (fill, stroke string) {
	if !includeFills {
		return NoFill, PlaceholderStroke
	}
	color, ok := obj.DiffuseColor()
	if !ok {
		return NoFill, PlaceholderStroke
	}
	hex := ColorHex(color)
	return hex, hex
}

// autoScale refits drawings that would come out tiny or huge at the
// requested scale.
func autoScale(obj *scene.Object, world geom.Mat4, scale float64) float64 {
	var box geom.BBox
	add := func(v geom.Vec3) {
		w := world.Apply(v)
		box.Extend(w.X, w.Y)
	}
	for i := range obj.Splines {
		s := &obj.Splines[i]
		if s.Kind() == scene.SplineBezier {
			for j := range s.BezierPoints {
				bp := &s.BezierPoints[j]
				add(bp.Position())
				add(bp.Left())
				add(bp.Right())
			}
			continue
		}
		for j := range s.Points {
			p, _ := s.PointAt(j)
			add(p)
		}
	}

	w, h := box.Width(), box.Height()
	if w <= 0 || h <= 0 {
		return scale
	}
	extent := math.Max(w, h)
	if current := extent * scale; current < autoScaleLow || current > autoScaleHigh {
		return autoScaleTarget / extent
	}
	return scale
}

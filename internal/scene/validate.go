package scene

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for scene handling.
var (
	ErrInvalidScene    = errors.New("invalid scene")
	ErrObjectNotFound  = errors.New("object not found")
	ErrNoCurves        = errors.New("no curve objects in scene")
	ErrAmbiguousObject = errors.New("more than one curve object; choose one with --object")
)

// Validate checks the structure of the scene. It does not reject 3D curves;
// that is the exporter's decision.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Objects))
	for i := range s.Objects {
		obj := &s.Objects[i]
		if obj.Name == "" {
			return invalid("objects[%d]: name is required", i)
		}
		if seen[obj.Name] {
			return invalid("objects[%d]: duplicate object name %q", i, obj.Name)
		}
		seen[obj.Name] = true

		if err := obj.validate(fmt.Sprintf("objects[%d]", i)); err != nil {
			return err
		}
	}
	if s.Active != "" && !seen[s.Active] {
		return invalid("active object %q is not in the scene", s.Active)
	}
	return nil
}

func (o *Object) validate(at string) error {
	switch normalize(o.Dimensions, Dim2D) {
	case Dim2D, Dim3D:
	default:
		return invalid("%s.dimensions: want 2D or 3D, got %q", at, o.Dimensions)
	}

	if len(o.Matrix) != 0 {
		if len(o.Matrix) != 4 {
			return invalid("%s.matrix: want 4 rows, got %d", at, len(o.Matrix))
		}
		for r, row := range o.Matrix {
			if len(row) != 4 {
				return invalid("%s.matrix[%d]: want 4 columns, got %d", at, r, len(row))
			}
			if !finite(row) {
				return invalid("%s.matrix[%d]: values must be finite, got %v", at, r, row)
			}
		}
	}

	for m, mat := range o.Materials {
		if n := len(mat.DiffuseColor); n != 0 && n != 3 && n != 4 {
			return invalid("%s.materials[%d].diffuse_color: want 3 or 4 components, got %d", at, m, n)
		}
	}

	if !o.IsCurve() {
		return nil
	}
	for i := range o.Splines {
		if err := o.Splines[i].validate(fmt.Sprintf("%s.splines[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Spline) validate(at string) error {
	switch s.Kind() {
	case SplineBezier:
		if len(s.BezierPoints) == 0 {
			return invalid("%s: bezier spline has no bezier_points", at)
		}
		for i := range s.BezierPoints {
			bp := &s.BezierPoints[i]
			if err := checkVec(fmt.Sprintf("%s.bezier_points[%d].co", at, i), bp.Co, false); err != nil {
				return err
			}
			if err := checkVec(fmt.Sprintf("%s.bezier_points[%d].handle_left", at, i), bp.HandleLeft, true); err != nil {
				return err
			}
			if err := checkVec(fmt.Sprintf("%s.bezier_points[%d].handle_right", at, i), bp.HandleRight, true); err != nil {
				return err
			}
		}
	case SplinePoly, SplineNURBS:
		if len(s.Points) == 0 {
			return invalid("%s: %s spline has no points", at, s.Kind())
		}
		for i, p := range s.Points {
			if len(p) < 2 || len(p) > 4 {
				return invalid("%s.points[%d]: want 2 to 4 components, got %d", at, i, len(p))
			}
			if !finite(p) {
				return invalid("%s.points[%d]: components must be finite, got %v", at, i, p)
			}
			if len(p) == 4 && p[3] <= 0 {
				return invalid("%s.points[%d]: weight must be positive, got %g", at, i, p[3])
			}
		}
		if s.Kind() == SplineNURBS && s.Order != 0 && s.Order < 2 {
			return invalid("%s.order: must be at least 2, got %d", at, s.Order)
		}
	default:
		return invalid("%s.type: want BEZIER, POLY or NURBS, got %q", at, s.Type)
	}
	return nil
}

func checkVec(at string, v []float64, optional bool) error {
	if optional && len(v) == 0 {
		return nil
	}
	if len(v) != 2 && len(v) != 3 {
		return invalid("%s: want 2 or 3 components, got %d", at, len(v))
	}
	if !finite(v) {
		return invalid("%s: components must be finite, got %v", at, v)
	}
	return nil
}

// finite reports whether every value is neither NaN nor infinite.
func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScene, fmt.Sprintf(format, args...))
}

// Find returns the object with the given name.
func (s *Scene) Find(name string) (*Object, error) {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrObjectNotFound, name)
}

// Pick resolves the single object to export. An explicit name wins, then
// the scene's active object, then the only selected curve, then the only
// curve in the scene.
func (s *Scene) Pick(name string) (*Object, error) {
	if name != "" {
		return s.Find(name)
	}
	if s.Active != "" {
		return s.Find(s.Active)
	}

	var curves, selected []*Object
	for i := range s.Objects {
		obj := &s.Objects[i]
		if !obj.IsCurve() {
			continue
		}
		curves = append(curves, obj)
		if obj.Selected {
			selected = append(selected, obj)
		}
	}

	switch {
	case len(selected) == 1:
		return selected[0], nil
	case len(selected) > 1:
		return nil, ErrAmbiguousObject
	case len(curves) == 1:
		return curves[0], nil
	case len(curves) == 0:
		return nil, ErrNoCurves
	default:
		return nil, ErrAmbiguousObject
	}
}

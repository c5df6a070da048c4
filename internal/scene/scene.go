// Package scene models the curve objects read from a scene description file.
//
// A scene mirrors the object graph a modeling tool exposes to exporters:
// objects carry a world matrix, splines, and materials; splines carry either
// Bezier control points with handles or plain (optionally weighted) points.
// The same struct tags serve YAML, JSON, and TOML input.
package scene

import (
	"strings"

	"github.com/gorewood/curve2svg/internal/geom"
)

// Object types.
const (
	TypeCurve = "CURVE"
	TypeMesh  = "MESH"
)

// Curve dimensions.
const (
	Dim2D = "2D"
	Dim3D = "3D"
)

// Spline types.
const (
	SplineBezier = "BEZIER"
	SplinePoly   = "POLY"
	SplineNURBS  = "NURBS"
)

// DefaultOrder is the NURBS order used when a spline does not set one.
const DefaultOrder = 4

// Scene is the root of a scene description file.
type Scene struct {
	// Active names the object the exporter uses when none is requested.
	Active  string   `yaml:"active,omitempty"  json:"active,omitempty"  toml:"active,omitempty"`
	Objects []Object `yaml:"objects"           json:"objects"           toml:"objects"`
}

// Object is one scene object.
type Object struct {
	Name       string      `yaml:"name"                 json:"name"                 toml:"name"`
	Type       string      `yaml:"type,omitempty"       json:"type,omitempty"       toml:"type,omitempty"`
	Dimensions string      `yaml:"dimensions,omitempty" json:"dimensions,omitempty" toml:"dimensions,omitempty"`
	Selected   bool        `yaml:"selected,omitempty"   json:"selected,omitempty"   toml:"selected,omitempty"`
	Matrix     [][]float64 `yaml:"matrix,omitempty"     json:"matrix,omitempty"     toml:"matrix,omitempty"`
	Splines    []Spline    `yaml:"splines,omitempty"    json:"splines,omitempty"    toml:"splines,omitempty"`
	Materials  []Material  `yaml:"materials,omitempty"  json:"materials,omitempty"  toml:"materials,omitempty"`
}

// Material holds the flat viewport color of a material slot, in linear RGBA.
type Material struct {
	Name         string    `yaml:"name,omitempty"          json:"name,omitempty"          toml:"name,omitempty"`
	DiffuseColor []float64 `yaml:"diffuse_color,omitempty" json:"diffuse_color,omitempty" toml:"diffuse_color,omitempty"`
}

// Spline is one continuous segment of a curve object.
type Spline struct {
	Type         string        `yaml:"type,omitempty"          json:"type,omitempty"          toml:"type,omitempty"`
	Cyclic       bool          `yaml:"cyclic,omitempty"        json:"cyclic,omitempty"        toml:"cyclic,omitempty"`
	BezierPoints []BezierPoint `yaml:"bezier_points,omitempty" json:"bezier_points,omitempty" toml:"bezier_points,omitempty"`
	// Points are POLY/NURBS control points: x, y, optional z, optional weight.
	Points   [][]float64 `yaml:"points,omitempty"   json:"points,omitempty"   toml:"points,omitempty"`
	Order    int         `yaml:"order,omitempty"    json:"order,omitempty"    toml:"order,omitempty"`
	Endpoint bool        `yaml:"endpoint,omitempty" json:"endpoint,omitempty" toml:"endpoint,omitempty"`
}

// BezierPoint is a Bezier control point with its two handles.
// Missing handles sit on the control point.
type BezierPoint struct {
	Co          []float64 `yaml:"co"                     json:"co"                     toml:"co"`
	HandleLeft  []float64 `yaml:"handle_left,omitempty"  json:"handle_left,omitempty"  toml:"handle_left,omitempty"`
	HandleRight []float64 `yaml:"handle_right,omitempty" json:"handle_right,omitempty" toml:"handle_right,omitempty"`
}

// IsCurve reports whether the object is a curve object.
func (o *Object) IsCurve() bool {
	return normalize(o.Type, TypeCurve) == TypeCurve
}

// Is2D reports whether the curve data is flagged as 2D.
func (o *Object) Is2D() bool {
	return normalize(o.Dimensions, Dim2D) == Dim2D
}

// Exportable reports whether the object is a 2D curve.
func (o *Object) Exportable() bool {
	return o.IsCurve() && o.Is2D()
}

// WorldMatrix returns the object's world transform. Objects without a
// matrix sit at the origin.
func (o *Object) WorldMatrix() geom.Mat4 {
	if len(o.Matrix) != 4 {
		return geom.Identity()
	}
	var m geom.Mat4
	for i, row := range o.Matrix {
		if len(row) != 4 {
			return geom.Identity()
		}
		copy(m[i][:], row)
	}
	return m
}

// PointCount returns the number of control points across all splines.
func (o *Object) PointCount() int {
	total := 0
	for i := range o.Splines {
		total += o.Splines[i].Len()
	}
	return total
}

// DiffuseColor returns the first material's color, if any.
func (o *Object) DiffuseColor() ([]float64, bool) {
	if len(o.Materials) == 0 || len(o.Materials[0].DiffuseColor) < 3 {
		return nil, false
	}
	return o.Materials[0].DiffuseColor, true
}

// Kind returns the normalized spline type.
func (s *Spline) Kind() string {
	return normalize(s.Type, SplineBezier)
}

// Len returns the number of control points of the spline's kind.
func (s *Spline) Len() int {
	if s.Kind() == SplineBezier {
		return len(s.BezierPoints)
	}
	return len(s.Points)
}

// EffectiveOrder returns the NURBS order, defaulting to DefaultOrder.
func (s *Spline) EffectiveOrder() int {
	if s.Order == 0 {
		return DefaultOrder
	}
	return s.Order
}

// Position returns the control point location.
func (p *BezierPoint) Position() geom.Vec3 {
	return vec(p.Co)
}

// Left returns the incoming handle.
func (p *BezierPoint) Left() geom.Vec3 {
	if len(p.HandleLeft) == 0 {
		return vec(p.Co)
	}
	return vec(p.HandleLeft)
}

// Right returns the outgoing handle.
func (p *BezierPoint) Right() geom.Vec3 {
	if len(p.HandleRight) == 0 {
		return vec(p.Co)
	}
	return vec(p.HandleRight)
}

// PointAt returns the i-th POLY/NURBS point and its weight.
func (s *Spline) PointAt(i int) (geom.Vec3, float64) {
	raw := s.Points[i]
	weight := 1.0
	if len(raw) == 4 {
		weight = raw[3]
	}
	return vec(raw), weight
}

// vec converts a 2 or 3 component slice. Extra components are ignored.
func vec(v []float64) geom.Vec3 {
	var out geom.Vec3
	if len(v) > 0 {
		out.X = v[0]
	}
	if len(v) > 1 {
		out.Y = v[1]
	}
	if len(v) > 2 {
		out.Z = v[2]
	}
	return out
}

func normalize(value, fallback string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

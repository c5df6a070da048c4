package geom

import "math"

// Vec3 is a point or direction in object or world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp interpolates between v (t=0) and o (t=1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Mat4 is a row-major 4x4 transform. Points are column vectors, so the
// translation lives in the last column.
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Apply transforms point p. A projective row is honoured by dividing
// through by w when w is neither zero nor one.
func (m Mat4) Apply(p Vec3) Vec3 {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// BBox accumulates axis-aligned 2D bounds. The zero value is empty.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
	set        bool
}

// Extend grows the box to include (x, y).
func (b *BBox) Extend(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	b.MinX = math.Min(b.MinX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxX = math.Max(b.MaxX, x)
	b.MaxY = math.Max(b.MaxY, y)
}

// Empty reports whether no point has been added.
func (b BBox) Empty() bool {
	return !b.set
}

// Width returns MaxX-MinX, or 0 for an empty box.
func (b BBox) Width() float64 {
	if !b.set {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns MaxY-MinY, or 0 for an empty box.
func (b BBox) Height() float64 {
	if !b.set {
		return 0
	}
	return b.MaxY - b.MinY
}

// Package geom provides the small amount of 2D/3D math the exporter needs.
//
// Points are carried as [Vec3] so that object world matrices can be applied
// the same way the modeling tool does; the exporter then drops Z. [Mat4] is a
// row-major affine matrix, [BBox] accumulates 2D bounds, and [SampleNURBS]
// flattens a rational B-spline into a polyline.
package geom

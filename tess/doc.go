// Package tess converts vector geometry into triangle meshes for GPU
// rendering.
//
// The central type is Mesh, an indexed triangle list with interleaved
// position and UV attributes. Fan produces the stencil-pass mesh for an
// arbitrary path; Quad, Circle and RoundedRect produce convex meshes
// directly; Stroke extrudes a flattened path centerline into a
// two-sided strip.
//
// Fan makes no attempt at exact triangulation. Every boundary edge
// becomes one triangle against a shared fan origin, and overlapping
// triangles from concave or self-intersecting geometry cancel in the
// GPU stencil buffer during the stencil pass. That cancellation is what
// makes the origin placement a free parameter: any fixed point works as
// long as the whole mesh shares it.
package tess

// Package pathfill implements GPU stencil-then-cover fill preparation
// for 2D vector paths.
//
// # Overview
//
// Filling an arbitrary path (self-intersecting, multi-contour, curved)
// on the GPU without exact polygon clipping is done in two passes over
// the same stencil attachment:
//
//  1. Stencil pass: a triangle fan anchored at the path bounds center
//     is drawn with color writes disabled. Front and back faces update
//     the stencil buffer so that every pixel ends up holding its
//     winding count (non-zero rule) or winding parity (even-odd rule).
//  2. Cover pass: a padded quad over the path bounds is drawn with a
//     "stencil not equal zero" test. Passing fragments write color and
//     reset the stencil back to zero, leaving the buffer clean for the
//     next path.
//
// The root package provides the geometry and path types consumed by the
// pipeline. The preparation itself lives in subpackages:
//
//   - tess: triangle meshes and the fan/cover tessellators
//   - stencil: winding-rule stencil state tables and the
//     stencil.Prepare orchestrator
//   - backend/wgpu: translation of the prepared state onto the
//     gogpu wgpu HAL descriptor types
//
// # Quick Start
//
//	p := pathfill.NewPath()
//	p.Circle(256, 256, 100)
//
//	result := stencil.Prepare(p, stencil.DefaultConfig())
//	// Submit result.StencilPass, then result.CoverPass, to the executor.
//
// Preparation is pure and deterministic: it performs no I/O, holds no
// shared state, and may be called concurrently for independent paths.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pathfill

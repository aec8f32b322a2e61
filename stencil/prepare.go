package stencil

import (
	"github.com/gogpu/pathfill"
	"github.com/gogpu/pathfill/tess"
)

// coverPadding is the amount, in units, added around the path bounds
// when building the cover quad. One unit guarantees the cover pass
// fragment-tests every pixel the stencil pass could have touched,
// including edge pixels affected by rasterization rounding.
const coverPadding = 1.0

// Config selects the winding rule for stencil preparation.
type Config struct {
	// FillRule is the winding evaluation to encode in the stencil states.
	FillRule FillRule
	// TwoSided selects independent front/back stencil operations for
	// the non-zero rule. Disable for backends that share one operation
	// set across faces. Ignored for FillRuleEvenOdd.
	TwoSided bool
}

// DefaultConfig returns the default configuration: non-zero winding
// with two-sided stencil operations.
func DefaultConfig() Config {
	return Config{FillRule: FillRuleNonZero, TwoSided: true}
}

// StencilPass is the first draw pass: the fan mesh rendered into the
// stencil buffer with color writes disabled.
type StencilPass struct {
	// Mesh is the triangle fan covering the path.
	Mesh tess.Mesh
	// State is the stencil configuration for this pass.
	State State
	// ColorWriteDisabled indicates color output must be masked off.
	// Always true: the pass exists only to update the stencil buffer.
	ColorWriteDisabled bool
}

// CoverPass is the second draw pass: a padded bounding quad that writes
// color where the stencil test passes and resets the stencil to zero.
type CoverPass struct {
	// Mesh is the single padded quad over the path bounds.
	Mesh tess.Mesh
	// State is the stencil configuration for this pass.
	State State
	// Bounds is the unpadded path bounding box.
	Bounds pathfill.Rect
}

// Result is the prepared pair of draw passes for one path fill.
// Each call to Prepare builds a fresh Result owned by the caller; it
// shares no state with the path or with other results.
type Result struct {
	// StencilPass must be submitted first.
	StencilPass StencilPass
	// CoverPass must be submitted second, on the same stencil attachment.
	CoverPass CoverPass
}

// Prepare builds the stencil-then-cover draw data for a path.
//
// Preparation always succeeds: there are no fallible branches. An empty
// path produces a stencil mesh with zero triangles; callers should skip
// submission in that case. Non-finite path coordinates propagate into
// the meshes unchecked.
//
// The path's own fill type tag is not consulted; derive the config with
// FillRuleFrom when the tag should decide the rule.
func Prepare(path *pathfill.Path, config Config) Result {
	stencilMesh := tess.Fan(path)

	bounds := path.Bounds()
	coverMesh := tess.Quad(bounds.Outset(coverPadding))

	var stencilState, coverStencilState State
	switch config.FillRule {
	case FillRuleEvenOdd:
		stencilState, coverStencilState = evenOddStates()
	default:
		stencilState, coverStencilState = nonZeroStates(config.TwoSided)
	}

	pathfill.Logger().Debug("stencil cover prepared",
		"fill_rule", config.FillRule.String(),
		"triangles", stencilMesh.TriangleCount(),
		"vertices", len(stencilMesh.Vertices))

	return Result{
		StencilPass: StencilPass{
			Mesh:               stencilMesh,
			State:              stencilState,
			ColorWriteDisabled: true,
		},
		CoverPass: CoverPass{
			Mesh:   coverMesh,
			State:  coverStencilState,
			Bounds: bounds,
		},
	}
}

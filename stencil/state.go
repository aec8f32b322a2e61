package stencil

import "github.com/gogpu/pathfill"

// Op is a stencil buffer update operation.
type Op int

const (
	// OpKeep keeps the current stencil value.
	OpKeep Op = iota
	// OpZero sets the stencil value to zero.
	OpZero
	// OpReplace replaces the stencil value with the reference value.
	OpReplace
	// OpIncrSat increments, clamping at the maximum value.
	OpIncrSat
	// OpDecrSat decrements, clamping at zero.
	OpDecrSat
	// OpIncrWrap increments with wraparound.
	OpIncrWrap
	// OpDecrWrap decrements with wraparound.
	OpDecrWrap
	// OpInvert inverts the stencil bits.
	OpInvert
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpKeep:
		return "Keep"
	case OpZero:
		return "Zero"
	case OpReplace:
		return "Replace"
	case OpIncrSat:
		return "IncrSat"
	case OpDecrSat:
		return "DecrSat"
	case OpIncrWrap:
		return "IncrWrap"
	case OpDecrWrap:
		return "DecrWrap"
	case OpInvert:
		return "Invert"
	default:
		return "Unknown"
	}
}

// Func is a stencil comparison function.
type Func int

const (
	// FuncNever never passes.
	FuncNever Func = iota
	// FuncAlways always passes.
	FuncAlways
	// FuncEqual passes if the masked stencil value equals the reference.
	FuncEqual
	// FuncNotEqual passes if the masked stencil value differs from the reference.
	FuncNotEqual
	// FuncLess passes if the reference is less than the stencil value.
	FuncLess
	// FuncLessEqual passes if the reference is less than or equal.
	FuncLessEqual
	// FuncGreater passes if the reference is greater.
	FuncGreater
	// FuncGreaterEqual passes if the reference is greater than or equal.
	FuncGreaterEqual
)

// String returns the comparison function name.
func (f Func) String() string {
	switch f {
	case FuncNever:
		return "Never"
	case FuncAlways:
		return "Always"
	case FuncEqual:
		return "Equal"
	case FuncNotEqual:
		return "NotEqual"
	case FuncLess:
		return "Less"
	case FuncLessEqual:
		return "LessEqual"
	case FuncGreater:
		return "Greater"
	case FuncGreaterEqual:
		return "GreaterEqual"
	default:
		return "Unknown"
	}
}

// Ops bundles the update operations for the three stencil test outcomes.
type Ops struct {
	// StencilFail runs when the stencil test fails.
	StencilFail Op
	// DepthFail runs when the stencil test passes but the depth test fails.
	DepthFail Op
	// Pass runs when both tests pass.
	Pass Op
}

// State is a complete two-sided stencil configuration for one draw
// pass. One State configures the stencil pass, another the cover pass.
type State struct {
	// Enabled turns the stencil test on.
	Enabled bool
	// FrontFunc is the comparison function for front faces.
	FrontFunc Func
	// FrontOps are the update operations for front faces.
	FrontOps Ops
	// BackFunc is the comparison function for back faces.
	BackFunc Func
	// BackOps are the update operations for back faces.
	BackOps Ops
	// Reference is the comparison reference value.
	Reference uint32
	// ReadMask masks both the stencil value and the reference before comparison.
	ReadMask uint32
	// WriteMask selects which stencil bits updates may change.
	WriteMask uint32
}

// DefaultState returns a disabled stencil state with Always functions,
// Keep operations and open masks.
func DefaultState() State {
	return State{
		FrontFunc: FuncAlways,
		BackFunc:  FuncAlways,
		ReadMask:  0xFF,
		WriteMask: 0xFF,
	}
}

// FillRule selects the winding evaluation used for filling.
type FillRule int

const (
	// FillRuleNonZero fills where the signed crossing count is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where the crossing count is odd.
	FillRuleEvenOdd
)

// String returns the fill rule name.
func (fr FillRule) String() string {
	switch fr {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// FillRuleFrom derives the stencil fill rule from a path fill type.
// The mapping is total: winding variants select FillRuleNonZero,
// even-odd variants FillRuleEvenOdd. Inverse variants share the
// winding evaluation of their plain counterparts; the inversion itself
// is the executor's concern.
func FillRuleFrom(ft pathfill.FillType) FillRule {
	switch ft {
	case pathfill.FillTypeEvenOdd, pathfill.FillTypeInverseEvenOdd:
		return FillRuleEvenOdd
	default:
		return FillRuleNonZero
	}
}

// coverState returns the cover-pass state shared by both fill rules:
// stencil test NotEqual against reference 0 on both faces, and a Zero
// pass op that resets the touched bits so the next path fill starts
// from a clean buffer. readMask restricts the comparison to the bits
// the stencil pass actually toggled.
func coverState(readMask uint32) State {
	return State{
		Enabled:   true,
		FrontFunc: FuncNotEqual,
		FrontOps:  Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: OpZero},
		BackFunc:  FuncNotEqual,
		BackOps:   Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: OpZero},
		Reference: 0,
		ReadMask:  readMask,
		WriteMask: 0xFF,
	}
}

// nonZeroStates returns the (stencil, cover) states for the non-zero
// winding rule. Two-sided mode counts front faces up and back faces
// down so the stencil holds the signed winding number. One-sided mode
// increments on both faces, for backends without independent front/back
// stencil operations.
func nonZeroStates(twoSided bool) (State, State) {
	backPass := OpIncrWrap
	if twoSided {
		backPass = OpDecrWrap
	}
	state := State{
		Enabled:   true,
		FrontFunc: FuncAlways,
		FrontOps:  Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: OpIncrWrap},
		BackFunc:  FuncAlways,
		BackOps:   Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: backPass},
		Reference: 0,
		ReadMask:  0xFF,
		WriteMask: 0xFF,
	}
	return state, coverState(0xFF)
}

// evenOddStates returns the (stencil, cover) states for the even-odd
// rule. Both faces invert bit 0, so the bit holds winding parity; the
// write mask confines updates to that bit and the cover pass compares
// only against it.
func evenOddStates() (State, State) {
	state := State{
		Enabled:   true,
		FrontFunc: FuncAlways,
		FrontOps:  Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: OpInvert},
		BackFunc:  FuncAlways,
		BackOps:   Ops{StencilFail: OpKeep, DepthFail: OpKeep, Pass: OpInvert},
		Reference: 0,
		ReadMask:  0xFF,
		WriteMask: 0x01,
	}
	return state, coverState(0x01)
}

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pathfill/stencil"
)

// StencilOperation converts a stencil op to its HAL equivalent.
// Unknown values map to Keep, the no-op update.
func StencilOperation(op stencil.Op) hal.StencilOperation {
	switch op {
	case stencil.OpZero:
		return hal.StencilOperationZero
	case stencil.OpReplace:
		return hal.StencilOperationReplace
	case stencil.OpIncrSat:
		return hal.StencilOperationIncrementClamp
	case stencil.OpDecrSat:
		return hal.StencilOperationDecrementClamp
	case stencil.OpIncrWrap:
		return hal.StencilOperationIncrementWrap
	case stencil.OpDecrWrap:
		return hal.StencilOperationDecrementWrap
	case stencil.OpInvert:
		return hal.StencilOperationInvert
	default:
		return hal.StencilOperationKeep
	}
}

// CompareFunction converts a stencil comparison function to its
// gputypes equivalent. Unknown values map to Always, the pass-through
// comparison.
func CompareFunction(f stencil.Func) gputypes.CompareFunction {
	switch f {
	case stencil.FuncNever:
		return gputypes.CompareFunctionNever
	case stencil.FuncEqual:
		return gputypes.CompareFunctionEqual
	case stencil.FuncNotEqual:
		return gputypes.CompareFunctionNotEqual
	case stencil.FuncLess:
		return gputypes.CompareFunctionLess
	case stencil.FuncLessEqual:
		return gputypes.CompareFunctionLessEqual
	case stencil.FuncGreater:
		return gputypes.CompareFunctionGreater
	case stencil.FuncGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// FaceState builds the per-face stencil descriptor from a comparison
// function and its update operations.
func FaceState(f stencil.Func, ops stencil.Ops) hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     CompareFunction(f),
		FailOp:      StencilOperation(ops.StencilFail),
		DepthFailOp: StencilOperation(ops.DepthFail),
		PassOp:      StencilOperation(ops.Pass),
	}
}

// DepthStencilState builds the full depth/stencil descriptor for a
// prepared stencil state. The depth test is configured as a
// pass-through (Always, no writes): the stencil-then-cover passes use
// only the stencil component of the attachment, but the format carries
// both. State.Reference is not representable here; the executor sets it
// on the render pass encoder.
func DepthStencilState(s stencil.State, format gputypes.TextureFormat) *hal.DepthStencilState {
	return &hal.DepthStencilState{
		Format:            format,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      FaceState(s.FrontFunc, s.FrontOps),
		StencilBack:       FaceState(s.BackFunc, s.BackOps),
		StencilReadMask:   s.ReadMask,
		StencilWriteMask:  s.WriteMask,
	}
}

// VertexLayout describes the mesh vertex buffer to the pipeline:
// float32x2 position at location(0) and float32x2 uv at location(1),
// 16 bytes per vertex.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         8,
					ShaderLocation: 1,
				},
			},
		},
	}
}

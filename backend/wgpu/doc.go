// Package wgpu translates prepared stencil-then-cover state onto the
// gogpu wgpu HAL descriptor types.
//
// The package is a pure mapping layer: it converts the backend-agnostic
// stencil enums into hal/gputypes values, describes the mesh vertex
// layout, and serializes mesh buffers for upload. It owns no device,
// pipeline, or command-buffer state; an executor combines these
// descriptors with its own render pass and submits the two passes in
// order (stencil first, cover second, same stencil attachment).
//
// One WebGPU particularity: the stencil reference value is not part of
// the depth/stencil descriptor. The executor applies State.Reference
// with SetStencilReference on the render pass encoder.
package wgpu

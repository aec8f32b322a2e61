// Package stencil prepares stencil-then-cover draw passes for filling
// vector paths on the GPU.
//
// Prepare turns a path plus a fill-rule configuration into a Result
// holding two passes. The stencil pass draws the fan mesh with color
// writes disabled so the stencil buffer accumulates winding counts
// (non-zero rule, increment/decrement with wrap) or winding parity
// (even-odd rule, invert). The cover pass draws a padded bounding quad
// with a NotEqual-zero stencil test; passing fragments write color and
// zero the stencil, so the buffer is ready for the next path without an
// explicit clear between fills.
//
// The stencil op and comparison enums here are backend-agnostic. A GPU
// executor maps them onto its native API; see the backend/wgpu package
// for the gogpu wgpu HAL translation.
//
// The contract with the executor: submit the stencil pass before the
// cover pass, on the same stencil attachment, with no intervening draw
// touching that stencil region. After the cover pass the stencil values
// of every touched pixel are back at zero.
package stencil

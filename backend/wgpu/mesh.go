package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/pathfill/tess"
)

// vertexStride is the byte stride per vertex:
// position (2 x float32) + uv (2 x float32) = 16 bytes.
const vertexStride = 16

// indexStride is the byte size of one index (uint32).
const indexStride = 4

// VertexBytes serializes the mesh vertex buffer in little-endian
// format, matching VertexLayout: x, y, u, v as consecutive float32.
func VertexBytes(m *tess.Mesh) []byte {
	buf := make([]byte, len(m.Vertices)*vertexStride)
	le := binary.LittleEndian
	for i, v := range m.Vertices {
		off := i * vertexStride
		le.PutUint32(buf[off:off+4], math.Float32bits(v.Position[0]))
		le.PutUint32(buf[off+4:off+8], math.Float32bits(v.Position[1]))
		le.PutUint32(buf[off+8:off+12], math.Float32bits(v.UV[0]))
		le.PutUint32(buf[off+12:off+16], math.Float32bits(v.UV[1]))
	}
	return buf
}

// IndexBytes serializes the mesh index buffer as little-endian uint32.
func IndexBytes(m *tess.Mesh) []byte {
	buf := make([]byte, len(m.Indices)*indexStride)
	le := binary.LittleEndian
	for i, idx := range m.Indices {
		le.PutUint32(buf[i*indexStride:(i+1)*indexStride], uint32(idx))
	}
	return buf
}

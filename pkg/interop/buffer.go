package interop

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/taigrr/vecmath/pkg/math3d"
)

// Mat4fSize is the size in bytes of a math3d.Mat4f and of its upload buffer.
const Mat4fSize = int(unsafe.Sizeof(math3d.Mat4f{}))

// ErrShortBuffer is returned when a buffer holds fewer bytes than a matrix.
var ErrShortBuffer = errors.New("interop: buffer too short for matrix")

// AppendFloat32 appends the sixteen components of m to buf as little-endian
// float32 values, in the order a GPU uniform buffer expects.
func AppendFloat32(buf []byte, m math3d.Mat4f) []byte {
	for _, v := range m.Array() {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

// Float32Bytes returns the upload buffer for m.
func Float32Bytes(m math3d.Mat4f) []byte {
	return AppendFloat32(make([]byte, 0, Mat4fSize), m)
}

// Mat4fFromBytes decodes a matrix written by AppendFloat32.
func Mat4fFromBytes(b []byte) (math3d.Mat4f, error) {
	if len(b) < Mat4fSize {
		return math3d.Mat4f{}, fmt.Errorf("%w: got %d bytes, want %d", ErrShortBuffer, len(b), Mat4fSize)
	}
	var a [16]float32
	for i := range a {
		a[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return math3d.Mat4FromArray(a), nil
}

// Float32Slice views a slice of matrices as their packed components without
// copying. The result aliases ms.
func Float32Slice(ms []math3d.Mat4f) []float32 {
	if len(ms) == 0 {
		return nil
	}
	return unsafe.Slice(&ms[0].M11, len(ms)*16)
}

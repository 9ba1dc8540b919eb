package math3d

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// String renders m as "{ {M11:a M12:b M13:c M14:d} {M21:...} {M31:...} {M41:...} }".
func (m Mat4[T]) String() string {
	return m.format(fmt.Sprintf, "%v")
}

// FormatLocale renders m like String, formatting each component with verb
// (for example "%v" or "%.3f") under the number conventions of tag.
//
//	m.FormatLocale(language.German, "%.2f") // { {M11:1,00 M12:0,00 ...
func (m Mat4[T]) FormatLocale(tag language.Tag, verb string) string {
	p := message.NewPrinter(tag)
	return m.format(func(f string, a ...any) string { return p.Sprintf(f, a...) }, verb)
}

func (m Mat4[T]) format(sprintf func(string, ...any) string, verb string) string {
	a := m.Array()
	var sb strings.Builder
	sb.WriteString("{ ")
	for r := 0; r < 4; r++ {
		sb.WriteByte('{')
		for c := 0; c < 4; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "M%d%d:", r+1, c+1)
			sb.WriteString(sprintf(verb, a[r*4+c]))
		}
		sb.WriteString("} ")
	}
	sb.WriteByte('}')
	return sb.String()
}

// Hash returns a 64-bit FNV-1a hash of the component bit patterns. Equal
// matrices hash equally: -0 is hashed as 0.
func (m Mat4[T]) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range m.Array() {
		if v == 0 {
			v = 0
		}
		if single[T]() {
			binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(float32(v)))
			_, _ = h.Write(buf[:4])
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

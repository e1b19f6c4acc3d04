// Package coe encodes pixels into memory words and assembles them into a
// block-RAM memory initialization (.coe) document.
package coe

import (
	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/ir"
)

// Word is one memory word. Widths never exceed 32 bits (24-bit color plus
// 8-bit alpha).
type Word uint32

// Compose places the alpha code in the low alphaWidth bits below the color code.
func Compose(colorCode, alphaCode uint32, alphaWidth uint) Word {
	return Word(colorCode<<alphaWidth | alphaCode)
}

// Encoder turns pixels into words for a fixed mode and alpha policy.
type Encoder struct {
	Mode      color.Mode
	Alpha     color.AlphaPolicy
	Threshold uint8
}

// NewEncoder returns an Encoder. threshold only matters for color.AlphaThreshold.
func NewEncoder(mode color.Mode, alpha color.AlphaPolicy, threshold uint8) Encoder {
	return Encoder{Mode: mode, Alpha: alpha, Threshold: threshold}
}

// Width returns the word width in bits. It is the same for every pixel.
func (e Encoder) Width() uint {
	return e.Mode.Width() + e.Alpha.Width()
}

// Encode returns the word for p.
func (e Encoder) Encode(p ir.Pixel) Word {
	return Compose(e.Mode.Reduce(p), e.Alpha.Encode(p.A, e.Threshold), e.Alpha.Width())
}

// EncodeRange writes the words for pixels [start, end) of g in scan order
// into dst, which must hold end-start words.
func (e Encoder) EncodeRange(dst []Word, g *ir.Grid, start, end int) {
	for i := start; i < end; i++ {
		dst[i-start] = e.Encode(g.Index(i))
	}
}

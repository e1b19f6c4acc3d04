package coe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/ir"
)

func TestCompose(t *testing.T) {
	assert.Equal(t, Word(3), Compose(1, 1, 1))
	assert.Equal(t, Word(0), Compose(0, 0, 1))
	assert.Equal(t, Word(0xFF0000), Compose(0xFF0000, 0, 0))
	assert.Equal(t, Word(0xFF000080), Compose(0xFF0000, 0x80, 8))
}

func TestEncoderWidth(t *testing.T) {
	modes := []color.Mode{color.ModeFullColor, color.ModeReduced8, color.ModeGrayscale8, color.ModeMonochrome1}
	alphas := []color.AlphaPolicy{color.AlphaNone, color.AlphaThreshold, color.AlphaFull}
	for _, m := range modes {
		for _, a := range alphas {
			enc := NewEncoder(m, a, color.DefaultThreshold)
			assert.Equal(t, m.Width()+a.Width(), enc.Width(), "%s/%s", m, a)

			limit := uint64(1)<<enc.Width() - 1
			for _, v := range []uint8{0, 1, 127, 128, 200, 255} {
				w := enc.Encode(ir.Pixel{R: v, G: v, B: v, A: v})
				assert.LessOrEqual(t, uint64(w), limit, "%s/%s value %d", m, a, v)
			}
		}
	}
}

func TestEncoderEncode(t *testing.T) {
	enc := NewEncoder(color.ModeMonochrome1, color.AlphaThreshold, 127)
	assert.Equal(t, Word(3), enc.Encode(ir.Pixel{R: 200, G: 200, B: 200, A: 200}))
	assert.Equal(t, Word(0), enc.Encode(ir.Pixel{R: 10, G: 10, B: 10, A: 10}))
	assert.Equal(t, Word(2), enc.Encode(ir.Pixel{R: 200, G: 200, B: 200, A: 10}))

	full := NewEncoder(color.ModeFullColor, color.AlphaFull, 0)
	assert.Equal(t, Word(0x12345678), full.Encode(ir.Pixel{R: 0x12, G: 0x34, B: 0x56, A: 0x78}))

	none := NewEncoder(color.ModeReduced8, color.AlphaNone, 0)
	assert.Equal(t, Word(0xFF), none.Encode(ir.Pixel{R: 255, G: 255, B: 255, A: 0}))
}

func TestEncodeRange(t *testing.T) {
	g, err := ir.NewGrid(3, 1, []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
	})
	assert.NoError(t, err)

	enc := NewEncoder(color.ModeFullColor, color.AlphaNone, 0)
	dst := make([]Word, 2)
	enc.EncodeRange(dst, g, 1, 3)
	assert.Equal(t, []Word{0x00FF00, 0x0000FF}, dst)
}

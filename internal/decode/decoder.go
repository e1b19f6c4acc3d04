// Package decode turns encoded image files into the pixel grid consumed by
// the word encoder.
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Kaucasus/coeconverter/internal/ir"
)

// ErrEmptyData is returned when there are no bytes to decode.
var ErrEmptyData = errors.New("decode: empty data")

// Decoded holds the result of decoding an image file.
type Decoded struct {
	Grid   *ir.Grid
	Format string // registered format name: png, jpeg, gif, bmp, tiff, webp
}

// Decode decodes an image from memory, auto-detecting the format.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return &Decoded{Grid: FromImage(img), Format: format}, nil
}

// FromImage copies img into a straight-alpha RGBA8 grid in row-major order.
func FromImage(img image.Image) *ir.Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	rowBytes := w * 4

	// Fast path: already straight-alpha 8-bit
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*rowBytes:(y+1)*rowBytes], n.Pix[off:off+rowBytes])
		}
		return &ir.Grid{Width: w, Height: h, Pix: pix}
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return &ir.Grid{Width: w, Height: h, Pix: pix}
}

// ToImage wraps a grid as an *image.NRGBA sharing its pixel buffer.
func ToImage(g *ir.Grid) *image.NRGBA {
	return &image.NRGBA{
		Pix:    g.Pix,
		Stride: g.Width * 4,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

package ir

import "fmt"

// Pixel is one straight-alpha RGBA8 sample.
type Pixel struct {
	R, G, B, A uint8
}

// Grid is the intermediate representation passed between the image decoder
// and the word encoder. Pixels are stored as interleaved R,G,B,A bytes
// (4 bytes per pixel, row-major order, alpha not premultiplied).
type Grid struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 4
}

// NewGrid wraps raw RGBA8 bytes, checking that the length matches the dimensions.
func NewGrid(width, height int, pix []byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if expected := width * height * 4; len(pix) != expected {
		return nil, fmt.Errorf("expected %d bytes for %dx%d RGBA, got %d", expected, width, height, len(pix))
	}
	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// Len returns the number of pixels.
func (g *Grid) Len() int { return g.Width * g.Height }

// At returns the pixel at column x of row y.
func (g *Grid) At(x, y int) Pixel {
	return g.Index(y*g.Width + x)
}

// Index returns the i-th pixel in scan order.
func (g *Grid) Index(i int) Pixel {
	p := g.Pix[i*4 : i*4+4 : i*4+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

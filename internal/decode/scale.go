package decode

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	"github.com/Kaucasus/coeconverter/internal/ir"
)

// Interpolation selects the resampling kernel used by Scale.
type Interpolation int

const (
	NearestNeighbor Interpolation = iota
	BiLinear
	CatmullRom
)

// ParseInterpolation converts a kernel name to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return NearestNeighbor, nil
	case "bilinear":
		return BiLinear, nil
	case "catmullrom", "bicubic":
		return CatmullRom, nil
	default:
		return 0, fmt.Errorf("unknown interpolation: %q", s)
	}
}

func (i Interpolation) interpolator() draw.Interpolator {
	switch i {
	case BiLinear:
		return draw.ApproxBiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Scale resamples g to width x height. A non-positive dimension keeps the
// aspect ratio of the source.
func Scale(g *ir.Grid, width, height int, method Interpolation) (*ir.Grid, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("cannot scale empty %dx%d image", g.Width, g.Height)
	}
	switch {
	case width <= 0 && height <= 0:
		return nil, fmt.Errorf("scale needs a target width or height")
	case width <= 0:
		width = max(1, g.Width*height/g.Height)
	case height <= 0:
		height = max(1, g.Height*width/g.Width)
	}
	if width == g.Width && height == g.Height {
		return g, nil
	}

	src := ToImage(g)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	method.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &ir.Grid{Width: width, Height: height, Pix: dst.Pix}, nil
}

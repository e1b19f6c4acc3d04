// Package color reduces RGBA pixels to the fixed-width color and alpha codes
// stored in a memory word.
package color

import (
	"fmt"
	"strings"

	"github.com/Kaucasus/coeconverter/internal/ir"
)

// Mode selects how a pixel's RGB channels are reduced to a color code.
type Mode int

// Color modes. The original tool names (HDMI, VGA, Gray, Bit) are accepted
// by ParseMode as aliases.
const (
	ModeFullColor   Mode = iota // 24-bit RGB passthrough
	ModeReduced8                // RGB332 quantization
	ModeGrayscale8              // luma approximation
	ModeMonochrome1             // 1-bit majority threshold
)

// Luma weights in units of 1/10000.
const (
	lumaR = 2126
	lumaG = 7152
	lumaB = 722
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "fullcolor", "rgb", "hdmi":
		return ModeFullColor, nil
	case "reduced8", "rgb332", "vga":
		return ModeReduced8, nil
	case "grayscale8", "grayscale", "gray", "grey":
		return ModeGrayscale8, nil
	case "monochrome1", "monochrome", "mono", "bit":
		return ModeMonochrome1, nil
	default:
		return 0, fmt.Errorf("unknown color mode: %q", s)
	}
}

// Width returns the number of bits in a color code for this mode,
// or 0 for an unknown mode.
func (m Mode) Width() uint {
	switch m {
	case ModeFullColor:
		return 24
	case ModeReduced8, ModeGrayscale8:
		return 8
	case ModeMonochrome1:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return m >= ModeFullColor && m <= ModeMonochrome1
}

// Reduce maps a pixel to its color code. The alpha channel is ignored.
func (m Mode) Reduce(p ir.Pixel) uint32 {
	r, g, b := uint32(p.R), uint32(p.G), uint32(p.B)
	switch m {
	case ModeFullColor:
		return r<<16 | g<<8 | b
	case ModeReduced8:
		// top 3 bits of red and green, top 2 of blue
		return r&0xE0 | (g&0xE0)>>3 | (b&0xC0)>>6
	case ModeGrayscale8:
		// truncates, never rounds
		return (lumaR*r + lumaG*g + lumaB*b) / 10000
	case ModeMonochrome1:
		bright := 0
		for _, c := range [3]uint32{r, g, b} {
			if c >= 128 {
				bright++
			}
		}
		if bright >= 2 {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// String returns the descriptive name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFullColor:
		return "FullColor"
	case ModeReduced8:
		return "Reduced8"
	case ModeGrayscale8:
		return "Grayscale8"
	case ModeMonochrome1:
		return "Monochrome1"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

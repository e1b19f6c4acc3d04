package decode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// colorModelName returns a string for the color model reported by a decoder.
func colorModelName(m color.Model) string {
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	case color.CMYKModel:
		return "CMYK"
	default:
		return "Unknown"
	}
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	ColorModel string
}

// GetInfo reads image dimensions and color model without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}
	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}

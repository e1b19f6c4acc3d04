package pipeline

import (
	"bytes"
	"context"
	"image"
	imgcolor "image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/ir"
)

// gradientPNG encodes a w x h image whose pixels vary with position.
func gradientPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, imgcolor.NRGBA{
				R: uint8(x * 255 / max(1, w-1)),
				G: uint8(y * 255 / max(1, h-1)),
				B: uint8((x + y) % 256),
				A: uint8((x * 37) % 256),
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFullPipeline(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, imgcolor.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, imgcolor.NRGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result, err := Run(context.Background(), buf.Bytes(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "png", result.Format)
	assert.Equal(t, 2, result.SrcWidth)
	assert.Equal(t, 1, result.SrcHeight)
	assert.Equal(t, "FF0000 00FF00;\n", result.Document.Vector)
	assert.Equal(t, 16, result.Document.Meta.Radix)
	assert.Equal(t, uint(24), result.Document.Meta.WordWidth)
	assert.Contains(t, result.Text(), "memory_initialization_radix=16;\nmemory_initialization_vector=\nFF0000 00FF00;\n")
}

func TestMonochromeThresholdExample(t *testing.T) {
	grid, err := ir.NewGrid(1, 2, []byte{
		200, 200, 200, 200,
		10, 10, 10, 10,
	})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Mode = color.ModeMonochrome1
	opts.Alpha = color.AlphaThreshold
	opts.Threshold = 127
	opts.Representation = coe.Binary

	result, err := Encode(context.Background(), grid, opts)
	require.NoError(t, err)
	assert.Equal(t, "11,\n0;\n", result.Document.Vector)
	assert.Equal(t, 2, result.Document.Meta.Radix)
	assert.Equal(t, uint(2), result.Document.Meta.WordWidth)
}

func TestParallelMatchesSequential(t *testing.T) {
	data := gradientPNG(t, 37, 23)

	opts := DefaultOptions()
	opts.Mode = color.ModeReduced8
	opts.Alpha = color.AlphaFull
	seq, err := Run(context.Background(), data, opts)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		opts.Workers = workers
		par, err := Run(context.Background(), data, opts)
		require.NoError(t, err)
		assert.Equal(t, seq.Text(), par.Text(), "workers=%d", workers)
	}
}

func TestEncodeWordsCancelled(t *testing.T) {
	grid, err := ir.NewGrid(2, 4, make([]byte, 2*4*4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := DefaultOptions()
	opts.Workers = 4
	_, err = EncodeWords(ctx, grid, opts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunDecodeError(t *testing.T) {
	_, err := Run(context.Background(), []byte("not an image"), DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImageDecode)

	_, err = Run(context.Background(), nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrImageDecode)
}

func TestEncodeRejectsEmptyAndInvalid(t *testing.T) {
	_, err := Encode(context.Background(), &ir.Grid{}, DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyImage)

	grid, err := ir.NewGrid(1, 1, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Mode = color.Mode(9)
	_, err = Encode(context.Background(), grid, opts)
	assert.Error(t, err)
}

func TestRunScale(t *testing.T) {
	opts := DefaultOptions()
	opts.ScaleWidth = 8
	result, err := Run(context.Background(), gradientPNG(t, 16, 4), opts)
	require.NoError(t, err)

	assert.Equal(t, 16, result.SrcWidth)
	assert.Equal(t, 4, result.SrcHeight)
	assert.Equal(t, 8, result.Document.Meta.ImageWidth)
	assert.Equal(t, 2, result.Document.Meta.ImageHeight)
	assert.Equal(t, uint64(16), result.Document.Meta.Depth)
}

func TestDecodeGrid(t *testing.T) {
	opts := DefaultOptions()
	opts.ScaleHeight = 2
	decoded, grid, err := DecodeGrid(gradientPNG(t, 6, 4), opts)
	require.NoError(t, err)
	assert.Equal(t, 6, decoded.Grid.Width)
	assert.Equal(t, 3, grid.Width)
	assert.Equal(t, 2, grid.Height)
}

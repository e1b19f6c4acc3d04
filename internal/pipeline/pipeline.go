package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/decode"
	"github.com/Kaucasus/coeconverter/internal/ir"
	"github.com/Kaucasus/coeconverter/internal/logging"
)

// Options controls the full image → .coe conversion pipeline.
type Options struct {
	Mode           color.Mode
	Alpha          color.AlphaPolicy
	Threshold      uint8 // only used by color.AlphaThreshold
	Representation coe.Representation
	Style          coe.Style
	PadBinary      bool // zero-pad binary words to the word width
	AddressPolicy  coe.AddressPolicy
	Workers        int // <= 1 encodes on the calling goroutine
	ScaleWidth     int // optional: resample before encoding
	ScaleHeight    int
	Interpolation  decode.Interpolation
	Logger         *slog.Logger // nil disables logging
}

// DefaultOptions returns 24-bit color, no alpha, hexadecimal, space separated.
func DefaultOptions() Options {
	return Options{
		Mode:           color.ModeFullColor,
		Alpha:          color.AlphaNone,
		Threshold:      color.DefaultThreshold,
		Representation: coe.Hexadecimal,
		Style:          coe.SpaceSeparated,
		AddressPolicy:  coe.AddressSqrt,
		Workers:        1,
	}
}

func (o Options) encoder() coe.Encoder {
	return coe.NewEncoder(o.Mode, o.Alpha, o.Threshold)
}

func (o Options) validate() error {
	if !o.Mode.IsValid() {
		return fmt.Errorf("invalid color mode %s", o.Mode)
	}
	if !o.Alpha.IsValid() {
		return fmt.Errorf("invalid alpha policy %s", o.Alpha)
	}
	return nil
}

// Result holds the output of a pipeline run.
type Result struct {
	Document  coe.Document
	Format    string // source image format, empty for raw input
	SrcWidth  int
	SrcHeight int
}

// Text returns the complete document text.
func (r *Result) Text() string { return r.Document.Build() }

// Run executes the full pipeline: decode → (scale) → encode → assemble.
func Run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// 1. Decode and resample
	decoded, grid, err := DecodeGrid(data, opts)
	if err != nil {
		return nil, err
	}

	// 2. Encode and assemble
	res, err := Encode(ctx, grid, opts)
	if err != nil {
		return nil, err
	}
	res.Format = decoded.Format
	res.SrcWidth = decoded.Grid.Width
	res.SrcHeight = decoded.Grid.Height
	return res, nil
}

// DecodeGrid decodes an image file and applies the optional resample. It
// returns the decoder output and the grid to encode.
func DecodeGrid(data []byte, opts Options) (*decode.Decoded, *ir.Grid, error) {
	logger := logging.OrNop(opts.Logger)

	decoded, err := decode.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	grid := decoded.Grid
	logger.Debug("decoded image", "format", decoded.Format, "width", grid.Width, "height", grid.Height)
	if grid.Len() == 0 {
		return nil, nil, ErrEmptyImage
	}

	if opts.ScaleWidth > 0 || opts.ScaleHeight > 0 {
		grid, err = decode.Scale(grid, opts.ScaleWidth, opts.ScaleHeight, opts.Interpolation)
		if err != nil {
			return nil, nil, fmt.Errorf("scale: %w", err)
		}
		logger.Debug("scaled image", "width", grid.Width, "height", grid.Height)
	}
	return decoded, grid, nil
}

// Encode turns an already decoded grid into a document.
func Encode(ctx context.Context, grid *ir.Grid, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := logging.OrNop(opts.Logger)

	words, err := EncodeWords(ctx, grid, opts)
	if err != nil {
		return nil, err
	}

	enc := opts.encoder()
	f := coe.NewFormatter(opts.Representation, enc.Width(), opts.PadBinary)
	vector, err := coe.Assemble(words, grid.Width, grid.Height, opts.Style, f)
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	meta := coe.NewMetadata(grid.Width, grid.Height, enc, f, opts.AddressPolicy)
	logger.Info("assembled memory vector",
		"mode", meta.Mode, "alpha", meta.Alpha,
		"word_width", meta.WordWidth, "depth", meta.Depth,
		"radix", meta.Radix, "vector_bytes", len(vector))

	return &Result{
		Document:  coe.Document{Meta: meta, Vector: vector},
		SrcWidth:  grid.Width,
		SrcHeight: grid.Height,
	}, nil
}

// EncodeWords returns one word per pixel in scan order. With more than one
// worker, row bands are encoded concurrently into disjoint parts of the
// result, so scan order is preserved without locking.
func EncodeWords(ctx context.Context, grid *ir.Grid, opts Options) ([]coe.Word, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, ErrEmptyImage
	}
	enc := opts.encoder()
	n := grid.Len()
	words := make([]coe.Word, n)

	workers := min(opts.Workers, grid.Height)
	if workers <= 1 {
		enc.EncodeRange(words, grid, 0, n)
		return words, nil
	}

	logging.OrNop(opts.Logger).Debug("encoding in parallel", "workers", workers, "rows", grid.Height)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	rowsPerBand := (grid.Height + workers - 1) / workers
	for y := 0; y < grid.Height; y += rowsPerBand {
		start := y * grid.Width
		end := min(y+rowsPerBand, grid.Height) * grid.Width
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			enc.EncodeRange(words[start:end], grid, start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return words, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/decode"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image and the memory a conversion would need",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	addEncodingFlags(identifyCmd.Flags())
	addScaleFlags(identifyCmd.Flags())
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := decode.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ImagePath = path
	applyFlags(cmd, &cfg)
	opts, err := resolve(&cfg)
	if err != nil {
		return err
	}

	width, height := info.Width, info.Height
	if (opts.ScaleWidth > 0 || opts.ScaleHeight > 0) && width > 0 && height > 0 {
		width, height = scaledSize(width, height, opts.ScaleWidth, opts.ScaleHeight)
	}

	enc := coe.NewEncoder(opts.Mode, opts.Alpha, opts.Threshold)
	f := coe.NewFormatter(opts.Representation, enc.Width(), opts.PadBinary)
	meta := coe.NewMetadata(width, height, enc, f, opts.AddressPolicy)

	r := newReport(cmd.OutOrStdout())
	r.title(path)
	r.field("Dimensions", "%d x %d", info.Width, info.Height)
	r.field("Format", "%s", info.Format)
	r.field("Color model", "%s", info.ColorModel)
	r.field("File size", "%d bytes (%.1f KB)", len(data), float64(len(data))/1024)
	r.title(fmt.Sprintf("%s, alpha %s", meta.Mode, meta.Alpha))
	if width != info.Width || height != info.Height {
		r.field("Scaled to", "%d x %d", width, height)
	}
	r.field("Word width", "%d bits", meta.WordWidth)
	r.field("Depth", "%d words", meta.Depth)
	r.field("Address width", "%d (%s), %d (%s)",
		coe.AddressWidth(meta.Depth, coe.AddressSqrt), coe.AddressSqrt,
		coe.AddressWidth(meta.Depth, coe.AddressLog2), coe.AddressLog2)
	r.field("Radix", "%d", meta.Radix)
	r.field("Memory bits", "%d (%.1f KB)", meta.Bits(), float64(meta.Bits())/8/1024)
	return nil
}

// scaledSize mirrors decode.Scale's handling of a zero dimension.
func scaledSize(w, h, sw, sh int) (int, int) {
	switch {
	case sw <= 0:
		return max(1, w*sh/h), sh
	case sh <= 0:
		return sw, max(1, h*sw/w)
	default:
		return sw, sh
	}
}

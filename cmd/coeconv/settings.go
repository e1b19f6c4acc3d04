package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/config"
	"github.com/Kaucasus/coeconverter/internal/pipeline"
)

// addEncodingFlags registers the flags shared by every command that
// produces memory words.
func addEncodingFlags(fs *pflag.FlagSet) {
	fs.StringP("mode", "m", "", "Color mode (full|hdmi, reduced8|vga, grayscale8|gray, monochrome1|bit)")
	fs.CountP("alpha", "a", "Alpha bits: -a for a 1-bit threshold, -aa for 8 bits")
	fs.String("alpha-policy", "", "Alpha policy by name (none, threshold, full); overrides -a")
	fs.Int("threshold", color.DefaultThreshold, "Alpha threshold (0-255) for the 1-bit policy")
	fs.StringP("repr", "r", "", "Word representation (bin, dec, hex, auto)")
	fs.String("style", "", "In-row separator (space, comma)")
	fs.Bool("pad-binary", false, "Zero-pad binary words to the full word width")
	fs.String("address-width", "", "Address width rule for the header (sqrt, log2)")
	fs.Int("workers", 1, "Parallel encoding workers")
}

// addScaleFlags registers the optional resample flags.
func addScaleFlags(fs *pflag.FlagSet) {
	fs.Int("scale-width", 0, "Resample to this width before encoding (0 keeps aspect)")
	fs.Int("scale-height", 0, "Resample to this height before encoding (0 keeps aspect)")
	fs.String("interpolation", "", "Resample kernel (nearest, bilinear, catmullrom)")
}

// loadConfig returns the defaults, or the --config file over them.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	logger.Debug("loading config", "path", path)
	return config.Load(path)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	setString := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	setInt := func(name string, dst *int) {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}

	setString("mode", &cfg.Mode)
	if fs.Changed("alpha") {
		n, _ := fs.GetCount("alpha")
		cfg.Alpha = color.AlphaFromCount(n).String()
	}
	setString("alpha-policy", &cfg.Alpha)
	setInt("threshold", &cfg.Threshold)
	setString("repr", &cfg.Representation)
	setString("style", &cfg.Style)
	if fs.Changed("pad-binary") {
		cfg.PadBinary, _ = fs.GetBool("pad-binary")
	}
	setString("address-width", &cfg.AddressWidth)
	setInt("workers", &cfg.Workers)
	setInt("scale-width", &cfg.ScaleWidth)
	setInt("scale-height", &cfg.ScaleHeight)
	setString("interpolation", &cfg.Interpolation)
	setString("output", &cfg.OutputPath)
}

// resolve validates cfg and converts it into pipeline options.
func resolve(cfg *config.Config) (pipeline.Options, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return opts, err
	}
	opts.Logger = logger
	return opts, nil
}

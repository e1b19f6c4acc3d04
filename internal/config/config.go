// Package config loads and validates conversion settings.
//
// Settings are layered: Default, then an optional YAML file (Load), then
// whatever the caller overrides (usually CLI flags). Validate must pass
// before Options converts the result into typed pipeline options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/decode"
	"github.com/Kaucasus/coeconverter/internal/pipeline"
)

// OutputExt is appended to the image base name when no output path is set.
const OutputExt = ".coe"

// Config is the conversion configuration surface.
type Config struct {
	ImagePath      string `yaml:"image" validate:"required"`
	OutputPath     string `yaml:"output,omitempty"`
	Mode           string `yaml:"mode" validate:"required,colormode"`
	Alpha          string `yaml:"alpha" validate:"alphapolicy"`
	Threshold      int    `yaml:"threshold" validate:"gte=0,lte=255"`
	Representation string `yaml:"representation" validate:"representation"`
	Style          string `yaml:"style" validate:"style"`
	PadBinary      bool   `yaml:"pad_binary"`
	AddressWidth   string `yaml:"address_width" validate:"addresspolicy"`
	Workers        int    `yaml:"workers" validate:"gte=0,lte=1024"`
	ScaleWidth     int    `yaml:"scale_width,omitempty" validate:"gte=0,lte=65535"`
	ScaleHeight    int    `yaml:"scale_height,omitempty" validate:"gte=0,lte=65535"`
	Interpolation  string `yaml:"interpolation,omitempty" validate:"interpolation"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:           "full",
		Alpha:          "none",
		Threshold:      color.DefaultThreshold,
		Representation: "hex",
		Style:          "space",
		AddressWidth:   "sqrt",
		Workers:        1,
		Interpolation:  "nearest",
	}
}

// Load reads a YAML file over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultOutputPath replaces the extension of imagePath with OutputExt.
func DefaultOutputPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + OutputExt
}

// Normalize trims and lower-cases names and fills in the output path.
func (c *Config) Normalize() {
	for _, s := range []*string{&c.Mode, &c.Alpha, &c.Representation, &c.Style, &c.AddressWidth, &c.Interpolation} {
		*s = strings.ToLower(strings.TrimSpace(*s))
	}
	if c.OutputPath == "" && c.ImagePath != "" {
		c.OutputPath = DefaultOutputPath(c.ImagePath)
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s=%v out of range (%s %s)", fe.Field(), fe.Value(), fe.Tag(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: unknown %s %q", fe.Field(), fe.Tag(), fe.Value()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Options converts a validated config into pipeline options.
func (c Config) Options() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	var err error
	if opts.Mode, err = color.ParseMode(c.Mode); err != nil {
		return opts, err
	}
	if opts.Alpha, err = color.ParseAlpha(c.Alpha); err != nil {
		return opts, err
	}
	if opts.Representation, err = coe.ParseRepresentation(c.Representation); err != nil {
		return opts, err
	}
	if opts.Style, err = coe.ParseStyle(c.Style); err != nil {
		return opts, err
	}
	if opts.AddressPolicy, err = coe.ParseAddressPolicy(c.AddressWidth); err != nil {
		return opts, err
	}
	if opts.Interpolation, err = decode.ParseInterpolation(c.Interpolation); err != nil {
		return opts, err
	}
	opts.Threshold = uint8(c.Threshold)
	opts.PadBinary = c.PadBinary
	opts.Workers = c.Workers
	opts.ScaleWidth = c.ScaleWidth
	opts.ScaleHeight = c.ScaleHeight
	return opts, nil
}

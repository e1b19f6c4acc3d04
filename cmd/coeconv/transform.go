package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/pipeline"
)

var transformCmd = &cobra.Command{
	Use:   "transform <image>",
	Short: "Encode an image to raw packed memory words (raw output + JSON sidecar)",
	Args:  cobra.RangeArgs(0, 1),
	RunE:  runTransform,
}

func init() {
	addEncodingFlags(transformCmd.Flags())
	addScaleFlags(transformCmd.Flags())
	transformCmd.Flags().StringP("output", "o", "", "Output raw word file (default <image>.raw)")
	rootCmd.AddCommand(transformCmd)
}

type transformMeta struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	WordWidth uint   `json:"word_width"`
	WordBytes int    `json:"word_bytes"`
	Depth     int    `json:"depth"`
	Mode      string `json:"mode"`
	Alpha     string `json:"alpha"`
	Format    string `json:"format"`
}

func runTransform(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.ImagePath = args[0]
	}
	applyFlags(cmd, &cfg)
	if cfg.OutputPath == "" && cfg.ImagePath != "" {
		cfg.OutputPath = strings.TrimSuffix(cfg.ImagePath, filepath.Ext(cfg.ImagePath)) + ".raw"
	}

	opts, err := resolve(&cfg)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(cfg.ImagePath)
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", pipeline.ErrImageDecode, err)
	}

	decoded, grid, err := pipeline.DecodeGrid(inputData, opts)
	if err != nil {
		return err
	}
	words, err := pipeline.EncodeWords(cmd.Context(), grid, opts)
	if err != nil {
		return err
	}

	enc := coe.NewEncoder(opts.Mode, opts.Alpha, opts.Threshold)
	raw := coe.PackWords(words, enc.Width())
	if err := pipeline.WriteFile(cfg.OutputPath, raw); err != nil {
		return err
	}

	// Write JSON sidecar
	meta := transformMeta{
		Width:     grid.Width,
		Height:    grid.Height,
		WordWidth: enc.Width(),
		WordBytes: int(enc.Width()+7) / 8,
		Depth:     len(words),
		Mode:      opts.Mode.String(),
		Alpha:     opts.Alpha.String(),
		Format:    "big-endian",
	}
	metaJSON, _ := json.MarshalIndent(meta, "", "  ")
	metaPath := strings.TrimSuffix(cfg.OutputPath, ".raw") + ".json"
	if err := pipeline.WriteFile(metaPath, metaJSON); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	r := newReport(cmd.OutOrStdout())
	r.success("Transformed %dx%d %s → raw %s words (%d bytes)", decoded.Grid.Width, decoded.Grid.Height, decoded.Format, opts.Mode, len(raw))
	r.field("Sidecar", "%s", metaPath)
	return nil
}

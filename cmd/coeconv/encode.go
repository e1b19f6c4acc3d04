package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaucasus/coeconverter/internal/ir"
	"github.com/Kaucasus/coeconverter/internal/pipeline"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode raw RGBA8 data to a .coe file",
	RunE:  runEncode,
}

func init() {
	addEncodingFlags(encodeCmd.Flags())
	encodeCmd.Flags().StringP("input", "i", "", "Input raw RGBA8 file (row-major, 4 bytes per pixel)")
	encodeCmd.Flags().StringP("output", "o", "", "Output .coe file")
	encodeCmd.Flags().Int("width", 0, "Image width")
	encodeCmd.Flags().Int("height", 0, "Image height")
	encodeCmd.MarkFlagRequired("input")
	encodeCmd.MarkFlagRequired("width")
	encodeCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ImagePath, _ = cmd.Flags().GetString("input")
	applyFlags(cmd, &cfg)
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	opts, err := resolve(&cfg)
	if err != nil {
		return err
	}

	pixels, err := os.ReadFile(cfg.ImagePath)
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", pipeline.ErrImageDecode, err)
	}
	grid, err := ir.NewGrid(width, height, pixels)
	if err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrImageDecode, err)
	}

	result, err := pipeline.Encode(cmd.Context(), grid, opts)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	text := result.Text()
	if err := pipeline.WriteFile(cfg.OutputPath, []byte(text)); err != nil {
		return err
	}

	newReport(cmd.OutOrStdout()).success("Encoded %dx%d RGBA → %s (%d bytes)", width, height, cfg.OutputPath, len(text))
	return nil
}

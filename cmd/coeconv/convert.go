package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaucasus/coeconverter/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert <image> [mode] [output]",
	Short: "Convert an image to a .coe file",
	Long: `Convert an image (png, jpeg, gif, bmp, tiff, webp) to a .coe memory
initialization file. The output defaults to the image path with a .coe
extension.`,
	Args: cobra.RangeArgs(0, 3),
	RunE: runConvert,
}

func init() {
	addEncodingFlags(convertCmd.Flags())
	addScaleFlags(convertCmd.Flags())
	convertCmd.Flags().StringP("output", "o", "", "Output .coe file")
	convertCmd.Flags().Bool("stdout", false, "Write the document to stdout instead of a file")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.ImagePath = args[0]
	}
	if len(args) > 1 {
		cfg.Mode = args[1]
	}
	if len(args) > 2 {
		cfg.OutputPath = args[2]
	}
	applyFlags(cmd, &cfg)
	toStdout, _ := cmd.Flags().GetBool("stdout")

	opts, err := resolve(&cfg)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(cfg.ImagePath)
	if err != nil {
		return fmt.Errorf("%w: reading input: %w", pipeline.ErrImageDecode, err)
	}

	result, err := pipeline.Run(cmd.Context(), inputData, opts)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}
	text := result.Text()

	if toStdout {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := pipeline.WriteFile(cfg.OutputPath, []byte(text)); err != nil {
		return err
	}

	meta := result.Document.Meta
	r := newReport(cmd.OutOrStdout())
	r.success("Converted %dx%d %s image → %s", result.SrcWidth, result.SrcHeight, result.Format, meta.Mode)
	r.field("Input", "%s (%d bytes)", cfg.ImagePath, len(inputData))
	r.field("Output", "%s (%d bytes)", cfg.OutputPath, len(text))
	r.field("Memory", "%d x %d bits, radix %d", meta.Depth, meta.WordWidth, meta.Radix)
	return nil
}

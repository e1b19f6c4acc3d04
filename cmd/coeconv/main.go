package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kaucasus/coeconverter/internal/logging"
)

// logger is configured from the persistent flags before any subcommand runs.
var logger = logging.Nop()

var rootCmd = &cobra.Command{
	Use:           "coeconv",
	Short:         "Convert images to .coe memory initialization files for FPGA block RAM",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		level, err := logging.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		logger = logging.New(logging.Config{
			Level:  level,
			JSON:   format == "json",
			Output: cmd.ErrOrStderr(),
		})
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rasterops/bandconv/cmd/bandconv/ui"
	"github.com/rasterops/bandconv/internal/config"
	"github.com/rasterops/bandconv/internal/observability"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bandconv",
	Short: "Raw raster band-order conversion toolkit",
	Long: `bandconv converts raw multi-band raster files between the BIL, BIP and BSQ
sample interleavings. Raw files carry no header, so the image geometry
(width, height, band count, sample size) is always given explicitly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if verbose {
			cfg.Observability.LogLevel = "debug"
		}
		logger = observability.New(observability.Config{
			Level:   cfg.Observability.LogLevel,
			Format:  cfg.Observability.LogFormat,
			Service: "bandconv",
		})

		ui.InitUI(noColor, verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

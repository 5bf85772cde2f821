package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rasterops/bandconv/cmd/bandconv/ui"
	"github.com/rasterops/bandconv/internal/convert"
)

var (
	convertInput     string
	convertOutput    string
	convertOverwrite bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a single raw raster file between band orders",
	Long: `Convert reads a raw (headerless) raster file, reorders its samples into the
requested interleaving, and writes the result. The output is written
atomically: a failed conversion produces no output file.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input raw file (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output raw file (required)")
	convertCmd.Flags().BoolVar(&convertOverwrite, "overwrite", false, "replace the output file if it exists")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	addLayoutFlags(convertCmd)
	addGeometryFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	geom, err := geometryFromFlags()
	if err != nil {
		return err
	}
	from, to, err := layoutsFromFlags()
	if err != nil {
		return err
	}

	ui.Section("Band-order conversion")
	ui.Info("Input: %s (%s)", convertInput, from)
	ui.Info("Output: %s (%s)", convertOutput, to)
	ui.Info("Geometry: %s", geom)
	ui.Newline()

	pipe := convert.NewPipeline(logger, convert.Config{
		Workers:           cfg.Conversion.Workers,
		MaxConcurrentJobs: cfg.Conversion.MaxConcurrentJobs,
	})

	sp := ui.NewSpinner(fmt.Sprintf("Converting %s", filepath.Base(convertInput)))
	sp.Start()
	result, err := pipe.Convert(context.Background(), convert.Request{
		InputPath:  convertInput,
		OutputPath: convertOutput,
		Geometry:   geom,
		From:       from,
		To:         to,
		Overwrite:  convertOverwrite || cfg.Conversion.Overwrite,
	})
	sp.Stop()

	if err != nil {
		ui.Error("Conversion failed: %v", err)
		return err
	}

	ui.Success("Wrote %s (%d bytes in %s)",
		result.OutputPath, result.BytesWritten, result.Duration.Round(time.Millisecond))
	return nil
}

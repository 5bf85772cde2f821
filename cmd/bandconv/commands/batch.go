package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rasterops/bandconv/cmd/bandconv/ui"
	"github.com/rasterops/bandconv/internal/convert"
)

var (
	batchOutputDir string
	batchOverwrite bool
	batchJobs      int
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Convert several raw raster files sharing one geometry",
	Long: `Batch converts the listed raw files, all of which must share the same
geometry and source layout. Each output keeps the input's base name with the
destination layout as its extension (scene.bil -> scene.bsq). Files are
processed by a bounded worker pool.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "directory for converted files (defaults to each input's directory)")
	batchCmd.Flags().BoolVar(&batchOverwrite, "overwrite", false, "replace output files that exist")
	batchCmd.Flags().IntVar(&batchJobs, "jobs", 0, "number of files converted in parallel (defaults to config)")
	addLayoutFlags(batchCmd)
	addGeometryFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	geom, err := geometryFromFlags()
	if err != nil {
		return err
	}
	from, to, err := layoutsFromFlags()
	if err != nil {
		return err
	}

	outputDir := batchOutputDir
	if outputDir == "" {
		outputDir = cfg.Conversion.OutputDir
	}
	jobs := batchJobs
	if jobs <= 0 {
		jobs = cfg.Conversion.MaxConcurrentJobs
	}
	overwrite := batchOverwrite || cfg.Conversion.Overwrite

	reqs := make([]convert.Request, 0, len(args))
	for _, input := range args {
		reqs = append(reqs, convert.Request{
			InputPath:  input,
			OutputPath: batchOutputPath(input, outputDir, to.String()),
			Geometry:   geom,
			From:       from,
			To:         to,
			Overwrite:  overwrite,
		})
	}

	ui.Section("Batch conversion")
	ui.Info("Files: %d", len(reqs))
	ui.Info("Layouts: %s -> %s", from, to)
	ui.Info("Geometry: %s", geom)
	ui.Newline()

	pipe := convert.NewPipeline(logger, convert.Config{
		Workers:           cfg.Conversion.Workers,
		MaxConcurrentJobs: jobs,
	})

	bar := ui.NewProgressBar(int64(len(reqs)), "converting")
	results, err := pipe.ConvertBatch(context.Background(), reqs, func(done, total int) {
		bar.Set(int64(done))
	})
	bar.Finish()

	succeeded := 0
	for _, res := range results {
		if res != nil && res.Status == convert.JobStatusSucceeded {
			succeeded++
		}
	}

	if err != nil {
		ui.Error("Batch finished with failures: %d/%d converted", succeeded, len(reqs))
		return fmt.Errorf("batch conversion: %w", err)
	}

	ui.Success("Converted %d/%d files", succeeded, len(reqs))
	return nil
}

// batchOutputPath keeps the input's base name and swaps the extension for the
// destination layout name.
func batchOutputPath(input, outputDir, ext string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + "." + ext

	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outputDir, base)
}

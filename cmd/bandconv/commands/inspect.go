package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rasterops/bandconv/cmd/bandconv/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Check raw files against a geometry descriptor",
	Long: `Inspect compares each file's byte size with the size the given geometry
requires. It reads no sample data and writes nothing; the exit status is
non-zero when any file does not match.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	addGeometryFlags(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	geom, err := geometryFromFlags()
	if err != nil {
		return err
	}
	want := int64(geom.BufferSize())

	ui.Section("Geometry check")
	ui.Info("Geometry: %s", geom)
	ui.Info("Expected size: %d bytes", want)
	ui.Newline()

	mismatches := 0
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			mismatches++
			ui.Error("%s: %v", path, err)
			continue
		}

		switch {
		case info.IsDir():
			mismatches++
			ui.Error("%s: is a directory", path)
		case info.Size() == want:
			ui.Success("%s: %d bytes", path, info.Size())
		case info.Size() < want:
			mismatches++
			ui.Error("%s: %d bytes, %d short", path, info.Size(), want-info.Size())
		default:
			mismatches++
			ui.Error("%s: %d bytes, %d over", path, info.Size(), info.Size()-want)
		}

		logger.Debug().
			Str("path", path).
			Int64("expected", want).
			Msg("Inspected file")
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d files do not match the geometry", mismatches, len(args))
	}
	return nil
}

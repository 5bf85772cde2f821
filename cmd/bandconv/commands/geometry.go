package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rasterops/bandconv/internal/raster"
)

// Geometry and layout flags shared by convert, batch and inspect. Raw files
// have no header, so every command needs the full descriptor.
var (
	geomWidth       int
	geomHeight      int
	geomBands       int
	geomSampleBytes int
	geomByteOrder   string
	geomSigned      bool
)

func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&geomWidth, "width", 0, "image width in pixels (required)")
	cmd.Flags().IntVar(&geomHeight, "height", 0, "image height in pixels (required)")
	cmd.Flags().IntVar(&geomBands, "bands", 0, "number of bands (required)")
	cmd.Flags().IntVar(&geomSampleBytes, "sample-bytes", 1, "bytes per sample: 1, 2, 4 or 8")
	cmd.Flags().StringVar(&geomByteOrder, "byte-order", "little", "sample byte order: little or big")
	cmd.Flags().BoolVar(&geomSigned, "signed", false, "samples are signed integers")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("height")
	cmd.MarkFlagRequired("bands")
}

func geometryFromFlags() (raster.Geometry, error) {
	order, err := raster.ParseByteOrder(geomByteOrder)
	if err != nil {
		return raster.Geometry{}, err
	}

	g := raster.Geometry{
		Width:       geomWidth,
		Height:      geomHeight,
		Bands:       geomBands,
		SampleBytes: geomSampleBytes,
		Order:       order,
		Signed:      geomSigned,
	}
	if err := g.Validate(); err != nil {
		return raster.Geometry{}, err
	}
	return g, nil
}

var (
	fromLayoutName string
	toLayoutName   string
)

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fromLayoutName, "from", "", "source layout: bil, bip or bsq (required)")
	cmd.Flags().StringVar(&toLayoutName, "to", "", "destination layout: bil, bip or bsq (required)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
}

func layoutsFromFlags() (from, to raster.Layout, err error) {
	from, err = raster.ParseLayout(fromLayoutName)
	if err != nil {
		return 0, 0, fmt.Errorf("--from: %w", err)
	}
	to, err = raster.ParseLayout(toLayoutName)
	if err != nil {
		return 0, 0, fmt.Errorf("--to: %w", err)
	}
	return from, to, nil
}

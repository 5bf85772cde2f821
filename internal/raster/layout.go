// Package raster implements band-order conversion for raw, headerless
// multi-band image buffers. A buffer is a flat byte sequence; its geometry
// (dimensions, band count, sample size) always travels separately from the
// bytes it describes.
package raster

import (
	"fmt"
	"strings"
)

// Layout identifies how the samples of a multi-band raster are interleaved.
type Layout int

const (
	// BIL (band-interleaved-by-line) stores each scanline band-major: all of
	// band 0 for line y, then all of band 1 for line y, and so on.
	BIL Layout = iota
	// BIP (band-interleaved-by-pixel) stores all bands of a pixel
	// contiguously before the next pixel.
	BIP
	// BSQ (band-sequential) stores each band as one contiguous plane.
	BSQ
)

// String returns the lowercase name of the layout.
func (l Layout) String() string {
	switch l {
	case BIL:
		return "bil"
	case BIP:
		return "bip"
	case BSQ:
		return "bsq"
	default:
		return fmt.Sprintf("layout(%d)", int(l))
	}
}

// ParseLayout converts a layout name to a Layout. Matching is
// case-insensitive.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bil":
		return BIL, nil
	case "bip":
		return BIP, nil
	case "bsq":
		return BSQ, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (want bil, bip or bsq)", s)
	}
}

// ByteOrder records how the bytes of a multi-byte sample are ordered on disk.
// It is descriptive metadata only: conversions copy samples verbatim and
// never swap bytes.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// String returns "little" or "big".
func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

// ParseByteOrder converts a byte-order name to a ByteOrder. Accepts
// "little"/"le" and "big"/"be", case-insensitive.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return LittleEndian, nil
	case "big", "be":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q (want little or big)", s)
	}
}

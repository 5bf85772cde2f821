package raster

import "fmt"

// sampleOffset returns the sample index of spatial position (x, y) in band b
// for layout l.
func (g Geometry) sampleOffset(l Layout, x, y, b int) int {
	switch l {
	case BIL:
		return (y*g.Bands+b)*g.Width + x
	case BIP:
		return (y*g.Width+x)*g.Bands + b
	default: // BSQ
		return (b*g.Height+y)*g.Width + x
	}
}

// Convert reorders src, laid out as from, into dst, laid out as to. Both
// buffers must match g exactly and must not overlap. Samples are copied
// verbatim: multi-byte samples keep their on-disk byte order.
//
// Validation happens before any byte moves, so a failed call leaves dst
// untouched.
func Convert(dst, src []byte, g Geometry, from, to Layout) error {
	if err := checkConvert(dst, src, g); err != nil {
		return err
	}
	if from == to {
		copy(dst, src)
		return nil
	}
	for b := 0; b < g.Bands; b++ {
		convertBand(dst, src, g, from, to, b)
	}
	return nil
}

// Converted is Convert with a freshly allocated destination buffer.
func Converted(src []byte, g Geometry, from, to Layout) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	dst := make([]byte, g.BufferSize())
	if err := Convert(dst, src, g, from, to); err != nil {
		return nil, err
	}
	return dst, nil
}

func checkConvert(dst, src []byte, g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := g.CheckBuffer(src); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := g.CheckBuffer(dst); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	return nil
}

// convertBand moves every sample of band b from src to dst. A band's rows
// are contiguous in both BIL and BSQ, so conversions between those layouts
// move whole rows; anything involving BIP moves one sample at a time.
func convertBand(dst, src []byte, g Geometry, from, to Layout, b int) {
	sb := g.SampleBytes
	if from != BIP && to != BIP {
		rowLen := g.Width * sb
		for y := 0; y < g.Height; y++ {
			so := g.sampleOffset(from, 0, y, b) * sb
			do := g.sampleOffset(to, 0, y, b) * sb
			copy(dst[do:do+rowLen], src[so:so+rowLen])
		}
		return
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			so := g.sampleOffset(from, x, y, b) * sb
			do := g.sampleOffset(to, x, y, b) * sb
			copy(dst[do:do+sb], src[so:so+sb])
		}
	}
}

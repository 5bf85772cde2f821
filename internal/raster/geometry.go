package raster

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMalformedGeometry reports a geometry with a non-positive dimension
	// or an unsupported sample size.
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrSizeMismatch reports a buffer whose length does not equal
	// width*height*bands*sampleBytes.
	ErrSizeMismatch = errors.New("buffer size mismatch")
)

// Geometry describes a raw raster buffer. Raw files carry no header, so a
// Geometry must accompany every buffer.
type Geometry struct {
	Width       int
	Height      int
	Bands       int
	SampleBytes int
	Order       ByteOrder
	Signed      bool
}

// Validate checks the geometry for errors. Failures wrap
// ErrMalformedGeometry.
func (g Geometry) Validate() error {
	if g.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrMalformedGeometry, g.Width)
	}
	if g.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrMalformedGeometry, g.Height)
	}
	if g.Bands < 1 {
		return fmt.Errorf("%w: band count must be positive, got %d", ErrMalformedGeometry, g.Bands)
	}
	switch g.SampleBytes {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: sample size must be 1, 2, 4 or 8 bytes, got %d", ErrMalformedGeometry, g.SampleBytes)
	}
	if g.Height > math.MaxInt/g.Width ||
		g.Bands > math.MaxInt/(g.Width*g.Height) ||
		g.SampleBytes > math.MaxInt/(g.Width*g.Height*g.Bands) {
		return fmt.Errorf("%w: dimensions %dx%dx%d overflow", ErrMalformedGeometry, g.Width, g.Height, g.Bands)
	}
	return nil
}

// Samples returns the number of samples described by the geometry.
func (g Geometry) Samples() int {
	return g.Width * g.Height * g.Bands
}

// BufferSize returns the byte length a buffer with this geometry must have.
func (g Geometry) BufferSize() int {
	return g.Samples() * g.SampleBytes
}

// CheckBuffer verifies that buf has exactly the length the geometry requires.
// Failures wrap ErrSizeMismatch.
func (g Geometry) CheckBuffer(buf []byte) error {
	if len(buf) != g.BufferSize() {
		return fmt.Errorf("%w: buffer is %d bytes, %dx%d pixels with %d bands at %d bytes/sample needs %d",
			ErrSizeMismatch, len(buf), g.Width, g.Height, g.Bands, g.SampleBytes, g.BufferSize())
	}
	return nil
}

// String returns a human-readable description for logs and CLI output.
func (g Geometry) String() string {
	sign := "unsigned"
	if g.Signed {
		sign = "signed"
	}
	return fmt.Sprintf("%dx%d pixels, %d bands, %d bytes/sample, %s-endian %s",
		g.Width, g.Height, g.Bands, g.SampleBytes, g.Order, sign)
}

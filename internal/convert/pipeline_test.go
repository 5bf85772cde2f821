package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasterops/bandconv/internal/domain"
	"github.com/rasterops/bandconv/internal/observability"
	"github.com/rasterops/bandconv/internal/raster"
)

var testGeom = raster.Geometry{Width: 2, Height: 2, Bands: 2, SampleBytes: 1}

// Pixel-major input and its band-sequential equivalent.
var (
	bipBytes = []byte{0x10, 0x20, 0x11, 0x21, 0x12, 0x22, 0x13, 0x23}
	bsqBytes = []byte{0x10, 0x11, 0x12, 0x13, 0x20, 0x21, 0x22, 0x23}
)

func newTestPipeline(workers int) *Pipeline {
	return NewPipeline(observability.Nop(), Config{Workers: workers, MaxConcurrentJobs: 2})
}

func writeInput(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConvert_WritesReorderedOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "scene.bip", bipBytes)
	out := filepath.Join(dir, "scene.bsq")

	p := newTestPipeline(1)
	result, err := p.Convert(context.Background(), Request{
		InputPath:  in,
		OutputPath: out,
		Geometry:   testGeom,
		From:       raster.BIP,
		To:         raster.BSQ,
	})
	require.NoError(t, err)

	assert.Equal(t, JobStatusSucceeded, result.Status)
	assert.Equal(t, int64(len(bipBytes)), result.BytesRead)
	assert.Equal(t, int64(len(bsqBytes)), result.BytesWritten)
	assert.NotEqual(t, uuid.Nil, result.JobID)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, bsqBytes, got)
}

func TestConvert_ParallelWorkersProduceSameOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "scene.bip", bipBytes)
	out := filepath.Join(dir, "scene.bsq")

	p := newTestPipeline(4)
	_, err := p.Convert(context.Background(), Request{
		InputPath:  in,
		OutputPath: out,
		Geometry:   testGeom,
		From:       raster.BIP,
		To:         raster.BSQ,
	})
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, bsqBytes, got)
}

func TestConvert_SizeMismatchLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "short.bip", bipBytes[:len(bipBytes)-1])
	out := filepath.Join(dir, "short.bsq")

	p := newTestPipeline(1)
	result, err := p.Convert(context.Background(), Request{
		InputPath:  in,
		OutputPath: out,
		Geometry:   testGeom,
		From:       raster.BIP,
		To:         raster.BSQ,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, raster.ErrSizeMismatch)
	assert.Equal(t, JobStatusFailed, result.Status)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "failed job must not produce output")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestConvert_MalformedGeometryFails(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "scene.bip", bipBytes)

	p := newTestPipeline(1)
	_, err := p.Convert(context.Background(), Request{
		InputPath:  in,
		OutputPath: filepath.Join(dir, "scene.bsq"),
		Geometry:   raster.Geometry{Width: 2, Height: 2, Bands: 0, SampleBytes: 1},
		From:       raster.BIP,
		To:         raster.BSQ,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, raster.ErrMalformedGeometry)

	var derr *domain.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domain.ErrorTypeGeometry, derr.Type)
}

func TestConvert_RefusesOverwriteByDefault(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "scene.bip", bipBytes)
	out := writeInput(t, dir, "scene.bsq", []byte{0xFF})

	p := newTestPipeline(1)
	req := Request{
		InputPath:  in,
		OutputPath: out,
		Geometry:   testGeom,
		From:       raster.BIP,
		To:         raster.BSQ,
	}

	_, err := p.Convert(context.Background(), req)
	require.Error(t, err)

	// Existing file untouched.
	got, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, []byte{0xFF}, got)

	req.Overwrite = true
	_, err = p.Convert(context.Background(), req)
	require.NoError(t, err)

	got, readErr = os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, bsqBytes, got)
}

func TestConvertBatch_AllSucceed(t *testing.T) {
	dir := t.TempDir()
	p := newTestPipeline(1)

	var reqs []Request
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		in := writeInput(t, dir, name+".bip", bipBytes)
		reqs = append(reqs, Request{
			InputPath:  in,
			OutputPath: filepath.Join(dir, name+".bsq"),
			Geometry:   testGeom,
			From:       raster.BIP,
			To:         raster.BSQ,
		})
	}

	var lastDone, lastTotal int
	results, err := p.ConvertBatch(context.Background(), reqs, func(done, total int) {
		lastDone, lastTotal = done, total
	})
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	assert.Equal(t, len(reqs), lastDone)
	assert.Equal(t, len(reqs), lastTotal)

	for i, res := range results {
		require.NotNil(t, res, "result %d", i)
		assert.Equal(t, JobStatusSucceeded, res.Status, "result %d", i)
		got, readErr := os.ReadFile(reqs[i].OutputPath)
		require.NoError(t, readErr)
		assert.Equal(t, bsqBytes, got)
	}
}

func TestConvertBatch_AttemptsEveryFileAndReportsFirstError(t *testing.T) {
	dir := t.TempDir()
	p := newTestPipeline(1)

	good := writeInput(t, dir, "good.bip", bipBytes)
	bad := writeInput(t, dir, "bad.bip", bipBytes[:3])

	reqs := []Request{
		{InputPath: bad, OutputPath: filepath.Join(dir, "bad.bsq"), Geometry: testGeom, From: raster.BIP, To: raster.BSQ},
		{InputPath: good, OutputPath: filepath.Join(dir, "good.bsq"), Geometry: testGeom, From: raster.BIP, To: raster.BSQ},
	}

	results, err := p.ConvertBatch(context.Background(), reqs, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, raster.ErrSizeMismatch)

	require.Len(t, results, 2)
	assert.Equal(t, JobStatusFailed, results[0].Status)
	assert.Equal(t, JobStatusSucceeded, results[1].Status)

	got, readErr := os.ReadFile(filepath.Join(dir, "good.bsq"))
	require.NoError(t, readErr)
	assert.Equal(t, bsqBytes, got)
}

func TestConvertBatch_Empty(t *testing.T) {
	p := newTestPipeline(1)
	results, err := p.ConvertBatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

// Package convert runs raw raster conversion jobs end to end: read a raw
// file, reorder its bands, write the result atomically.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rasterops/bandconv/internal/domain"
	"github.com/rasterops/bandconv/internal/raster"
)

// Pipeline executes conversion requests.
type Pipeline struct {
	logger    zerolog.Logger
	config    Config
	validator *Validator
}

// Config holds pipeline configuration.
type Config struct {
	// Workers is the number of per-band workers inside a single conversion.
	Workers int
	// MaxConcurrentJobs bounds how many files ConvertBatch processes at once.
	MaxConcurrentJobs int
}

// Request describes one file conversion.
type Request struct {
	InputPath  string
	OutputPath string
	Geometry   raster.Geometry
	From       raster.Layout
	To         raster.Layout
	Overwrite  bool
}

// JobStatus reports the outcome of a conversion job.
type JobStatus string

const (
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Result reports what a conversion job did.
type Result struct {
	JobID        uuid.UUID
	Status       JobStatus
	InputPath    string
	OutputPath   string
	BytesRead    int64
	BytesWritten int64
	StartedAt    time.Time
	CompletedAt  time.Time
	Duration     time.Duration
}

// NewPipeline creates a conversion pipeline.
func NewPipeline(logger zerolog.Logger, cfg Config) *Pipeline {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxConcurrentJobs < 1 {
		cfg.MaxConcurrentJobs = 1
	}
	return &Pipeline{
		logger:    logger,
		config:    cfg,
		validator: NewValidator(),
	}
}

// Convert runs a single conversion job. The output is written to a temporary
// file in the destination directory and renamed into place, so a failed job
// never leaves a partial output behind.
func (p *Pipeline) Convert(ctx context.Context, req Request) (*Result, error) {
	result := &Result{
		JobID:      uuid.New(),
		Status:     JobStatusFailed,
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		StartedAt:  time.Now(),
	}

	p.logger.Info().
		Str("job_id", result.JobID.String()).
		Str("input", req.InputPath).
		Str("output", req.OutputPath).
		Str("from", req.From.String()).
		Str("to", req.To.String()).
		Str("geometry", req.Geometry.String()).
		Msg("Starting conversion job")

	if err := p.validator.ValidateRequest(req); err != nil {
		return p.fail(result, err)
	}

	src, err := os.ReadFile(req.InputPath)
	if err != nil {
		return p.fail(result, domain.IOError(fmt.Sprintf("read input %s", req.InputPath), err))
	}
	result.BytesRead = int64(len(src))

	if err := req.Geometry.CheckBuffer(src); err != nil {
		return p.fail(result, domain.SizeMismatchError(req.InputPath, err))
	}

	dst := make([]byte, req.Geometry.BufferSize())
	if p.config.Workers > 1 {
		err = raster.ConvertParallel(ctx, dst, src, req.Geometry, req.From, req.To, p.config.Workers)
	} else {
		err = raster.Convert(dst, src, req.Geometry, req.From, req.To)
	}
	if err != nil {
		return p.fail(result, domain.ConversionError(
			fmt.Sprintf("%s -> %s", req.From, req.To), err))
	}

	if err := writeAtomic(req.OutputPath, dst); err != nil {
		return p.fail(result, domain.IOError(fmt.Sprintf("write output %s", req.OutputPath), err))
	}
	result.BytesWritten = int64(len(dst))

	result.Status = JobStatusSucceeded
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)

	p.logger.Info().
		Str("job_id", result.JobID.String()).
		Str("status", string(result.Status)).
		Int64("bytes_read", result.BytesRead).
		Int64("bytes_written", result.BytesWritten).
		Dur("duration", result.Duration).
		Msg("Conversion job completed")

	return result, nil
}

func (p *Pipeline) fail(result *Result, err error) (*Result, error) {
	result.Status = JobStatusFailed
	result.CompletedAt = time.Now()
	result.Duration = result.CompletedAt.Sub(result.StartedAt)

	p.logger.Error().
		Str("job_id", result.JobID.String()).
		Str("input", result.InputPath).
		Err(err).
		Msg("Conversion job failed")

	return result, err
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bandconv-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

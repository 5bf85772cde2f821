package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rasterops/bandconv/internal/domain"
)

// Validator checks conversion requests before any bytes move.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequest validates a full conversion request.
func (v *Validator) ValidateRequest(req Request) error {
	if err := v.ValidateInputPath(req.InputPath); err != nil {
		return err
	}

	if err := req.Geometry.Validate(); err != nil {
		return domain.GeometryError("invalid geometry", err)
	}

	if strings.TrimSpace(req.OutputPath) == "" {
		return domain.ValidationError("output path cannot be empty", nil)
	}

	inAbs, err := filepath.Abs(req.InputPath)
	if err == nil {
		outAbs, err := filepath.Abs(req.OutputPath)
		if err == nil && inAbs == outAbs {
			return domain.ValidationError("output path must differ from input path", nil)
		}
	}

	if !req.Overwrite {
		if _, err := os.Stat(req.OutputPath); err == nil {
			return domain.ValidationError(
				fmt.Sprintf("output already exists: %s (enable overwrite to replace it)", req.OutputPath), nil)
		}
	}

	return nil
}

// ValidateInputPath validates that a path points to a readable file.
func (v *Validator) ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return domain.ValidationError("input path cannot be empty", nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ValidationError(fmt.Sprintf("file does not exist: %s", path), err)
		}
		return domain.ValidationError(fmt.Sprintf("cannot access file: %s", path), err)
	}

	if info.IsDir() {
		return domain.ValidationError(fmt.Sprintf("path is a directory, not a file: %s", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.ValidationError(fmt.Sprintf("cannot open file: %s", path), err)
	}
	file.Close()

	return nil
}

// File: pkg/combine/aggregate.go
package combine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// AggregateStats counts what AggregateContents appended.
type AggregateStats struct {
	Files      int // Entries written, readable or not
	Unreadable int // Entries whose content was replaced by a placeholder
}

// AggregateOption customises AggregateContents.
type AggregateOption func(*aggregateSettings)

type aggregateSettings struct {
	workingDir string
}

// WithWorkingDir sets the directory content headers are made relative to.
// It defaults to the process working directory.
func WithWorkingDir(dir string) AggregateOption {
	return func(s *aggregateSettings) { s.workingDir = dir }
}

// AggregateContents walks root with the same pruning as RenderTree and appends
// every file that is not excluded by name, carries an included extension and
// is not outputPath itself. A file that cannot be read is written as a
// placeholder; only failures writing to w abort the walk.
func AggregateContents(root, outputPath string, w io.Writer, cfg *Config, logger *zap.Logger, opts ...AggregateOption) (AggregateStats, error) {
	logger = nopIfNil(logger)

	settings := aggregateSettings{}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return AggregateStats{}, fmt.Errorf("failed to determine working directory: %w", err)
		}
		settings.workingDir = wd
	}
	if absWD, err := filepath.Abs(settings.workingDir); err == nil {
		settings.workingDir = absWD
	}

	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return AggregateStats{}, fmt.Errorf("failed to resolve output path: %w", err)
	}

	var stats AggregateStats
	err = walkTree(root, filepath.Base(root), cfg, logger, func(dir dirListing) error {
		for _, name := range dir.Files {
			if cfg.SkipFile(name) || !cfg.IncludesFile(name) {
				continue
			}

			absPath, err := filepath.Abs(filepath.Join(dir.Path, name))
			if err != nil {
				logger.Warn("Failed to resolve file path", zap.String("file", name), zap.Error(err))
				continue
			}
			if absPath == absOutput {
				logger.Debug("Skipping output file", zap.String("file", absPath))
				continue
			}

			readable, err := writeFileEntry(w, absPath, displayPath(absPath, settings.workingDir), logger)
			if err != nil {
				return err
			}
			stats.Files++
			if !readable {
				stats.Unreadable++
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	logger.Debug("Aggregated file contents",
		zap.Int("files", stats.Files),
		zap.Int("unreadable", stats.Unreadable))
	return stats, nil
}

// displayPath is absPath relative to workingDir, or absPath when no relative
// form exists (e.g. a different volume).
func displayPath(absPath, workingDir string) string {
	rel, err := filepath.Rel(workingDir, absPath)
	if err != nil {
		return absPath
	}
	return rel
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

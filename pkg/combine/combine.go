// Package combine bundles a project directory into one text document: an
// indented tree of its directories and files followed by the contents of the
// files whose extensions are allowed.
package combine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run orchestrates one bundling run: it validates the root, creates the
// output, writes the tree and contents sections, then flushes and closes.
// The root is checked before the output is created, so an invalid root never
// leaves an empty document behind.
func Run(opts Options, logger *zap.Logger) (Result, error) {
	logger = nopIfNil(logger)
	startTime := time.Now()

	workingDir, err := resolveWorkingDir(opts.WorkingDir)
	if err != nil {
		logger.Error("Failed to determine working directory", zap.Error(err))
		return Result{}, err
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := resolveRoot(root, workingDir)
	if err != nil {
		logger.Error("Invalid root directory", zap.String("root", root), zap.Error(err))
		return Result{}, err
	}

	outputFile := opts.OutputFile
	if outputFile == "" {
		outputFile = DefaultOutputFile
	}
	if !filepath.IsAbs(outputFile) {
		outputFile = filepath.Join(workingDir, outputFile)
	}
	outputPath := filepath.Clean(outputFile)

	cfg := NewConfig(opts.ExcludeDirs, opts.ExcludeFiles, opts.IncludeExtensions)
	logger.Info("Starting bundle",
		zap.String("root", absRoot),
		zap.String("output", outputPath))
	logger.Debug("Resolved configuration",
		zap.Strings("excludeDirs", cfg.ExcludedDirs()),
		zap.Strings("excludeFiles", cfg.ExcludedFiles()),
		zap.Strings("includeExtensions", cfg.IncludedExtensions()))

	stats, err := writeDocument(outputPath, absRoot, filepath.Base(root), workingDir, cfg, logger)
	if err != nil {
		logger.Error("Failed to write bundle", zap.String("output", outputPath), zap.Error(err))
		return Result{}, fmt.Errorf("bundle failed: %w", err)
	}

	result := Result{
		OutputPath:      outputPath,
		FilesAggregated: stats.Files,
		FilesUnreadable: stats.Unreadable,
		Elapsed:         time.Since(startTime),
	}
	logger.Info("Bundle completed",
		zap.String("outputFile", result.OutputPath),
		zap.Int("totalFiles", result.FilesAggregated),
		zap.Int("unreadableFiles", result.FilesUnreadable),
		zap.Duration("elapsed", result.Elapsed))
	return result, nil
}

func resolveWorkingDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", dir, err)
	}
	return abs, nil
}

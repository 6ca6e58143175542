// File: pkg/combine/execute.go
package combine

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeDocument creates outputPath and fills it with both sections. The
// output exists before the walk starts, so when it lives under root it is
// listed in the tree like any other file (but never aggregated).
func writeDocument(outputPath, absRoot, rootName, workingDir string, cfg *Config, logger *zap.Logger) (stats AggregateStats, err error) {
	if err := ensureDirectory(filepath.Dir(outputPath), logger); err != nil {
		return stats, fmt.Errorf("%w: %v", ErrOutputFile, err)
	}

	outFile, err := createOutputFile(outputPath, logger)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			if err == nil {
				err = fmt.Errorf("%w: %v", ErrOutputFile, closeErr)
			}
		}
	}()

	writer := bufio.NewWriter(outFile)
	stats, err = writeSections(writer, outputPath, absRoot, rootName, workingDir, cfg, logger)
	if err != nil {
		return stats, err
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return stats, fmt.Errorf("%w: failed to flush output: %v", ErrOutputFile, err)
	}
	return stats, nil
}

// writeSections writes the tree section, the divider and the contents section.
func writeSections(w io.Writer, outputPath, absRoot, rootName, workingDir string, cfg *Config, logger *zap.Logger) (AggregateStats, error) {
	if _, err := io.WriteString(w, treeHeading); err != nil {
		return AggregateStats{}, fmt.Errorf("failed to write tree heading: %w", err)
	}
	if err := renderTree(absRoot, rootName, w, cfg, logger); err != nil {
		return AggregateStats{}, fmt.Errorf("failed to render tree: %w", err)
	}

	divider := "\n" + strings.Repeat("-", dividerWidth) + "\n\n"
	if _, err := io.WriteString(w, divider+contentsHeading); err != nil {
		return AggregateStats{}, fmt.Errorf("failed to write contents heading: %w", err)
	}

	stats, err := AggregateContents(absRoot, outputPath, w, cfg, logger, WithWorkingDir(workingDir))
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate contents: %w", err)
	}
	return stats, nil
}

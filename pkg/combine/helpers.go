// File: pkg/combine/helpers.go
package combine

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string, logger *zap.Logger) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}

// createOutputFile creates or truncates the output document.
func createOutputFile(path string, logger *zap.Logger) (*os.File, error) {
	outFile, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOutputFile, err)
	}
	logger.Debug("Created output file", zap.String("file", path))
	return outFile, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// writeClipboard is swapped out in tests; headless hosts have no clipboard.
var writeClipboard = clipboard.WriteAll

// copyFileToClipboard places the contents of path on the system clipboard.
func copyFileToClipboard(path string, logger *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read bundle for clipboard", zap.String("file", path), zap.Error(err))
		return fmt.Errorf("failed to read bundle: %w", err)
	}
	if err := writeClipboard(string(data)); err != nil {
		logger.Error("Failed to copy bundle to clipboard", zap.Error(err))
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logger.Info("Copied bundle to clipboard", zap.Int("bytes", len(data)))
	return nil
}

package combine

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readLossy reads the whole file as UTF-8, replacing every invalid byte
// sequence with U+FFFD instead of failing.
func readLossy(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	decoded, err := io.ReadAll(transform.NewReader(file, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// writeFileEntry appends one aggregated file to w: its header, its content (or
// a placeholder naming the read error) and the entry separator. The returned
// bool reports whether the file could be read; the error is set only when
// writing to w fails.
func writeFileEntry(w io.Writer, filePath, displayPath string, logger *zap.Logger) (bool, error) {
	if _, err := fmt.Fprintf(w, "<%s>\n\n", displayPath); err != nil {
		return false, fmt.Errorf("failed to write header for %s: %w", displayPath, err)
	}

	readable := true
	content, readErr := readLossy(filePath)
	if readErr != nil {
		logger.Warn("Could not read file, writing placeholder",
			zap.String("filePath", filePath),
			zap.Error(readErr))
		content = fmt.Sprintf("[Could not read file: %v]", readErr)
		readable = false
	} else {
		logger.Debug("Read file content",
			zap.String("filePath", filePath),
			zap.Int("contentSizeBytes", len(content)))
	}

	if _, err := io.WriteString(w, content); err != nil {
		return readable, fmt.Errorf("failed to write content for %s: %w", displayPath, err)
	}
	if _, err := io.WriteString(w, entrySeparator); err != nil {
		return readable, fmt.Errorf("failed to write separator for %s: %w", displayPath, err)
	}
	return readable, nil
}

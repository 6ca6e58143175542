// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// RenderTree writes an indented listing of root to w. Every visited directory
// gets a folder line, followed by its sorted files (all extensions, minus
// excluded names) and then its subdirectories in sorted order.
// A root that cannot be read is reported as ErrInvalidRoot.
func RenderTree(root string, w io.Writer, cfg *Config, logger *zap.Logger) error {
	return renderTree(root, filepath.Base(root), w, cfg, nopIfNil(logger))
}

func renderTree(root, rootName string, w io.Writer, cfg *Config, logger *zap.Logger) error {
	logger.Debug("Rendering tree", zap.String("root", root))

	return walkTree(root, rootName, cfg, logger, func(dir dirListing) error {
		indent := strings.Repeat(indentUnit, dir.Depth)
		if _, err := fmt.Fprintf(w, "%s%s %s/\n", indent, folderIcon, dir.Name); err != nil {
			return fmt.Errorf("failed to write tree line for %s: %w", dir.Path, err)
		}

		subindent := indent + indentUnit
		for _, name := range dir.Files {
			if cfg.SkipFile(name) {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s %s\n", subindent, fileIcon, name); err != nil {
				return fmt.Errorf("failed to write tree line for %s: %w", filepath.Join(dir.Path, name), err)
			}
		}
		return nil
	})
}

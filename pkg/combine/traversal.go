// File: pkg/combine/traversal.go
package combine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// dirListing is one directory produced by the walk. Subdirs has already been
// pruned, so nothing below an excluded name is ever read.
type dirListing struct {
	Path    string   // Absolute path of the directory
	Name    string   // Display name (the root keeps its name as given)
	Depth   int      // Number of path components below the root
	Files   []string // Non-directory entry names, sorted byte-wise
	Subdirs []string // Directory names that survived pruning, sorted byte-wise
}

// walkTree visits root and its descendants depth-first, pre-order: a directory
// is handed to visit before any of its subdirectories. Failing to read root is
// an error; failing to read a subdirectory is logged and that subtree skipped.
func walkTree(root, rootName string, cfg *Config, logger *zap.Logger, visit func(dirListing) error) error {
	listing, err := readListing(root, rootName, 0, cfg, logger)
	if err != nil {
		logger.Error("Failed to read root directory", zap.String("root", root), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	return walkListing(listing, cfg, logger, visit)
}

func walkListing(listing dirListing, cfg *Config, logger *zap.Logger, visit func(dirListing) error) error {
	if err := visit(listing); err != nil {
		return err
	}

	for _, name := range listing.Subdirs {
		childPath := filepath.Join(listing.Path, name)
		child, err := readListing(childPath, name, listing.Depth+1, cfg, logger)
		if err != nil {
			logger.Warn("Skipping unreadable directory", zap.String("directory", childPath), zap.Error(err))
			continue
		}
		if err := walkListing(child, cfg, logger, visit); err != nil {
			return err
		}
	}
	return nil
}

// readListing reads one directory and splits its entries into files and
// prunable subdirectories. Symlinks to directories are neither followed nor
// listed.
func readListing(path, name string, depth int, cfg *Config, logger *zap.Logger) (dirListing, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return dirListing{}, err
	}

	listing := dirListing{Path: path, Name: name, Depth: depth}
	for _, entry := range entries {
		entryName := entry.Name()

		if entry.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(filepath.Join(path, entryName)); statErr == nil && info.IsDir() {
				logger.Debug("Not following directory symlink", zap.String("path", filepath.Join(path, entryName)))
				continue
			}
		}

		if entry.IsDir() {
			if cfg.SkipDir(entryName) {
				logger.Debug("Pruning excluded directory", zap.String("directory", filepath.Join(path, entryName)))
				continue
			}
			listing.Subdirs = append(listing.Subdirs, entryName)
			continue
		}
		listing.Files = append(listing.Files, entryName)
	}

	sort.Strings(listing.Files)
	sort.Strings(listing.Subdirs)
	return listing, nil
}

// resolveRoot turns root into an absolute, existing directory path.
func resolveRoot(root, workingDir string) (string, error) {
	if !filepath.IsAbs(root) {
		root = filepath.Join(workingDir, root)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, absRoot)
	}
	return absRoot, nil
}

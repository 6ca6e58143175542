package combine

import (
	"errors"
	"time"
)

// Options holds the parameters of a single bundling run.
type Options struct {
	Root              string   // Directory to walk; relative paths resolve against WorkingDir
	WorkingDir        string   // Base for relative paths and content headers (default: os.Getwd)
	OutputFile        string   // Destination file, created or truncated
	ExcludeDirs       []string // Directory names to prune (nil selects the defaults)
	ExcludeFiles      []string // File names to drop (nil selects the defaults)
	IncludeExtensions []string // Suffixes eligible for aggregation (nil selects the defaults)
}

// Result summarises a completed run.
type Result struct {
	OutputPath      string        // Absolute path of the written document
	FilesAggregated int           // Files whose content (or placeholder) was appended
	FilesUnreadable int           // Files replaced by a read-error placeholder
	Elapsed         time.Duration // Wall time of the run
}

// Errors
var (
	ErrInvalidRoot = errors.New("invalid root directory")
	ErrOutputFile  = errors.New("cannot write output file")
)

// Output document layout.
const (
	treeHeading     = "### 📂 Project File Tree\n\n"
	contentsHeading = "### 📝 File Contents\n\n"
	folderIcon      = "📂"
	fileIcon        = "📄"
	indentUnit      = "    "
	entrySeparator  = "\n\n---\n\n"
	dividerWidth    = 40
)

package main

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"codebundle/cmd"
	"codebundle/pkg/logging"
	"codebundle/pkg/version"
)

func main() {
	if err := logging.Setup(false, "codebundle", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	if err := cmd.Execute(logger); err != nil {
		// --debug may have replaced the global logger during the run.
		zap.L().Fatal("codebundle execution failed", zap.Error(err))
	}

	// Syncing a pipe or /dev/null stderr returns a spurious "invalid argument".
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := zap.L().Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

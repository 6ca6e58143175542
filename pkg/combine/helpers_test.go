package combine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestDirectory lays out files (relative path -> content) under a new
// "proj" directory inside a temp dir and returns the temp dir and proj path.
func createTestDirectory(t *testing.T, files map[string]string) (string, string) {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))

	for relPath, content := range files {
		path := filepath.Join(root, filepath.FromSlash(relPath))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return base, root
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWriteRejected = errors.New("write rejected")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteRejected }

package combine

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRenderTree_Layout(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{
		"top.py":         "",
		"logo.png":       "\x89PNG",
		"src/main.py":    "",
		"src/deep/x.txt": "",
		"lib/util.py":    "",
	})

	var buf bytes.Buffer
	err := RenderTree(root, &buf, NewConfig(nil, nil, nil), zaptest.NewLogger(t))
	require.NoError(t, err)

	expected := "" +
		"📂 proj/\n" +
		"    📄 logo.png\n" +
		"    📄 top.py\n" +
		"    📂 lib/\n" +
		"        📄 util.py\n" +
		"    📂 src/\n" +
		"        📄 main.py\n" +
		"        📂 deep/\n" +
		"            📄 x.txt\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderTree_PrunesExcludedAndDotDirectories(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{
		"a.py":                     "x=1",
		"b.bin":                    "zz",
		"node_modules/ignored.py":  "",
		"node_modules/pkg/deep.js": "",
		".git/HEAD":                "",
		".cache/data.txt":          "",
	})

	var buf bytes.Buffer
	require.NoError(t, RenderTree(root, &buf, NewConfig(nil, nil, nil), zaptest.NewLogger(t)))

	assert.Equal(t, "📂 proj/\n    📄 a.py\n    📄 b.bin\n", buf.String())
	assert.NotContains(t, buf.String(), "node_modules")
	assert.NotContains(t, buf.String(), "ignored.py")
	assert.NotContains(t, buf.String(), ".git")
}

func TestRenderTree_OmitsExcludedFilesButKeepsDotFiles(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{
		"yarn.lock":   "",
		".gitignore":  "",
		".prettierrc": "",
		"index.js":    "",
	})

	var buf bytes.Buffer
	require.NoError(t, RenderTree(root, &buf, NewConfig(nil, nil, nil), nil))

	assert.Equal(t, "📂 proj/\n    📄 .prettierrc\n    📄 index.js\n", buf.String())
}

func TestRenderTree_SortsByRawName(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{
		"a.py":  "",
		"B.py":  "",
		"_x.py": "",
	})

	var buf bytes.Buffer
	require.NoError(t, RenderTree(root, &buf, NewConfig(nil, nil, nil), nil))

	assert.Equal(t, "📂 proj/\n    📄 B.py\n    📄 _x.py\n    📄 a.py\n", buf.String())
}

func TestRenderTree_DotRootRendersAsDot(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{"a.py": ""})

	var buf bytes.Buffer
	require.NoError(t, renderTree(root, filepath.Base("."), &buf, NewConfig(nil, nil, nil), zaptest.NewLogger(t)))

	assert.Equal(t, "📂 ./\n    📄 a.py\n", buf.String())
}

func TestRenderTree_InvalidRoot(t *testing.T) {
	base, root := createTestDirectory(t, map[string]string{"a.py": ""})

	var buf bytes.Buffer
	err := RenderTree(filepath.Join(base, "missing"), &buf, NewConfig(nil, nil, nil), nil)
	assert.ErrorIs(t, err, ErrInvalidRoot)
	assert.Empty(t, buf.String())

	err = RenderTree(filepath.Join(root, "a.py"), &buf, NewConfig(nil, nil, nil), nil)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestRenderTree_SkipsUnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	_, root := createTestDirectory(t, map[string]string{
		"a.py":         "",
		"locked/in.py": "",
		"open/ok.py":   "",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	var buf bytes.Buffer
	require.NoError(t, RenderTree(root, &buf, NewConfig(nil, nil, nil), zaptest.NewLogger(t)))

	assert.Equal(t, "📂 proj/\n    📄 a.py\n    📂 open/\n        📄 ok.py\n", buf.String())
}

func TestRenderTree_DoesNotFollowDirectorySymlinks(t *testing.T) {
	base, root := createTestDirectory(t, map[string]string{"a.py": ""})
	outside := filepath.Join(base, "outside")
	require.NoError(t, os.MkdirAll(outside, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.py"), nil, 0o644))
	if err := os.Symlink(outside, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	var buf bytes.Buffer
	require.NoError(t, RenderTree(root, &buf, NewConfig(nil, nil, nil), nil))

	assert.Equal(t, "📂 proj/\n    📄 a.py\n", buf.String())
}

func TestRenderTree_WriteFailure(t *testing.T) {
	_, root := createTestDirectory(t, map[string]string{"a.py": ""})

	err := RenderTree(root, failingWriter{}, NewConfig(nil, nil, nil), nil)
	assert.ErrorIs(t, err, errWriteRejected)
}

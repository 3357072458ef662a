package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("int main() { return 0; }\n"), 0644))
}

func TestScanPathCollectsSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.cpp"))
	writeFile(t, filepath.Join(dir, "sub", "b.cc"))
	writeFile(t, filepath.Join(dir, "readme.txt"))
	writeFile(t, filepath.Join(dir, "build", "generated.cpp"))

	s := NewScanner(nil)
	files, err := s.ScanPath(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"a.cpp", "b.cc"}, names)
}

func TestScanPathSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cpp")
	writeFile(t, path)

	s := NewScanner(nil)
	files, err := s.ScanPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)

	other := filepath.Join(dir, "notes.md")
	writeFile(t, other)
	files, err = s.ScanPath(other)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanPathsConcatenates(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "a.cpp"))
	writeFile(t, filepath.Join(dirB, "b.cpp"))

	s := NewScanner(nil)
	files, err := s.ScanPaths([]string{dirA, dirB})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.cpp"))
	writeFile(t, filepath.Join(dir, "vendor", "skip.cpp"))

	s := NewScanner([]string{"vendor/**"})
	files, err := s.ScanPath(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "keep.cpp", filepath.Base(files[0]))
}

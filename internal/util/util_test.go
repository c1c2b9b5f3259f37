package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	want := filepath.Join(wd, "../../")
	fi1, err := os.Stat(want)
	require.NoError(t, err)

	root, err := ProjectRoot()
	require.NoError(t, err)
	fi2, err := os.Stat(root)
	require.NoError(t, err)
	if !os.SameFile(fi1, fi2) {
		t.Fatalf("ProjectRoot() = %q; want: %q", root, want)
	}
}

func writeModfile(t *testing.T, dir, module string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	data := []byte("module " + module + "\n\ngo 1.24\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), data, 0644))
}

func TestFindRootNested(t *testing.T) {
	root := t.TempDir()
	writeModfile(t, root, ModulePath)
	// A nested module with a different path must be skipped.
	nested := filepath.Join(root, "internal", "tool")
	writeModfile(t, nested, "example.com/tool")
	child := filepath.Join(nested, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0755))

	dir, err := findRoot(child, ModulePath)
	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

func TestFindRootInvalid(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("not a go.mod"), 0644))
	_, err := findRoot(root, ModulePath)
	assert.Error(t, err)
}

func TestFindRootRelative(t *testing.T) {
	_, err := findRoot("testdata", ModulePath)
	assert.Error(t, err)
}

func TestFindRootSkipsInvalid(t *testing.T) {
	root := t.TempDir()
	writeModfile(t, root, ModulePath)
	child := filepath.Join(root, "broken")
	require.NoError(t, os.MkdirAll(child, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(child, "go.mod"), []byte("not a go.mod"), 0644))

	dir, err := findRoot(child, ModulePath)
	require.NoError(t, err)
	assert.Equal(t, root, dir)
}

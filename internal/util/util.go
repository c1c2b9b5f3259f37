// Package util locates the strmatch checkout for development tools.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModulePath is the import path of the strmatch module.
const ModulePath = "github.com/charlievieth/strmatch"

// ProjectRoot returns the directory of the strmatch go.mod file, searching
// upwards from the working directory.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(wd, ModulePath)
}

// findRoot returns the closest directory at or above dir whose go.mod
// declares module path. go.mod files of other modules, including nested
// ones and files that do not parse, are passed over.
func findRoot(dir, path string) (string, error) {
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("util: directory must be absolute: %q", dir)
	}
	for d := filepath.Clean(dir); ; {
		data, err := os.ReadFile(filepath.Join(d, "go.mod"))
		if err == nil && modfile.ModulePath(data) == path {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", fmt.Errorf("util: no go.mod for module %q at or above: %q", path, dir)
}

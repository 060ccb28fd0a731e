package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// resolveDir follows symlinks on root and checks that it names a directory.
func resolveDir(root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}

	return resolved, nil
}

// listDir returns the entries of dir sorted by name.
func listDir(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	return entries, nil
}

// isDirEntry reports whether the entry at localPath is a directory, looking
// through symlinks. A dangling link is an error.
func isDirEntry(localPath string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.IsDir(), nil
	}

	info, err := os.Stat(localPath)
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

func isSymlink(d fs.DirEntry) bool {
	return d.Type()&fs.ModeSymlink != 0
}

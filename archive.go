package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

const archiveSuffix = ".zip"

var ErrIllegalArchivePath = errors.New("illegal file path in archive")

func isArchive(name string) bool {
	return strings.HasSuffix(name, archiveSuffix)
}

// extractArchive unpacks the zip at src into dest, which must already exist.
func extractArchive(src, dest string) (err error) {
	dest = filepath.Clean(dest) + string(os.PathSeparator)

	reader, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", src, err)
	}
	defer func() {
		if closeErr := reader.Close(); err == nil {
			err = closeErr
		}
	}()

	for _, entry := range reader.File {
		if err := extractEntry(entry, dest); err != nil {
			return fmt.Errorf("extracting %s from %s: %w", entry.Name, src, err)
		}
	}

	return nil
}

func extractEntry(entry *zip.File, dest string) (err error) {
	target := filepath.Join(dest, entry.Name)
	if target+string(os.PathSeparator) == dest {
		return nil
	}
	if !strings.HasPrefix(target, dest) {
		return fmt.Errorf("%w: %s", ErrIllegalArchivePath, entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = io.Copy(out, rc)
	return err
}

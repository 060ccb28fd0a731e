package main

import (
	"context"
	"fmt"
	"os"
)

// RemoteFilesystem is the hierarchical namespace an upload is mirrored into.
// Paths are slash separated and relative to the filesystem (or bucket) root.
type RemoteFilesystem interface {
	CreateDirectory(ctx context.Context, path string) error
	CreateFile(ctx context.Context, path string) error
	WriteFile(ctx context.Context, path string, file *os.File) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// OverwritePolicy decides what happens when a destination file already exists.
type OverwritePolicy int

const (
	PolicyOverwrite OverwritePolicy = iota
	PolicyFail
	PolicySkip
)

func ParseOverwritePolicy(s string) (OverwritePolicy, error) {
	switch s {
	case "", "overwrite":
		return PolicyOverwrite, nil
	case "fail":
		return PolicyFail, nil
	case "skip":
		return PolicySkip, nil
	}

	return PolicyOverwrite, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p OverwritePolicy) String() string {
	switch p {
	case PolicyFail:
		return "fail"
	case PolicySkip:
		return "skip"
	default:
		return "overwrite"
	}
}

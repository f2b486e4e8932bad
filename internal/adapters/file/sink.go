package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aretw0/confgen/pkg/domain"
)

// Sink implements ports.OutputSink on the local filesystem.
type Sink struct {
	Perm os.FileMode
}

// NewSink creates a Sink writing new files with mode 0644.
func NewSink() *Sink {
	return &Sink{Perm: 0644}
}

// Write replaces path with text atomically.
// It writes to a temporary file in the same directory, syncs it and renames it
// over the destination, so a failed write leaves any previous file untouched.
// An existing destination keeps its mode, and a symlink is written through to
// its target so the link itself survives.
func (s *Sink) Write(ctx context.Context, path string, text string) error {
	if err := ctx.Err(); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	if err := s.write(path, text); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func (s *Sink) write(path string, text string) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}

	target, perm, err := s.resolveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := io.WriteString(tmpFile, text); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// resolveTarget follows symlinks in path and returns the file to replace
// along with the mode it should end up with.
func (s *Sink) resolveTarget(path string) (string, os.FileMode, error) {
	perm := s.Perm
	if perm == 0 {
		perm = 0644
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, perm, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat output: %w", err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("output path is a directory")
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve output: %w", err)
	}
	return target, info.Mode().Perm(), nil
}

// WriterSink implements ports.OutputSink by printing text to W, ignoring the path.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Write(ctx context.Context, path string, text string) error {
	if _, err := io.WriteString(s.W, text); err != nil {
		return &domain.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

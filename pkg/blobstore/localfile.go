package blobstore

import (
	"context"
	"fmt"
	"os"
)

// LocalFile is a RangeReader backed by an *os.File opened for reading.
// This is the common case: a bag on local disk.
type LocalFile struct {
	f    *os.File
	size int64
}

// OpenLocalFile opens path and stats it to learn its size up front, since
// RangeReader.Len must be known without issuing a read.
func OpenLocalFile(path string) (*LocalFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blobstore/localfile: opening %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("blobstore/localfile: statting %s: %w", path, err)
	}
	return &LocalFile{f: f, size: info.Size()}, nil
}

// Len implements RangeReader.
func (l *LocalFile) Len() int64 { return l.size }

// ReadRange implements RangeReader using os.File.ReadAt, which is safe
// for concurrent use even though a single bag reader is single-threaded
// (spec.md §5).
func (l *LocalFile) ReadRange(_ context.Context, off, n int64) ([]byte, error) {
	if err := CheckBounds(l.size, off, n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := l.f.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("blobstore/localfile: reading range: %w", err)
	}
	return buf, nil
}

// Close closes the underlying file.
func (l *LocalFile) Close() error {
	return l.f.Close()
}

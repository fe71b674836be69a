// Package blobstore is the concrete realization of the "Range reader"
// boundary from spec.md §4.1: a key-addressable blob store that can
// return an exact byte range by absolute offset. pkg/rosbag depends only
// on the RangeReader interface declared here, never on a concrete
// backend, so the core stays storage-agnostic per spec.md §1's "out of
// scope: the blob-storage abstraction... treated as an opaque range-read
// interface."
package blobstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a requested range would exceed the
// object's length, distinguishing that case from transport errors
// (spec.md §6).
var ErrOutOfBounds = errors.New("blobstore: out of bounds")

// RangeReader is the sole I/O primitive the core uses. It is stateless
// with respect to a read position: every call is a fresh, independent
// fetch (spec.md §4.1).
type RangeReader interface {
	// Len returns the total object size, known at open time.
	Len() int64

	// ReadRange fetches exactly n bytes starting at off. It returns
	// ErrOutOfBounds (wrapped) if off+n exceeds Len(); any other error
	// is a transport failure.
	ReadRange(ctx context.Context, off, n int64) ([]byte, error)
}

// CheckBounds is a helper concrete RangeReader implementations should
// call before issuing their underlying fetch, so every backend reports
// ErrOutOfBounds the same way.
func CheckBounds(size, off, n int64) error {
	if off < 0 || n < 0 || off+n > size {
		return fmt.Errorf("%w: offset=%d len=%d size=%d", ErrOutOfBounds, off, n, size)
	}
	return nil
}

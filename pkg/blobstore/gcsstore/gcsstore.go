// Package gcsstore implements blobstore.RangeReader against a Google Cloud
// Storage object, grounded the same way s3store is on the teacher's
// filetransfer clients: a thin adapter from a cloud SDK onto the narrow
// range-read interface the core depends on.
package gcsstore

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/rosbagio/rosbag/pkg/blobstore"
)

// Store is a blobstore.RangeReader backed by a single GCS object.
type Store struct {
	obj  *storage.ObjectHandle
	size int64
}

// Open creates a GCS client, fetches object attributes to learn its size,
// and returns a ready Store.
func Open(ctx context.Context, bucket, object string) (*Store, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("blobstore/gcsstore: creating client: %w", err)
	}
	obj := client.Bucket(bucket).Object(object)

	attrs, err := obj.Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("blobstore/gcsstore: fetching attrs gs://%s/%s: %w", bucket, object, err)
	}

	return &Store{obj: obj, size: attrs.Size}, nil
}

// Len implements blobstore.RangeReader.
func (s *Store) Len() int64 { return s.size }

// ReadRange implements blobstore.RangeReader via storage.ObjectHandle's
// NewRangeReader, the GCS client library's native ranged-read primitive.
func (s *Store) ReadRange(ctx context.Context, off, n int64) ([]byte, error) {
	if err := blobstore.CheckBounds(s.size, off, n); err != nil {
		return nil, err
	}

	r, err := s.obj.NewRangeReader(ctx, off, n)
	if err != nil {
		return nil, fmt.Errorf("blobstore/gcsstore: opening range reader: %w", err)
	}
	defer r.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("blobstore/gcsstore: reading range body: %w", err)
	}
	return buf, nil
}

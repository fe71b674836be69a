// Package httpstore implements blobstore.RangeReader over HTTP Range:
// requests, grounded on the teacher's own retrying HTTP client pattern
// (core/internal/retryableclient wraps hashicorp/go-retryablehttp with
// a default retry policy); range-read backends benefit from the same
// retry-on-transient-failure behavior since a bag can be read from a
// store with intermittent connectivity.
package httpstore

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/rosbagio/rosbag/pkg/blobstore"
)

// Store is a blobstore.RangeReader backed by HTTP Range requests against
// a single URL.
type Store struct {
	client *retryablehttp.Client
	url    string
	size   int64
}

// Open issues a HEAD request to learn the object's size, then returns a
// Store ready for ranged GETs against url.
func Open(ctx context.Context, url string) (*Store, error) {
	client := retryablehttp.NewClient()
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, fmt.Errorf("blobstore/httpstore: building HEAD request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blobstore/httpstore: HEAD %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blobstore/httpstore: HEAD %s: unexpected status %s", url, resp.Status)
	}

	return &Store{client: client, url: url, size: resp.ContentLength}, nil
}

// Len implements blobstore.RangeReader.
func (s *Store) Len() int64 { return s.size }

// ReadRange implements blobstore.RangeReader using a Range: bytes=off-end
// header, matching the HTTP range-read contract spec.md §4.1 describes as
// one possible storage backend.
func (s *Store) ReadRange(ctx context.Context, off, n int64) ([]byte, error) {
	if err := blobstore.CheckBounds(s.size, off, n); err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("blobstore/httpstore: building GET request: %w", err)
	}
	req.Header.Set("Range", fmt.Sprintf("bytes=%d-%d", off, off+n-1))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("blobstore/httpstore: GET %s: %w", s.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusPartialContent && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blobstore/httpstore: GET %s: unexpected status %s", s.url, resp.Status)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(resp.Body, buf); err != nil {
		return nil, fmt.Errorf("blobstore/httpstore: reading range body: %w", err)
	}
	return buf, nil
}

// Package s3store implements blobstore.RangeReader against an S3 object,
// grounded on the teacher's artifact-storage clients in core/internal/filetransfer,
// which likewise wrap an AWS SDK v2 service client behind a narrow
// range-read-style interface.
package s3store

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rosbagio/rosbag/pkg/blobstore"
)

// Store is a blobstore.RangeReader backed by a single S3 object.
type Store struct {
	client *s3.Client
	bucket string
	key    string
	size   int64
}

// Open loads the default AWS config, HEADs the object to learn its size,
// and returns a ready Store.
func Open(ctx context.Context, bucket, key string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("blobstore/s3store: loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	head, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("blobstore/s3store: HeadObject s3://%s/%s: %w", bucket, key, err)
	}

	return &Store{
		client: client,
		bucket: bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Len implements blobstore.RangeReader.
func (s *Store) Len() int64 { return s.size }

// ReadRange implements blobstore.RangeReader using GetObject's Range
// parameter, the S3 analogue of an HTTP Range: header.
func (s *Store) ReadRange(ctx context.Context, off, n int64) ([]byte, error) {
	if err := blobstore.CheckBounds(s.size, off, n); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, off+n-1)),
	})
	if err != nil {
		return nil, fmt.Errorf("blobstore/s3store: GetObject s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(out.Body, buf); err != nil {
		return nil, fmt.Errorf("blobstore/s3store: reading range body: %w", err)
	}
	return buf, nil
}

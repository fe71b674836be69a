// Package azurestore implements blobstore.RangeReader against an Azure
// Blob Storage blob, grounded the same way s3store and gcsstore are on
// the teacher's filetransfer clients — here on
// core/internal/filetransfer/file_transfer_azure.go, which wraps the
// Azure SDK's azblob.Client behind the same kind of narrow interface.
package azurestore

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"github.com/rosbagio/rosbag/pkg/blobstore"
)

// Store is a blobstore.RangeReader backed by a single Azure blob,
// addressed by account URL, container, and blob name.
type Store struct {
	client    *azblob.Client
	container string
	blob      string
	size      int64
}

// Open authenticates against accountURL using the ambient Azure
// credential chain (environment, managed identity, or Azure CLI login,
// in that order), fetches the blob's properties to learn its size, and
// returns a ready Store.
func Open(ctx context.Context, accountURL, container, blobName string) (*Store, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("blobstore/azurestore: resolving credential: %w", err)
	}
	client, err := azblob.NewClient(accountURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("blobstore/azurestore: creating client: %w", err)
	}

	props, err := client.ServiceClient().
		NewContainerClient(container).
		NewBlobClient(blobName).
		GetProperties(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("blobstore/azurestore: GetProperties %s/%s/%s: %w", accountURL, container, blobName, err)
	}

	return &Store{
		client:    client,
		container: container,
		blob:      blobName,
		size:      derefInt64(props.ContentLength),
	}, nil
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

// Len implements blobstore.RangeReader.
func (s *Store) Len() int64 { return s.size }

// ReadRange implements blobstore.RangeReader using DownloadBuffer with
// an explicit byte range, the azblob client's ranged-read primitive
// (the download-side counterpart to the teacher's blockblob upload
// stream).
func (s *Store) ReadRange(ctx context.Context, off, n int64) ([]byte, error) {
	if err := blobstore.CheckBounds(s.size, off, n); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	_, err := s.client.DownloadBuffer(ctx, s.container, s.blob, buf, &azblob.DownloadBufferOptions{
		Range: blob.HTTPRange{Offset: off, Count: n},
	})
	if err != nil {
		return nil, fmt.Errorf("blobstore/azurestore: DownloadBuffer %s/%s: %w", s.container, s.blob, err)
	}
	return buf, nil
}

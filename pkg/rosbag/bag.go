package rosbag

import (
	"context"
	"fmt"

	"github.com/rosbagio/rosbag/pkg/blobstore"
)

// magic is the fixed 13-byte version string every bag starts with
// (spec.md §3).
const magic = "#ROSBAG V2.0\n"

// headerRegionLen is the fixed size of the leading magic+BagHeader region.
// The BagHeader record's data payload pads it out to this size so the
// chunk section always starts at a stable offset (spec.md §4.8).
const headerRegionLen = 4096

// Bag is an opened ROS bag: a storage handle plus the fixed metadata
// parsed from its BagHeader record. It holds no section data in memory;
// ChunkRecords and IndexRecords each fetch their byte range from storage
// on demand (spec.md §9's streaming resolution).
type Bag struct {
	r blobstore.RangeReader

	startPos   uint64
	indexPos   uint64
	connCount  uint32
	chunkCount uint32
}

// Open verifies the magic header, reads the BagHeader record, and returns
// a Bag ready for section access. r must outlive the returned Bag.
func Open(ctx context.Context, r blobstore.RangeReader) (*Bag, error) {
	if r.Len() < int64(len(magic)) {
		return nil, newErr(KindInvalidHeader, "bag shorter than magic header")
	}

	magicBytes, err := r.ReadRange(ctx, 0, int64(len(magic)))
	if err != nil {
		return nil, fmt.Errorf("rosbag: reading magic header: %w", err)
	}
	if string(magicBytes) != magic {
		return nil, newErr(KindInvalidHeader, "magic header mismatch")
	}

	if r.Len() < headerRegionLen {
		return nil, newErr(KindInvalidHeader, "bag shorter than header region")
	}
	headerRegion, err := r.ReadRange(ctx, int64(len(magic)), headerRegionLen-int64(len(magic)))
	if err != nil {
		return nil, fmt.Errorf("rosbag: reading bag header region: %w", err)
	}

	c := newCursor(headerRegion)
	rec, err := readRecord(c)
	if err != nil {
		return nil, err
	}
	bh, ok := rec.(*bagHeaderRecord)
	if !ok {
		return nil, unexpectedRecord(KindInvalidRecord, rec.Kind())
	}

	return &Bag{
		r:          r,
		startPos:   headerRegionLen,
		indexPos:   bh.IndexPos,
		connCount:  bh.ConnCount,
		chunkCount: bh.ChunkCount,
	}, nil
}

// ConnCount returns the number of connections recorded in the BagHeader.
func (b *Bag) ConnCount() uint32 { return b.connCount }

// ChunkCount returns the number of chunks recorded in the BagHeader.
func (b *Bag) ChunkCount() uint32 { return b.chunkCount }

// IndexPos returns the absolute offset of the index section's first byte,
// as recorded in the BagHeader.
func (b *Bag) IndexPos() uint64 { return b.indexPos }

// ChunkRecords fetches the chunk section — the byte range from just past
// the header region to index_pos — and returns an iterator over it.
func (b *Bag) ChunkRecords(ctx context.Context) (*ChunkRecordsIterator, error) {
	if b.indexPos < b.startPos {
		return nil, newErr(KindOutOfBounds, "index_pos precedes chunk section start")
	}
	n := int64(b.indexPos - b.startPos)
	data, err := b.r.ReadRange(ctx, int64(b.startPos), n)
	if err != nil {
		return nil, fmt.Errorf("rosbag: reading chunk section: %w", err)
	}
	return newChunkRecordsIterator(data, b.startPos), nil
}

// IndexRecords fetches the index section — the byte range from index_pos
// to end of file — and returns an iterator over it.
func (b *Bag) IndexRecords(ctx context.Context) (*IndexRecordsIterator, error) {
	size := b.r.Len()
	if int64(b.indexPos) > size {
		return nil, newErr(KindOutOfBounds, "index_pos past end of file")
	}
	n := size - int64(b.indexPos)
	data, err := b.r.ReadRange(ctx, int64(b.indexPos), n)
	if err != nil {
		return nil, fmt.Errorf("rosbag: reading index section: %w", err)
	}
	return newIndexRecordsIterator(data, b.indexPos), nil
}

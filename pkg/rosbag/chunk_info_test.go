package rosbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadChunkInfoEntriesRoundTrip(t *testing.T) {
	entries := append(ChunkInfoEntryBytes(0, 3), ChunkInfoEntryBytes(1, 7)...)
	rec := ChunkInfoRecordBytes(1, 4096, 1, 0, 2, 0, 2, entries)
	header, rest := splitRecord(t, rec)
	ci, err := readChunkInfo(header, newCursor(rest))
	assert.NoError(t, err)
	assert.Equal(t, uint64(4096), ci.ChunkPos)
	assert.Equal(t, uint64(1_000_000_000), ci.StartTime)
	assert.Equal(t, uint64(2_000_000_000), ci.EndTime)

	it := ci.Entries()
	e1, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), e1.ConnID)
	assert.Equal(t, uint32(3), e1.Count)

	e2, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), e2.Count)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestReadChunkInfoRejectsUnsupportedVersion(t *testing.T) {
	rec := ChunkInfoRecordBytes(2, 0, 0, 0, 0, 0, 0, nil)
	header, rest := splitRecord(t, rec)
	_, err := readChunkInfo(header, newCursor(rest))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindUnsupportedVersion))
}

func TestReadChunkInfoRejectsCountMismatch(t *testing.T) {
	entries := ChunkInfoEntryBytes(0, 1)
	rec := ChunkInfoRecordBytes(1, 0, 0, 0, 0, 0, 3, entries)
	header, rest := splitRecord(t, rec)
	_, err := readChunkInfo(header, newCursor(rest))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindInvalidRecord))
}

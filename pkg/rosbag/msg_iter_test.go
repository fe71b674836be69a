package rosbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRecordsIteratorAllowsMessageDataAndConnection(t *testing.T) {
	conn := ConnectionRecordBytes(1, "/a", "/a", "t", validMD5(), "def", "", nil)
	msg := MessageDataRecordBytes(1, 1, 0, []byte("payload"))
	data := append(append([]byte(nil), conn...), msg...)

	it := newMessageRecordsIterator(data)
	r1, err := it.Next()
	assert.NoError(t, err)
	_, ok := r1.(*Connection)
	assert.True(t, ok)

	r2, err := it.Next()
	assert.NoError(t, err)
	_, ok = r2.(*MessageData)
	assert.True(t, ok)

	r3, err := it.Next()
	assert.NoError(t, err)
	assert.Nil(t, r3)
}

func TestMessageRecordsIteratorRejectsChunk(t *testing.T) {
	chunk := ChunkRecordBytes("none", nil, 0)
	it := newMessageRecordsIterator(chunk)
	_, err := it.Next()
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindUnexpectedMessageRecord))
}

func TestMessageRecordsIteratorSeekToIndexedOffset(t *testing.T) {
	msg1 := MessageDataRecordBytes(1, 1, 0, []byte("a"))
	msg2 := MessageDataRecordBytes(2, 2, 0, []byte("bb"))
	data := append(append([]byte(nil), msg1...), msg2...)

	it := newMessageRecordsIterator(data)
	assert.NoError(t, it.Seek(uint32(len(msg1))))

	rec, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), rec.(*MessageData).ConnID)
}

package rosbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindOpRequiresExactlyOneOpField(t *testing.T) {
	op, err := findOp(Header(F("op", []byte{0x02})))
	assert.NoError(t, err)
	assert.Equal(t, byte(0x02), op)

	_, err = findOp(Header(F("conn", U32(1))))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindInvalidRecord))

	_, err = findOp(Header(F("op", []byte{0x02}), F("op", []byte{0x03})))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindInvalidHeader))

	_, err = findOp(Header(F("op", []byte{0x02, 0x03})))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindInvalidRecord))
}

func TestReadRecordDispatchesOnOp(t *testing.T) {
	rec := MessageDataRecordBytes(1, 0, 0, []byte("x"))
	got, err := readRecord(newCursor(rec))
	assert.NoError(t, err)
	_, ok := got.(*MessageData)
	assert.True(t, ok)
}

func TestReadRecordUnrecognizedOp(t *testing.T) {
	header := Header(F("op", []byte{0xaa}))
	rec := Rec(header, nil)
	_, err := readRecord(newCursor(rec))
	assert.Error(t, err)
	assert.True(t, errIsKind(err, KindInvalidRecord))
}

func TestReadRecordAdvancesCursorPastRecord(t *testing.T) {
	first := MessageDataRecordBytes(1, 0, 0, []byte("a"))
	second := MessageDataRecordBytes(2, 0, 0, []byte("bb"))
	c := newCursor(append(first, second...))

	r1, err := readRecord(c)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1), r1.(*MessageData).ConnID)

	r2, err := readRecord(c)
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), r2.(*MessageData).ConnID)

	assert.Equal(t, uint64(0), c.left())
}

package rosbag

// MessageRecordsIterator walks a Chunk's decompressed contents, which can
// only hold MessageData and Connection records (spec.md §4.7). It shares
// the Chunk's decompressed buffer rather than copying it.
type MessageRecordsIterator struct {
	cur *cursor
}

func newMessageRecordsIterator(data []byte) *MessageRecordsIterator {
	return &MessageRecordsIterator{cur: newCursor(data)}
}

// Next returns the next record inside the chunk, or (nil, nil) once
// exhausted.
func (it *MessageRecordsIterator) Next() (Record, error) {
	if it.cur.left() == 0 {
		return nil, nil
	}
	rec, err := readRecord(it.cur)
	if err != nil {
		return nil, err
	}
	switch rec.(type) {
	case *MessageData, *Connection:
		return rec, nil
	default:
		return nil, unexpectedRecord(KindUnexpectedMessageRecord, rec.Kind())
	}
}

// Seek jumps to a byte offset relative to the start of the chunk's
// decompressed buffer, as stored in an IndexData entry (spec.md §4.7).
func (it *MessageRecordsIterator) Seek(offset uint32) error {
	return it.cur.seek(uint64(offset))
}

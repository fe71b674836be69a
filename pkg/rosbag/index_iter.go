package rosbag

// IndexRecordsIterator walks the index section of a bag: the byte range
// from index_pos to end-of-file. Only IndexData, Connection, and
// ChunkInfo records are allowed there (spec.md §4.7).
type IndexRecordsIterator struct {
	cur    *cursor
	offset uint64
}

func newIndexRecordsIterator(data []byte, offset uint64) *IndexRecordsIterator {
	return &IndexRecordsIterator{cur: newCursor(data), offset: offset}
}

// Next returns the next record in the index section, or (nil, nil) once
// exhausted.
func (it *IndexRecordsIterator) Next() (Record, error) {
	if it.cur.left() == 0 {
		return nil, nil
	}
	rec, err := readRecord(it.cur)
	if err != nil {
		return nil, err
	}
	switch rec.(type) {
	case *IndexData, *Connection, *ChunkInfo:
		return rec, nil
	default:
		return nil, unexpectedRecord(KindUnexpectedIndexSectionRecord, rec.Kind())
	}
}

// Seek jumps to an absolute file offset. See ChunkRecordsIterator.Seek for
// the alignment contract.
func (it *IndexRecordsIterator) Seek(pos uint64) error {
	if pos < it.offset {
		return newErr(KindOutOfBounds, "seek before start of index section")
	}
	return it.cur.seek(pos - it.offset)
}

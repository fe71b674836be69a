package rosbag

// ChunkRecordsIterator walks the chunk section of a bag: the byte range
// from immediately after the 4096-byte bag-header region to index_pos.
// Only Chunk and IndexData records are allowed there (spec.md §4.7).
type ChunkRecordsIterator struct {
	cur    *cursor
	offset uint64
}

func newChunkRecordsIterator(data []byte, offset uint64) *ChunkRecordsIterator {
	return &ChunkRecordsIterator{cur: newCursor(data), offset: offset}
}

// Next returns the next record in the chunk section, or (nil, nil) once
// exhausted. A non-nil error does not implicitly stop iteration, but the
// cursor position may be unreliable afterward (spec.md §4.7, §4.9).
func (it *ChunkRecordsIterator) Next() (Record, error) {
	if it.cur.left() == 0 {
		return nil, nil
	}
	rec, err := readRecord(it.cur)
	if err != nil {
		return nil, err
	}
	switch rec.(type) {
	case *Chunk, *IndexData:
		return rec, nil
	default:
		return nil, unexpectedRecord(KindUnexpectedChunkSectionRecord, rec.Kind())
	}
}

// Seek jumps to an absolute file offset, typically taken from a
// ChunkInfo.ChunkPos. The caller is responsible for aligning pos to a
// record boundary (spec.md §4.7, §9); an unaligned seek surfaces as a
// parse error on the next Next() call rather than undefined behavior.
func (it *ChunkRecordsIterator) Seek(pos uint64) error {
	if pos < it.offset {
		return newErr(KindOutOfBounds, "seek before start of chunk section")
	}
	return it.cur.seek(pos - it.offset)
}

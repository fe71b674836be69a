package rosbag

import "fmt"

// ChunkInfo is a high-level index of one Chunk record (op 0x06): its
// absolute file offset and, per connection, how many messages it holds.
type ChunkInfo struct {
	// Ver is the record format version; only 1 is supported.
	Ver uint32
	// ChunkPos is the absolute byte offset of the Chunk record this
	// entry describes, in the chunk section.
	ChunkPos uint64
	// StartTime is the earliest message timestamp in the chunk.
	StartTime uint64
	// EndTime is the latest message timestamp in the chunk.
	EndTime uint64
	data    []byte
}

// Kind implements Record.
func (*ChunkInfo) Kind() string { return "ChunkInfo" }

// ChunkInfoEntry gives the message count for one connection in the chunk.
type ChunkInfoEntry struct {
	ConnID uint32
	Count  uint32
}

// Entries returns an iterator over this record's per-connection counts.
func (ci *ChunkInfo) Entries() *ChunkInfoEntries {
	return &ChunkInfoEntries{cur: newCursor(ci.data)}
}

// ChunkInfoEntries iterates the fixed-width entries packed into a
// ChunkInfo record's data payload, 8 bytes each (spec.md §3).
type ChunkInfoEntries struct {
	cur *cursor
}

// Next returns the next entry, or ok=false once exhausted.
func (it *ChunkInfoEntries) Next() (entry ChunkInfoEntry, ok bool) {
	if it.cur.left() == 0 {
		return ChunkInfoEntry{}, false
	}
	connID, err := it.cur.nextU32()
	if err != nil {
		return ChunkInfoEntry{}, false
	}
	count, err := it.cur.nextU32()
	if err != nil {
		return ChunkInfoEntry{}, false
	}
	return ChunkInfoEntry{ConnID: connID, Count: count}, true
}

func readChunkInfo(header []byte, c *cursor) (*ChunkInfo, error) {
	var ver uint32
	var verSet bool
	var chunkPos uint64
	var chunkPosSet bool
	var startTime, endTime uint64
	var startSet, endSet bool
	var count uint32
	var countSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "ver":
			return setU32Once(&ver, &verSet, val)
		case "chunk_pos":
			return setU64Once(&chunkPos, &chunkPosSet, val)
		case "start_time":
			return setTimeOnce(&startTime, &startSet, val)
		case "end_time":
			return setTimeOnce(&endTime, &endSet, val)
		case "count":
			return setU32Once(&count, &countSet, val)
		default:
			logUnknownField("ChunkInfo", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !verSet || !chunkPosSet || !startSet || !endSet || !countSet {
		return nil, newErr(KindInvalidHeader, "ChunkInfo missing required field")
	}
	if ver != 1 {
		return nil, newErr(KindUnsupportedVersion, fmt.Sprintf("ChunkInfo ver=%d", ver))
	}

	n, err := c.nextU32()
	if err != nil {
		return nil, err
	}
	if n%8 != 0 || n/8 != count {
		return nil, newErr(KindInvalidRecord, "ChunkInfo data_len is not a multiple of 8 matching count")
	}
	data, err := c.nextBytes(uint64(n))
	if err != nil {
		return nil, err
	}

	return &ChunkInfo{
		Ver:       ver,
		ChunkPos:  chunkPos,
		StartTime: startTime,
		EndTime:   endTime,
		data:      data,
	}, nil
}

package rosbag

// bagHeaderRecord is the fixed metadata record at the start of every bag
// (op 0x03). It never appears in a section iterator — the bag opener
// reads it once, directly, at a fixed offset (spec.md §4.8) — but it is
// still a regular record on disk and goes through the same generic
// header/data framing as everything else, so it implements Record too.
type bagHeaderRecord struct {
	IndexPos   uint64
	ConnCount  uint32
	ChunkCount uint32
}

// Kind implements Record.
func (*bagHeaderRecord) Kind() string { return "BagHeader" }

// readBagHeaderRecord parses op=0x03's header fields and its padding data
// payload. The data payload pads the whole record (magic + header + data)
// out to 4096 bytes; those padding bytes carry no information and are
// discarded here (spec.md §4.8).
func readBagHeaderRecord(header []byte, c *cursor) (*bagHeaderRecord, error) {
	var indexPos uint64
	var indexPosSet bool
	var connCount uint32
	var connCountSet bool
	var chunkCount uint32
	var chunkCountSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "index_pos":
			return setU64Once(&indexPos, &indexPosSet, val)
		case "conn_count":
			return setU32Once(&connCount, &connCountSet, val)
		case "chunk_count":
			return setU32Once(&chunkCount, &chunkCountSet, val)
		default:
			logUnknownField("BagHeader", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !indexPosSet || !connCountSet || !chunkCountSet {
		return nil, newErr(KindInvalidHeader, "bag header missing required field")
	}

	// The data payload is pure padding; consume and discard it.
	if _, err := c.nextChunk(); err != nil {
		return nil, err
	}

	return &bagHeaderRecord{
		IndexPos:   indexPos,
		ConnCount:  connCount,
		ChunkCount: chunkCount,
	}, nil
}

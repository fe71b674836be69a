package rosbag

import "fmt"

// IndexData describes, for one connection, the (time, offset) of every
// MessageData in the Chunk record immediately preceding it (op 0x04).
type IndexData struct {
	// Ver is the index record format version; only 1 is supported.
	Ver uint32
	// ConnID is the connection these entries describe.
	ConnID uint32
	data   []byte
}

// Kind implements Record.
func (*IndexData) Kind() string { return "IndexData" }

// IndexDataEntry is one (time, offset-within-decompressed-chunk) pointer
// to a MessageData record.
type IndexDataEntry struct {
	// Time is nanoseconds since the UNIX epoch, matching the referenced
	// MessageData's Time.
	Time uint64
	// Offset is a byte offset into the preceding Chunk's decompressed
	// buffer, suitable for MessageRecordsIterator.Seek.
	Offset uint32
}

// Entries returns an iterator over this record's (time, offset) pairs.
func (d *IndexData) Entries() *IndexDataEntries {
	return &IndexDataEntries{cur: newCursor(d.data)}
}

// IndexDataEntries iterates the fixed-width entries packed into an
// IndexData record's data payload, 12 bytes each (spec.md §3).
type IndexDataEntries struct {
	cur *cursor
}

// Next returns the next entry, or ok=false once exhausted.
func (it *IndexDataEntries) Next() (entry IndexDataEntry, ok bool) {
	if it.cur.left() == 0 {
		return IndexDataEntry{}, false
	}
	// left()%12==0 is guaranteed by readIndexData's modulus check.
	t, err := it.cur.nextTime()
	if err != nil {
		return IndexDataEntry{}, false
	}
	off, err := it.cur.nextU32()
	if err != nil {
		return IndexDataEntry{}, false
	}
	return IndexDataEntry{Time: t, Offset: off}, true
}

func readIndexData(header []byte, c *cursor) (*IndexData, error) {
	var ver uint32
	var verSet bool
	var connID uint32
	var connSet bool
	var count uint32
	var countSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "ver":
			return setU32Once(&ver, &verSet, val)
		case "conn":
			return setU32Once(&connID, &connSet, val)
		case "count":
			return setU32Once(&count, &countSet, val)
		default:
			logUnknownField("IndexData", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !verSet || !connSet || !countSet {
		return nil, newErr(KindInvalidHeader, "IndexData missing required field")
	}
	if ver != 1 {
		return nil, newErr(KindUnsupportedVersion, fmt.Sprintf("IndexData ver=%d", ver))
	}

	n, err := c.nextU32()
	if err != nil {
		return nil, err
	}
	if n%12 != 0 || n/12 != count {
		return nil, newErr(KindInvalidRecord, "IndexData data_len is not a multiple of 12 matching count")
	}
	data, err := c.nextBytes(uint64(n))
	if err != nil {
		return nil, err
	}

	return &IndexData{Ver: ver, ConnID: connID, data: data}, nil
}

package rosbag

import (
	"encoding/binary"
	"fmt"
)

// Record opcodes, fixed by the file format (spec.md §3). Do not add cases:
// the set of record kinds is closed.
const (
	opMessageData byte = 0x02
	opBagHeader   byte = 0x03
	opIndexData   byte = 0x04
	opChunk       byte = 0x05
	opChunkInfo   byte = 0x06
	opConnection  byte = 0x07
)

// Record is the closed tagged union over the five (plus the open-time-only
// BagHeader) record kinds a bag can contain. Kind returns the variant's
// name for use in UnexpectedXSectionRecord errors.
type Record interface {
	Kind() string
}

// findOp scans a header's fields for the single required "op" field and
// returns its byte value. Other fields are ignored here; each variant's
// own header reader walks the same bytes again for its own fields.
func findOp(header []byte) (byte, error) {
	it := newFieldIterator(header)
	var op byte
	seen := false
	for {
		name, val, ok := it.next()
		if !ok {
			break
		}
		if name != "op" {
			continue
		}
		if seen {
			return 0, newErr(KindInvalidHeader, "duplicate op field")
		}
		if len(val) != 1 {
			return 0, newErr(KindInvalidRecord, "op field must be exactly 1 byte")
		}
		op = val[0]
		seen = true
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	if !seen {
		return 0, newErr(KindInvalidRecord, "missing op field")
	}
	return op, nil
}

// readHeaderFields walks header, calling proc for every field except the
// structural "op" field. Implements §4.4's "read_header default behavior":
// unknown field names are the variant's problem, not this loop's.
func readHeaderFields(header []byte, proc func(name string, val []byte) error) error {
	it := newFieldIterator(header)
	for {
		name, val, ok := it.next()
		if !ok {
			break
		}
		if name == "op" {
			continue
		}
		if err := proc(name, val); err != nil {
			return err
		}
	}
	return it.Err()
}

// readRecord decodes one record starting at c's current position: a
// length-prefixed header, dispatch on its op byte, then the matching
// variant's data payload. c ends positioned at the start of the next
// record (or at EOF) on success; its position is undefined on error.
func readRecord(c *cursor) (Record, error) {
	header, err := c.nextChunk()
	if err != nil {
		return nil, err
	}

	op, err := findOp(header)
	if err != nil {
		return nil, err
	}

	switch op {
	case opMessageData:
		return readMessageData(header, c)
	case opBagHeader:
		return readBagHeaderRecord(header, c)
	case opIndexData:
		return readIndexData(header, c)
	case opChunk:
		return readChunk(header, c)
	case opChunkInfo:
		return readChunkInfo(header, c)
	case opConnection:
		return readConnection(header, c)
	default:
		return nil, newErr(KindInvalidRecord, fmt.Sprintf("unrecognized op 0x%02x", op))
	}
}

// setU32Once assigns *field from val, failing if val isn't exactly 4 bytes
// or *field was already assigned — the at-most-once rule spec.md §4.4
// requires of every header field setter.
func setU32Once(field *uint32, assigned *bool, val []byte) error {
	if len(val) != 4 || *assigned {
		return newErr(KindInvalidHeader, "malformed or duplicate u32 field")
	}
	*field = leUint32(val)
	*assigned = true
	return nil
}

func setU64Once(field *uint64, assigned *bool, val []byte) error {
	if len(val) != 8 || *assigned {
		return newErr(KindInvalidHeader, "malformed or duplicate u64 field")
	}
	*field = binary.LittleEndian.Uint64(val)
	*assigned = true
	return nil
}

func setTimeOnce(field *uint64, assigned *bool, val []byte) error {
	if len(val) != 8 || *assigned {
		return newErr(KindInvalidHeader, "malformed or duplicate time field")
	}
	s := leUint32(val[:4])
	ns := leUint32(val[4:])
	*field = 1_000_000_000*uint64(s) + uint64(ns)
	*assigned = true
	return nil
}

func setStringOnce(field *string, assigned *bool, val []byte) error {
	if *assigned {
		return newErr(KindInvalidHeader, "duplicate string field")
	}
	*field = string(val)
	*assigned = true
	return nil
}

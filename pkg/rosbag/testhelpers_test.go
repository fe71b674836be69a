package rosbag

import (
	"bytes"
	"encoding/binary"
)

// The helpers in this file build raw record bytes by hand, independent of
// the production encoder (there is none — rosbag is read-only), so tests
// exercise the real byte-level framing rather than round-tripping through
// code under test. Exported so both this package's internal tests and
// bag_test.go's external (rosbag_test) tests can share them.

// U32 returns v as 4 little-endian bytes.
func U32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// U64 returns v as 8 little-endian bytes.
func U64(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

// TimeBytes returns the two-u32 (seconds, nanoseconds) wire encoding of a
// timestamp.
func TimeBytes(sec, ns uint32) []byte {
	return append(U32(sec), U32(ns)...)
}

// FieldKV is one name=value header field awaiting encoding.
type FieldKV struct {
	Name string
	Val  []byte
}

// F constructs a FieldKV.
func F(name string, val []byte) FieldKV {
	return FieldKV{Name: name, Val: val}
}

// Header encodes a sequence of fields into a record header blob (the
// length-prefixed "name=value" entries concatenated together, not yet
// itself length-prefixed).
func Header(fields ...FieldKV) []byte {
	var buf bytes.Buffer
	for _, f := range fields {
		entry := append([]byte(f.Name+"="), f.Val...)
		buf.Write(U32(uint32(len(entry))))
		buf.Write(entry)
	}
	return buf.Bytes()
}

// Rec encodes a full record: length-prefixed header, length-prefixed data.
func Rec(header, data []byte) []byte {
	var buf bytes.Buffer
	buf.Write(U32(uint32(len(header))))
	buf.Write(header)
	buf.Write(U32(uint32(len(data))))
	buf.Write(data)
	return buf.Bytes()
}

// IndexEntryBytes encodes one IndexData (time, offset) entry, 12 bytes.
func IndexEntryBytes(sec, ns uint32, offset uint32) []byte {
	return append(TimeBytes(sec, ns), U32(offset)...)
}

// ChunkInfoEntryBytes encodes one ChunkInfo (conn, count) entry, 8 bytes.
func ChunkInfoEntryBytes(conn, count uint32) []byte {
	return append(U32(conn), U32(count)...)
}

// BagHeaderRecordBytes builds a full BagHeader record, padded with zero
// bytes in its data payload so that the 13-byte magic plus the record is
// exactly padTo bytes (pass 0 to skip padding).
func BagHeaderRecordBytes(indexPos uint64, connCount, chunkCount uint32, padTo int) []byte {
	header := Header(
		F("op", []byte{0x03}),
		F("index_pos", U64(indexPos)),
		F("conn_count", U32(connCount)),
		F("chunk_count", U32(chunkCount)),
	)
	headerLen := 4 + len(header)
	dataLen := 4
	padding := 0
	if padTo > 0 {
		padding = padTo - (13 + headerLen + dataLen)
	}
	if padding < 0 {
		padding = 0
	}
	return Rec(header, make([]byte, padding))
}

// MessageDataRecordBytes builds a full MessageData record.
func MessageDataRecordBytes(conn uint32, sec, ns uint32, data []byte) []byte {
	header := Header(
		F("op", []byte{0x02}),
		F("conn", U32(conn)),
		F("time", TimeBytes(sec, ns)),
	)
	return Rec(header, data)
}

// ConnectionRecordBytes builds a full Connection record with the given
// primary (conn, storage topic) and secondary header fields.
func ConnectionRecordBytes(conn uint32, storageTopic, topic, typ, md5sum, msgDef, callerID string, latching *bool) []byte {
	primary := Header(
		F("op", []byte{0x07}),
		F("conn", U32(conn)),
		F("topic", []byte(storageTopic)),
	)
	secFields := []FieldKV{
		F("topic", []byte(topic)),
		F("type", []byte(typ)),
		F("md5sum", []byte(md5sum)),
		F("message_definition", []byte(msgDef)),
	}
	if callerID != "" {
		secFields = append(secFields, F("callerid", []byte(callerID)))
	}
	if latching != nil {
		b := byte('0')
		if *latching {
			b = '1'
		}
		secFields = append(secFields, F("latching", []byte{b}))
	}
	secondary := Header(secFields...)
	return Rec(primary, secondary)
}

// IndexDataRecordBytes builds a full IndexData record from raw entry bytes.
func IndexDataRecordBytes(ver, conn, count uint32, entries []byte) []byte {
	header := Header(
		F("op", []byte{0x04}),
		F("ver", U32(ver)),
		F("conn", U32(conn)),
		F("count", U32(count)),
	)
	return Rec(header, entries)
}

// ChunkInfoRecordBytes builds a full ChunkInfo record from raw entry bytes.
func ChunkInfoRecordBytes(ver uint32, chunkPos uint64, startSec, startNs, endSec, endNs, count uint32, entries []byte) []byte {
	header := Header(
		F("op", []byte{0x06}),
		F("ver", U32(ver)),
		F("chunk_pos", U64(chunkPos)),
		F("start_time", TimeBytes(startSec, startNs)),
		F("end_time", TimeBytes(endSec, endNs)),
		F("count", U32(count)),
	)
	return Rec(header, entries)
}

// ChunkRecordBytes builds a full Chunk record. compression must be
// "none", "bz2", or "lz4"; compressed must already be encoded accordingly
// and uncompressedSize must be the decompressed length.
func ChunkRecordBytes(compression string, compressed []byte, uncompressedSize uint32) []byte {
	header := Header(
		F("op", []byte{0x05}),
		F("compression", []byte(compression)),
		F("size", U32(uncompressedSize)),
	)
	return Rec(header, compressed)
}

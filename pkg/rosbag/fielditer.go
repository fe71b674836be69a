package rosbag

import (
	"bytes"
	"unicode/utf8"
)

// fieldIterator walks a header buffer, yielding (name, value) pairs until
// the buffer is exhausted. Each field is a 4-byte little-endian length
// prefix followed by that many bytes of "name=value", split on the first
// '='. name must be valid UTF-8; value is arbitrary bytes.
type fieldIterator struct {
	buf []byte
	err error
}

func newFieldIterator(buf []byte) *fieldIterator {
	return &fieldIterator{buf: buf}
}

// next returns the next (name, value) pair, or ok=false once the buffer is
// exhausted or an error has occurred (check Err() in that case).
func (it *fieldIterator) next() (name string, value []byte, ok bool) {
	if it.err != nil || len(it.buf) == 0 {
		return "", nil, false
	}

	n, rec, rest, err := readField(it.buf)
	if err != nil {
		it.err = err
		return "", nil, false
	}
	_ = n
	it.buf = rest

	idx := bytes.IndexByte(rec, '=')
	if idx < 0 {
		it.err = newErr(KindInvalidHeader, "field missing '=' delimiter")
		return "", nil, false
	}
	nameBytes, val := rec[:idx], rec[idx+1:]
	if !utf8.Valid(nameBytes) {
		it.err = newErr(KindInvalidHeader, "field name is not valid UTF-8")
		return "", nil, false
	}
	return string(nameBytes), val, true
}

// Err returns the error that stopped iteration, if any.
func (it *fieldIterator) Err() error {
	return it.err
}

// readField reads one length-prefixed field record from buf, returning the
// declared length, the field's raw bytes, and the remainder of buf.
func readField(buf []byte) (length uint32, rec []byte, rest []byte, err error) {
	if len(buf) < 4 {
		return 0, nil, nil, newErr(KindInvalidHeader, "truncated field length prefix")
	}
	n := leUint32(buf[:4])
	buf = buf[4:]
	if uint64(len(buf)) < uint64(n) {
		return 0, nil, nil, newErr(KindInvalidHeader, "truncated field record")
	}
	return n, buf[:n], buf[n:], nil
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

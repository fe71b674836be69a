package rosbag

import "encoding/binary"

// cursor is a mutable read position over an immutable byte buffer. Slices
// it returns share the backing array with buf: callers must not mutate
// them, and their lifetime is tied to whatever is keeping buf alive.
//
// Modeled on the original crate's Cursor over a refcounted Bytes buffer;
// Go lacks a standard refcounted-slice type, so a plain []byte substitutes
// since sub-slicing a Go slice is already a no-copy operation.
type cursor struct {
	buf []byte
	pos uint64
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

// seek sets the read position. pos > len(buf) is KindOutOfBounds.
func (c *cursor) seek(pos uint64) error {
	if pos > uint64(len(c.buf)) {
		return newErr(KindOutOfBounds, "seek past end of buffer")
	}
	c.pos = pos
	return nil
}

func (c *cursor) pos_() uint64 {
	return c.pos
}

func (c *cursor) len() uint64 {
	return uint64(len(c.buf))
}

// left returns the number of unread bytes.
func (c *cursor) left() uint64 {
	return c.len() - c.pos
}

// nextBytes returns a shared slice of the next n bytes and advances past
// them. Any short read is KindOutOfBounds.
func (c *cursor) nextBytes(n uint64) ([]byte, error) {
	if c.pos+n > c.len() {
		return nil, newErr(KindOutOfBounds, "truncated read")
	}
	start := c.pos
	c.pos += n
	return c.buf[start:c.pos], nil
}

// nextChunk reads a 4-byte little-endian length prefix followed by that
// many bytes: the length-prefixed blob framing used throughout the format.
func (c *cursor) nextChunk() ([]byte, error) {
	n, err := c.nextU32()
	if err != nil {
		return nil, err
	}
	return c.nextBytes(uint64(n))
}

func (c *cursor) nextU32() (uint32, error) {
	b, err := c.nextBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *cursor) nextU64() (uint64, error) {
	b, err := c.nextBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// nextTime reads two little-endian u32s (seconds, nanoseconds) and folds
// them into nanoseconds since the UNIX epoch, per spec.md §3.
func (c *cursor) nextTime() (uint64, error) {
	s, err := c.nextU32()
	if err != nil {
		return 0, err
	}
	ns, err := c.nextU32()
	if err != nil {
		return 0, err
	}
	return 1_000_000_000*uint64(s) + uint64(ns), nil
}

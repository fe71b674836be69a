package blobstore

import "context"

// Memory is a RangeReader over an in-memory byte slice. Useful for tests
// and for small bags already fully loaded by the caller.
type Memory struct {
	data []byte
}

// NewMemory wraps data as a RangeReader. data is not copied; callers must
// not mutate it afterward.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

// Len implements RangeReader.
func (m *Memory) Len() int64 { return int64(len(m.data)) }

// ReadRange implements RangeReader.
func (m *Memory) ReadRange(_ context.Context, off, n int64) ([]byte, error) {
	if err := CheckBounds(m.Len(), off, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, m.data[off:off+n])
	return out, nil
}

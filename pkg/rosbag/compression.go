package rosbag

import (
	"bytes"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// Compression names the codec a Chunk's data payload was compressed with.
type Compression uint8

const (
	// CompressionNone means the chunk data is stored uncompressed.
	CompressionNone Compression = iota
	// CompressionBZ2 means the chunk data is a bzip2 stream.
	CompressionBZ2
	// CompressionLZ4 means the chunk data is an lz4 frame.
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionBZ2:
		return "bz2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

func parseCompression(val []byte) (Compression, error) {
	switch string(val) {
	case "none":
		return CompressionNone, nil
	case "bz2":
		return CompressionBZ2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, newErr(KindInvalidHeader, fmt.Sprintf("unrecognized compression %q", val))
	}
}

// decompress materializes the full decompressed byte stream for a Chunk's
// compressed blob eagerly, because the index section references byte
// offsets into it and a streaming decoder cannot be randomly seeked
// (spec.md §4.6, §9). expectedSize sizes the output buffer but is not
// itself validated here; the caller compares the result length against it.
func decompress(c Compression, compressed []byte, expectedSize uint32) ([]byte, error) {
	switch c {
	case CompressionNone:
		return compressed, nil
	case CompressionBZ2:
		out := make([]byte, 0, expectedSize)
		buf := bytes.NewBuffer(out)
		if _, err := io.Copy(buf, bzip2.NewReader(bytes.NewReader(compressed))); err != nil {
			return nil, wrapErr(KindBzip2Error, "decompressing chunk", err)
		}
		return buf.Bytes(), nil
	case CompressionLZ4:
		out := make([]byte, 0, expectedSize)
		buf := bytes.NewBuffer(out)
		if _, err := io.Copy(buf, lz4.NewReader(bytes.NewReader(compressed))); err != nil {
			return nil, wrapErr(KindLz4Error, "decompressing chunk", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, newErr(KindInvalidHeader, "unrecognized compression")
	}
}

package rosbag

import "fmt"

// Chunk is bulk storage for a run of MessageData and Connection records,
// optionally compressed (op 0x05). Its data is decompressed eagerly at
// parse time (spec.md §4.6, §9) so that MessageRecordsIterator.Seek can
// jump to byte offsets recorded in an IndexData entry.
type Chunk struct {
	// Compression names the codec the chunk was stored with.
	Compression Compression
	data        []byte
}

// Kind implements Record.
func (*Chunk) Kind() string { return "Chunk" }

// Messages returns an iterator over this chunk's decompressed contents,
// which is MessageData and Connection records only (spec.md §4.7).
func (ch *Chunk) Messages() *MessageRecordsIterator {
	return newMessageRecordsIterator(ch.data)
}

func readChunk(header []byte, c *cursor) (*Chunk, error) {
	var compression Compression
	var compressionSet bool
	var size uint32
	var sizeSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "compression":
			if compressionSet {
				return newErr(KindInvalidHeader, "duplicate compression field")
			}
			comp, err := parseCompression(val)
			if err != nil {
				return err
			}
			compression = comp
			compressionSet = true
		case "size":
			return setU32Once(&size, &sizeSet, val)
		default:
			logUnknownField("Chunk", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !compressionSet || !sizeSet {
		return nil, newErr(KindInvalidHeader, "Chunk missing required field")
	}

	compressed, err := c.nextChunk()
	if err != nil {
		return nil, err
	}
	data, err := decompress(compression, compressed, size)
	if err != nil {
		return nil, err
	}
	if uint32(len(data)) != size {
		return nil, newErr(KindInvalidRecord,
			fmt.Sprintf("decompressed chunk is %d bytes, header declared %d", len(data), size))
	}

	return &Chunk{Compression: compression, data: data}, nil
}

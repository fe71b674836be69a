package rosbag

// MessageData is a single timestamped message on a connection (op 0x02).
// The payload is opaque: ROS message deserialization is out of scope for
// this reader (spec.md §1).
type MessageData struct {
	// ConnID identifies the Connection this message arrived on.
	ConnID uint32
	// Time is nanoseconds since the UNIX epoch.
	Time uint64
	// Data is the serialized message payload, sharing storage with the
	// chunk (or record) buffer it was read from.
	Data []byte
}

// Kind implements Record.
func (*MessageData) Kind() string { return "MessageData" }

func readMessageData(header []byte, c *cursor) (*MessageData, error) {
	var connID uint32
	var connSet bool
	var t uint64
	var timeSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "conn":
			return setU32Once(&connID, &connSet, val)
		case "time":
			return setTimeOnce(&t, &timeSet, val)
		default:
			logUnknownField("MessageData", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !connSet || !timeSet {
		return nil, newErr(KindInvalidHeader, "MessageData missing required field")
	}

	data, err := c.nextChunk()
	if err != nil {
		return nil, err
	}

	return &MessageData{ConnID: connID, Time: t, Data: data}, nil
}

package rosbag

import "encoding/hex"

// Connection is a logical channel on which messages of a single type flow
// (op 0x07). StorageTopic and Topic can differ: messages may be written
// to the bag under a topic different from where they were published.
type Connection struct {
	// ID is the bag-wide connection identifier.
	ID uint32
	// StorageTopic is the topic the messages are stored under.
	StorageTopic string

	// Topic is the topic the original subscriber connected to.
	Topic string
	// Type is the ROS message type name.
	Type string
	// MD5Sum is the 16-byte decoded message-type checksum.
	MD5Sum [16]byte
	// MessageDefinition is the full text of the message definition.
	MessageDefinition string
	// CallerID names the node that sent the data; empty if absent.
	CallerID string
	// Latching is whether the publisher resends its last value to new
	// subscribers.
	Latching bool
}

// Kind implements Record.
func (*Connection) Kind() string { return "Connection" }

func readConnection(header []byte, c *cursor) (*Connection, error) {
	var id uint32
	var idSet bool
	var storageTopic string
	var storageTopicSet bool

	err := readHeaderFields(header, func(name string, val []byte) error {
		switch name {
		case "conn":
			return setU32Once(&id, &idSet, val)
		case "topic":
			return setStringOnce(&storageTopic, &storageTopicSet, val)
		default:
			logUnknownField("Connection", name, val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !idSet || !storageTopicSet {
		return nil, newErr(KindInvalidHeader, "Connection missing required field")
	}

	buf, err := c.nextChunk()
	if err != nil {
		return nil, err
	}

	var topic, typ, messageDefinition, callerID string
	var topicSet, typSet, md5Set, msgDefSet, callerIDSet bool
	var latching bool
	var md5sum [16]byte

	secondary := newFieldIterator(buf)
	for {
		name, val, ok := secondary.next()
		if !ok {
			break
		}
		switch name {
		case "topic":
			if err := setStringOnce(&topic, &topicSet, val); err != nil {
				return nil, err
			}
		case "type":
			if err := setStringOnce(&typ, &typSet, val); err != nil {
				return nil, err
			}
		case "md5sum":
			if md5Set || len(val) != 32 || !isLowerHex(val) {
				return nil, newErr(KindInvalidHeader, "malformed or duplicate md5sum field")
			}
			if _, err := hex.Decode(md5sum[:], val); err != nil {
				return nil, newErr(KindInvalidHeader, "md5sum is not valid lowercase hex")
			}
			md5Set = true
		case "message_definition":
			if err := setStringOnce(&messageDefinition, &msgDefSet, val); err != nil {
				return nil, err
			}
		case "callerid":
			if err := setStringOnce(&callerID, &callerIDSet, val); err != nil {
				return nil, err
			}
		case "latching":
			if len(val) != 1 {
				return nil, newErr(KindInvalidRecord, "latching field must be '0' or '1'")
			}
			switch val[0] {
			case '1':
				latching = true
			case '0':
				latching = false
			default:
				return nil, newErr(KindInvalidRecord, "latching field must be '0' or '1'")
			}
		default:
			logUnknownField("Connection", name, val)
		}
	}
	if err := secondary.Err(); err != nil {
		return nil, err
	}

	if !topicSet || !typSet || !md5Set || !msgDefSet {
		return nil, newErr(KindInvalidHeader, "Connection secondary header missing required field")
	}

	return &Connection{
		ID:                id,
		StorageTopic:      storageTopic,
		Topic:             topic,
		Type:              typ,
		MD5Sum:            md5sum,
		MessageDefinition: messageDefinition,
		CallerID:          callerID,
		Latching:          latching,
	}, nil
}

func isLowerHex(b []byte) bool {
	for _, c := range b {
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

package osc

import (
	"bytes"
	"encoding"
	"encoding/binary"
)

// Packet is the interface for Message and Bundle.
type Packet interface {
	encoding.BinaryMarshaler

	// Bytes returns the encoded packet without copying it.
	Bytes() View
}

// IsBundle reports whether data starts with the bundle marker.
func IsBundle(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], bundleTag)
}

// WalkBundle validates data with ParseBundle and then calls fn with every
// message element, depth first, along with the time tag of the bundle that
// directly contains it. Walking stops at the first error fn returns.
func WalkBundle(data []byte, fn func(t Timetag, msg []byte) error) error {
	if err := ParseBundle(data); err != nil {
		return err
	}
	return walkBundle(data, fn)
}

// walkBundle assumes data has been validated.
func walkBundle(data []byte, fn func(Timetag, []byte) error) error {
	t := Timetag(binary.BigEndian.Uint64(data[8:bundleHeaderSize]))
	for index := bundleHeaderSize; index < len(data); {
		size := int(binary.BigEndian.Uint32(data[index:]))
		index += bit32Size

		elem := data[index : index+size : index+size]
		var err error
		if IsBundle(elem) {
			err = walkBundle(elem, fn)
		} else {
			err = fn(t, elem)
		}
		if err != nil {
			return err
		}
		index += size
	}
	return nil
}

// ParsePacket parses data, a single message or a bundle, into m and calls fn
// once for every message it holds. Messages outside a bundle are reported
// with the immediate time tag. m is reused between calls, so fn must not
// keep it or its views.
func ParsePacket(data []byte, m *Message, fn func(t Timetag, m *Message) error) error {
	if IsBundle(data) {
		return WalkBundle(data, func(t Timetag, elem []byte) error {
			if err := m.Parse(elem); err != nil {
				return err
			}
			return fn(t, m)
		})
	}

	if err := m.Parse(data); err != nil {
		return err
	}
	return fn(NewImmediateTimetag(), m)
}

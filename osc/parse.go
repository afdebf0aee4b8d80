package osc

import "encoding/binary"

// Parse validates data as a single OSC message, copies it into the
// message's own buffer and indexes its arguments. data is not retained.
//
// Malformed input fails with an error wrapping ErrMalformed; a buffer or
// argument table that is too small fails with ErrNoMemory. After a failure
// the message is empty.
func (m *Message) Parse(data []byte) error {
	m.reset()

	n := len(data)
	if n <= 0 || n%4 != 0 {
		return m.reject("parse", errBadLength)
	}
	if data[0] != '/' {
		return m.reject("parse", errNoLeadingSlash)
	}

	// Address
	index := parseString(data, 0)
	if index < 0 {
		return m.reject("parse", errUnterminatedAddr)
	}
	addressLen := index - 1
	index = align(index)

	// No tags
	if index >= n || data[index] != ',' {
		return m.commit(data, index, addressLen, index, 0, index)
	}

	tagsIndex := index
	index = parseString(data, index)
	if index < 0 {
		return m.reject("parse", errUnterminatedTags)
	}
	tagsLen := index - 1 - tagsIndex
	if tagsLen == 1 {
		return m.commit(data, tagsIndex, addressLen, tagsIndex, 0, tagsIndex)
	}
	dataIndex := align(index)

	// Args
	if !m.ensureArgsCapacity(tagsLen - 1) {
		return m.noMemory("parse", tagsLen-1)
	}
	end, err := m.indexArgs(data, data[tagsIndex+1:tagsIndex+tagsLen], dataIndex)
	if err != nil {
		return m.reject("parse", err)
	}

	return m.commit(data, end, addressLen, tagsIndex, tagsLen, dataIndex)
}

// commit copies the validated prefix data[:size] and publishes its layout.
// The gaps after the address and the tags are zeroed so that the copy is
// well formed even if the sender padded with garbage.
func (m *Message) commit(data []byte, size, addressLen, tagsIndex, tagsLen, dataIndex int) error {
	if !m.ensureCapacity(size) {
		return m.noMemory("parse", size)
	}
	copy(m.buf, data[:size])
	clear(m.buf[addressLen+1 : tagsIndex])
	if tagsLen > 0 {
		clear(m.buf[tagsIndex+tagsLen+1 : dataIndex])
	}

	m.addressLen = addressLen
	m.tagsIndex = tagsIndex
	m.tagsLen = tagsLen
	m.dataIndex = dataIndex
	m.size = size
	return nil
}

// indexArgs records the offset of every argument described by tags, the
// first of which starts at off. It returns the offset just past the last
// argument.
func (m *Message) indexArgs(data []byte, tags []byte, off int) (int, error) {
	n := len(data)
	for i, c := range tags {
		m.args[i] = off

		tag := TypeTag(c)
		if size, ok := tag.fixedSize(); ok {
			off += size
		} else {
			switch tag {
			case TypeString, TypeSymbol:
				off = parseString(data, off)
				if off < 0 {
					return 0, errUnterminatedString
				}
				off = align(off)

			case TypeBlob:
				if off+bit32Size > n {
					return 0, errTruncated
				}
				size := int32(binary.BigEndian.Uint32(data[off:]))
				if size < 0 {
					return 0, errNegativeBlob
				}
				off = align(off + bit32Size + int(size))

			default:
				return 0, errUnknownTag
			}
		}

		if off > n {
			return 0, errTruncated
		}
	}
	return off, nil
}

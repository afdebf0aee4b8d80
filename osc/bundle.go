package osc

import (
	"bytes"
	"encoding/binary"

	"github.com/rs/zerolog"
)

const (
	bundleTagString  = "#bundle"
	bundleHeaderSize = 16
)

var bundleTag = []byte(bundleTagString + "\x00")

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements, each prefixed with its size. The elements are copied in when
// they are added, so a Bundle holds nothing but its encoded form. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
//
// Like Message, a Bundle's buffer is either fixed at construction, with a
// minimum of 16 bytes, or grows on demand.
type Bundle struct {
	buf         []byte
	size        int
	bufCap      capacity
	memErr      bool
	initialized bool

	log zerolog.Logger
}

// Verify that Bundle implements the Packet interface.
var _ Packet = (*Bundle)(nil)

// NewBundle returns a Bundle. Init must be called before anything can be
// added to it.
func NewBundle(opts ...Option) *Bundle {
	o := newOptions(opts)
	c := fixedBytes(o.bufCapacity)
	if !c.dynamic() && c.limit < bundleHeaderSize {
		c.limit = bundleHeaderSize
	}
	return &Bundle{
		buf:    alloc[byte](c),
		bufCap: c,
		log:    o.logger,
	}
}

// Init empties the bundle and stamps it with the given time. It also resets
// the memory error condition.
func (b *Bundle) Init(t Timetag) error {
	b.memErr = false
	if !b.ensureCapacity(bundleHeaderSize) {
		return b.noMemory(bundleHeaderSize)
	}
	copy(b.buf, bundleTag)
	binary.BigEndian.PutUint32(b.buf[8:], t.SecondsSinceEpoch())
	binary.BigEndian.PutUint32(b.buf[12:], t.FractionalSecond())
	b.size = bundleHeaderSize
	b.initialized = true
	return nil
}

// AddMessage appends the encoded form of m. m must hold a message.
func (b *Bundle) AddMessage(m *Message) error {
	if m == nil {
		return b.reject("add message", ErrNotInitialized)
	}
	return b.add("add message", m.Bytes())
}

// AddBundle appends the encoded form of another bundle.
func (b *Bundle) AddBundle(other *Bundle) error {
	if other == nil || !other.initialized {
		return b.reject("add bundle", ErrNotInitialized)
	}
	return b.add("add bundle", other.Bytes())
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(pck Packet) error {
	switch t := pck.(type) {
	default:
		return b.reject("append", ErrUnsupportedType)

	case *Message:
		return b.AddMessage(t)

	case *Bundle:
		return b.AddBundle(t)
	}
}

func (b *Bundle) add(op string, data []byte) error {
	if !b.initialized || len(data) == 0 {
		return b.reject(op, ErrNotInitialized)
	}
	need := b.size + bit32Size + len(data)
	if !b.ensureCapacity(need) {
		return b.noMemory(need)
	}

	binary.BigEndian.PutUint32(b.buf[b.size:], uint32(len(data)))
	b.size += bit32Size
	b.size += copy(b.buf[b.size:], data)
	return nil
}

func (b *Bundle) ensureCapacity(n int) bool {
	buf, ok := grow(b.buf, n, b.bufCap)
	if !ok {
		b.memErr = true
		return false
	}
	b.buf = buf
	return true
}

func (b *Bundle) reject(op string, err error) error {
	b.log.Debug().Str("op", op).Err(err).Msg("osc bundle rejected")
	return err
}

func (b *Bundle) noMemory(need int) error {
	b.log.Debug().
		Int("need", need).
		Int("buf_capacity", len(b.buf)).
		Msg("osc bundle out of memory")
	return ErrNoMemory
}

// Timetag returns the time the bundle was initialized with.
func (b *Bundle) Timetag() Timetag {
	if !b.initialized {
		return 0
	}
	return Timetag(binary.BigEndian.Uint64(b.buf[8:bundleHeaderSize]))
}

// MemoryError reports whether anything since the last Init failed for lack
// of buffer capacity.
func (b *Bundle) MemoryError() bool {
	return b.memErr
}

// Size returns the length of the encoded bundle.
func (b *Bundle) Size() int {
	return b.size
}

// Bytes returns the encoded bundle.
func (b *Bundle) Bytes() View {
	return View(b.buf[:b.size:b.size])
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// returned slice is a copy.
func (b *Bundle) MarshalBinary() ([]byte, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	bb := make([]byte, b.size)
	copy(bb, b.buf)
	return bb, nil
}

// ParseBundle checks that data is a well-formed bundle. Nested bundles are
// checked recursively; message elements only need to start with a '/'.
func ParseBundle(data []byte) error {
	n := len(data)
	if n < bundleHeaderSize || n%4 != 0 || !bytes.Equal(data[:8], bundleTag) {
		return errBundleHeader
	}

	for index := bundleHeaderSize; index < n; {
		if index+bit32Size > n {
			return errBundleElement
		}
		size := int32(binary.BigEndian.Uint32(data[index:]))
		index += bit32Size
		if size <= 0 || size%4 != 0 || index+int(size) > n {
			return errBundleElement
		}

		elem := data[index : index+int(size)]
		if IsBundle(elem) {
			if err := ParseBundle(elem); err != nil {
				return err
			}
		} else if elem[0] != '/' {
			return errBundleContent
		}
		index += int(size)
	}
	return nil
}

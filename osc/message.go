package osc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

// Message is a single OSC message held in its encoded form. It is either
// built in place with Init and the Add methods, or filled from received data
// with Parse. Either way the arguments are indexed, so the getters never
// rescan the buffer.
//
// A Message owns its buffer and argument table. Both are either fixed at
// construction or grow on demand, see WithBufferCapacity and WithMaxArgs.
// Every call that runs out of room fails with ErrNoMemory and latches
// MemoryError until the next Init or Parse. A Message must not be used from
// several goroutines at once.
type Message struct {
	buf    []byte
	size   int // Invariant: size%4 == 0
	bufCap capacity
	memErr bool

	addressLen int
	tagsIndex  int // Invariant: tagsIndex%4 == 0
	tagsLen    int // Includes the ',' if there are arguments, zero otherwise
	dataIndex  int // Invariant: dataIndex%4 == 0

	args    []int
	argsCap capacity

	log zerolog.Logger
}

// Verify that Message implements the Packet interface.
var _ Packet = (*Message)(nil)

// NewMessage returns an empty Message. Init or Parse must be called before
// arguments can be added.
func NewMessage(opts ...Option) *Message {
	o := newOptions(opts)
	m := &Message{
		bufCap:  fixedBytes(o.bufCapacity),
		argsCap: capacity{limit: o.maxArgs},
		log:     o.logger,
	}
	m.buf = alloc[byte](m.bufCap)
	m.args = alloc[int](m.argsCap)
	return m
}

// Init starts a new message with the given address and no arguments. It
// fails with ErrInvalidAddress if the address is empty or does not start
// with a '/', and with ErrNoMemory if the buffer is too small.
func (m *Message) Init(address string) error {
	m.reset()

	if len(address) == 0 || address[0] != '/' || strings.IndexByte(address, 0) >= 0 {
		return m.reject("init", ErrInvalidAddress)
	}

	n := align(len(address) + 1)
	if !m.ensureCapacity(n) {
		return m.noMemory("init", n)
	}
	writePaddedString(address, m.buf)

	m.addressLen = len(address)
	m.tagsIndex = n
	m.dataIndex = n
	m.size = n
	return nil
}

// Clear empties the message. It keeps the allocated memory.
func (m *Message) Clear() {
	m.reset()
}

func (m *Message) reset() {
	m.memErr = false
	m.addressLen = 0
	m.tagsIndex = 0
	m.tagsLen = 0
	m.dataIndex = 0
	m.size = 0
}

// AddInt adds a 32-bit int argument.
func (m *Message) AddInt(i int32) error {
	off, err := m.addArg(TypeInt32, bit32Size)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(m.buf[off:], uint32(i))
	return nil
}

// AddFloat adds a 32-bit float argument.
func (m *Message) AddFloat(f float32) error {
	off, err := m.addArg(TypeFloat32, bit32Size)
	if err != nil {
		return err
	}
	putFloat32(m.buf[off:], f)
	return nil
}

// AddString adds a string argument. The string may not contain a NUL.
func (m *Message) AddString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return m.reject("add", ErrInvalidString)
	}
	off, err := m.addArg(TypeString, len(s)+1)
	if err != nil {
		return err
	}
	writePaddedString(s, m.buf[off:])
	return nil
}

// AddBlob adds a blob argument holding a copy of b.
func (m *Message) AddBlob(b []byte) error {
	if len(b) > math.MaxInt32-bit32Size {
		return m.reject("add", ErrInvalidBlob)
	}
	off, err := m.addArg(TypeBlob, bit32Size+len(b))
	if err != nil {
		return err
	}
	writeBlob(b, m.buf[off:])
	return nil
}

// AddLong adds a 64-bit int argument.
func (m *Message) AddLong(h int64) error {
	off, err := m.addArg(TypeInt64, bit64Size)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(m.buf[off:], uint64(h))
	return nil
}

// AddTime adds an OSC time tag argument.
func (m *Message) AddTime(t Timetag) error {
	off, err := m.addArg(TypeTimeTag, bit64Size)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(m.buf[off:], uint64(t))
	return nil
}

// AddDouble adds a 64-bit float argument.
func (m *Message) AddDouble(d float64) error {
	off, err := m.addArg(TypeFloat64, bit64Size)
	if err != nil {
		return err
	}
	putFloat64(m.buf[off:], d)
	return nil
}

// AddBoolean adds a boolean. Its value is carried by the tag alone.
func (m *Message) AddBoolean(b bool) error {
	tag := TypeFalse
	if b {
		tag = TypeTrue
	}
	_, err := m.addArg(tag, 0)
	return err
}

// AddChar adds a 32-bit character argument.
func (m *Message) AddChar(c rune) error {
	off, err := m.addArg(TypeChar, bit32Size)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(m.buf[off:], uint32(c))
	return nil
}

// AddNil adds a nil argument.
func (m *Message) AddNil() error {
	_, err := m.addArg(TypeNil, 0)
	return err
}

// AddImpulse adds an impulse (infinitum) argument.
func (m *Message) AddImpulse() error {
	_, err := m.addArg(TypeImpulse, 0)
	return err
}

// Append adds each argument with the Add method matching its Go type. It
// stops at the first failure.
func (m *Message) Append(args ...interface{}) error {
	for _, arg := range args {
		var err error
		switch t := arg.(type) {
		default:
			return fmt.Errorf("Append: %w: %T", ErrUnsupportedType, t)

		case bool:
			err = m.AddBoolean(t)
		case nil:
			err = m.AddNil()
		case int32:
			err = m.AddInt(t)
		case float32:
			err = m.AddFloat(t)
		case string:
			err = m.AddString(t)
		case []byte:
			err = m.AddBlob(t)
		case int64:
			err = m.AddLong(t)
		case float64:
			err = m.AddDouble(t)
		case Timetag:
			err = m.AddTime(t)
		case Impulse:
			err = m.AddImpulse()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// addArg makes room for one more argument with a payload of argSize bytes
// and records its tag. The tag area is grown first, shifting any existing
// argument data along with the recorded offsets. It returns the offset of
// the new payload, whose padding is already zeroed.
func (m *Message) addArg(tag TypeTag, argSize int) (int, error) {
	if m.addressLen == 0 {
		return 0, m.reject("add", ErrNotInitialized)
	}

	newArgSize := align(argSize)
	tagsSize, newTagsSize := 0, 4 // Both include the NUL
	if m.tagsLen > 0 {
		tagsSize = align(m.tagsLen + 1)
		newTagsSize = align(m.tagsLen + 2)
	}
	newSize := m.size + (newTagsSize - tagsSize) + newArgSize
	if !m.ensureCapacity(newSize) {
		return 0, m.noMemory("add", newSize)
	}
	argCount := m.ArgCount()
	if !m.ensureArgsCapacity(argCount + 1) {
		return 0, m.noMemory("add", argCount+1)
	}

	if m.tagsLen == 0 {
		m.tagsIndex = m.size
		m.buf[m.tagsIndex] = ','
		m.buf[m.tagsIndex+1] = byte(tag)
		m.buf[m.tagsIndex+2] = 0
		m.buf[m.tagsIndex+3] = 0
		m.tagsLen = 2
		m.dataIndex = m.tagsIndex + 4
		m.size = m.dataIndex
	} else {
		delta := newTagsSize - tagsSize
		shiftRegion(m.buf, m.dataIndex, m.size, delta, m.args[:argCount])
		m.dataIndex += delta
		m.size += delta

		m.buf[m.tagsIndex+m.tagsLen] = byte(tag)
		m.tagsLen++
		m.buf[m.tagsIndex+m.tagsLen] = 0
	}

	off := m.size
	m.args[argCount] = off
	clear(m.buf[off+argSize : off+newArgSize])
	m.size += newArgSize
	return off, nil
}

func (m *Message) ensureCapacity(n int) bool {
	buf, ok := grow(m.buf, n, m.bufCap)
	if !ok {
		m.memErr = true
		return false
	}
	m.buf = buf
	return true
}

func (m *Message) ensureArgsCapacity(n int) bool {
	args, ok := grow(m.args, n, m.argsCap)
	if !ok {
		m.memErr = true
		return false
	}
	m.args = args
	return true
}

func (m *Message) reject(op string, err error) error {
	m.log.Debug().Str("op", op).Err(err).Msg("osc message rejected")
	return err
}

func (m *Message) noMemory(op string, need int) error {
	m.log.Debug().
		Str("op", op).
		Int("need", need).
		Int("buf_capacity", len(m.buf)).
		Int("arg_capacity", len(m.args)).
		Msg("osc message out of memory")
	return ErrNoMemory
}

// MemoryError reports whether a call since the last Init or Parse failed
// for lack of buffer or argument capacity.
func (m *Message) MemoryError() bool {
	return m.memErr
}

// Size returns the length of the encoded message.
func (m *Message) Size() int {
	return m.size
}

// Bytes returns the encoded message.
func (m *Message) Bytes() View {
	return View(m.buf[:m.size:m.size])
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// returned slice is a copy.
func (m *Message) MarshalBinary() ([]byte, error) {
	if m.addressLen == 0 {
		return nil, ErrNotInitialized
	}
	b := make([]byte, m.size)
	copy(b, m.buf)
	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(data []byte) error {
	return m.Parse(data)
}

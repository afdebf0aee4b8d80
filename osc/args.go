package osc

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

////
// Getters
//
// Every getter returns the zero value if the index is out of range or the
// argument has a different type. Views alias the message buffer and are only
// valid until the next Init, Parse or Add call.
////

// Address returns the address of the message.
func (m *Message) Address() View {
	return View(m.buf[:m.addressLen:m.addressLen])
}

// ArgCount returns the number of arguments.
func (m *Message) ArgCount() int {
	if m.tagsLen == 0 {
		return 0
	}
	return m.tagsLen - 1
}

// TypeTags returns the type tag string, including the leading ',', or an
// empty view if there are no arguments.
func (m *Message) TypeTags() View {
	return View(m.buf[m.tagsIndex : m.tagsIndex+m.tagsLen : m.tagsIndex+m.tagsLen])
}

// Tag returns the type tag of the argument at index i, or TypeInvalid if i
// is out of range.
func (m *Message) Tag(i int) TypeTag {
	if i < 0 || i >= m.ArgCount() {
		return TypeInvalid
	}
	return TypeTag(m.buf[m.tagsIndex+1+i])
}

func (m *Message) IsInt(i int) bool     { return m.Tag(i) == TypeInt32 }
func (m *Message) IsFloat(i int) bool   { return m.Tag(i) == TypeFloat32 }
func (m *Message) IsString(i int) bool  { return m.Tag(i) == TypeString }
func (m *Message) IsBlob(i int) bool    { return m.Tag(i) == TypeBlob }
func (m *Message) IsLong(i int) bool    { return m.Tag(i) == TypeInt64 }
func (m *Message) IsTime(i int) bool    { return m.Tag(i) == TypeTimeTag }
func (m *Message) IsDouble(i int) bool  { return m.Tag(i) == TypeFloat64 }
func (m *Message) IsChar(i int) bool    { return m.Tag(i) == TypeChar }
func (m *Message) IsNil(i int) bool     { return m.Tag(i) == TypeNil }
func (m *Message) IsImpulse(i int) bool { return m.Tag(i) == TypeImpulse }

// IsBoolean reports whether the argument at index i is true or false.
func (m *Message) IsBoolean(i int) bool {
	t := m.Tag(i)
	return t == TypeTrue || t == TypeFalse
}

// Int returns the 32-bit int at index i.
func (m *Message) Int(i int) int32 {
	if !m.IsInt(i) {
		return 0
	}
	return int32(binary.BigEndian.Uint32(m.buf[m.args[i]:]))
}

// Float returns the 32-bit float at index i.
func (m *Message) Float(i int) float32 {
	if !m.IsFloat(i) {
		return 0
	}
	return float32At(m.buf[m.args[i]:])
}

// StringArg returns the string at index i, without its terminator.
func (m *Message) StringArg(i int) View {
	if !m.IsString(i) {
		return nil
	}
	off := m.args[i]
	end := off + bytes.IndexByte(m.buf[off:m.size], 0)
	return View(m.buf[off:end:end])
}

// BlobLen returns the length of the blob at index i.
func (m *Message) BlobLen(i int) int {
	if !m.IsBlob(i) {
		return 0
	}
	n := int32(binary.BigEndian.Uint32(m.buf[m.args[i]:]))
	if n < 0 {
		return 0
	}
	return int(n)
}

// Blob returns the contents of the blob at index i, without its padding.
func (m *Message) Blob(i int) View {
	if !m.IsBlob(i) {
		return nil
	}
	start := m.args[i] + bit32Size
	end := start + m.BlobLen(i)
	return View(m.buf[start:end:end])
}

// Long returns the 64-bit int at index i.
func (m *Message) Long(i int) int64 {
	if !m.IsLong(i) {
		return 0
	}
	return int64(binary.BigEndian.Uint64(m.buf[m.args[i]:]))
}

// Time returns the time tag at index i.
func (m *Message) Time(i int) Timetag {
	if !m.IsTime(i) {
		return 0
	}
	return Timetag(binary.BigEndian.Uint64(m.buf[m.args[i]:]))
}

// Double returns the 64-bit float at index i.
func (m *Message) Double(i int) float64 {
	if !m.IsDouble(i) {
		return 0
	}
	return float64At(m.buf[m.args[i]:])
}

// Char returns the character at index i.
func (m *Message) Char(i int) rune {
	if !m.IsChar(i) {
		return 0
	}
	return rune(binary.BigEndian.Uint32(m.buf[m.args[i]:]))
}

// Boolean returns the boolean at index i.
func (m *Message) Boolean(i int) bool {
	return m.Tag(i) == TypeTrue
}

// Argument returns the argument at index i as the Go type Append accepts
// for its tag: strings and blobs are copied out of the buffer, chars come
// back as rune and an impulse as Impulse. Tags without a Go value (nil,
// arrays, RGBA, MIDI, unknown indexes) return nil.
func (m *Message) Argument(i int) interface{} {
	switch m.Tag(i) {
	case TypeInt32:
		return m.Int(i)
	case TypeFloat32:
		return m.Float(i)
	case TypeString:
		return m.StringArg(i).String()
	case TypeBlob:
		return append([]byte{}, m.Blob(i)...)
	case TypeInt64:
		return m.Long(i)
	case TypeTimeTag:
		return m.Time(i)
	case TypeFloat64:
		return m.Double(i)
	case TypeChar:
		return m.Char(i)
	case TypeTrue:
		return true
	case TypeFalse:
		return false
	case TypeImpulse:
		return Impulse{}
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}

	strBuf := bufPool.Get().(*bytes.Buffer)
	defer bufPool.Put(strBuf)
	strBuf.Reset()

	strBuf.Write(m.Address())
	if m.ArgCount() == 0 {
		return strBuf.String()
	}

	strBuf.WriteByte(' ')
	strBuf.Write(m.TypeTags())

	for i := 0; i < m.ArgCount(); i++ {
		switch arg := m.Argument(i).(type) {
		case bool, int32, int64, float32, float64, string:
			fmt.Fprintf(strBuf, " %v", arg)

		case nil:
			if tag := m.Tag(i); tag != TypeNil {
				// No Go value: symbols, RGBA, MIDI and array markers.
				strBuf.WriteByte(' ')
				strBuf.WriteByte(byte(tag))
			} else {
				strBuf.WriteString(" Nil")
			}

		case []byte:
			strBuf.WriteString(" blob")

		case Timetag:
			fmt.Fprintf(strBuf, " %d", arg.TimeTag())

		case Impulse:
			strBuf.WriteString(" Impulse")
		}
	}

	return strBuf.String()
}

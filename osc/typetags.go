package osc

// TypeTag identifies the wire type of a single OSC argument.
type TypeTag byte

const (
	TypeString     TypeTag = 's'
	TypeSymbol     TypeTag = 'S'
	TypeInt32      TypeTag = 'i'
	TypeInt64      TypeTag = 'h'
	TypeFloat32    TypeTag = 'f'
	TypeFloat64    TypeTag = 'd'
	TypeBlob       TypeTag = 'b'
	TypeTimeTag    TypeTag = 't'
	TypeChar       TypeTag = 'c'
	TypeRGBA       TypeTag = 'r'
	TypeMIDI       TypeTag = 'm'
	TypeNil        TypeTag = 'N'
	TypeImpulse    TypeTag = 'I'
	TypeTrue       TypeTag = 'T'
	TypeFalse      TypeTag = 'F'
	TypeArrayBegin TypeTag = '['
	TypeArrayEnd   TypeTag = ']'
	TypeInvalid    TypeTag = 0
)

// Impulse is the argument value of an 'I' (infinitum) tag.
type Impulse struct{}

// ToTypeTag returns the OSC TypeTag for the given argument.
// Returns TypeInvalid if the argument type is unsupported.
func ToTypeTag(arg interface{}) TypeTag {
	switch t := arg.(type) {
	case bool:
		if t {
			return TypeTrue
		}
		return TypeFalse
	case nil:
		return TypeNil
	case int32:
		return TypeInt32
	case float32:
		return TypeFloat32
	case string:
		return TypeString
	case []byte:
		return TypeBlob
	case int64:
		return TypeInt64
	case float64:
		return TypeFloat64
	case Timetag:
		return TypeTimeTag
	case Impulse:
		return TypeImpulse
	default:
		return TypeInvalid
	}
}

// fixedSize reports the payload size of tags whose size does not depend on
// the payload. ok is false for strings, blobs and unknown tags.
func (t TypeTag) fixedSize() (n int, ok bool) {
	switch t {
	case TypeInt32, TypeFloat32, TypeChar, TypeRGBA, TypeMIDI:
		return bit32Size, true
	case TypeInt64, TypeTimeTag, TypeFloat64:
		return bit64Size, true
	case TypeTrue, TypeFalse, TypeNil, TypeImpulse, TypeArrayBegin, TypeArrayEnd:
		return 0, true
	}
	return 0, false
}

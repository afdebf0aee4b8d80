package osc

// View is a window into the buffer of a Message or Bundle. It does not own
// its bytes: it must not be modified, and it is only valid until the next
// call that mutates its owner. Copy it, or call String, to keep the data.
type View []byte

// String returns a copy of the view as a string.
func (v View) String() string {
	return string(v)
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v)
}

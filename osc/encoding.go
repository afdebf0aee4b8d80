package osc

import (
	"bytes"
	"encoding/binary"
	"math"
)

////
// De/Encoding functions
////

const (
	bit32Size = 4
	bit64Size = 8
)

// align rounds n up to the next multiple of 4.
func align(n int) int {
	return n + padBytesNeeded(n)
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}

// parseString scans the NUL-terminated string starting at off and returns
// the index just past the terminator, or -1 if data ends first.
func parseString(data []byte, off int) int {
	if off < 0 || off >= len(data) {
		return -1
	}
	pos := bytes.IndexByte(data[off:], 0)
	if pos == -1 {
		return -1
	}
	return off + pos + 1
}

// writePaddedString writes str, its NUL terminator and the zero padding
// into b, which must be large enough. Returns the number of bytes written.
func writePaddedString(str string, b []byte) int {
	n := copy(b, str)
	n++
	end := align(n)
	clear(b[len(str):end])
	return end
}

// writeBlob writes the data byte array as an OSC blob into b. If the length
// of data isn't 32-bit aligned, padding bytes will be added.
func writeBlob(data []byte, b []byte) int {
	binary.BigEndian.PutUint32(b[:bit32Size], uint32(len(data)))
	n := bit32Size
	n += copy(b[n:], data)
	end := align(n)
	clear(b[n:end])
	return end
}

func putFloat32(b []byte, f float32) {
	binary.BigEndian.PutUint32(b, math.Float32bits(f))
}

func putFloat64(b []byte, f float64) {
	binary.BigEndian.PutUint64(b, math.Float64bits(f))
}

func float32At(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func float64At(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

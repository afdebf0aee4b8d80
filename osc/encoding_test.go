package osc

import (
	"bytes"
	"testing"
)

func TestParseString(t *testing.T) {
	for _, tt := range []struct {
		buf  []byte // buffer
		off  int    // start offset
		want int    // index past the terminator
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, 0, 11},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, 0, 8},
		{[]byte{'t', 'e', 's', 0, 0, 0, 0, 0}, 0, 4}, // OSC uses null terminated strings
		{[]byte{'t', 'e', 's', 0, 'a', 'b', 0, 0}, 4, 7},
		{[]byte{'t', 'e', 's', 't'}, 0, -1}, // if there is no null byte at the end, it doesn't work.
		{[]byte{'t', 'e', 's', 0}, 4, -1},
		{[]byte{'t', 'e', 's', 0}, -1, -1},
	} {
		if got := parseString(tt.buf, tt.off); got != tt.want {
			t.Errorf("parseString(%q, %d) = %d, want %d", tt.buf, tt.off, got, tt.want)
		}
	}
}

func TestWritePaddedString(t *testing.T) {
	buf := bytes.Repeat([]byte{0xff}, 16)
	testString := "testString"
	expectedNumberOfWrittenBytes := align(len(testString) + 1)

	if n := writePaddedString(testString, buf); n != expectedNumberOfWrittenBytes {
		t.Errorf("Expected number of written bytes should be \"%d\" and is \"%d\"", expectedNumberOfWrittenBytes, n)
	}
	if want := []byte("testString" + nulls(2)); !bytes.Equal(buf[:12], want) {
		t.Errorf("buf = %q, want %q", buf[:12], want)
	}
	if buf[12] != 0xff {
		t.Error("writePaddedString wrote past the padding")
	}
}

func TestWriteBlob(t *testing.T) {
	buf := bytes.Repeat([]byte{0xff}, 12)
	if n := writeBlob([]byte{1, 2, 3, 4, 5}, buf); n != 12 {
		t.Errorf("writeBlob() = %d, want 12", n)
	}
	if want := []byte{0, 0, 0, 5, 1, 2, 3, 4, 5, 0, 0, 0}; !bytes.Equal(buf, want) {
		t.Errorf("buf = %v, want %v", buf, want)
	}
}

func TestAlign(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 4, 3: 4, 4: 4, 5: 8, 63: 64} {
		if got := align(in); got != want {
			t.Errorf("align(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPadBytesNeeded(t *testing.T) {
	var n int
	n = padBytesNeeded(4)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(3)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(1)
	if n != 3 {
		t.Errorf("Number of pad bytes should be 3 and is: %d", n)
	}

	n = padBytesNeeded(0)
	if n != 0 {
		t.Errorf("Number of pad bytes should be 0 and is: %d", n)
	}

	n = padBytesNeeded(63)
	if n != 1 {
		t.Errorf("Number of pad bytes should be 1 and is: %d", n)
	}

	n = padBytesNeeded(10)
	if n != 2 {
		t.Errorf("Number of pad bytes should be 2 and is: %d", n)
	}
}

func TestFloatBits(t *testing.T) {
	b := make([]byte, 8)
	putFloat32(b, -2.5)
	if got := float32At(b); got != -2.5 {
		t.Errorf("float32At() = %v", got)
	}
	putFloat64(b, 1e-300)
	if got := float64At(b); got != 1e-300 {
		t.Errorf("float64At() = %v", got)
	}
}

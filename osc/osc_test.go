package osc

import (
	"bytes"
	"testing"
)

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name string
	raw  []byte
	addr string
	args []interface{}
}

var messageTestCases = []testCase{
	{
		"no_args",
		[]byte("/a" + nulls(2)),
		"/a",
		nil,
	},
	{
		"int",
		[]byte("/address" + nulls(4) + ",i" + nulls(2) + "\x00\x00\x00\x01"),
		"/address",
		[]interface{}{int32(1)},
	},
	{
		"mixed",
		[]byte("/a" + nulls(2) + ",ifsT" + nulls(3) + "\xff\xff\xff\xff" + "\x3f\x80\x00\x00" + "hi" + nulls(2)),
		"/a",
		[]interface{}{int32(-1), float32(1), "hi", true},
	},
	{
		"blob",
		[]byte("/b" + nulls(2) + ",b" + nulls(2) + "\x00\x00\x00\x03" + "\x01\x02\x03\x00"),
		"/b",
		[]interface{}{[]byte{1, 2, 3}},
	},
	{
		"long_double_time",
		[]byte("/x" + nulls(2) + ",hdt" + nulls(4) +
			"\x00\x00\x01\x00\x00\x00\x00\x00" +
			"\x3f\xf0\x00\x00\x00\x00\x00\x00" +
			"\x01\x02\x03\x04\x05\x06\x07\x08"),
		"/x",
		[]interface{}{int64(1) << 40, float64(1), Timetag(0x0102030405060708)},
	},
	{
		"nil_false_impulse",
		[]byte("/n" + nulls(2) + ",NFI" + nulls(4)),
		"/n",
		[]interface{}{nil, false, Impulse{}},
	},
	{
		"string_exact_boundary",
		[]byte("/abc" + nulls(4) + ",s" + nulls(2) + "abc" + nulls(1)),
		"/abc",
		[]interface{}{"abc"},
	},
}

// buildMessage builds a message on a dynamic Message, failing the test on
// any error.
func buildMessage(t testing.TB, addr string, args ...interface{}) *Message {
	t.Helper()
	m := NewMessage()
	if err := m.Init(addr); err != nil {
		t.Fatalf("Init(%q) error = %v", addr, err)
	}
	if err := m.Append(args...); err != nil {
		t.Fatalf("Append(%#v) error = %v", args, err)
	}
	return m
}

// checkLayout verifies the alignment invariants and that every recorded
// argument offset lies inside the data area in order.
func checkLayout(t testing.TB, m *Message) {
	t.Helper()
	if m.size%4 != 0 || m.tagsIndex%4 != 0 || m.dataIndex%4 != 0 {
		t.Fatalf("misaligned layout: size=%d tagsIndex=%d dataIndex=%d", m.size, m.tagsIndex, m.dataIndex)
	}
	if got := bytes.IndexByte(m.buf[:m.size], 0); got != m.addressLen {
		t.Fatalf("address terminator at %d, want %d", got, m.addressLen)
	}
	if m.tagsLen > 0 && m.buf[m.tagsIndex+m.tagsLen] != 0 {
		t.Fatalf("type tags not terminated")
	}
	prev := m.dataIndex
	for i := 0; i < m.ArgCount(); i++ {
		if m.args[i] < prev || m.args[i] > m.size || m.args[i]%4 != 0 {
			t.Fatalf("argument %d offset %d out of place (prev %d, size %d)", i, m.args[i], prev, m.size)
		}
		prev = m.args[i]
	}
}

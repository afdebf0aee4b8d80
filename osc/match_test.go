package osc

import "testing"

func TestMessage_Match(t *testing.T) {
	m := buildMessage(t, "/foo/bar")
	for _, tt := range []struct {
		offset  int
		pattern string
		want    int
	}{
		{0, "/foo", 4},
		{0, "/foo/bar", 8},
		{0, "/baz", 0},
		{4, "/bar", 8},
		{0, "/fo", 0},
		{0, "/foo/", 0},
		{0, "/foo/bar/baz", 0},
		{8, "", 8},
		{8, "/x", 0},
		{9, "", -1},
		{-1, "/foo", -1},
	} {
		if got := m.Match(tt.offset, tt.pattern); got != tt.want {
			t.Errorf("Match(%d, %q) = %d, want %d", tt.offset, tt.pattern, got, tt.want)
		}
	}
}

func TestMessage_MatchSegments(t *testing.T) {
	m := buildMessage(t, "/mixer/channel/volume", float32(0.5))

	off := m.Match(0, "/mixer")
	if off != 6 {
		t.Fatalf("Match(/mixer) = %d", off)
	}
	off = m.Match(off, "/channel")
	if off != 14 {
		t.Fatalf("Match(/channel) = %d", off)
	}
	if !m.FullMatch(off, "/volume") {
		t.Error("FullMatch(/volume) = false")
	}
	if m.Match(off, "/volume") != m.Address().Len() {
		t.Error("Match(/volume) did not reach the end of the address")
	}
}

func TestMessage_FullMatch(t *testing.T) {
	m := buildMessage(t, "/foo/bar")
	for _, tt := range []struct {
		offset  int
		pattern string
		want    bool
	}{
		{0, "/foo/bar", true},
		{4, "/bar", true},
		{8, "", true},
		{0, "/foo", false},
		{0, "/foo/bar/", false},
		{8, "/", false},
		{9, "", false},
		{-1, "/foo/bar", false},
	} {
		if got := m.FullMatch(tt.offset, tt.pattern); got != tt.want {
			t.Errorf("FullMatch(%d, %q) = %t, want %t", tt.offset, tt.pattern, got, tt.want)
		}
	}
}

func TestMessage_MatchEmptyMessage(t *testing.T) {
	m := NewMessage()
	if got := m.Match(0, ""); got != 0 {
		t.Errorf("Match(0, \"\") on empty message = %d, want 0", got)
	}
	if got := m.Match(1, "/a"); got != -1 {
		t.Errorf("Match(1, \"/a\") on empty message = %d, want -1", got)
	}
	if !m.FullMatch(0, "") {
		t.Error("FullMatch(0, \"\") on empty message = false")
	}
}

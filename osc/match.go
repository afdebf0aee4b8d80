package osc

// FullMatch reports whether the address, starting at offset, is exactly
// pattern. At the end of the address only the empty pattern matches.
func (m *Message) FullMatch(offset int, pattern string) bool {
	if offset < 0 || offset > m.addressLen {
		return false
	}
	return string(m.buf[offset:m.addressLen]) == pattern
}

// Match compares pattern literally against the address starting at offset
// and returns the index one past the matched part:
//
//   - the address length if pattern matches the rest of the address,
//   - the index of the mismatch if the address has a '/' there, so that
//     "/foo" matches the first container of "/foo/bar",
//   - zero if there is no match,
//   - -1 if offset is out of range.
//
// At the end of the address only the empty pattern matches. Wildcards have
// no special meaning; callers can build globbing on top of segment matches.
func (m *Message) Match(offset int, pattern string) int {
	if offset < 0 || offset > m.addressLen {
		return -1
	}
	if offset == m.addressLen {
		if pattern == "" {
			return m.addressLen
		}
		return 0
	}

	addr := m.buf[offset:m.addressLen]
	loc := 0
	for loc < len(addr) && loc < len(pattern) && addr[loc] == pattern[loc] {
		loc++
	}
	if loc == len(addr) && loc == len(pattern) {
		return m.addressLen
	}

	loc += offset
	if loc < m.addressLen && m.buf[loc] == '/' {
		return loc
	}
	return 0
}

package osc

import "math"

// maxDynamicSize bounds dynamic growth. Lengths on the wire are 32-bit, so a
// request beyond this is treated the same as a failed allocation.
const maxDynamicSize = math.MaxInt32

// capacity is the growth policy of an owned buffer. A non-positive limit
// means the buffer grows on demand; otherwise it never grows past limit.
type capacity struct {
	limit int
}

func (c capacity) dynamic() bool {
	return c.limit <= 0
}

// fixedBytes returns a byte capacity policy, rounding a fixed size up to the
// next multiple of 4.
func fixedBytes(n int) capacity {
	if n <= 0 {
		return capacity{}
	}
	return capacity{limit: align(n)}
}

// alloc returns the storage a fixed policy preallocates. Dynamic policies
// start empty.
func alloc[T any](c capacity) []T {
	if c.dynamic() {
		return nil
	}
	return make([]T, c.limit)
}

// grow makes sure s holds at least n elements, preserving its contents. The
// returned bool is false if the policy forbids the growth.
func grow[T any](s []T, n int, c capacity) ([]T, bool) {
	if n <= len(s) {
		return s, true
	}
	if !c.dynamic() || n > maxDynamicSize {
		return s, false
	}

	newLen := 2 * len(s)
	if newLen < n {
		newLen = n
	}
	if newLen > maxDynamicSize {
		newLen = maxDynamicSize
	}
	ns := make([]T, newLen)
	copy(ns, s)
	return ns, true
}

// shiftRegion moves buf[start:end] right by delta bytes, zeroes the gap it
// leaves behind and adds delta to every offset. buf must already hold
// end+delta bytes.
func shiftRegion(buf []byte, start, end, delta int, offsets []int) {
	if delta <= 0 {
		return
	}
	copy(buf[start+delta:end+delta], buf[start:end])
	clear(buf[start : start+delta])
	for i := range offsets {
		offsets[i] += delta
	}
}

package osc

import (
	"time"
)

const (
	// MinValue is the minimum value of an OSC Time Tag.
	MinValue = uint64(1)

	secondsFrom1900To1970 = 2208988800
	nanosPerSecond        = 1_000_000_000
)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since midnight on January 1, 1900, and the
// last 32 bits specify fractional parts of a second to a precision of about
// 200 picoseconds. This is the representation used by Internet NTP timestamps.
type Timetag uint64

// NewTimetag returns a time tag for the current time.
func NewTimetag() Timetag {
	return NewTimetagFromTime(time.Now())
}

// NewImmediateTimetag returns the special time tag meaning "immediately".
func NewImmediateTimetag() Timetag {
	return Timetag(MinValue)
}

// NewTimetagFromTime returns a new OSC time tag object from a time.Time.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return Timetag(timeToTimetag(timeStamp))
}

// Time returns the time.
func (t Timetag) Time() time.Time {
	return timetagToTime(t)
}

// FractionalSecond returns the last 32 bits of the OSC time tag. Specifies the
// fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// SecondsSinceEpoch returns the first 32 bits (the number of seconds since the
// midnight 1900) from the OSC time tag.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// TimeTag returns the time tag value
func (t Timetag) TimeTag() uint64 {
	return uint64(t)
}

// ExpiresIn calculates the number of seconds until the current time is the
// same as the value of the time tag. It returns zero if the value of the
// time tag is in the past.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= 1 {
		return 0
	}

	seconds := time.Until(timetagToTime(t))
	if seconds <= 0 {
		return 0
	}

	return seconds
}

// timeToTimetag converts the given time to an OSC time tag.
//
// The time tag value consisting of 63 zero bits followed by a one in the least
// significant bit is a special case meaning "immediately."
func timeToTimetag(t time.Time) uint64 {
	secs := uint64(secondsFrom1900To1970+t.Unix()) << 32
	frac := (uint64(t.Nanosecond())<<32 + nanosPerSecond/2) / nanosPerSecond
	return secs + frac
}

// timetagToTime converts the given timetag to a time object.
func timetagToTime(timetag Timetag) time.Time {
	nanos := (uint64(timetag.FractionalSecond())*nanosPerSecond + 1<<31) >> 32
	return time.Unix(int64(timetag.SecondsSinceEpoch())-secondsFrom1900To1970, int64(nanos))
}

// Package telem holds the time primitives stamped onto exported records.
package telem

import (
	"strconv"
	"time"
)

// |||||| TIME STAMP ||||||

// TimeStamp is a coarse wall-clock reading in seconds since the unix epoch.
// It is the unit written into Scalar and Vector blocks.
type TimeStamp int64

func Now() TimeStamp {
	return NewTimeStamp(time.Now())
}

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Unix())
}

// TimeStampMax is the largest representable stamp.
var TimeStampMax = TimeStamp(^uint64(0) >> 1)

// Time converts the stamp back to a UTC time.Time.
func (ts TimeStamp) Time() time.Time {
	return time.Unix(int64(ts), 0).UTC()
}

func (ts TimeStamp) String() string {
	return strconv.FormatInt(int64(ts), 10)
}

func (ts TimeStamp) After(t TimeStamp) bool {
	return ts > t
}

func (ts TimeStamp) Before(t TimeStamp) bool {
	return ts < t
}

func (ts TimeStamp) Add(span TimeSpan) TimeStamp {
	return ts + TimeStamp(span)
}

// |||||| TIME SPAN ||||||

// TimeSpan is a signed distance between two stamps, in seconds.
type TimeSpan int64

const (
	Second = TimeSpan(1)
	Minute = 60 * Second
)

// |||||| CLOCK ||||||

// Clock returns the stamp for a record at the moment it is constructed.
type Clock func() TimeStamp

// SystemClock reads the host wall clock.
func SystemClock() TimeStamp { return Now() }

// FixedClock always returns ts.
func FixedClock(ts TimeStamp) Clock {
	return func() TimeStamp { return ts }
}

// StepClock starts at start and advances by step on every reading.
func StepClock(start TimeStamp, step TimeSpan) Clock {
	next := start
	return func() TimeStamp {
		ts := next
		next = next.Add(step)
		return ts
	}
}

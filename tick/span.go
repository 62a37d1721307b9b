// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import (
	"fmt"
	"time"
)

// Direction selects the horizontal or vertical axis of a plot.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "x"
	case Vertical:
		return "y"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "x" or "y".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "x", "X", "horizontal":
		return Horizontal, nil
	case "y", "Y", "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown axis direction %q", s)
}

// Bounds is a closed time interval.
type Bounds struct {
	Lo, Hi time.Time
}

// Contains reports whether t is in [b.Lo, b.Hi].
func (b Bounds) Contains(t time.Time) bool {
	return !t.Before(b.Lo) && !t.After(b.Hi)
}

// A Span is the interval of time an axis must cover.
//
// Span arithmetic is done on Unix seconds so that spans of many
// centuries, which overflow time.Duration, are exact.
type Span struct {
	Start, End time.Time
}

// split returns the length of s as whole seconds plus a nanosecond
// remainder in [0, 1e9).
func (s Span) split() (secs int64, nanos int64) {
	secs = s.End.Unix() - s.Start.Unix()
	nanos = int64(s.End.Nanosecond() - s.Start.Nanosecond())
	if nanos < 0 {
		secs--
		nanos += 1e9
	}
	return
}

// Seconds returns the total length of s in seconds, including
// fractional seconds.
func (s Span) Seconds() float64 {
	secs, nanos := s.split()
	return float64(secs) + float64(nanos)/1e9
}

// Hours returns the length of s in hours, ignoring fractional
// seconds.
func (s Span) Hours() float64 {
	secs, _ := s.split()
	return float64(secs) / 3600
}

// Days returns the number of whole days in s, rounded toward
// negative infinity.
func (s Span) Days() int {
	secs, _ := s.split()
	d := secs / 86400
	if secs%86400 < 0 {
		d--
	}
	return int(d)
}

// Degenerate reports whether s has zero length.
func (s Span) Degenerate() bool {
	return s.Start.Equal(s.End)
}

func (s Span) String() string {
	return fmt.Sprintf("%s to %s", s.Start.Format(time.RFC3339Nano), s.End.Format(time.RFC3339Nano))
}

// A Bound identifies one of the four raw values Resolve validates.
type Bound int

const (
	ViewLow Bound = iota
	ViewHigh
	DataLow
	DataHigh
)

func (b Bound) String() string {
	switch b {
	case ViewLow:
		return "lower axis limit"
	case ViewHigh:
		return "upper axis limit"
	case DataLow:
		return "minimum data value"
	case DataHigh:
		return "maximum data value"
	}
	return fmt.Sprintf("Bound(%d)", int(b))
}

// InvalidTimeError is returned by Resolve when a raw axis value does
// not denote a valid time.
type InvalidTimeError struct {
	Bound Bound
	Value float64
	Err   error
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s of %f is not a valid time: %v", e.Bound, e.Value, e.Err)
}

func (e *InvalidTimeError) Unwrap() error {
	return e.Err
}

// Range is the resolved time extent of an axis.
type Range struct {
	Data Bounds
	View Bounds

	// Span covers both View and Data, so data outside the current
	// view still gets sensible ticks if the view later expands.
	Span Span
}

// Degenerate reports whether the data extent is a single instant.
func (r Range) Degenerate() bool {
	return r.Data.Lo.Equal(r.Data.Hi)
}

// Resolve converts an axis's raw data extent and view limits to a
// Range. If any value is not a valid time, it returns an
// *InvalidTimeError naming the first invalid value, checked in the
// order view low, view high, data low, data high.
func Resolve(tb Timebase, dataLo, dataHi, viewLo, viewHi float64) (Range, error) {
	var ts [4]time.Time
	for i, v := range [4]float64{viewLo, viewHi, dataLo, dataHi} {
		t, err := tb.Time(v)
		if err != nil {
			return Range{}, &InvalidTimeError{Bound(i), v, err}
		}
		ts[i] = t
	}
	r := Range{
		View: Bounds{ts[ViewLow], ts[ViewHigh]},
		Data: Bounds{ts[DataLow], ts[DataHigh]},
	}
	r.Span = Span{minTime(r.View.Lo, r.Data.Lo), maxTime(r.View.Hi, r.Data.Hi)}
	return r, nil
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

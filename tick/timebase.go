// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tick chooses tick locations and labels for a time axis.
//
// Given the data extent and view limits of an axis, Compute picks a
// band from a fixed table of span durations. Each band names a major
// and minor Locator, a primary label Format, and a context Format.
// The context format is appended to the first displayed tick and to
// any tick where a coarser calendar field (a new day, month, year,
// ...) changes, so that most labels stay short while every label can
// still be read unambiguously.
//
// Axis values are raw float64s. A Timebase maps them to and from
// time.Time.
package tick

import (
	"fmt"
	"math"
	"time"
)

// A Timebase maps raw axis values to calendar times. A raw value v
// denotes the instant Epoch + v*Unit. Conversions are exact to the
// microsecond.
type Timebase struct {
	Epoch time.Time
	Unit  time.Duration

	// Location is the location of times returned by Time. If
	// nil, times are in UTC.
	Location *time.Location
}

var (
	// UnixSeconds interprets axis values as seconds since the Unix
	// epoch. This is the convention used by gonum.org/v1/plot.
	UnixSeconds = Timebase{Epoch: time.Unix(0, 0).UTC(), Unit: time.Second}

	// UnixDays interprets axis values as fractional days since
	// the Unix epoch, like matplotlib date numbers.
	UnixDays = Timebase{Epoch: time.Unix(0, 0).UTC(), Unit: 24 * time.Hour}
)

// Years outside this range are not valid time points.
const (
	minYear = 1
	maxYear = 9999
)

func (tb Timebase) loc() *time.Location {
	if tb.Location == nil {
		return time.UTC
	}
	return tb.Location
}

func (tb Timebase) unitMicros() float64 {
	return float64(tb.Unit) / float64(time.Microsecond)
}

// Time returns the time denoted by raw axis value v. It returns an
// error if v is not finite or denotes a year outside [1, 9999].
func (tb Timebase) Time(v float64) (time.Time, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Time{}, fmt.Errorf("%v is not a finite time value", v)
	}
	if tb.Unit <= 0 {
		return time.Time{}, fmt.Errorf("timebase unit %v is not positive", tb.Unit)
	}
	us := v * tb.unitMicros()
	// Years 1 through 9999 span less than 3.2e17 microseconds from
	// any reasonable epoch; anything larger cannot be valid and
	// would overflow the int64 conversion below.
	if math.Abs(us) > 1e18 {
		return time.Time{}, fmt.Errorf("%v is out of range", v)
	}
	sec := math.Floor(us / 1e6)
	usec := math.Round(us - sec*1e6)
	if usec >= 1e6 {
		sec++
		usec -= 1e6
	}
	t := time.Unix(tb.Epoch.Unix()+int64(sec), int64(tb.Epoch.Nanosecond())+int64(usec)*1000).In(tb.loc())
	if y := t.Year(); y < minYear || y > maxYear {
		return time.Time{}, fmt.Errorf("%v is year %d, outside [%d, %d]", v, y, minYear, maxYear)
	}
	return t, nil
}

// Value returns the raw axis value of t. It is the inverse of Time.
func (tb Timebase) Value(t time.Time) float64 {
	secs := t.Unix() - tb.Epoch.Unix()
	nanos := t.Nanosecond() - tb.Epoch.Nanosecond()
	us := float64(secs)*1e6 + float64(nanos)/1e3
	return us / tb.unitMicros()
}

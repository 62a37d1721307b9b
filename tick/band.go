// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import (
	"errors"
	"fmt"
)

// A Band maps a contiguous range of span lengths to a choice of
// locators and formats.
type Band struct {
	// Name describes the band's upper bound, such as "<4h".
	Name string

	// Below reports whether a span belongs to this band or an
	// earlier one. Bands are tried in order; the first whose
	// Below is true is selected.
	Below func(s Span) bool

	Major, Minor Locator

	// Primary formats every major tick label. Context is appended
	// to some labels (see Annotate). A zero Context disables
	// annotation.
	Primary, Context Format
}

// ErrUnreachableBand indicates a span matched no band. Only negative
// spans, which Resolve never produces, do this.
var ErrUnreachableBand = errors.New("span matches no tick band")

func secondsBelow(x float64) func(Span) bool {
	return func(s Span) bool { return s.Seconds() < x }
}

func hoursBelow(x float64) func(Span) bool {
	return func(s Span) bool { return s.Hours() < x }
}

func daysBelow(x int) func(Span) bool {
	return func(s Span) bool { return s.Days() < x }
}

var (
	fmtMinSec    = Strftime("%M:%S")
	fmtHourMin   = Strftime("%H:%M")
	fmtHour      = Strftime("%H")
	fmtDay       = Strftime("%d")
	fmtMonth     = Strftime("%m")
	fmtYear      = Strftime("%Y")
	fmtTimeDate  = Strftime("%H:%M:%S\n%Y-%m-%d")
	fmtDateHour  = Strftime("%Y-%m-%dT%H")
	fmtDate      = Strftime("%Y-%m-%d")
	fmtYearMonth = Strftime("%Y-%m")

	// fmtFull labels the single tick of a degenerate range.
	fmtFull = Strftime("%Y-%m-%dT%H:%M:%S")
)

func seconds(step int) Locator { return ByValues(Second, Steps(0, 60, step)...) }
func minutes(step int) Locator { return ByValues(Minute, Steps(0, 60, step)...) }
func hours(step int) Locator   { return ByValues(Hour, Steps(0, 24, step)...) }
func days(step int) Locator    { return ByValues(Day, Steps(1, 32, step)...) }
func months(step int) Locator  { return ByValues(Month, Steps(1, 13, step)...) }

// Bands is the ordered band table used by SelectBand. It covers every
// non-negative span: the last band accepts everything.
//
// Steps are chosen so there are roughly 2 to 10 minor ticks per major
// tick and so the primary format changes along with the calendar
// field the ticks fall on. Sub-second locators are aligned to whole
// seconds so that ticks land on round fractions.
var Bands = []Band{
	{"<0.1s", secondsBelow(0.1), Every(Microsecond, 10000), Every(Microsecond, 2000), Millis, fmtTimeDate},
	{"<0.5s", secondsBelow(0.5), Every(Microsecond, 50000), Every(Microsecond, 10000), Millis, fmtTimeDate},
	{"<1s", secondsBelow(1), Every(Microsecond, 100000), Every(Microsecond, 20000), Millis, fmtTimeDate},
	{"<5s", secondsBelow(5), seconds(1), Every(Microsecond, 200000), fmtMinSec, fmtDateHour},
	{"<10s", secondsBelow(10), seconds(1), Every(Microsecond, 500000), fmtMinSec, fmtDateHour},
	{"<20s", secondsBelow(20), seconds(2), seconds(1), fmtMinSec, fmtDateHour},
	{"<30s", secondsBelow(30), seconds(5), seconds(1), fmtMinSec, fmtDateHour},
	{"<1m", secondsBelow(60), seconds(10), seconds(2), fmtMinSec, fmtDateHour},
	{"<2m", secondsBelow(60 * 2), seconds(20), seconds(5), fmtMinSec, fmtDateHour},
	{"<3m", secondsBelow(60 * 3), seconds(20), seconds(5), fmtMinSec, fmtDateHour},
	{"<5m", secondsBelow(60 * 5), seconds(30), seconds(10), fmtMinSec, fmtDateHour},
	{"<10m", secondsBelow(60 * 10), minutes(1), seconds(15), fmtMinSec, fmtDateHour},
	{"<20m", secondsBelow(60 * 20), minutes(2), seconds(30), fmtMinSec, fmtDateHour},
	{"<30m", secondsBelow(60 * 30), minutes(5), minutes(1), fmtHourMin, fmtDate},
	{"<1h", secondsBelow(60 * 60), minutes(10), minutes(2), fmtHourMin, fmtDate},
	{"<2h", hoursBelow(2), minutes(15), minutes(5), fmtHourMin, fmtDate},
	{"<4h", hoursBelow(4), minutes(20), minutes(5), fmtHourMin, fmtDate},
	{"<6h", hoursBelow(6), hours(1), minutes(10), fmtHourMin, fmtDate},
	{"<12h", hoursBelow(12), hours(2), minutes(30), fmtHourMin, fmtDate},
	{"<1d", hoursBelow(24), hours(3), hours(1), fmtHour, fmtDate},
	{"<2d", hoursBelow(48), hours(4), hours(2), fmtHour, fmtDate},
	{"<3d", hoursBelow(72), hours(6), hours(3), fmtHour, fmtDate},
	{"<4d", hoursBelow(96), hours(12), hours(3), fmtHour, fmtDate},
	{"<8d", daysBelow(8), days(1), hours(4), fmtDay, fmtYearMonth},
	{"<16d", daysBelow(16), days(1), days(1), fmtDay, fmtYearMonth},
	{"<32d", daysBelow(32), days(4), days(1), fmtDay, fmtYearMonth},
	{"<60d", daysBelow(60), days(7), days(1), fmtDay, fmtYearMonth},
	{"<183d", daysBelow(183), months(1), days(7), fmtMonth, fmtYear},
	{"<367d", daysBelow(367), months(1), months(1), fmtMonth, fmtYear},
	{"<2y", daysBelow(366 * 2), months(2), months(1), fmtMonth, fmtYear},
	{"<8y", daysBelow(366 * 8), Every(Year, 1), months(4), fmtYear, Format{}},
	{"<15y", daysBelow(366 * 15), Every(Year, 1), Every(Year, 1), fmtYear, Format{}},
	{"<40y", daysBelow(366 * 40), Every(Year, 5), Every(Year, 1), fmtYear, Format{}},
	{"<100y", daysBelow(366 * 100), Every(Year, 10), Every(Year, 2), fmtYear, Format{}},
	{"<200y", daysBelow(366 * 200), Every(Year, 20), Every(Year, 5), fmtYear, Format{}},
	{"any", func(Span) bool { return true }, Every(Year, 50), Every(Year, 10), fmtYear, Format{}},
}

// SelectBand returns the index in Bands of the band for span s.
func SelectBand(s Span) (int, error) {
	if s.End.Before(s.Start) {
		return 0, fmt.Errorf("%w: negative span %v", ErrUnreachableBand, s)
	}
	for i, b := range Bands {
		if b.Below(s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnreachableBand, s)
}

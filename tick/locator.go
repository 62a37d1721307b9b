// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// A Unit is a calendar field a Locator places ticks on.
type Unit int

const (
	Microsecond Unit = iota
	Second
	Minute
	Hour
	Day
	Month
	Year
)

var unitNames = [...]string{"microsecond", "second", "minute", "hour", "day", "month", "year"}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// fieldRange returns the smallest and largest value of u's calendar
// field within one period of the next coarser unit.
func (u Unit) fieldRange() (lo, hi int) {
	switch u {
	case Microsecond:
		return 0, 999999
	case Second, Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case Day:
		return 1, 31
	case Month:
		return 1, 12
	}
	return minYear, maxYear
}

// field returns u's calendar field of t.
func (u Unit) field(t time.Time) int {
	switch u {
	case Microsecond:
		return t.Nanosecond() / 1000
	case Second:
		return t.Second()
	case Minute:
		return t.Minute()
	case Hour:
		return t.Hour()
	case Day:
		return t.Day()
	case Month:
		return int(t.Month())
	}
	return t.Year()
}

// A Locator describes a periodic rule for placing ticks. It is
// declarative: the ticks themselves are produced by Iter or Ticks.
//
// The zero Locator produces no ticks.
type Locator struct {
	Unit Unit

	// Interval, if non-zero, places a tick wherever Unit's field
	// is a multiple of Interval counted from the field's first
	// value (for example, days 1, 8, 15, ... for Every(Day, 7)).
	// Sub-second intervals are aligned to whole seconds.
	Interval int

	// Values, if Interval is 0, lists the field values that get
	// a tick, for every period of the next coarser unit.
	Values []int

	// Fixed, if non-nil, lists explicit tick instants and
	// overrides every other field.
	Fixed []time.Time
}

// Every returns a Locator that places a tick every n units.
func Every(u Unit, n int) Locator {
	return Locator{Unit: u, Interval: n}
}

// ByValues returns a Locator that places a tick wherever u's field is
// one of vs.
func ByValues(u Unit, vs ...int) Locator {
	return Locator{Unit: u, Values: vs}
}

// Fixed returns a Locator that places ticks exactly at ts.
func Fixed(ts ...time.Time) Locator {
	fixed := append([]time.Time{}, ts...)
	sort.Slice(fixed, func(i, j int) bool { return fixed[i].Before(fixed[j]) })
	return Locator{Fixed: fixed}
}

// Steps returns lo, lo+step, ... up to but not including hi.
func Steps(lo, hi, step int) []int {
	var vs []int
	for v := lo; v < hi; v += step {
		vs = append(vs, v)
	}
	return vs
}

// IsZero reports whether l produces no ticks.
func (l Locator) IsZero() bool {
	return l.Fixed == nil && l.Interval == 0 && len(l.Values) == 0
}

func (l Locator) String() string {
	switch {
	case l.Fixed != nil:
		return fmt.Sprintf("fixed(%d)", len(l.Fixed))
	case l.Interval != 0:
		return fmt.Sprintf("%s/%d", l.Unit, l.Interval)
	case len(l.Values) != 0:
		vs := make([]string, len(l.Values))
		for i, v := range l.Values {
			vs[i] = fmt.Sprint(v)
		}
		return fmt.Sprintf("%s{%s}", l.Unit, strings.Join(vs, ","))
	}
	return "none"
}

// values returns the sorted, deduplicated field values l places
// ticks on, for units that are bounded within a coarser period.
func (l Locator) values() []int {
	lo, hi := l.Unit.fieldRange()
	var vs []int
	if l.Interval > 0 {
		for v := lo; v <= hi; v += l.Interval {
			vs = append(vs, v)
		}
		return vs
	}
	seen := make(map[int]bool)
	for _, v := range l.Values {
		if v >= lo && v <= hi && !seen[v] {
			seen[v] = true
			vs = append(vs, v)
		}
	}
	sort.Ints(vs)
	return vs
}

// Ticks returns all ticks of l for the interval [lo, hi]. See Iter.
func (l Locator) Ticks(lo, hi time.Time) []time.Time {
	var ts []time.Time
	for it := l.Iter(lo, hi); ; {
		t, ok := it.Next()
		if !ok {
			return ts
		}
		ts = append(ts, t)
	}
}

// Iter returns an iterator over the ticks of l for the interval
// [lo, hi]. Besides the ticks within [lo, hi], it yields the nearest
// tick before lo and the nearest tick after hi, if they exist, so
// that the caller can see the ticks that enclose the interval. Use
// Clip to drop them.
//
// A Fixed locator yields all of its instants regardless of lo and
// hi.
//
// Ticks are strictly increasing and fall in years 1 through 9999.
// Iteration always terminates, at the latest once it passes year
// 9999.
func (l Locator) Iter(lo, hi time.Time) *Iter {
	it := &Iter{lo: lo, hi: hi}
	switch {
	case l.Fixed != nil:
		it.src = &fixedSource{ts: l.Fixed}
		it.lo, it.hi = time.Time{}, maxTimeValue
	case l.Unit == Year && l.Interval > 0:
		n := l.Interval
		y := floorDiv(lo.Year(), n)*n - n
		it.src = &yearSource{year: y, step: n, loc: lo.Location()}
	case l.Unit == Year:
		it.src = &yearListSource{years: l.values(), loc: lo.Location()}
	case l.IsZero():
		it.done = true
	default:
		period := l.Unit + 1
		p := addPeriod(truncate(lo, period), period, -1)
		it.src = &periodSource{unit: l.Unit, period: period, p: p, vs: l.values()}
	}
	return it
}

var maxTimeValue = time.Date(maxYear+1, 1, 1, 0, 0, 0, 0, time.UTC)

// An Iter lazily yields the ticks of a Locator. See Locator.Iter.
type Iter struct {
	lo, hi time.Time
	src    source
	done   bool

	below     time.Time
	haveBelow bool
	hold      time.Time
	held      bool

	// last is the last instant taken from src. Instants at or
	// before it, which wall-clock arithmetic can produce across a
	// daylight saving change, are dropped.
	last     time.Time
	haveLast bool
}

// Next returns the next tick, or false if there are no more.
func (it *Iter) Next() (time.Time, bool) {
	if it.done {
		return time.Time{}, false
	}
	if it.held {
		it.held = false
		return it.emit(it.hold)
	}
	for {
		t, ok := it.src.next()
		if !ok || t.Year() > maxYear {
			it.done = true
			if it.haveBelow {
				it.haveBelow = false
				return it.below, true
			}
			return time.Time{}, false
		}
		if t.Year() < minYear || (it.haveLast && !t.After(it.last)) {
			continue
		}
		it.last, it.haveLast = t, true
		if t.Before(it.lo) {
			it.below, it.haveBelow = t, true
			continue
		}
		if it.haveBelow {
			it.haveBelow = false
			it.hold, it.held = t, true
			return it.below, true
		}
		return it.emit(t)
	}
}

func (it *Iter) emit(t time.Time) (time.Time, bool) {
	if t.After(it.hi) {
		it.done = true
	}
	return t, true
}

// Clip returns the ticks in ts that lie within [lo, hi].
func Clip(ts []time.Time, lo, hi time.Time) []time.Time {
	b := Bounds{lo, hi}
	var out []time.Time
	for _, t := range ts {
		if b.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

type source interface {
	next() (time.Time, bool)
}

type fixedSource struct {
	ts []time.Time
}

func (s *fixedSource) next() (time.Time, bool) {
	if len(s.ts) == 0 {
		return time.Time{}, false
	}
	t := s.ts[0]
	s.ts = s.ts[1:]
	return t, true
}

type yearSource struct {
	year, step int
	loc        *time.Location
}

func (s *yearSource) next() (time.Time, bool) {
	for s.year < minYear {
		s.year += s.step
	}
	if s.year > maxYear+s.step {
		return time.Time{}, false
	}
	t := time.Date(s.year, 1, 1, 0, 0, 0, 0, s.loc)
	s.year += s.step
	return t, true
}

type yearListSource struct {
	years []int
	loc   *time.Location
}

func (s *yearListSource) next() (time.Time, bool) {
	if len(s.years) == 0 {
		return time.Time{}, false
	}
	t := time.Date(s.years[0], 1, 1, 0, 0, 0, 0, s.loc)
	s.years = s.years[1:]
	return t, true
}

// periodSource yields, for each period of the next coarser unit
// starting at p, the instants whose unit field is in vs.
type periodSource struct {
	unit, period Unit
	p            time.Time
	vs           []int
	k            int
}

func (s *periodSource) next() (time.Time, bool) {
	if len(s.vs) == 0 {
		return time.Time{}, false
	}
	for {
		if s.k == len(s.vs) {
			s.p = addPeriod(s.p, s.period, 1)
			s.k = 0
			if s.p.Year() > maxYear {
				return time.Time{}, false
			}
		}
		v := s.vs[s.k]
		s.k++
		if t, ok := setField(s.p, s.unit, v); ok {
			return t, true
		}
	}
}

// truncate returns the start of the period of unit u containing t.
func truncate(t time.Time, u Unit) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	loc := t.Location()
	switch u {
	case Microsecond:
		return time.Date(y, mo, d, h, mi, s, t.Nanosecond()/1000*1000, loc)
	case Second:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(y, mo, 1, 0, 0, 0, 0, loc)
	}
	return time.Date(y, 1, 1, 0, 0, 0, 0, loc)
}

// addPeriod adds k periods of unit u to p, which must be the start of
// a period of u.
func addPeriod(p time.Time, u Unit, k int) time.Time {
	switch u {
	case Second:
		return p.Add(time.Duration(k) * time.Second)
	case Minute:
		return p.Add(time.Duration(k) * time.Minute)
	case Hour:
		return p.Add(time.Duration(k) * time.Hour)
	case Day:
		return p.AddDate(0, 0, k)
	case Month:
		return p.AddDate(0, k, 0)
	case Year:
		return p.AddDate(k, 0, 0)
	}
	return p.Add(time.Duration(k) * time.Microsecond)
}

// setField returns the instant in the period starting at p whose
// field u is v. It returns false if no such instant exists, such as
// day 31 of a 30-day month.
func setField(p time.Time, u Unit, v int) (time.Time, bool) {
	switch u {
	case Microsecond:
		return p.Add(time.Duration(v) * time.Microsecond), true
	case Second:
		return p.Add(time.Duration(v) * time.Second), true
	case Minute:
		return p.Add(time.Duration(v) * time.Minute), true
	case Hour:
		// Hours skipped by a daylight saving change don't exist.
		y, mo, d := p.Date()
		t := time.Date(y, mo, d, v, 0, 0, 0, p.Location())
		return t, t.Hour() == v
	case Day:
		y, mo, _ := p.Date()
		if v > daysIn(mo, y) {
			return time.Time{}, false
		}
		return time.Date(y, mo, v, 0, 0, 0, 0, p.Location()), true
	case Month:
		return time.Date(p.Year(), time.Month(v), 1, 0, 0, 0, 0, p.Location()), true
	}
	return time.Time{}, false
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

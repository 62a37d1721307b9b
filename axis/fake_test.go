// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"time"

	"github.com/aclements/go-datetick/tick"
)

// fakeAxis is an in-memory Axis. Before a major locator is installed,
// its ticks are the two view limits.
type fakeAxis struct {
	tb    tick.Timebase
	data  [2][2]float64
	view  [2][2]float64
	major [2]tick.Locator
	minor [2]tick.Locator

	labels    [2][]string
	callbacks [2][]func()

	redraws   int
	mutations int
}

func newFakeAxis(tb tick.Timebase, lo, hi time.Time) *fakeAxis {
	f := &fakeAxis{tb: tb}
	for dir := range f.data {
		f.data[dir] = [2]float64{tb.Value(lo), tb.Value(hi)}
		f.view[dir] = f.data[dir]
	}
	return f
}

func (f *fakeAxis) DataBounds(dir tick.Direction) (lo, hi float64) {
	return f.data[dir][0], f.data[dir][1]
}

func (f *fakeAxis) ViewLimits(dir tick.Direction) (lo, hi float64) {
	return f.view[dir][0], f.view[dir][1]
}

func (f *fakeAxis) Ticks(dir tick.Direction) []float64 {
	lo, hi := f.view[dir][0], f.view[dir][1]
	if f.major[dir].IsZero() {
		return []float64{lo, hi}
	}
	tlo, err1 := f.tb.Time(lo)
	thi, err2 := f.tb.Time(hi)
	if err1 != nil || err2 != nil {
		return nil
	}
	var out []float64
	for _, t := range f.major[dir].Ticks(tlo, thi) {
		out = append(out, f.tb.Value(t))
	}
	return out
}

func (f *fakeAxis) Timebase() tick.Timebase { return f.tb }

func (f *fakeAxis) SetMajorLocator(dir tick.Direction, l tick.Locator) {
	f.major[dir] = l
	f.mutations++
}

func (f *fakeAxis) SetMinorLocator(dir tick.Direction, l tick.Locator) {
	f.minor[dir] = l
	f.mutations++
}

func (f *fakeAxis) SetLabels(dir tick.Direction, labels []string) {
	f.labels[dir] = labels
	f.mutations++
}

func (f *fakeAxis) OnViewLimitsChanged(dir tick.Direction, fn func()) {
	f.callbacks[dir] = append(f.callbacks[dir], fn)
}

func (f *fakeAxis) Redraw() { f.redraws++ }

// setView changes the view along dir and runs its callbacks.
func (f *fakeAxis) setView(dir tick.Direction, lo, hi time.Time) {
	f.view[dir] = [2]float64{f.tb.Value(lo), f.tb.Value(hi)}
	for _, fn := range f.callbacks[dir] {
		fn()
	}
}

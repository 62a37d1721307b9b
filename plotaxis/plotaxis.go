// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotaxis adapts a gonum.org/v1/plot Plot to axis.Axis.
//
// New installs a plot.Ticker on both axes of the plot. Until
// axis.Apply installs date locators, the tickers behave like
// plot.DefaultTicks.
package plotaxis

import (
	"fmt"
	"math"
	"sync"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/aclements/go-datetick/axis"
	"github.com/aclements/go-datetick/tick"
)

// Axis is an axis.Axis over both axes of a *plot.Plot.
type Axis struct {
	p  *plot.Plot
	tb tick.Timebase

	// mu guards dirs. The plot's axis limits are not guarded.
	mu   sync.Mutex
	dirs [2]dirState
}

type dirState struct {
	haveData       bool
	dataLo, dataHi float64
	major, minor   tick.Locator
	ticks          []float64 // major ticks as of the last Redraw
	labels         map[float64]string
	onChange       func()
}

var _ axis.Axis = (*Axis)(nil)

// New returns an Axis for p whose raw values are interpreted in tb,
// and installs its tickers on p.X and p.Y. gonum plots conventionally
// use tick.UnixSeconds.
func New(p *plot.Plot, tb tick.Timebase) *Axis {
	a := &Axis{p: p, tb: tb}
	p.X.Tick.Marker = ticker{a, tick.Horizontal}
	p.Y.Tick.Marker = ticker{a, tick.Vertical}
	a.Redraw()
	return a
}

// Plot returns the underlying plot.
func (a *Axis) Plot() *plot.Plot { return a.p }

func (a *Axis) axis(dir tick.Direction) *plot.Axis {
	if dir == tick.Vertical {
		return &a.p.Y
	}
	return &a.p.X
}

// AddLine adds a line through xys to the plot and widens the data
// bounds and view limits to include it.
func (a *Axis) AddLine(xys plotter.XYs) error {
	if len(xys) == 0 {
		return fmt.Errorf("empty line")
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	xmin, xmax, ymin, ymax := plotter.XYRange(xys)

	a.mu.Lock()
	a.widen(tick.Horizontal, xmin, xmax)
	a.widen(tick.Vertical, ymin, ymax)
	a.mu.Unlock()

	a.p.Add(l)
	a.Redraw()
	return nil
}

func (a *Axis) widen(dir tick.Direction, lo, hi float64) {
	d := &a.dirs[dir]
	if !d.haveData {
		d.dataLo, d.dataHi, d.haveData = lo, hi, true
		return
	}
	d.dataLo = math.Min(d.dataLo, lo)
	d.dataHi = math.Max(d.dataHi, hi)
}

// SetView sets the view limits along dir and calls the function
// registered with OnViewLimitsChanged, if any.
func (a *Axis) SetView(dir tick.Direction, lo, hi float64) {
	ax := a.axis(dir)
	ax.Min, ax.Max = lo, hi
	a.Redraw()

	a.mu.Lock()
	f := a.dirs[dir].onChange
	a.mu.Unlock()
	if f != nil {
		f()
	}
}

// SetViewTimes is SetView with times instead of raw values.
func (a *Axis) SetViewTimes(dir tick.Direction, lo, hi time.Time) {
	a.SetView(dir, a.tb.Value(lo), a.tb.Value(hi))
}

func (a *Axis) DataBounds(dir tick.Direction) (lo, hi float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := &a.dirs[dir]
	if !d.haveData {
		return a.ViewLimits(dir)
	}
	return d.dataLo, d.dataHi
}

func (a *Axis) ViewLimits(dir tick.Direction) (lo, hi float64) {
	ax := a.axis(dir)
	return ax.Min, ax.Max
}

func (a *Axis) Ticks(dir tick.Direction) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]float64(nil), a.dirs[dir].ticks...)
}

func (a *Axis) Timebase() tick.Timebase { return a.tb }

func (a *Axis) SetMajorLocator(dir tick.Direction, l tick.Locator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirs[dir].major = l
	a.dirs[dir].labels = nil
}

func (a *Axis) SetMinorLocator(dir tick.Direction, l tick.Locator) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirs[dir].minor = l
}

// SetLabels labels the ticks most recently returned by Ticks.
func (a *Axis) SetLabels(dir tick.Direction, labels []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	d := &a.dirs[dir]
	d.labels = make(map[float64]string, len(labels))
	for i, v := range d.ticks {
		if i < len(labels) {
			d.labels[v] = labels[i]
		}
	}
}

// OnViewLimitsChanged replaces any previously registered function for
// dir.
func (a *Axis) OnViewLimitsChanged(dir tick.Direction, f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dirs[dir].onChange = f
}

// Redraw recomputes the major tick positions of both axes for the
// current view limits.
func (a *Axis) Redraw() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for dir := range a.dirs {
		ax := a.axis(tick.Direction(dir))
		a.dirs[dir].ticks = a.locate(a.dirs[dir].major, ax.Min, ax.Max, true)
	}
}

// locate returns the ticks of l for raw view [min, max]. A zero l
// falls back to the labeled ticks of plot.DefaultTicks. If enclose is
// false, ticks outside the view are dropped.
//
// A Fixed locator yields its instants even for an empty view, which
// is what a plot of a single point has until it is drawn.
func (a *Axis) locate(l tick.Locator, min, max float64, enclose bool) []float64 {
	if l.Fixed != nil {
		var out []float64
		for _, t := range l.Fixed {
			v := a.tb.Value(t)
			if enclose || (min <= v && v <= max) {
				out = append(out, v)
			}
		}
		return out
	}
	if !(min < max) {
		return nil
	}
	if l.IsZero() {
		var out []float64
		for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
			if t.Label != "" {
				out = append(out, t.Value)
			}
		}
		return out
	}
	lo, err := a.tb.Time(min)
	if err != nil {
		return nil
	}
	hi, err := a.tb.Time(max)
	if err != nil {
		return nil
	}
	ts := l.Ticks(lo, hi)
	if !enclose {
		ts = tick.Clip(ts, lo, hi)
	}
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = a.tb.Value(t)
	}
	return out
}

// ticker is the plot.Ticker for one direction of an Axis.
type ticker struct {
	a   *Axis
	dir tick.Direction
}

// Ticks returns the labeled major ticks and unlabeled minor ticks
// within [min, max].
func (t ticker) Ticks(min, max float64) []plot.Tick {
	a := t.a
	a.mu.Lock()
	d := a.dirs[t.dir]
	a.mu.Unlock()

	if d.major.IsZero() {
		if !(min < max) {
			return nil
		}
		return (plot.DefaultTicks{}).Ticks(min, max)
	}

	var ticks []plot.Tick
	major := make(map[float64]bool)
	for _, v := range a.locate(d.major, min, max, false) {
		major[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: d.labels[v]})
	}
	if !d.minor.IsZero() {
		for _, v := range a.locate(d.minor, min, max, false) {
			if !major[v] {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}

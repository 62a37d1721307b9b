// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import (
	"time"

	"github.com/aclements/go-moremath/scale"
)

// Config adjusts Compute.
type Config struct {
	// MaxTicks, if positive, is the largest number of major ticks
	// Compute will place inside the view. If the band chosen from
	// the span would place more, Compute moves to the first
	// coarser band that does not. If no band satisfies MaxTicks,
	// the band chosen from the span is used.
	MaxTicks int
}

// Result is the outcome of Compute.
type Result struct {
	Range Range

	// Band is the index in Bands of the selected band, or -1 for
	// a degenerate range.
	Band int

	Major, Minor     Locator
	Primary, Context Format

	// Ticks and Minors are the major and minor ticks for the view,
	// including the enclosing ticks just outside it.
	Ticks, Minors []time.Time

	// Labels has one label per element of Ticks.
	Labels []Label

	// Degenerate is set if the data extent is a single instant.
	// In that case there is exactly one tick, at that instant,
	// labeled to the second.
	Degenerate bool
}

// Compute chooses locators and formats for r and labels the major
// ticks within r's view.
//
// Compute is a pure function of its arguments.
func Compute(r Range, dir Direction, cfg Config) (*Result, error) {
	if r.Degenerate() {
		t := r.Data.Lo
		return &Result{
			Range:      r,
			Band:       -1,
			Major:      Fixed(t),
			Primary:    fmtFull,
			Ticks:      []time.Time{t},
			Labels:     []Label{{Time: t, Primary: fmtFull.Format(t)}},
			Degenerate: true,
		}, nil
	}

	band, err := SelectBand(r.Span)
	if err != nil {
		return nil, err
	}
	if cfg.MaxTicks > 0 {
		band = fitBand(band, r.View, cfg.MaxTicks)
	}
	b := &Bands[band]

	res := &Result{
		Range:   r,
		Band:    band,
		Major:   b.Major,
		Minor:   b.Minor,
		Primary: b.Primary,
		Context: b.Context,
		Ticks:   b.Major.Ticks(r.View.Lo, r.View.Hi),
		Minors:  b.Minor.Ticks(r.View.Lo, r.View.Hi),
	}
	res.Labels = Annotate(res.Ticks, b.Primary, b.Context, r.Span, r.View.Lo, dir)
	return res, nil
}

// fitBand returns the first band at or after band whose major ticks
// within view number at most max. Bands play the role of tick levels:
// the tick count is close to monotonically decreasing in the band
// index.
func fitBand(band int, view Bounds, max int) int {
	o := scale.TickOptions{
		Max:      max,
		MinLevel: band,
		MaxLevel: len(Bands) - 1,
	}
	level, ok := o.FindLevel(bandTicker{view}, band)
	if !ok {
		return band
	}
	return level
}

// bandTicker presents Bands as tick levels over a view.
type bandTicker struct {
	view Bounds
}

func (b bandTicker) visible(level int) []time.Time {
	return Clip(Bands[level].Major.Ticks(b.view.Lo, b.view.Hi), b.view.Lo, b.view.Hi)
}

func (b bandTicker) CountTicks(level int) int {
	return len(b.visible(level))
}

// TicksAtLevel returns tick offsets from the start of the view, in
// seconds.
func (b bandTicker) TicksAtLevel(level int) interface{} {
	ts := b.visible(level)
	xs := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = Span{b.view.Lo, t}.Seconds()
	}
	return xs
}

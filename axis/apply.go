// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"
	"time"

	"github.com/aclements/go-datetick/tick"
)

// Apply installs date ticks and labels on the dir axis of opts.Axis.
//
// If any of the axis's limits or data bounds is not a valid time,
// Apply returns a *tick.InvalidTimeError without modifying the axis.
//
// Unless opts.NoCallback is set, Apply also registers a callback so
// that changing the view limits recomputes the ticks. The callback
// itself recomputes with NoCallback set, so a recomputation never
// registers another callback.
func Apply(dir tick.Direction, opts Options) error {
	log := opts.logger()
	a := opts.Axis
	if a == nil {
		if a = Current(); a == nil {
			return ErrNoAxis
		}
	}

	a.Redraw()
	tb := a.Timebase()
	dataLo, dataHi := a.DataBounds(dir)
	viewLo, viewHi := a.ViewLimits(dir)
	r, err := tick.Resolve(tb, dataLo, dataHi, viewLo, viewHi)
	if err != nil {
		return fmt.Errorf("%s axis: %w", dir, err)
	}
	if opts.Debug {
		log.Debugf("%s data %v, view %v, span %v (%g seconds)", dir, r.Data, r.View, r.Span, r.Span.Seconds())
		traceTicks(log, fmt.Sprintf("default %s ticks", dir), tb, a.Ticks(dir), r.View)
	}

	res, err := tick.Compute(r, dir, tick.Config{MaxTicks: opts.MaxTicks})
	if err != nil {
		return fmt.Errorf("%s axis: %w", dir, err)
	}
	if opts.Debug && !res.Degenerate {
		log.Debugf("%s band %s: major %v, minor %v, format %q, context %q", dir, tick.Bands[res.Band].Name, res.Major, res.Minor, res.Primary, res.Context)
	}

	a.SetMajorLocator(dir, res.Major)
	a.SetMinorLocator(dir, res.Minor)
	a.Redraw()

	// Label the ticks the axis actually shows, which may include
	// ticks just outside the view.
	raw := a.Ticks(dir)
	ticks := make([]time.Time, len(raw))
	for i, v := range raw {
		if ticks[i], err = tb.Time(v); err != nil {
			return fmt.Errorf("%s axis tick: %w", dir, err)
		}
	}
	if opts.Debug {
		traceTicks(log, fmt.Sprintf("new %s ticks", dir), tb, raw, r.View)
	}
	if len(ticks) == 0 {
		if opts.Debug {
			log.Debugf("no %s labels to format", dir)
		}
		return nil
	}

	labels := tick.Annotate(ticks, res.Primary, res.Context, r.Span, r.View.Lo, dir)
	if opts.Debug {
		traceLabels(log, fmt.Sprintf("%s labels", dir), labels, r.View)
	}
	a.SetLabels(dir, tick.Texts(labels))

	if res.Degenerate || opts.NoCallback {
		return nil
	}
	a.OnViewLimitsChanged(dir, func() {
		nested := opts
		nested.Axis = a
		nested.NoCallback = true
		if err := Apply(dir, nested); err != nil {
			log.Warnw("recomputing date ticks", "axis", dir.String(), "error", err)
		}
	})
	return nil
}

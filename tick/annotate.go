// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import "time"

// A Label is the rendered label of one major tick.
type Label struct {
	Time    time.Time
	Primary string

	// Context is extra text shown below Primary, such as the date
	// of a time-of-day label. It is empty if the tick gets no
	// context.
	Context string
}

// Text returns the full label text.
func (l Label) Text() string {
	if l.Context == "" {
		return l.Primary
	}
	return l.Primary + "\n" + l.Context
}

// Texts returns the full text of each label.
func Texts(ls []Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Text()
	}
	return out
}

// Annotate labels ticks, which must be increasing, with the primary
// format and adds the context format where a reader needs it:
//
//   - the first displayed tick always gets context. If ticks[0] is
//     before viewLo, it will be clipped, so the second tick is treated
//     as the first. A lone tick before viewLo gets no context;
//   - a later tick gets context if, compared to the previous tick,
//     the year changed, the month changed and span is under 60 days,
//     the day changed and span is under 4 days, the hour changed and
//     span is under 30 minutes, or the minute or second changed and
//     span is under a second.
//
// On a Horizontal axis, the tick right after the first displayed tick
// never gets context, since two adjacent two-line labels tend to run
// together.
//
// If context is the zero Format, no tick gets context.
func Annotate(ticks []time.Time, primary, context Format, span Span, viewLo time.Time, dir Direction) []Label {
	labels := make([]Label, len(ticks))
	for i, t := range ticks {
		labels[i] = Label{Time: t, Primary: primary.Format(t)}
	}
	if context.IsZero() || len(ticks) == 0 {
		return labels
	}

	first := 0
	if ticks[0].Before(viewLo) {
		if len(ticks) == 1 {
			// Nothing will be displayed.
			return labels
		}
		first = 1
	}
	labels[first].Context = context.Format(ticks[first])

	nDays, nSecs := span.Days(), span.Seconds()
	for i := first + 1; i < len(ticks); i++ {
		cur, prev := ticks[i], ticks[i-1]
		modify := cur.Year() != prev.Year() ||
			(nDays < 60 && cur.Month() != prev.Month()) ||
			(nDays < 4 && cur.Day() != prev.Day()) ||
			(nSecs < 60*30 && cur.Hour() != prev.Hour()) ||
			(nSecs < 1 && (cur.Minute() != prev.Minute() || cur.Second() != prev.Second()))
		if !modify {
			continue
		}
		if i == first+1 && dir == Horizontal {
			continue
		}
		labels[i].Context = context.Format(cur)
	}
	return labels
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/fatih/color"

	"github.com/aclements/go-datetick/axis"
	"github.com/aclements/go-datetick/tick"
)

var (
	headerColor  = color.New(color.Bold)
	contextColor = color.New(color.FgCyan)
	clippedColor = color.New(color.Faint)
)

// computeTicks recomputes the ticks of a's dir axis for its current
// limits.
func computeTicks(a axis.Axis, dir tick.Direction, maxTicks int) (*tick.Result, error) {
	tb := a.Timebase()
	dlo, dhi := a.DataBounds(dir)
	vlo, vhi := a.ViewLimits(dir)
	r, err := tick.Resolve(tb, dlo, dhi, vlo, vhi)
	if err != nil {
		return nil, err
	}
	return tick.Compute(r, dir, tick.Config{MaxTicks: maxTicks})
}

// printTable writes the labels of res to w, one row per major tick.
// Rows that carry context are highlighted and rows outside the view
// are dimmed.
func printTable(w io.Writer, res *tick.Result) {
	view := res.Range.View
	var buf bytes.Buffer
	table.Fprint(&buf, axis.LabelTable(res.Labels, view))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			line = headerColor.Sprint(line)
		case i-1 < len(res.Labels) && !view.Contains(res.Labels[i-1].Time):
			line = clippedColor.Sprint(line)
		case i-1 < len(res.Labels) && res.Labels[i-1].Context != "":
			line = contextColor.Sprint(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, summary(res))
}

func summary(res *tick.Result) string {
	if res.Degenerate {
		return fmt.Sprintf("span %v: single instant", res.Range.Span)
	}
	b := tick.Bands[res.Band]
	visible := len(tick.Clip(res.Ticks, res.Range.View.Lo, res.Range.View.Hi))
	return fmt.Sprintf("span %v: band %s, major %v (%d in view), minor %v (%d)",
		res.Range.Span, b.Name, res.Major, visible, res.Minor, len(res.Minors))
}

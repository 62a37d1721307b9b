// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aclements/go-datetick/tick"
)

var (
	axisStyle  = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// ruler draws the view of res as a text axis width columns wide.
func ruler(res *tick.Result, width int) string {
	ax, labels := rulerLines(res, width)
	return axisStyle.Render(ax) + "\n" + labelStyle.Render(labels)
}

// rulerLines returns an axis line with a '|' at each major tick and a
// '\'' at each minor tick in view, and a line with the first line of
// each major tick's primary label starting at its tick. Labels that
// would overlap the previous label are dropped.
func rulerLines(res *tick.Result, width int) (axis, labels string) {
	view := res.Range.View
	total := tick.Span{Start: view.Lo, End: view.Hi}.Seconds()
	col := func(t time.Time) int {
		if total == 0 {
			return width / 2
		}
		x := tick.Span{Start: view.Lo, End: t}.Seconds() / total
		return int(math.Round(x * float64(width-1)))
	}

	line := []rune(strings.Repeat("-", width))
	for _, t := range tick.Clip(res.Minors, view.Lo, view.Hi) {
		line[col(t)] = '\''
	}
	var lab []rune
	for _, l := range res.Labels {
		if !view.Contains(l.Time) {
			continue
		}
		c := col(l.Time)
		line[c] = '|'

		text := []rune(strings.SplitN(l.Primary, "\n", 2)[0])
		if len(lab) > 0 && c <= len(lab) {
			// Keep a space between labels.
			continue
		}
		for len(lab) < c {
			lab = append(lab, ' ')
		}
		lab = append(lab, text...)
	}
	return string(line), string(lab)
}

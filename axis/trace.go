// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/aclements/go-gg/table"
	"go.uber.org/zap"

	"github.com/aclements/go-datetick/tick"
)

const clipped = "will be clipped"

// LabelTable returns a table with one row per label: the tick time,
// the primary text, the context text, and whether the tick falls
// outside view.
func LabelTable(labels []tick.Label, view tick.Bounds) *table.Table {
	times := make([]string, len(labels))
	primary := make([]string, len(labels))
	context := make([]string, len(labels))
	notes := make([]string, len(labels))
	for i, l := range labels {
		times[i] = l.Time.Format(time.RFC3339Nano)
		primary[i] = l.Primary
		context[i] = strings.Replace(l.Context, "\n", " ", -1)
		if !view.Contains(l.Time) {
			notes[i] = clipped
		}
	}
	return new(table.Builder).
		Add("tick", times).
		Add("label", primary).
		Add("context", context).
		Add("note", notes).
		Done()
}

func traceTicks(log *zap.SugaredLogger, title string, tb tick.Timebase, raw []float64, view tick.Bounds) {
	times := make([]string, len(raw))
	notes := make([]string, len(raw))
	for i, v := range raw {
		t, err := tb.Time(v)
		if err != nil {
			times[i], notes[i] = fmt.Sprint(v), "invalid"
			continue
		}
		times[i] = t.Format(time.RFC3339Nano)
		if !view.Contains(t) {
			notes[i] = clipped
		}
	}
	tab := new(table.Builder).Add("tick", times).Add("note", notes).Done()
	logTable(log, title, tab)
}

func traceLabels(log *zap.SugaredLogger, title string, labels []tick.Label, view tick.Bounds) {
	logTable(log, title, LabelTable(labels, view))
}

func logTable(log *zap.SugaredLogger, title string, tab *table.Table) {
	var buf bytes.Buffer
	table.Fprint(&buf, tab)
	log.Debugf("%s:\n%s", title, buf.String())
}

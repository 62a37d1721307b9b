// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis installs date ticks on a plot axis.
//
// The plotting surface is abstracted by the Axis interface. Apply
// reads an Axis's data extent and view limits, computes ticks and
// labels with package tick, writes them back, and optionally
// subscribes to view changes so the ticks follow pans and zooms.
package axis

import (
	"errors"
	"sync"

	"github.com/aclements/go-datetick/tick"
)

// An Axis is a plot axis pair that Apply can read limits from and
// install ticks on. Raw values are in the Axis's Timebase.
type Axis interface {
	// DataBounds returns the extent of the plotted data along dir.
	DataBounds(dir tick.Direction) (lo, hi float64)

	// ViewLimits returns the currently displayed limits along dir.
	ViewLimits(dir tick.Direction) (lo, hi float64)

	// Ticks returns the major tick positions the axis currently
	// displays along dir, in increasing order.
	Ticks(dir tick.Direction) []float64

	// Timebase maps raw values to times.
	Timebase() tick.Timebase

	SetMajorLocator(dir tick.Direction, l tick.Locator)
	SetMinorLocator(dir tick.Direction, l tick.Locator)

	// SetLabels sets the label text of each major tick, in the
	// order returned by Ticks.
	SetLabels(dir tick.Direction, labels []string)

	// OnViewLimitsChanged registers f to be called after the view
	// limits along dir change.
	OnViewLimitsChanged(dir tick.Direction, f func())

	// Redraw brings the axis's ticks up to date with its locators
	// and limits.
	Redraw()
}

// ErrNoAxis is returned by Apply if no Axis was given and there is no
// current Axis.
var ErrNoAxis = errors.New("no axis given and no current axis")

var current struct {
	sync.Mutex
	a Axis
}

// SetCurrent makes a the current Axis, used by Apply when Options
// does not name one.
func SetCurrent(a Axis) {
	current.Lock()
	defer current.Unlock()
	current.a = a
}

// Current returns the current Axis, or nil.
func Current() Axis {
	current.Lock()
	defer current.Unlock()
	return current.a
}

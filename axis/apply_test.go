// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aclements/go-datetick/tick"
)

var jan1 = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

func observed(level zapcore.Level) (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core).Sugar(), logs
}

// expected computes the labels Apply should install on f along dir.
func expected(t *testing.T, f *fakeAxis, dir tick.Direction) []string {
	t.Helper()
	dlo, dhi := f.DataBounds(dir)
	vlo, vhi := f.ViewLimits(dir)
	r, err := tick.Resolve(f.tb, dlo, dhi, vlo, vhi)
	require.NoError(t, err)
	res, err := tick.Compute(r, dir, tick.Config{})
	require.NoError(t, err)
	return tick.Texts(res.Labels)
}

func TestApplyTwoHours(t *testing.T) {
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(2*time.Hour))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f}))

	assert.Equal(t, []string{
		"23:40", "00:00\n1999-01-01", "00:20", "00:40", "01:00",
		"01:20", "01:40", "02:00", "02:20",
	}, f.labels[tick.Horizontal])
	assert.Equal(t, "minute{0,20,40}", f.major[tick.Horizontal].String())
	assert.Len(t, f.callbacks[tick.Horizontal], 1)
	assert.Empty(t, f.callbacks[tick.Vertical])
	assert.Nil(t, f.labels[tick.Vertical])
}

func TestApplyVertical(t *testing.T) {
	f := newFakeAxis(tick.UnixDays, jan1, jan1.Add(36*time.Hour))
	require.NoError(t, Apply(tick.Vertical, Options{Axis: f, NoCallback: true}))
	assert.Equal(t, expected(t, f, tick.Vertical), f.labels[tick.Vertical])
	assert.Nil(t, f.labels[tick.Horizontal])
	assert.Empty(t, f.callbacks[tick.Vertical])
}

func TestApplyInvalidTime(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), 1e15} {
		f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(time.Hour))
		f.view[tick.Horizontal][1] = bad
		err := Apply(tick.Horizontal, Options{Axis: f})
		require.Error(t, err, "view high %v", bad)

		var ite *tick.InvalidTimeError
		require.True(t, errors.As(err, &ite), "%v", err)
		assert.Equal(t, tick.ViewHigh, ite.Bound)
		assert.Contains(t, err.Error(), "upper axis limit")
		assert.Zero(t, f.mutations, "axis modified despite invalid limits")
		assert.Empty(t, f.callbacks[tick.Horizontal])
	}
}

func TestApplyYearOne(t *testing.T) {
	lo := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newFakeAxis(tick.UnixSeconds, lo, lo.AddDate(0, 4, 0))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f}))
	labels := f.labels[tick.Horizontal]
	require.Len(t, labels, 6)
	assert.Equal(t, "01\n0001", labels[0])
	assert.Equal(t, "06", labels[5])
}

func TestApplyInvalidDataBound(t *testing.T) {
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(time.Hour))
	f.data[tick.Horizontal][0] = math.NaN()
	err := Apply(tick.Horizontal, Options{Axis: f})
	var ite *tick.InvalidTimeError
	require.True(t, errors.As(err, &ite), "%v", err)
	assert.Equal(t, tick.DataLow, ite.Bound)
	assert.Zero(t, f.mutations)
}

func TestApplyCallback(t *testing.T) {
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(2*time.Hour))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f}))
	require.Len(t, f.callbacks[tick.Horizontal], 1)

	// Zooming in keeps the data extent in the span.
	f.setView(tick.Horizontal, jan1.Add(10*time.Minute), jan1.Add(50*time.Minute))
	assert.Equal(t, expected(t, f, tick.Horizontal), f.labels[tick.Horizontal])
	assert.Len(t, f.callbacks[tick.Horizontal], 1, "callback re-registered")

	// Shrinking the data too moves to a finer band.
	f.data[tick.Horizontal] = [2]float64{f.tb.Value(jan1), f.tb.Value(jan1.Add(30 * time.Second))}
	f.setView(tick.Horizontal, jan1, jan1.Add(30*time.Second))
	labels := f.labels[tick.Horizontal]
	assert.Equal(t, expected(t, f, tick.Horizontal), labels)
	require.Len(t, labels, 6)
	assert.Equal(t, []string{"59:50", "00:00\n1999-01-01T00"}, labels[:2])
	assert.Len(t, f.callbacks[tick.Horizontal], 1, "callback re-registered")
}

func TestApplyCallbackError(t *testing.T) {
	log, logs := observed(zap.WarnLevel)
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(2*time.Hour))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, Logger: log}))
	before := f.labels[tick.Horizontal]

	f.view[tick.Horizontal][0] = math.NaN()
	for _, fn := range f.callbacks[tick.Horizontal] {
		fn()
	}
	assert.Equal(t, 1, logs.FilterMessage("recomputing date ticks").Len())
	assert.Equal(t, before, f.labels[tick.Horizontal])
}

func TestApplyDegenerate(t *testing.T) {
	at := time.Date(2000, 1, 2, 3, 4, 5, 500000000, time.UTC)
	f := newFakeAxis(tick.UnixSeconds, at, at)
	f.view[tick.Horizontal] = [2]float64{f.tb.Value(at.Add(-time.Hour)), f.tb.Value(at.Add(time.Hour))}
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f}))
	assert.Equal(t, []string{"2000-01-02T03:04:05"}, f.labels[tick.Horizontal])
	assert.True(t, f.minor[tick.Horizontal].IsZero())
	assert.Empty(t, f.callbacks[tick.Horizontal])
}

func TestApplyIdempotent(t *testing.T) {
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(50*24*time.Hour))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, NoCallback: true}))
	first := f.labels[tick.Horizontal]
	major := f.major[tick.Horizontal]
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, NoCallback: true}))
	assert.Equal(t, first, f.labels[tick.Horizontal])
	assert.Equal(t, major, f.major[tick.Horizontal])
}

func TestApplyMaxTicks(t *testing.T) {
	lo := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	f := newFakeAxis(tick.UnixSeconds, lo, lo.AddDate(0, 0, 10))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, NoCallback: true, MaxTicks: 5}))
	assert.Equal(t, tick.Bands[bandNamed(t, "<32d")].Major, f.major[tick.Horizontal])
}

func bandNamed(t *testing.T, name string) int {
	for i, b := range tick.Bands {
		if b.Name == name {
			return i
		}
	}
	t.Fatalf("no band %q", name)
	return -1
}

func TestApplyCurrent(t *testing.T) {
	defer SetCurrent(Current())

	SetCurrent(nil)
	assert.Equal(t, ErrNoAxis, Apply(tick.Horizontal, Options{}))

	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(2*time.Hour))
	SetCurrent(f)
	require.NoError(t, Apply(tick.Horizontal, Options{NoCallback: true}))
	assert.NotEmpty(t, f.labels[tick.Horizontal])
}

func TestApplyDebug(t *testing.T) {
	log, logs := observed(zap.DebugLevel)
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1.Add(2*time.Hour))
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, Debug: true, Logger: log}))

	assert.Equal(t, 1, logs.FilterMessageSnippet("default x ticks").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("new x ticks").Len())
	labels := logs.FilterMessageSnippet("x labels").All()
	require.Len(t, labels, 1)
	assert.Contains(t, labels[0].Message, "will be clipped")
	assert.Contains(t, labels[0].Message, "1998-12-31T23:40:00Z")

	// Without Debug nothing is traced.
	log, logs = observed(zap.DebugLevel)
	require.NoError(t, Apply(tick.Horizontal, Options{Axis: f, NoCallback: true, Logger: log}))
	assert.Zero(t, logs.Len())
}

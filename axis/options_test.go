// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aclements/go-datetick/tick"
)

func TestOptionsFromMap(t *testing.T) {
	log, logs := observed(zap.WarnLevel)
	f := newFakeAxis(tick.UnixSeconds, jan1, jan1)
	opts := OptionsFromMap(map[string]interface{}{
		"axis":                   f,
		"debug":                  true,
		"registerChangeCallback": false,
		"maxTicks":               7,
	}, log)
	assert.Same(t, f, opts.Axis.(*fakeAxis))
	assert.True(t, opts.Debug)
	assert.True(t, opts.NoCallback)
	assert.Equal(t, 7, opts.MaxTicks)
	assert.Zero(t, logs.Len())
}

func TestOptionsFromMapIgnored(t *testing.T) {
	log, logs := observed(zap.WarnLevel)
	opts := OptionsFromMap(map[string]interface{}{
		"colour":   "red",
		"debug":    "yes",
		"axis":     42,
		"maxTicks": -1,
	}, log)
	assert.Equal(t, Options{Logger: log}, opts)

	warnings := logs.FilterMessage("ignoring datetick option").All()
	require.Len(t, warnings, 4)
	var keys []string
	for _, w := range warnings {
		err, ok := w.ContextMap()["error"].(string)
		require.True(t, ok, "error field %#v", w.ContextMap()["error"])
		keys = append(keys, strings.SplitN(err, " ", 3)[1])
	}
	// Keys are reported in sorted order.
	assert.Equal(t, []string{`"axis"`, `"colour"`, `"debug"`, `"maxTicks"`}, keys)
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Key: "colour", Value: "red", Reason: "not a valid option"}
	assert.Equal(t, `option "colour" (red): not a valid option`, err.Error())
}

func TestLoadOptions(t *testing.T) {
	log, logs := observed(zap.WarnLevel)
	opts, err := LoadOptions(strings.NewReader("debug: true\nmaxTicks: 8\nregisterChangeCallback: false\nbogus: 1\n"), log)
	require.NoError(t, err)
	assert.True(t, opts.Debug)
	assert.Equal(t, 8, opts.MaxTicks)
	assert.True(t, opts.NoCallback)
	assert.Equal(t, 1, logs.Len())

	opts, err = LoadOptions(strings.NewReader(""), log)
	require.NoError(t, err)
	assert.Equal(t, Options{Logger: log}, opts)

	_, err = LoadOptions(strings.NewReader("debug: [unterminated"), log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing options")
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options configures Apply. The zero Options is the default
// configuration.
type Options struct {
	// Axis is the axis to tick. If nil, Apply uses Current().
	Axis Axis

	// Debug logs the default ticks, the computed ticks, and the
	// final labels at debug level.
	Debug bool

	// NoCallback disables subscribing to view limit changes.
	NoCallback bool

	// MaxTicks, if positive, limits the number of major ticks in
	// view. See tick.Config.
	MaxTicks int

	// Logger receives warnings and debug traces. If nil, Apply
	// uses zap.S().
	Logger *zap.SugaredLogger
}

func (o Options) logger() *zap.SugaredLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.S()
}

// Option keys recognized by OptionsFromMap.
const (
	KeyAxis             = "axis"
	KeyDebug            = "debug"
	KeyRegisterCallback = "registerChangeCallback"
	KeyMaxTicks         = "maxTicks"
)

// ConfigError describes an option OptionsFromMap ignored.
type ConfigError struct {
	Key    string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option %q (%v): %s", e.Key, e.Value, e.Reason)
}

// OptionsFromMap builds Options from an untyped option map, such as
// one decoded from a configuration file. Unknown keys and values of
// the wrong type are not errors: each is logged to log as a warning
// and otherwise ignored, leaving the default for that option.
func OptionsFromMap(m map[string]interface{}, log *zap.SugaredLogger) Options {
	opts := Options{Logger: log}
	log = opts.logger()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		var bad string
		switch k {
		case KeyAxis:
			if a, ok := v.(Axis); ok {
				opts.Axis = a
			} else {
				bad = "not an Axis"
			}
		case KeyDebug:
			if b, ok := v.(bool); ok {
				opts.Debug = b
			} else {
				bad = "not a boolean"
			}
		case KeyRegisterCallback:
			if b, ok := v.(bool); ok {
				opts.NoCallback = !b
			} else {
				bad = "not a boolean"
			}
		case KeyMaxTicks:
			if n, ok := v.(int); ok && n >= 0 {
				opts.MaxTicks = n
			} else {
				bad = "not a non-negative integer"
			}
		default:
			bad = "not a valid option"
		}
		if bad != "" {
			log.Warnw("ignoring datetick option", "error", &ConfigError{k, v, bad})
		}
	}
	return opts
}

// LoadOptions reads a YAML mapping of options from r. See
// OptionsFromMap. An empty document yields the default Options.
func LoadOptions(r io.Reader, log *zap.SugaredLogger) (Options, error) {
	var m map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}
	return OptionsFromMap(m, log), nil
}

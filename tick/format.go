// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tick

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// A Format renders a tick time as label text. It is either a
// strftime pattern or the Millis fraction formatter. The zero Format
// is empty and renders nothing.
type Format struct {
	pattern string
	millis  bool
	f       *strftime.Strftime
}

// Millis formats the first three digits of the fractional second,
// prefixed with a period, as in ".250".
var Millis = Format{pattern: ".%f", millis: true}

// Strftime returns a Format for a strftime pattern such as
// "%Y-%m-%d". It panics if the pattern is invalid; patterns are
// expected to be constants.
func Strftime(pattern string) Format {
	if pattern == "" {
		return Format{}
	}
	f, err := strftime.New(pattern)
	if err != nil {
		panic(fmt.Sprintf("bad strftime pattern %q: %v", pattern, err))
	}
	return Format{pattern: pattern, f: f}
}

// IsZero reports whether f is the empty format.
func (f Format) IsZero() bool {
	return !f.millis && f.f == nil
}

// Format renders t.
func (f Format) Format(t time.Time) string {
	switch {
	case f.millis:
		return fmt.Sprintf(".%03d", t.Nanosecond()/int(time.Millisecond))
	case f.f == nil:
		return ""
	}
	return f.f.FormatString(t)
}

func (f Format) String() string {
	return f.pattern
}

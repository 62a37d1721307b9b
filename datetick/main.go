// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command datetick shows the date ticks and labels chosen for a time
// axis.
//
// Usage:
//
//	datetick [flags] start end
//
// start and end give the view limits of the axis, in RFC 3339 or
// 2006-01-02 form. By default datetick prints a table of the major
// ticks and their labels. With -o it instead renders a plot with a
// date axis, and with -i it starts an interactive explorer for
// panning and zooming the view.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/aclements/go-datetick/axis"
	"github.com/aclements/go-datetick/plotaxis"
	"github.com/aclements/go-datetick/tick"
)

func main() {
	log.SetPrefix("datetick: ")
	log.SetFlags(0)

	var (
		flagVertical = flag.Bool("y", false, "tick the vertical axis instead of the horizontal axis")
		flagData     = flag.String("data", "", "data extent as `start,end` (default: the view limits)")
		flagTable    = flag.Bool("table", false, "print the tick table even when writing a plot")
		flagOut      = flag.String("o", "", "render a plot to `file` (.svg, .png, or .pdf)")
		flagConfig   = flag.String("config", "", "read options from YAML `file`")
		flagDebug    = flag.Bool("debug", false, "log tick computation traces")
		flagMax      = flag.Int("max", 0, "use at most `n` major ticks in view")
		flagTZ       = flag.String("tz", "UTC", "interpret and label times in `location`")
		flagExplore  = flag.Bool("i", false, "explore interactively")
		flagHTTP     = flag.String("http", "", "serve ticks and plots over HTTP on `addr` instead")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] start end\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [flags] -http addr\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if (*flagHTTP == "") != (flag.NArg() == 2) {
		flag.Usage()
		os.Exit(2)
	}

	loc, err := time.LoadLocation(*flagTZ)
	if err != nil {
		log.Fatal(err)
	}
	tb := tick.UnixSeconds
	tb.Location = loc

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, err := newLogger(level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Options from the config file, overridden by flags.
	var opts axis.Options
	if *flagConfig != "" {
		f, err := os.Open(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
		opts, err = axis.LoadOptions(f, logger.Sugar())
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", *flagConfig, err)
		}
	}
	if *flagDebug {
		opts.Debug = true
	}
	if *flagMax > 0 {
		opts.MaxTicks = *flagMax
	}
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}
	opts.Logger = logger.Sugar()

	if *flagHTTP != "" {
		srv := &server{tb: tb, opts: opts}
		logger.Sugar().Infow("serving", "addr", *flagHTTP)
		log.Fatal(http.ListenAndServe(*flagHTTP, srv.routes()))
	}

	view, err := parseRange(flag.Arg(0), flag.Arg(1), loc)
	if err != nil {
		log.Fatal(err)
	}
	data := view
	if *flagData != "" {
		if data, err = parseDataRange(*flagData, loc); err != nil {
			log.Fatal(err)
		}
	}
	dir := tick.Horizontal
	if *flagVertical {
		dir = tick.Vertical
	}

	a, err := newDateAxis(tb, dir, data, view, opts)
	if err != nil {
		log.Fatal(err)
	}
	p := a.Plot()
	opts.Axis = a

	if *flagExplore {
		if err := explore(a, dir, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *flagOut != "" {
		p.Title.Text = fmt.Sprintf("%s to %s", view.Lo.Format(time.RFC3339), view.Hi.Format(time.RFC3339))
		if err := savePlot(p, *flagOut); err != nil {
			log.Fatal(err)
		}
		if !*flagTable {
			return
		}
	}

	res, err := computeTicks(a, dir, opts.MaxTicks)
	if err != nil {
		log.Fatal(err)
	}
	printTable(os.Stdout, res)
}

func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = ""
	return cfg.Build()
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// parseTime parses s in any of timeLayouts. Times without a zone are
// in loc.
func parseTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q", s)
}

func parseRange(lo, hi string, loc *time.Location) (tick.Bounds, error) {
	tlo, err := parseTime(lo, loc)
	if err != nil {
		return tick.Bounds{}, err
	}
	thi, err := parseTime(hi, loc)
	if err != nil {
		return tick.Bounds{}, err
	}
	if thi.Before(tlo) {
		return tick.Bounds{}, fmt.Errorf("end %s is before start %s", hi, lo)
	}
	return tick.Bounds{Lo: tlo, Hi: thi}, nil
}

// parseDataRange parses "start,end".
func parseDataRange(s string, loc *time.Location) (tick.Bounds, error) {
	f := strings.SplitN(s, ",", 2)
	if len(f) != 2 {
		return tick.Bounds{}, fmt.Errorf("data range %q is not start,end", s)
	}
	return parseRange(f[0], f[1], loc)
}

// newDateAxis returns a plot whose dir axis has data extent data and
// view limits view, with date ticks applied.
func newDateAxis(tb tick.Timebase, dir tick.Direction, data, view tick.Bounds, opts axis.Options) (*plotaxis.Axis, error) {
	a := plotaxis.New(plot.New(), tb)
	if err := a.AddLine(dataLine(tb, dir, data.Lo, data.Hi)); err != nil {
		return nil, err
	}
	a.SetViewTimes(dir, view.Lo, view.Hi)
	opts.Axis = a
	if err := axis.Apply(dir, opts); err != nil {
		return nil, err
	}
	return a, nil
}

// dataLine returns a line spanning [lo, hi] along dir, rising along
// the other direction.
func dataLine(tb tick.Timebase, dir tick.Direction, lo, hi time.Time) plotter.XYs {
	xys := plotter.XYs{{X: tb.Value(lo), Y: 0}, {X: tb.Value(hi), Y: 1}}
	if dir == tick.Vertical {
		for i := range xys {
			xys[i].X, xys[i].Y = xys[i].Y, xys[i].X
		}
	}
	return xys
}

func savePlot(p *plot.Plot, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg", ".png", ".pdf":
	default:
		return fmt.Errorf("unsupported plot format %q", ext)
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

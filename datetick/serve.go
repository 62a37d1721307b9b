// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/go-datetick/axis"
	"github.com/aclements/go-datetick/plotaxis"
	"github.com/aclements/go-datetick/tick"
)

// server answers tick and plot requests. Every request builds its own
// axis, so requests are independent.
type server struct {
	tb   tick.Timebase
	opts axis.Options
}

func (s *server) logger() *zap.SugaredLogger {
	if s.opts.Logger != nil {
		return s.opts.Logger
	}
	return zap.S()
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ticks/{dir:[xy]}", s.ticks).Methods("GET")
	r.HandleFunc("/plot.{format:svg|png|pdf}", s.plot).Methods("GET")
	return r
}

type tickJSON struct {
	Time    string `json:"time"`
	Label   string `json:"label"`
	Context string `json:"context,omitempty"`
	Clipped bool   `json:"clipped,omitempty"`
}

type ticksResponse struct {
	Span   string     `json:"span"`
	Band   string     `json:"band"`
	Major  string     `json:"major"`
	Minor  string     `json:"minor"`
	Ticks  []tickJSON `json:"ticks"`
	Minors int        `json:"minors"`
}

// newAxis builds a date axis from the query parameters start, end, data
// (start,end), and max.
func (s *server) newAxis(r *http.Request, dir tick.Direction) (*plotaxis.Axis, axis.Options, error) {
	q := r.URL.Query()
	loc := s.tb.Location
	if loc == nil {
		loc = time.UTC
	}
	view, err := parseRange(q.Get("start"), q.Get("end"), loc)
	if err != nil {
		return nil, axis.Options{}, err
	}
	data := view
	if d := q.Get("data"); d != "" {
		if data, err = parseDataRange(d, loc); err != nil {
			return nil, axis.Options{}, err
		}
	}
	opts := s.opts
	opts.NoCallback = true
	if m := q.Get("max"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 0 {
			return nil, axis.Options{}, fmt.Errorf("bad max %q", m)
		}
		opts.MaxTicks = n
	}
	a, err := newDateAxis(s.tb, dir, data, view, opts)
	if err != nil {
		return nil, axis.Options{}, err
	}
	opts.Axis = a
	return a, opts, nil
}

func (s *server) ticks(w http.ResponseWriter, r *http.Request) {
	dir, err := tick.ParseDirection(mux.Vars(r)["dir"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	a, opts, err := s.newAxis(r, dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := computeTicks(a, dir, opts.MaxTicks)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := ticksResponse{
		Span:   res.Range.Span.String(),
		Band:   "degenerate",
		Major:  res.Major.String(),
		Minor:  res.Minor.String(),
		Minors: len(tick.Clip(res.Minors, res.Range.View.Lo, res.Range.View.Hi)),
	}
	if !res.Degenerate {
		resp.Band = tick.Bands[res.Band].Name
	}
	for _, l := range res.Labels {
		resp.Ticks = append(resp.Ticks, tickJSON{
			Time:    l.Time.Format(time.RFC3339Nano),
			Label:   l.Primary,
			Context: l.Context,
			Clipped: !res.Range.View.Contains(l.Time),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger().Warnw("writing response", "error", err)
	}
}

var contentTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
	"pdf": "application/pdf",
}

func (s *server) plot(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]
	dir := tick.Horizontal
	if d := r.URL.Query().Get("dir"); d != "" {
		var err error
		if dir, err = tick.ParseDirection(d); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	a, _, err := s.newAxis(r, dir)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wt, err := a.Plot().WriterTo(8*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	if _, err := wt.WriteTo(w); err != nil {
		s.logger().Warnw("writing plot", "error", err)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/aclements/go-datetick/axis"
	"github.com/aclements/go-datetick/plotaxis"
	"github.com/aclements/go-datetick/tick"
)

// An explorer changes the view of an axis in response to commands
// and shows the resulting ticks.
type explorer struct {
	a    *plotaxis.Axis
	dir  tick.Direction
	opts axis.Options
	w    io.Writer

	// width is the width of the ruler drawn by show, or 0 for no
	// ruler.
	width int
}

var errQuit = errors.New("quit")

const exploreHelp = `Commands:
  view START END   set the view limits
  pan DURATION     move the view by DURATION (e.g. 90m, -2h, 3d)
  zoom FACTOR      zoom in by FACTOR around the center (< 1 zooms out)
  show             show the current ticks
  save FILE        render the plot to FILE
  help             show this help
  quit             exit
`

func explore(a *plotaxis.Axis, dir tick.Direction, opts axis.Options) error {
	if os.Getenv("TERM") == "dumb" || !terminal.IsTerminal(1) {
		color.NoColor = true
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "datetick> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("view"),
			readline.PcItem("pan"),
			readline.PcItem("zoom"),
			readline.PcItem("show"),
			readline.PcItem("save"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return fmt.Errorf("starting explorer: %w", err)
	}
	defer rl.Close()

	e := &explorer{a: a, dir: dir, opts: opts, w: rl.Stdout(), width: 79}
	if w, _, err := terminal.GetSize(1); err == nil && w > 20 {
		e.width = w - 1
	}
	e.help()
	e.show()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil {
			return nil
		}
		if err := e.exec(line); err == errQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(e.w, "error: %v\n", err)
		}
	}
}

// exec runs one command line. It returns errQuit for the quit
// command.
func (e *explorer) exec(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	cmd, args := words[0], words[1:]
	nargs := map[string]int{"view": 2, "pan": 1, "zoom": 1, "save": 1}
	if n, ok := nargs[cmd]; ok && len(args) != n {
		return fmt.Errorf("%s takes %d argument(s)", cmd, n)
	}

	tb := e.a.Timebase()
	switch cmd {
	case "view":
		loc := tb.Location
		if loc == nil {
			loc = time.UTC
		}
		view, err := parseRange(args[0], args[1], loc)
		if err != nil {
			return err
		}
		return e.setView(tb.Value(view.Lo), tb.Value(view.Hi))

	case "pan":
		d, err := parseDuration(args[0])
		if err != nil {
			return err
		}
		lo, hi := e.a.ViewLimits(e.dir)
		shift := float64(d) / float64(tb.Unit)
		return e.setView(lo+shift, hi+shift)

	case "zoom":
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil || !(f > 0) {
			return fmt.Errorf("bad zoom factor %q", args[0])
		}
		lo, hi := e.a.ViewLimits(e.dir)
		mid, half := (lo+hi)/2, (hi-lo)/2/f
		return e.setView(mid-half, mid+half)

	case "show":
		e.show()

	case "save":
		if err := savePlot(e.a.Plot(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(e.w, "wrote %s\n", args[0])

	case "help", "?":
		e.help()

	case "quit", "exit", "q":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

// setView changes the view limits, recomputes the ticks, and shows
// them. A view that is not a valid time range leaves the axis
// unchanged.
func (e *explorer) setView(lo, hi float64) error {
	tb := e.a.Timebase()
	for _, v := range []float64{lo, hi} {
		if _, err := tb.Time(v); err != nil {
			return err
		}
	}
	e.a.SetView(e.dir, lo, hi)
	if e.opts.NoCallback {
		// Nothing is subscribed to the view; recompute directly.
		if err := axis.Apply(e.dir, e.opts); err != nil {
			return err
		}
	}
	e.show()
	return nil
}

func (e *explorer) help() {
	fmt.Fprintln(e.w, helpStyle.Render(strings.TrimRight(exploreHelp, "\n")))
}

func (e *explorer) show() {
	res, err := computeTicks(e.a, e.dir, e.opts.MaxTicks)
	if err != nil {
		fmt.Fprintf(e.w, "error: %v\n", err)
		return
	}
	printTable(e.w, res)
	if e.width > 0 {
		fmt.Fprintln(e.w, ruler(res, e.width))
	}
}

// parseDuration is time.ParseDuration extended with a "d" suffix for
// 24-hour days.
func parseDuration(s string) (time.Duration, error) {
	if n := strings.TrimSuffix(s, "d"); n != s {
		days, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("bad duration %q", s)
		}
		return time.Duration(days * float64(24*time.Hour)), nil
	}
	return time.ParseDuration(s)
}

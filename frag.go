// This file is part of Frag.
//
// Frag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frag.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/gui/glfwwindow"
	"github.com/jetsetilly/frag/gui/sdlwindow"
	"github.com/jetsetilly/frag/logger"
	"github.com/jetsetilly/frag/modalflag"
	"github.com/jetsetilly/frag/paths"
	"github.com/jetsetilly/frag/performance"
	"github.com/jetsetilly/frag/performance/limiter"
	"github.com/jetsetilly/frag/runner"
	"github.com/jetsetilly/frag/scene"
	"github.com/jetsetilly/frag/settings"
	"github.com/jetsetilly/frag/source"
	"github.com/jetsetilly/frag/statsview"
	"github.com/jetsetilly/frag/version"
)

// errors caused by the command line. these result in a different exit value
// to other errors
const flagError = "%v"

// exit values
const (
	exitOK    = 0
	exitFlags = 10
	exitError = 20
)

const usage = "[options] <source>"

// number of log entries shown after an error
const errorLogTail = 10

const additionalHelp = `Pragmas of the form "#pragma frag: <key> <value>" in the shader source set
size, scale, fps, wrap, bits and title. Command line options take precedence.

Keys: Escape closes the window, F5 reloads the shader, F12 saves a screenshot.`

func init() {
	// OpenGL requires that all calls are made from the same thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the requested mode. returns the exit
// value.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	// every launch starts with an empty log
	logger.Clear()

	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("CHECK", "SETTINGS")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitFlags
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdout)
	case "CHECK":
		err = check(md, stdout)
	case "SETTINGS":
		err = showSettings(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %s\n", md.String(), err)
		if curated.Is(err, flagError) {
			return exitFlags
		}
		logger.Tail(stderr, errorLogTail)
		return exitError
	}

	return exitOK
}

// options common to all modes
type options struct {
	cl           *settings.CommandLine
	log          *bool
	saveDefaults *bool
}

func addOptions(md *modalflag.Modes) *options {
	md.Usage(usage)
	md.AdditionalHelp(additionalHelp)
	return &options{
		cl:           settings.AddFlags(md),
		log:          md.AddBool("log", false, "echo debugging log to stdout"),
		saveDefaults: md.AddBool("savedefaults", false, "save display settings as the new defaults"),
	}
}

// parse the flags for the current mode. returns false if help was requested
func parse(md *modalflag.Modes, opts *options, stdout io.Writer) (bool, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return false, nil
	case modalflag.ParseError:
		return false, curated.Errorf(flagError, err)
	}

	if *opts.log {
		logger.SetEcho(stdout)
	} else {
		logger.SetEcho(nil)
	}

	logger.Log(logger.Allow, "frag", version.Banner())

	return true, nil
}

// resolve the settings from the defaults, the preferences file, the pragmas
// in the shader source and the command line. in that order of precedence.
func resolve(md *modalflag.Modes, opts *options) (*settings.Settings, *source.Source, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, curated.Errorf(flagError, "a fragment shader file is required")
	case 1:
	default:
		return nil, nil, curated.Errorf(flagError, "too many arguments")
	}

	filename := md.GetArg(0)

	src, err := source.Load(filename)
	if err != nil {
		return nil, nil, err
	}

	s := settings.NewSettings()

	prf, err := settings.NewPreferences()
	if err != nil {
		logger.Log(logger.Allow, "frag", err)
		prf = nil
	} else {
		err = prf.Apply(s)
		if err != nil {
			return nil, nil, err
		}
	}

	err = s.ApplyPragmas(src.String())
	if err != nil {
		return nil, nil, err
	}

	s.Filename = filename

	err = opts.cl.Apply(s)
	if err != nil {
		return nil, nil, curated.Errorf(flagError, err)
	}

	err = s.Validate()
	if err != nil {
		return nil, nil, curated.Errorf(flagError, err)
	}

	if *opts.saveDefaults {
		if prf == nil {
			return nil, nil, errors.New("preferences are not available")
		}
		err = prf.Save(s)
		if err != nil {
			return nil, nil, err
		}
	}

	return s, src, nil
}

// create a window with the backend named in the settings
func openWindow(s *settings.Settings, hidden bool) (runner.Window, error) {
	w, h := s.WindowSize()
	cfg := gui.Config{
		Title:     s.WindowTitle(),
		Width:     w,
		Height:    h,
		Resizable: s.Resizable,
		Hidden:    hidden,
	}

	switch s.Backend {
	case settings.BackendGLFW:
		win, err := glfwwindow.New(cfg)
		if err != nil {
			return nil, err
		}
		return win, nil
	default:
		win, err := sdlwindow.New(cfg)
		if err != nil {
			return nil, err
		}
		return win, nil
	}
}

func newScene(s *settings.Settings, src *source.Source) (*scene.Scene, error) {
	return scene.New(scene.Config{
		Width:  s.Width,
		Height: s.Height,
		Wrap:   s.Wrap,
		Bits:   s.Bits,
		Source: src.String(),
	})
}

func run(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	opts := addOptions(md)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddBool("profile", false, "write cpu and memory profiles")

	ok, err := parse(md, opts, stdout)
	if err != nil || !ok {
		return err
	}

	s, src, err := resolve(md, opts)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(stdout, statsview.Address)
	}

	var prof performance.Profile
	if *profile {
		prof.CPU = paths.UniqueFilename("frag", "cpu", "profile")
		prof.Mem = paths.UniqueFilename("frag", "mem", "profile")
	}

	return performance.RunProfiler(prof, func() error {
		return render(s, src)
	})
}

func render(s *settings.Settings, src *source.Source) error {
	win, err := openWindow(s, false)
	if err != nil {
		return err
	}

	scn, err := newScene(s, src)
	if err != nil {
		_ = win.Destroy()
		return err
	}

	r := runner.New(win, scn, limiter.NewGate(s.FPS, limiter.SystemClock()))
	r.SetTitle(s.WindowTitle())

	load := func() (string, error) {
		src, err := source.Load(s.Filename)
		if err != nil {
			return "", err
		}
		return src.String(), nil
	}

	if s.Watch {
		w, err := source.NewWatcher(s.Filename)
		if err != nil {
			logger.Log(logger.Allow, "frag", err)
			r.SetReload(nil, load)
		} else {
			defer w.Close()
			r.SetReload(w.Changed, load)
		}
	} else {
		r.SetReload(nil, load)
	}

	r.SetScreenshotPath(func() string {
		return paths.UniqueFilename("frag", filepath.Base(s.Filename), "png")
	})

	// ctrl-c closes the window in the normal way
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer func() {
		signal.Stop(sig)
		close(sig)
	}()

	stop := make(chan struct{}, 1)
	go func() {
		for range sig {
			select {
			case stop <- struct{}{}:
			default:
			}
		}
	}()
	r.SetStop(stop)

	return r.Run()
}

func check(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	opts := addOptions(md)

	ok, err := parse(md, opts, stdout)
	if err != nil || !ok {
		return err
	}

	s, src, err := resolve(md, opts)
	if err != nil {
		return err
	}

	win, err := openWindow(s, true)
	if err != nil {
		return err
	}
	defer win.Destroy()

	scn, err := newScene(s, src)
	if err != nil {
		return err
	}
	scn.Destroy()

	fmt.Fprintf(stdout, "%s: ok\n", s.Filename)

	return nil
}

func showSettings(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	opts := addOptions(md)

	ok, err := parse(md, opts, stdout)
	if err != nil || !ok {
		return err
	}

	s, _, err := resolve(md, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, version.Banner())
	fmt.Fprint(stdout, s.String())

	// the log is already on stdout if it is being echoed
	if !*opts.log {
		log := &strings.Builder{}
		if logger.Write(log) {
			fmt.Fprintf(stdout, "\nlog:\n%s", log.String())
		}
	}

	return nil
}

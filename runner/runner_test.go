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

package runner_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/performance/limiter"
	"github.com/jetsetilly/frag/runner"
	"github.com/jetsetilly/frag/test"
)

type simClock struct {
	t time.Duration
}

func (c *simClock) Now() time.Duration {
	return c.t
}

// fakeWindow advances the clock by one tick on every poll and delivers
// scripted events at the given poll number.
type fakeWindow struct {
	clock *simClock
	tick  time.Duration

	polls  int
	script map[int][]gui.Event

	swaps     int
	destroyed int
	titles    []string

	// order of destruction shared with fakeRenderer
	order *[]string
}

func (w *fakeWindow) PollEvents() []gui.Event {
	w.polls++
	w.clock.t += w.tick
	return w.script[w.polls]
}

func (w *fakeWindow) FramebufferSize() (int, int) {
	return 400, 200
}

func (w *fakeWindow) Mouse() (float64, float64) {
	return 0.5, 0.25
}

func (w *fakeWindow) SetTitle(title string) {
	w.titles = append(w.titles, title)
}

func (w *fakeWindow) Swap() {
	w.swaps++
}

func (w *fakeWindow) Destroy() error {
	w.destroyed++
	*w.order = append(*w.order, "window")
	return nil
}

type fakeRenderer struct {
	clock *simClock

	renders   []time.Duration
	times     []float64
	viewportW int
	viewportH int
	mouseX    float64
	mouseY    float64

	reloads     []string
	reloadErr   error
	screenshots []string
	destroyed   int

	order *[]string
}

func (r *fakeRenderer) SetViewport(w, h int) {
	r.viewportW, r.viewportH = w, h
}

func (r *fakeRenderer) SetTime(t float64) {
	r.times = append(r.times, t)
}

func (r *fakeRenderer) SetMouse(x, y float64) {
	r.mouseX, r.mouseY = x, y
}

func (r *fakeRenderer) Render() {
	r.renders = append(r.renders, r.clock.t)
}

func (r *fakeRenderer) Frame() int {
	return len(r.renders)
}

func (r *fakeRenderer) Reload(source string) error {
	if r.reloadErr != nil {
		return r.reloadErr
	}
	r.reloads = append(r.reloads, source)
	return nil
}

func (r *fakeRenderer) Screenshot(path string) (<-chan error, error) {
	r.screenshots = append(r.screenshots, path)
	done := make(chan error, 1)
	done <- nil
	close(done)
	return done, nil
}

func (r *fakeRenderer) Destroy() {
	r.destroyed++
	*r.order = append(*r.order, "renderer")
}

func newFakes(fps float64, script map[int][]gui.Event) (*runner.Runner, *fakeWindow, *fakeRenderer) {
	clk := &simClock{}
	order := &[]string{}
	win := &fakeWindow{clock: clk, tick: time.Millisecond, script: script, order: order}
	rnd := &fakeRenderer{clock: clk, order: order}
	r := runner.New(win, rnd, limiter.NewGate(fps, clk))
	r.SetIdle(func() {})
	r.SetMeter(limiter.NewMeter(clk))
	return r, win, rnd
}

func escapeAt(n int) map[int][]gui.Event {
	return map[int][]gui.Event{
		n: {{ID: gui.EventKeyDown, Key: gui.KeyEscape}},
	}
}

func TestEscape(t *testing.T) {
	r, win, rnd := newFakes(30, escapeAt(1000))
	test.ExpectEquality(t, r.State(), runner.Ready)

	err := r.Run()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.State(), runner.Destroyed)

	// polled on every iteration until the escape key
	test.ExpectEquality(t, win.polls, 1000)

	// released exactly once with the renderer first
	test.ExpectEquality(t, rnd.destroyed, 1)
	test.ExpectEquality(t, win.destroyed, 1)
	test.ExpectEquality(t, strings.Join(*win.order, " "), "renderer window")

	// one swap for every render
	test.ExpectEquality(t, win.swaps, len(rnd.renders))
}

func TestFrameRate(t *testing.T) {
	const fps = 30.0
	r, _, rnd := newFakes(fps, escapeAt(3000))

	err := r.Run()
	test.ExpectSuccess(t, err)

	for i := 1; i < len(rnd.renders); i++ {
		d := rnd.renders[i] - rnd.renders[i-1]
		if d.Seconds()*fps < 1 {
			t.Fatalf("renders %d and %d are too close: %v", i-1, i, d)
		}
	}

	// roughly 30 frames per second over three seconds
	n := len(rnd.renders)
	if n < 85 || n > 91 {
		t.Errorf("unexpected number of renders: %d", n)
	}

	// the time uniform increases with every frame
	for i := 1; i < len(rnd.times); i++ {
		test.ExpectSuccess(t, rnd.times[i] > rnd.times[i-1])
	}

	test.ExpectEquality(t, rnd.viewportW, 400)
	test.ExpectEquality(t, rnd.viewportH, 200)
	test.ExpectEquality(t, rnd.mouseX, 0.5)
	test.ExpectEquality(t, rnd.mouseY, 0.25)
}

func TestQuit(t *testing.T) {
	r, win, _ := newFakes(60, map[int][]gui.Event{
		5: {{ID: gui.EventQuit}},
	})

	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, r.State(), runner.Destroyed)
	test.ExpectEquality(t, win.polls, 5)
}

func TestRunTwice(t *testing.T) {
	r, _, _ := newFakes(60, escapeAt(1))
	test.ExpectSuccess(t, r.Run())

	err := r.Run()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, runner.StateError))
}

func TestStop(t *testing.T) {
	r, win, rnd := newFakes(60, nil)

	stop := make(chan struct{}, 1)
	stop <- struct{}{}
	r.SetStop(stop)

	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, win.polls, 1)
	test.ExpectEquality(t, len(rnd.renders), 0)
	test.ExpectEquality(t, rnd.destroyed, 1)
}

func TestReload(t *testing.T) {
	r, _, rnd := newFakes(60, map[int][]gui.Event{
		3:  {{ID: gui.EventKeyDown, Key: gui.KeyF5}},
		10: {{ID: gui.EventKeyDown, Key: gui.KeyEscape}},
	})

	changed := make(chan struct{}, 1)
	changed <- struct{}{}

	var loads int
	r.SetReload(changed, func() (string, error) {
		loads++
		return "void main() {}", nil
	})

	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, loads, 2)
	test.ExpectEquality(t, len(rnd.reloads), 2)
}

func TestReloadFailure(t *testing.T) {
	r, _, rnd := newFakes(60, map[int][]gui.Event{
		2: {{ID: gui.EventKeyDown, Key: gui.KeyF5}},
		4: {{ID: gui.EventKeyDown, Key: gui.KeyF5}},
		9: {{ID: gui.EventKeyDown, Key: gui.KeyEscape}},
	})
	rnd.reloadErr = errors.New("compile error")

	var loads int
	r.SetReload(nil, func() (string, error) {
		loads++
		if loads == 1 {
			return "", errors.New("file error")
		}
		return "error", nil
	})

	// failures do not stop the loop
	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, loads, 2)
	test.ExpectEquality(t, len(rnd.reloads), 0)
	test.ExpectSuccess(t, len(rnd.renders) > 0)
}

func TestScreenshot(t *testing.T) {
	r, _, rnd := newFakes(60, map[int][]gui.Event{
		2: {{ID: gui.EventKeyDown, Key: gui.KeyF12}},
		3: {{ID: gui.EventKeyDown, Key: gui.KeyEscape}},
	})

	// no screenshot path set so the key is ignored
	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, len(rnd.screenshots), 0)

	r, _, rnd = newFakes(60, map[int][]gui.Event{
		2: {{ID: gui.EventKeyDown, Key: gui.KeyF12}},
		3: {{ID: gui.EventKeyDown, Key: gui.KeyEscape}},
	})
	r.SetScreenshotPath(func() string { return "shot.png" })
	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, len(rnd.screenshots), 1)
	test.ExpectEquality(t, rnd.screenshots[0], "shot.png")
}

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, runner.Rendering.String(), "rendering")
	test.ExpectEquality(t, runner.State(99).String(), "state(99)")
}

func TestTitle(t *testing.T) {
	r, win, rnd := newFakes(30, escapeAt(2500))
	r.SetTitle("plasma.frag")
	test.ExpectEquality(t, len(win.titles), 1)
	test.ExpectEquality(t, win.titles[0], "plasma.frag")

	test.ExpectSuccess(t, r.Run())
	test.ExpectSuccess(t, len(rnd.renders) > 0)

	// the title is updated with the measured frame rate every second
	test.ExpectEquality(t, len(win.titles), 3)
	for _, title := range win.titles[1:] {
		test.ExpectSuccess(t, strings.HasPrefix(title, "plasma.frag ("))
		test.ExpectSuccess(t, strings.HasSuffix(title, " fps)"))
	}
}

func TestNoTitle(t *testing.T) {
	r, win, _ := newFakes(30, escapeAt(2500))
	test.ExpectSuccess(t, r.Run())
	test.ExpectEquality(t, len(win.titles), 0)
}

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

package runner

import (
	"fmt"
	"time"

	"github.com/jetsetilly/frag/curated"
	"github.com/jetsetilly/frag/gui"
	"github.com/jetsetilly/frag/logger"
	"github.com/jetsetilly/frag/performance/limiter"
)

// error patterns returned by the runner package.
const (
	StateError   = "runner: cannot run in %s state"
	DestroyError = "runner: %v"
)

// Window is the interface to the window backend.
type Window interface {
	PollEvents() []gui.Event
	FramebufferSize() (int, int)
	Mouse() (float64, float64)
	SetTitle(title string)
	Swap()
	Destroy() error
}

// Renderer is the interface to the scene.
type Renderer interface {
	SetViewport(width, height int)
	SetTime(t float64)
	SetMouse(x, y float64)
	Render()
	Frame() int
	Reload(source string) error
	Screenshot(path string) (<-chan error, error)
	Destroy()
}

// State of the Runner.
type State int

// List of valid State values.
const (
	Uninitialised State = iota
	Ready
	Rendering
	Closing
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Ready:
		return "ready"
	case Rendering:
		return "rendering"
	case Closing:
		return "closing"
	case Destroyed:
		return "destroyed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Runner is the render loop.
type Runner struct {
	state State

	win   Window
	rnd   Renderer
	gate  *limiter.Gate
	meter *limiter.Meter

	// changes to the shader source. a nil channel is never ready
	reload <-chan struct{}
	load   func() (string, error)

	// requests to stop the loop
	stop <-chan struct{}

	// returns the filename for the next screenshot
	screenshotPath func() string

	// called on iterations that do not render a frame
	idle func()

	// window title. the measured frame rate is appended when it is known
	title string
}

// the duration to sleep on iterations that do not render a frame.
const idleDuration = time.Millisecond

// New is the preferred method of initialisation for the Runner type. The
// Runner will be in the Ready state.
func New(win Window, rnd Renderer, gate *limiter.Gate) *Runner {
	return &Runner{
		state: Ready,
		win:   win,
		rnd:   rnd,
		gate:  gate,
		meter: limiter.NewMeter(limiter.SystemClock()),
		idle: func() {
			time.Sleep(idleDuration)
		},
	}
}

// State returns the current state of the Runner.
func (r *Runner) State() State {
	return r.state
}

// SetReload sets the channel that signals a change to the shader source and
// the function that loads the new source. The function is also used when F5
// is pressed.
func (r *Runner) SetReload(changed <-chan struct{}, load func() (string, error)) {
	r.reload = changed
	r.load = load
}

// SetStop sets the channel that requests the loop to stop.
func (r *Runner) SetStop(stop <-chan struct{}) {
	r.stop = stop
}

// SetScreenshotPath sets the function that generates screenshot filenames.
// Screenshots are disabled if the function is nil.
func (r *Runner) SetScreenshotPath(f func() string) {
	r.screenshotPath = f
}

// SetIdle replaces the function called on iterations that do not render a
// frame.
func (r *Runner) SetIdle(idle func()) {
	r.idle = idle
}

// SetMeter replaces the frame rate meter.
func (r *Runner) SetMeter(m *limiter.Meter) {
	r.meter = m
}

// SetTitle sets the window title. The title is updated with the measured
// frame rate once a second.
func (r *Runner) SetTitle(title string) {
	r.title = title
	r.win.SetTitle(title)
}

// Run the render loop until the window is closed. The renderer and window
// are destroyed before the function returns.
func (r *Runner) Run() error {
	if r.state != Ready {
		return curated.Errorf(StateError, r.state)
	}

	r.state = Rendering
	logger.Logf(logger.Allow, "runner", "rendering at %g fps", r.gate.FPS())

	for r.state == Rendering {
		r.iterate()
	}

	return r.destroy()
}

func (r *Runner) iterate() {
	for _, ev := range r.win.PollEvents() {
		r.event(ev)
	}

	select {
	case <-r.stop:
		logger.Log(logger.Allow, "runner", "stop requested")
		r.state = Closing
	case <-r.reload:
		r.reloadSource()
	default:
	}

	if r.state != Rendering {
		return
	}

	if !r.gate.Ready() {
		r.idle()
		return
	}

	w, h := r.win.FramebufferSize()
	r.rnd.SetViewport(w, h)
	r.rnd.SetTime(r.gate.Elapsed().Seconds())
	r.rnd.SetMouse(r.win.Mouse())
	r.rnd.Render()
	r.win.Swap()

	if r.meter.Tick() {
		logger.Logf(logger.Allow, "runner", "%.1f fps", r.meter.Measured())
		if r.title != "" {
			r.win.SetTitle(fmt.Sprintf("%s (%.0f fps)", r.title, r.meter.Measured()))
		}
	}
}

func (r *Runner) event(ev gui.Event) {
	switch ev.ID {
	case gui.EventQuit:
		r.state = Closing
	case gui.EventKeyDown:
		switch ev.Key {
		case gui.KeyEscape:
			r.state = Closing
		case gui.KeyF5:
			r.reloadSource()
		case gui.KeyF12:
			r.screenshot()
		}
	}
}

func (r *Runner) reloadSource() {
	if r.load == nil {
		return
	}

	src, err := r.load()
	if err != nil {
		logger.Log(logger.Allow, "runner", err)
		return
	}

	err = r.rnd.Reload(src)
	if err != nil {
		logger.Log(logger.Allow, "runner", err)
	}
}

func (r *Runner) screenshot() {
	if r.screenshotPath == nil {
		return
	}

	_, err := r.rnd.Screenshot(r.screenshotPath())
	if err != nil {
		logger.Log(logger.Allow, "runner", err)
	}
}

// destroy the renderer and then the window
func (r *Runner) destroy() error {
	r.state = Closing
	logger.Logf(logger.Allow, "runner", "%d frames rendered", r.rnd.Frame())
	r.rnd.Destroy()
	err := r.win.Destroy()
	r.state = Destroyed
	if err != nil {
		return curated.Errorf(DestroyError, err)
	}
	return nil
}

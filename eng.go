// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vu, virtual universe, provides the Action System's runtime host:
// a window/device shell, an audio card interface, a graphics context
// interface, and the typed action system that mediates between raw device
// input, an optional OpenXR session, and the application.
//
// Refer to the action and xr packages for the input model itself. Package
// vu wires those into a window and a fixed-timestep update loop.
//
// Vu dependencies are:
//   - A software graphics-state stand-in.     See package vu/render.
//   - A software sound stand-in.              See package vu/audio.
//   - Cocoa  for OSX windowing and input.     See package vu/device.
//   - WinAPI for Windows windowing and input. See package vu/device.
package vu

import (
	"time"

	"github.com/axrgo/engine/action"
	"github.com/axrgo/engine/audio"
	"github.com/axrgo/engine/device"
	"github.com/axrgo/engine/render"
	"github.com/axrgo/engine/xr"
)

// Engine initializes and provides runtime support for an application built
// on the action system: a window, an audio/graphics context pair, and the
// typed action/XR input layer. Interaction with the application is through
// the Director interface.
type Engine interface {
	SetDirector(d Director) // Enable application callbacks.
	Action()                // Kick off the main update loop.

	Shutdown() // Stop the engine and free allocated resources.
	Reset()    // Tear down the action system's setup and run Setup again.

	// The application window/viewport is queried and controlled as follows:
	Size() (x, y, width, height int)  // Get the current viewport size.
	Resize(x, y, width, height int)   // Resize the current viewport.
	Color(r, g, b, a float32)         // Set background clear colour.
	ShowCursor(show bool)             // Hide or show the cursor.
	SetCursorAt(x, y int)             // Place cursor at the x,y window location.
	Enable(attr uint32, enabled bool) // Enable/disable global graphic attributes.

	// PlaceSoundListener sets the 3D location of the entity that can hear sounds.
	// Sounds that are played at other locations will be heard more faintly as
	// the distance between the played sound and listener increases.
	PlaceSoundListener(x, y, z float64) // Move the sound listener.
	Mute(mute bool)                     // Toggle game sound.

	// Actions exposes the typed action system layered over raw device
	// input and, where available, an OpenXR session. The engine builds it
	// from an empty ActionSystemConfig, and ActionSystem has no method for
	// adding action sets after construction, so it holds no action sets.
	Actions() *action.ActionSystem
}

// Director is the engine callback to the application.
// Director is expected to be implemented by the application
// and registered with the engine as follows:
//
//	eng, _ = vu.New("Title", 0, 0, 800, 600) // App creates Engine.
//	eng.SetDirector(app)                     // App registers as a Director.
type Director interface {

	// Update allows applications to change state prior to the next frame.
	// Update is called many times a second once the application calls eng.Action.
	// Applications commonly create some resources prior to starting Updates.
	// Typed action values are read from Engine.Actions(), not from i; i
	// carries the raw cursor/focus/resize state the action system doesn't.
	Update(i *Input) // Application expected to return quickly.
}

// Engine constants used as input to various methods.
const (
	// Global graphic state constants. See Engine.Enable(const, bool).
	BLEND = render.BLEND // Alpha blending. Enabled by default.
	CULL  = render.CULL  // Backface culling. Enabled by default.
	DEPTH = render.DEPTH // Z-buffer awareness. Enabled by default.

	// User input key released indicator. Total time down, in update
	// ticks, is key down ticks minus RELEASED. See Director.Update().
	RELEASED = device.KEY_RELEASED
)

// Engine, Director, and public API
// ===========================================================================
// engine implements Engine.

// engine is where everything starts. It owns the window/device shell, the
// audio and graphics contexts, and the action system, and drives all three
// from a single fixed-timestep update loop.
type engine struct {
	cfg Config               // Window/background configuration.
	gc  render.Renderer      // Graphics card interface layer.
	ac  audio.Audio          // Audio card interface layer.
	dev device.Device        // Os specific window and rendering context.
	in  *Input               // Propagates device input to the application.
	app Director             // Application callbacks.
	act *action.ActionSystem // Typed action/XR input layer.
}

// New creates the window and the action-system host. The expected usage is:
//
//	if eng, err = vu.New("Title", 100, 100, 800, 600); err != nil {
//	    log.Printf("Failed to initialize engine %s", err)
//	    return
//	}
//	defer eng.Shutdown() // Close down nicely.
//	eng.SetDirector(app) // Enable application update callbacks.
//	   ....              // application and action-set setup.
//	eng.Action()         // Start update callbacks (does not return).
//
// A minimum window width of 100 and height of 100 is enforced; opts can
// override the title, placement, and background clear colour (see
// config.go's Title/Size/Windowed/Background).
func New(name string, x, y, width, height int, opts ...Attr) (e Engine, err error) {
	cfg := configDefaults
	cfg.title, cfg.x, cfg.y, cfg.w, cfg.h = name, int32(x), int32(y), int32(width), int32(height)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.title == "" {
		cfg.title = "Title"
	}
	if cfg.w < 100 {
		cfg.w = 100
	}
	if cfg.h < 100 {
		cfg.h = 100
	}

	eng := &engine{cfg: cfg}
	eng.in = &Input{Down: map[int]int{}}

	// initialize the os specific shell, graphics context, and
	// user input monitor.
	eng.dev = device.New(cfg.title, int(cfg.x), int(cfg.y), int(cfg.w), int(cfg.h))

	// initialize the audio layer.
	eng.ac = audio.New()
	if err = eng.ac.Init(); err != nil {
		eng.Shutdown()
		return // failed to initialize audio layer
	}

	// initialize the graphics layer.
	eng.gc = render.New()
	if err = eng.gc.Init(); err != nil {
		eng.Shutdown()
		return // failed to initialize graphics layer.
	}
	eng.Enable(BLEND, true)
	eng.Enable(CULL, true)
	eng.Enable(DEPTH, true)
	eng.Color(cfg.r, cfg.g, cfg.b, cfg.a)
	eng.gc.Viewport(int(cfg.w), int(cfg.h))
	eng.dev.Open()

	// initialize the action system from an empty config: Actions() returns
	// a working ActionSystem with no action sets.
	eng.act, err = action.NewActionSystem(action.ActionSystemConfig{}, xr.New())
	if err != nil {
		eng.Shutdown()
		return
	}
	if err = eng.act.Setup(); err != nil {
		eng.Shutdown()
		return
	}
	return eng, err
}

// Shutdown stops the engine and frees up any allocated resources.
func (eng *engine) Shutdown() {
	if eng.act != nil {
		eng.act.ResetSetup()
		eng.act = nil
	}
	if eng.gc != nil {
		eng.gc.Dispose()
		eng.gc = nil
	}
	if eng.ac != nil {
		eng.ac.Dispose()
		eng.ac = nil
	}
	if eng.dev != nil {
		eng.dev.Dispose()
		eng.dev = nil
	}
	eng.app = nil
}

// Reset tears down the action system's OS and XR setup and runs Setup
// again; its action sets are kept. There is no scene graph left to tear
// down; the window, audio, and graphics contexts are left running.
func (eng *engine) Reset() {
	if eng.act == nil {
		return
	}
	eng.act.ResetSetup()
	eng.act.Setup()
}

// SetDirector establishes the application update callback receiver.
func (eng *engine) SetDirector(director Director) {
	eng.app = director
}

// Actions returns the action system, for declaring action sets and reading
// back typed action values from the application's Update callback.
func (eng *engine) Actions() *action.ActionSystem { return eng.act }

// Action is the main update loop. This regulates the update frequency and
// is based on:
//
//	http://gafferongames.com/game-physics/fix-your-timestep
//	http://www.koonsolo.com/news/dewitters-gameloop
//	http://sacredsoftware.net/tutorials/Animation/TimeBasedAnimation.xhtml
//
// The loop runs until the application closes.
//
// The application state is updated a variable number of times each loop in
// order that each state update is the same fixed timestep interval.
func (eng *engine) Action() {
	ut := uint64(0) // update ticks counts the number of updates.

	// delta time is how often the state is updated.  It is fixed at
	// 50 times a second (50/1000ms = 0.02) so that the game speed is constant
	// (independent from computer speed and refresh rate).
	dt := float64(0.02)

	// update time tracks the time available for updating state.  It carries
	// any unused update time into the next loop.  At the start of each loop
	// available time (based on rendering) is added.  Slow rendering causes
	// more time added on for updates and fast rendering results less time
	// for updates per loop, causing potentially no updates in a given loop.
	updateTime := float64(0)

	// elapsedTime tracks how long one frame/loop took.  This will be
	// capped if updating and rendering took a very long time in order to
	// avoid a spiral of death where even more updating is attempted when
	// things are running slow.
	elapsedTime := float64(0)

	// capTime guards against unreasonably slow updates and the spiral of death.
	// Essentially ignore any updating and rendering time that was more than 200ms.
	const capTime = float64(0.2)
	lastTime := time.Now() // the computer time updated every frame/game-loop

	// the loop runs forever (but really only lasts until the user wimps out)
	for eng.dev != nil && eng.dev.IsAlive() {

		// how long since the last time through the loop.  The more time the loop
		// took, the more updates will need to be performed.
		elapsedTime = time.Since(lastTime).Seconds()
		lastTime = time.Now()
		if elapsedTime > capTime {
			elapsedTime = capTime
		}

		// ease up on the CPU if the render speed is over 100fps.
		if elapsedTime < 0.01 {
			time.Sleep(time.Duration((0.01-elapsedTime)*1000) * time.Millisecond)
		}

		// run updates based on how long the previous loop took.  This advances
		// state at a constant rate (dt).
		updateTime += elapsedTime
		for updateTime >= float64(dt) {
			eng.update(ut, dt)        // update action state and the application.
			updateTime -= float64(dt) // track the used delta time.
			ut += 1                   // track the total updates
		}

		eng.gc.Clear()
		eng.dev.SwapBuffers()
	}
}

// ===========================================================================
// Start the real work of delegating the update calls down to the action
// system and the application.

// update refreshes device input, syncs the action system, then gives the
// application its turn. Expected to be called from the engine Action loop.
func (eng *engine) update(ut uint64, dt float64) {
	eng.in.convertInput(eng.dev.Update(), dt) // get user input.
	if eng.act != nil {
		eng.act.NewFrameStarted()
		eng.act.SyncXr()
		eng.act.ProcessEvents()
	}
	if eng.app != nil {
		eng.app.Update(eng.in) // applications turn for state updates.
	}
}

// ===========================================================================
// Expose/wrap device level information.

// Size returns the application viewport area in pixels.  This excludes any
// OS specific window trim.  The window x, y coordinates are the bottom left
// of the window.
func (eng *engine) Size() (x, y, width, height int) { return eng.dev.Size() }

// Resize needs to be called on window resize to adjust the graphics viewport.
// The engine starts the resize by informing the application during update,
// but leaves viewport resizing, using this method, under application control.
func (eng *engine) Resize(x, y, width, height int) { eng.gc.Viewport(width, height) }

// ShowCursor hides and locks the cursor for the current window.
func (eng *engine) ShowCursor(show bool) { eng.dev.ShowCursor(show) }

// SetCursorAt puts the cursor at the given window location. Often this is used
// by the application when the cursor is hidden and the mouse movements are being
// tracked. Setting the cursor to the middle of the screen ensures movement doesn't
// get stuck at the screen edges.
func (eng *engine) SetCursorAt(x, y int) {
	eng.dev.SetCursorAt(x, y)
}

// ===========================================================================
// Expose/wrap graphic and audio controls.

// Color sets the default background clear color. This color will appear if
// nothing else is drawn over it.
func (eng *engine) Color(r, g, b, a float32) { eng.gc.Color(r, g, b, a) }

// Enable or disable global graphics attributes.
// Current valid values are: CULL, BLEND, DEPTH
func (eng *engine) Enable(attribute uint32, enabled bool) { eng.gc.Enable(attribute, enabled) }

// PlaceSoundListener sets the 3D location of the entity that can hear sounds.
// Sounds that are played at other locations will be heard more faintly as the
// distance between the played sound and listener increases. The location is
// often the same as the main camera.
func (eng *engine) PlaceSoundListener(x, y, z float64) { eng.ac.PlaceListener(x, y, z) }

// Mute turns the game sound on (mute == false) or off (mute == true).
func (eng *engine) Mute(mute bool) {
	if mute {
		eng.ac.SetGain(0)
	} else {
		eng.ac.SetGain(1)
	}
}

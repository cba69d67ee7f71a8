// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"time"

	"github.com/axrgo/engine/xr"
	"github.com/rs/zerolog/log"
)

// systemState is the ActionSystem's own lifecycle state, independent of the
// XR session's SessionState - the two interlock (Attached only happens
// while SetUp) but are tracked separately since ActionSystem can be SetUp
// with no XR system present at all.
type systemState int

const (
	stateConstructed systemState = iota
	stateSetUp
	stateAttached
	stateTornDown
)

// wheelUnit is the OS-reported delta per notch on the baseline host; raw
// wheel deltas are divided by this to produce a unit scroll value.
const wheelUnit = 120.0

// defaultDoubleClickWindow is used when an ActionSystemConfig leaves the
// window unset; Windows' own default is also 500ms.
const defaultDoubleClickWindow = 500 * time.Millisecond

// ActionSystem is the top-level coordinator: it owns every ActionSet, the
// OS-input adapter's accumulator state, and the xr.System collaborator.
// It runs single-threaded and cooperative, driven entirely by the caller's
// message pump and frame loop - see the per-frame method set below.
type ActionSystem struct {
	sets     map[string]*ActionSet
	profiles []InteractionProfile

	xr    xr.System
	state systemState

	// OS adapter state.
	doubleClickWindow  time.Duration
	lastDownTime       [5]time.Time
	activeBoolActions  map[BoolBinding]bool
	lastAbsoluteCursor Vec2
	mouseMovedAccum    Vec2
	scrollAccum        float64
	scrollHorizAccum   float64

	xrActionsAttached bool

	// hwnd is the native window handle raw input is registered against on
	// Windows; zero means "not yet set", in which case Setup's OS
	// registration step is skipped rather than failing.
	hwnd uintptr

	now func() time.Time
}

// SetClock overrides the source of "now" used for double-click detection.
// Tests use this to drive deterministic synthetic timestamps instead of
// real wall-clock time.
func (s *ActionSystem) SetClock(now func() time.Time) { s.now = now }

// SetWindow records the native window handle raw input should be
// registered against. Must be called before Setup on Windows; a no-op
// elsewhere.
func (s *ActionSystem) SetWindow(hwnd uintptr) { s.hwnd = hwnd }

// mouseButtonIndex maps a click binding to a slot in lastDownTime, covering
// the five tracked buttons (left, right, middle, X1, X2).
func mouseButtonIndex(b BoolBinding) (int, bool) {
	switch b {
	case MouseClickL:
		return 0, true
	case MouseClickR:
		return 1, true
	case MouseClickM:
		return 2, true
	case MouseClickX1:
		return 3, true
	case MouseClickX2:
		return 4, true
	}
	return 0, false
}

// doubleClickOf returns the double-click variant of a single-click mouse
// binding.
func doubleClickOf(b BoolBinding) BoolBinding {
	switch b {
	case MouseClickL:
		return MouseDoubleClickL
	case MouseClickR:
		return MouseDoubleClickR
	case MouseClickM:
		return MouseDoubleClickM
	case MouseClickX1:
		return MouseDoubleClickX1
	case MouseClickX2:
		return MouseDoubleClickX2
	}
	return BoolUndefined
}

// NewActionSystem builds an ActionSystem from its declarative config,
// deep-copying every action set so the caller's config value can be
// discarded or reused afterward. sys may be xr.NoXr{} when no XR runtime is
// available at all; the system still functions purely off OS input.
func NewActionSystem(cfg ActionSystemConfig, sys xr.System) (*ActionSystem, error) {
	cfg = cfg.Clone()
	s := &ActionSystem{
		sets:              map[string]*ActionSet{},
		profiles:          cfg.XrInteractionProfiles,
		xr:                sys,
		doubleClickWindow: defaultDoubleClickWindow,
		activeBoolActions: map[BoolBinding]bool{},
		now:               time.Now,
	}
	for _, setCfg := range cfg.ActionSets {
		set, err := newActionSet(setCfg)
		if err != nil {
			log.Warn().Err(err).Str("set", setCfg.Name).Msg("skipping action set")
			continue
		}
		s.sets[set.name] = set
	}
	return s, nil
}

// SetDoubleClickWindow overrides the default 500ms double-click window.
func (s *ActionSystem) SetDoubleClickWindow(d time.Duration) { s.doubleClickWindow = d }

// ActionSet returns the named set, or nil if none exists with that name.
func (s *ActionSystem) ActionSet(name string) *ActionSet { return s.sets[name] }

// EnableActionSet and DisableActionSet enable/disable the named set. These
// exist alongside ActionSet(name).Enable() because ActionSet.Disable needs
// the xr.System to deactivate in-progress haptics, which the set itself
// doesn't hold a reference to.
func (s *ActionSystem) EnableActionSet(name string) {
	if set := s.sets[name]; set != nil {
		set.Enable()
	}
}

func (s *ActionSystem) DisableActionSet(name string) {
	if set := s.sets[name]; set != nil {
		set.Disable(s.xr)
	}
}

// Setup registers OS input sources and, if an XR system is present, builds
// the XR action sets/actions and suggests every declared interaction
// profile's bindings. Returns AlreadySetUp if called twice without an
// intervening ResetSetup. OS registration failure is fatal; XR failures
// degrade to OS-only input and never abort Setup.
func (s *ActionSystem) Setup() error {
	if s.state != stateConstructed && s.state != stateTornDown {
		return newError(AlreadySetUp, "setup action system", nil)
	}
	if err := s.registerOsInput(); err != nil {
		return newError(OsFailure, "register os input", err)
	}
	if err := s.xr.Init(); err != nil {
		log.Warn().Err(err).Msg("xr init failed, degrading to os-only input")
	} else {
		s.setupXr()
		s.xr.OnSessionStateChanged(s.onSessionStateChanged)
	}
	s.state = stateSetUp
	return nil
}

// setupXr creates every set's XR action set/actions and suggests bindings
// for each declared interaction profile. A set that fails setup is logged
// and left with no XR handles; this never aborts the system's own Setup.
func (s *ActionSystem) setupXr() {
	for _, set := range s.sets {
		if err := set.SetupXrActions(s.xr); err != nil {
			log.Warn().Err(err).Str("set", set.name).Msg("xr action set setup failed")
		}
	}
	for _, profile := range s.profiles {
		var bindings []xr.SuggestedBinding
		for _, set := range s.sets {
			bindings = append(bindings, set.suggestedBindings(profile)...)
		}
		if len(bindings) == 0 {
			continue
		}
		if err := s.xr.SuggestBindings(profile.XrPathName(), bindings); err != nil {
			log.Warn().Err(err).Str("profile", profile.XrPathName()).Msg("suggest bindings failed")
		}
	}
}

// ResetSetup tears every XR handle down and deregisters OS input, returning
// the system to a state where Setup can be called again.
func (s *ActionSystem) ResetSetup() {
	if s.xrActionsAttached {
		s.detachXr()
	}
	for _, set := range s.sets {
		set.TeardownXrActions(s.xr)
	}
	s.xr.Dispose()
	s.deregisterOsInput()
	s.state = stateTornDown
}

// onSessionStateChanged is the XR system's single listener. Entering
// Running attaches action sets and creates pose spaces; leaving Running
// does the inverse. Order matters: spaces are created before attach, and
// detach happens before spaces are destroyed, since a space can only be
// located while its owning action set is attached.
func (s *ActionSystem) onSessionStateChanged(old, new xr.SessionState) {
	if new == xr.SessionRunning && old != xr.SessionRunning {
		for _, set := range s.sets {
			if err := set.CreateXrSpaces(s.xr); err != nil {
				log.Warn().Err(err).Str("set", set.name).Msg("create xr spaces failed")
			}
		}
		s.attachXr()
	} else if old == xr.SessionRunning && new != xr.SessionRunning {
		s.detachXr()
		for _, set := range s.sets {
			set.DestroyXrSpaces(s.xr)
		}
	}
}

func (s *ActionSystem) attachXr() {
	var handles []xr.ActionSetHandle
	for _, set := range s.sets {
		if set.xrHandle != xr.NoActionSet {
			handles = append(handles, set.xrHandle)
		}
	}
	if len(handles) == 0 {
		return
	}
	if err := s.xr.AttachActionSets(handles); err != nil {
		log.Warn().Err(err).Msg("attach action sets failed")
		return
	}
	s.xrActionsAttached = true
	s.state = stateAttached
}

func (s *ActionSystem) detachXr() {
	s.xr.DetachActionSets()
	s.xrActionsAttached = false
	if s.state == stateAttached {
		s.state = stateSetUp
	}
}

// NewFrameStarted snapshots every action's last-frame value and zeroes the
// per-frame relative accumulators. Must be the first call of the frame.
func (s *ActionSystem) NewFrameStarted() {
	// Relative-accumulator actions are reset to zero before the last-frame
	// snapshot is taken, so value_last_frame also reads zero here - a fresh
	// frame with no events yet must report "unchanged", not a spurious
	// transition from the previous frame's accumulated total down to zero.
	for _, set := range s.sets {
		set.ResetVec2Binding(MouseMoved)
		set.ResetFloatBinding(MouseWheel)
		set.ResetFloatBinding(MouseWheelHorizontal)
		set.newFrameStarted()
	}
	s.mouseMovedAccum = Vec2{}
	s.scrollAccum = 0
	s.scrollHorizAccum = 0
}

// dispatch implements the priority-arbitration contract: find the maximum
// priority across every set containing b, then trigger only those sets.
// Disabled sets still participate in the scan - a disabled high-priority
// set can shadow a lower enabled one even though its own trigger is a
// no-op - matching the documented design choice.
func dispatch[B comparable](sets map[string]*ActionSet, contains func(*ActionSet, B) bool, b B, fire func(*ActionSet)) {
	var triggered []*ActionSet
	maxPrio := uint32(0)
	first := true
	for _, set := range sets {
		if !contains(set, b) {
			continue
		}
		p := set.priority
		if first || p > maxPrio {
			triggered = triggered[:0]
			maxPrio = p
			first = false
		}
		if p == maxPrio {
			triggered = append(triggered, set)
		}
	}
	for _, set := range triggered {
		fire(set)
	}
}

// TriggerBool dispatches a raw bool-binding event under priority
// arbitration. Double-click detection for the five mouse buttons happens
// here, ahead of dispatch, so every set sees the already-resolved
// click-vs-double-click binding.
func (s *ActionSystem) TriggerBool(b BoolBinding, down bool) {
	b = s.resolveMouseClick(b, down)
	dispatch(s.sets, (*ActionSet).ContainsBoolBinding, b, func(set *ActionSet) {
		set.TriggerBoolBinding(b, down)
	})
	if down {
		s.activeBoolActions[b] = true
	} else {
		delete(s.activeBoolActions, b)
	}
}

// resolveMouseClick applies the double-click detection and up-symmetry
// rules described in the design notes. Non-mouse-click bindings pass
// through unchanged.
func (s *ActionSystem) resolveMouseClick(b BoolBinding, down bool) BoolBinding {
	idx, ok := mouseButtonIndex(b)
	if !ok {
		return b
	}
	dbl := doubleClickOf(b)
	if down {
		now := s.now()
		last := s.lastDownTime[idx]
		s.lastDownTime[idx] = now
		if !last.IsZero() && now.Sub(last) < s.doubleClickWindow {
			return dbl
		}
		return b
	}
	// Up event: fire whichever binding is currently recorded as active,
	// so a double-click's up always matches its own down.
	if s.activeBoolActions[dbl] {
		return dbl
	}
	return b
}

// TriggerFloat dispatches an immediate (non-accumulated) float binding
// under priority arbitration: XR analog axes arrive this way.
func (s *ActionSystem) TriggerFloat(b FloatBinding, value float64) {
	dispatch(s.sets, (*ActionSet).ContainsFloatBinding, b, func(set *ActionSet) {
		set.TriggerFloatBinding(b, value)
	})
}

// TriggerVec2 dispatches an immediate vec2 binding under priority
// arbitration: MousePosition and XR thumbstick/trackpad arrive this way.
func (s *ActionSystem) TriggerVec2(b Vec2Binding, value Vec2) {
	dispatch(s.sets, (*ActionSet).ContainsVec2Binding, b, func(set *ActionSet) {
		set.TriggerVec2Binding(b, value)
	})
}

// AccumulateMouseMoved adds a relative motion delta to the per-frame
// mouse-moved accumulator; fanned out as a single Vec2 trigger at
// ProcessEvents time.
func (s *ActionSystem) AccumulateMouseMoved(dx, dy float64) {
	s.mouseMovedAccum.X += dx
	s.mouseMovedAccum.Y += dy
}

// AccumulateScroll adds a raw wheel delta, scaled by the platform wheel
// unit, to the vertical or horizontal scroll accumulator.
func (s *ActionSystem) AccumulateScroll(rawDelta float64, horizontal bool) {
	if horizontal {
		s.scrollHorizAccum += rawDelta / wheelUnit
	} else {
		s.scrollAccum += rawDelta / wheelUnit
	}
}

// UpdateAbsoluteCursor updates MousePosition immediately and recomputes the
// delta against the last known absolute position, feeding it into the same
// mouse-moved accumulator relative motion uses.
func (s *ActionSystem) UpdateAbsoluteCursor(x, y float64) {
	pos := Vec2{X: x, Y: y}
	if !s.lastAbsoluteCursor.IsZero() {
		s.AccumulateMouseMoved(pos.X-s.lastAbsoluteCursor.X, pos.Y-s.lastAbsoluteCursor.Y)
	}
	s.lastAbsoluteCursor = pos
	s.TriggerVec2(MousePosition, pos)
}

// ProcessEvents fans out the per-frame relative accumulators (mouse-moved
// delta, scroll delta) as single atomic trigger events under priority
// arbitration. The accumulated value is visible via get_value until the
// next NewFrameStarted, which resets it to zero ahead of the next frame's
// last-frame snapshot (see NewFrameStarted).
func (s *ActionSystem) ProcessEvents() {
	s.TriggerVec2(MouseMoved, s.mouseMovedAccum)
	if s.scrollAccum != 0 {
		s.TriggerFloat(MouseWheel, s.scrollAccum)
	}
	if s.scrollHorizAccum != 0 {
		s.TriggerFloat(MouseWheelHorizontal, s.scrollHorizAccum)
	}
}

// SyncXr reads every XR-visible action's current runtime state and resolves
// every pose action, using the runtime's own predicted display time. Called
// after OS events are processed but before ProcessEvents fans out the
// relative accumulators, so XR values win over OS values triggered earlier
// in the same frame.
func (s *ActionSystem) SyncXr() {
	if s.state != stateAttached {
		return
	}
	var handles []xr.ActionSetHandle
	for _, set := range s.sets {
		if set.xrHandle != xr.NoActionSet {
			handles = append(handles, set.xrHandle)
		}
	}
	if len(handles) == 0 {
		return
	}
	if err := s.xr.SyncActions(handles); err != nil {
		log.Warn().Err(err).Msg("xr sync actions failed")
		return
	}
	displayTime := s.xr.DisplayTime()
	for _, set := range s.sets {
		set.syncXr(s.xr, displayTime)
	}
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package xr provides access to an OpenXR-style action runtime: session
// lifecycle, action-set/action/space handles, binding suggestion, and
// per-frame action-state sync. The expected usage mirrors the engine's other
// hardware layers:
//     • Initialize the xr layer.
//     • Create action sets and actions, suggest interaction-profile bindings.
//     • Attach action sets once a session is running.
//     • Sync and read action state once per frame.
//
// Package xr is provided as part of the vu (virtual universe) 3D engine.
package xr

import "time"

// ActionSetHandle, ActionHandle, and SpaceHandle are opaque runtime handles.
// The zero value of each means "no handle" the same way gazed-vu treats a
// zero sound/texture reference as unbound.
type (
	ActionSetHandle uint64
	ActionHandle    uint64
	SpaceHandle     uint64
)

// NoActionSet, NoAction, and NoSpace are the null handle values.
const (
	NoActionSet ActionSetHandle = 0
	NoAction    ActionHandle    = 0
	NoSpace     SpaceHandle     = 0
)

// Vec2 is a minimal two-float value, local to this package so xr has no
// dependency on the action package (action depends on xr, not vice versa).
type Vec2 struct{ X, Y float64 }

// BoolState, FloatState, and Vec2State are action-state snapshots returned
// by a sync+read pair. Changed and Active follow the OpenXR
// XrActionStateBoolean/Float/Vector2f semantics: Active is false when the
// action isn't bound for the current interaction profile.
type (
	BoolState struct {
		Value   bool
		Changed bool
		Active  bool
	}
	FloatState struct {
		Value   float64
		Changed bool
		Active  bool
	}
	Vec2State struct {
		Value   Vec2
		Changed bool
		Active  bool
	}
	// PoseState is a located space: position plus unit-quaternion
	// orientation, valid only when Active is true.
	PoseState struct {
		Px, Py, Pz     float64
		Qx, Qy, Qz, Qw float64
		Active         bool
	}
)

// SuggestedBinding pairs an action handle with the OpenXR path string it
// should bind to for a given interaction profile.
type SuggestedBinding struct {
	Action ActionHandle
	Path   string
}

// System interacts with the underlying XR runtime. It must be initialized
// once before action sets, actions, or sessions can be used.
type System interface {
	Init() error // Get the xr runtime up and running.
	Dispose()    // Ends any session and releases the xr runtime.

	// Session state. SessionState reads the current state; OnSessionStateChanged
	// registers the action system's single listener, replacing any prior one.
	SessionState() SessionState
	OnSessionStateChanged(fn func(old, new SessionState))

	// Action sets and actions are created once, during setup, and suggested
	// to interaction profiles before the first session starts.
	CreateActionSet(name, localizedName string, priority uint32) (ActionSetHandle, error)
	DestroyActionSet(h ActionSetHandle)

	CreateBoolAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error)
	CreateFloatAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error)
	CreateVec2Action(set ActionSetHandle, name, localizedName string) (ActionHandle, error)
	CreatePoseAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error)
	CreateHapticAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error)
	DestroyAction(h ActionHandle)

	// SuggestBindings registers a binding list for one interaction profile
	// path (e.g. "/interaction_profiles/khr/simple_controller"). Done once,
	// at setup; the runtime remembers suggestions across sessions.
	SuggestBindings(profilePath string, bindings []SuggestedBinding) error

	// AttachActionSets binds the given sets to the current session; it may
	// be called at most once per session. DetachActionSets releases that
	// binding when the session stops.
	AttachActionSets(sets []ActionSetHandle) error
	DetachActionSets()

	// SyncActions updates the runtime's view of every attached action under
	// the given sets, ordered by priority (highest first, per the OpenXR
	// xrSyncActions contract). Must be called before reading state.
	SyncActions(sets []ActionSetHandle) error

	BoolActionState(h ActionHandle) (BoolState, error)
	FloatActionState(h ActionHandle) (FloatState, error)
	Vec2ActionState(h ActionHandle) (Vec2State, error)

	// Pose spaces. CreateActionSpace makes a space tracking a Pose action;
	// ViewSpace is the runtime's own HMD/view-space handle, always valid
	// once Init succeeds. LocateSpace resolves a space at a display time.
	CreateActionSpace(h ActionHandle) (SpaceHandle, error)
	ViewSpace() SpaceHandle
	DestroySpace(h SpaceHandle)
	LocateSpace(space SpaceHandle, displayTime time.Duration) (PoseState, error)

	// Haptic output. ApplyHaptic is silently a no-op at the runtime level
	// when the action has no binding; callers still check for a valid
	// handle before calling (see action.HapticAction).
	ApplyHaptic(h ActionHandle, duration time.Duration, frequencyHz, amplitude float64) error
	StopHaptic(h ActionHandle) error

	// DisplayTime returns the runtime's current predicted display time,
	// the value pose actions resolve against absent an explicit time.
	DisplayTime() time.Duration
}

// New provides a default xr implementation: a self-contained runtime
// simulator. No OpenXR Go binding exists to wrap (there being none in the
// engine's dependency set), so this plays the role audio.New/render.New's
// native backend plays elsewhere, but implemented as software state rather
// than a hardware driver. It is safe to drive session-state transitions via
// Simulator.SetSessionState and inject action values via Simulator.SetBool/
// SetFloat/SetVec2/SetSpacePose, which is how both tests and a headless desktop
// build exercise the full XR wiring without a physical HMD attached.
func New() System { return newSimulator() }

// NewSimulator returns the concrete runtime simulator rather than the System
// interface, so callers (tests, a headless build driving its own session
// loop) can reach the Set* injection methods New's doc comment describes.
func NewSimulator() *Simulator { return newSimulator() }

// ===========================================================================
// Provide mock implementation.

// NoXr can be used to mock out xr when no XR runtime is available at all:
// every create call fails with ErrNoRuntime, SessionState is always
// SessionUnavailable, and sync/read calls return zero state and
// ErrNoRuntime. The action system
// treats this identically to "no session ever starts."
type NoXr struct{}

func (NoXr) Init() error                                         { return nil }
func (NoXr) Dispose()                                             {}
func (NoXr) SessionState() SessionState                           { return SessionUnavailable }
func (NoXr) OnSessionStateChanged(fn func(old, new SessionState)) {}

func (NoXr) CreateActionSet(name, localizedName string, priority uint32) (ActionSetHandle, error) {
	return NoActionSet, ErrNoRuntime
}
func (NoXr) DestroyActionSet(h ActionSetHandle) {}

func (NoXr) CreateBoolAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return NoAction, ErrNoRuntime
}
func (NoXr) CreateFloatAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return NoAction, ErrNoRuntime
}
func (NoXr) CreateVec2Action(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return NoAction, ErrNoRuntime
}
func (NoXr) CreatePoseAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return NoAction, ErrNoRuntime
}
func (NoXr) CreateHapticAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return NoAction, ErrNoRuntime
}
func (NoXr) DestroyAction(h ActionHandle) {}

func (NoXr) SuggestBindings(profilePath string, bindings []SuggestedBinding) error { return ErrNoRuntime }

func (NoXr) AttachActionSets(sets []ActionSetHandle) error { return ErrNoRuntime }
func (NoXr) DetachActionSets()                             {}

func (NoXr) SyncActions(sets []ActionSetHandle) error { return ErrNoRuntime }

func (NoXr) BoolActionState(h ActionHandle) (BoolState, error)   { return BoolState{}, ErrNoRuntime }
func (NoXr) FloatActionState(h ActionHandle) (FloatState, error) { return FloatState{}, ErrNoRuntime }
func (NoXr) Vec2ActionState(h ActionHandle) (Vec2State, error)   { return Vec2State{}, ErrNoRuntime }

func (NoXr) CreateActionSpace(h ActionHandle) (SpaceHandle, error) { return NoSpace, ErrNoRuntime }
func (NoXr) ViewSpace() SpaceHandle                                { return NoSpace }
func (NoXr) DestroySpace(h SpaceHandle)                            {}
func (NoXr) LocateSpace(space SpaceHandle, displayTime time.Duration) (PoseState, error) {
	return PoseState{}, ErrNoRuntime
}

func (NoXr) ApplyHaptic(h ActionHandle, duration time.Duration, frequencyHz, amplitude float64) error {
	return ErrNoRuntime
}
func (NoXr) StopHaptic(h ActionHandle) error { return ErrNoRuntime }

func (NoXr) DisplayTime() time.Duration { return 0 }

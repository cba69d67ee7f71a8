// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package xr

import (
	"fmt"
	"time"
)

// Simulator is a software stand-in for an OpenXR runtime: it honours the
// handle-create/suggest/attach/sync/read contract of System without talking
// to any real device. Tests and headless builds drive its session state and
// action values directly via the Set* methods below; a windowed build with
// a physical HMD would instead swap in a real cgo-backed implementation of
// System the same way render/audio swap in their native backends.
type Simulator struct {
	init     bool
	state    SessionState
	listener func(old, new SessionState)

	nextSet    ActionSetHandle
	nextAction ActionHandle
	nextSpace  SpaceHandle

	sets    map[ActionSetHandle]*setRecord
	actions map[ActionHandle]*actionRecord
	spaces  map[SpaceHandle]*spaceRecord

	suggestions map[string][]SuggestedBinding
	attached    map[ActionSetHandle]bool

	viewSpace   SpaceHandle
	displayTime time.Duration
}

type actionKind int

const (
	kindBool actionKind = iota
	kindFloat
	kindVec2
	kindPose
	kindHaptic
)

type setRecord struct {
	name, localizedName string
	priority            uint32
}

type actionRecord struct {
	kind actionKind
	set  ActionSetHandle

	boolVal, boolPrev, boolActive bool
	boolChanged                   bool
	floatVal, floatPrev           float64
	floatActive                   bool
	floatChanged                  bool
	vec2Val, vec2Prev             Vec2
	vec2Active                    bool
	vec2Changed                   bool
	poseSpace                     SpaceHandle
	hapticActive                  bool
}

type spaceRecord struct {
	action ActionHandle
	pose   PoseState
}

func newSimulator() *Simulator {
	return &Simulator{
		sets:        map[ActionSetHandle]*setRecord{},
		actions:     map[ActionHandle]*actionRecord{},
		spaces:      map[SpaceHandle]*spaceRecord{},
		suggestions: map[string][]SuggestedBinding{},
		attached:    map[ActionSetHandle]bool{},
	}
}

func (s *Simulator) Init() error {
	s.init = true
	s.state = SessionIdle
	s.nextSpace++
	s.viewSpace = s.nextSpace // reserved for the view/HMD space; handle 1 on the first Init.
	s.spaces[s.viewSpace] = &spaceRecord{}
	return nil
}

func (s *Simulator) Dispose() {
	s.setState(SessionExiting)
	s.init = false
}

func (s *Simulator) SessionState() SessionState { return s.state }

func (s *Simulator) OnSessionStateChanged(fn func(old, new SessionState)) { s.listener = fn }

func (s *Simulator) setState(next SessionState) {
	old := s.state
	s.state = next
	if s.listener != nil && old != next {
		s.listener(old, next)
	}
}

// SetSessionState drives the simulated session state machine, invoking the
// registered listener exactly as a real runtime's polled event loop would.
func (s *Simulator) SetSessionState(next SessionState) { s.setState(next) }

// SetDisplayTime sets the value DisplayTime and LocateSpace's default resolve
// against.
func (s *Simulator) SetDisplayTime(d time.Duration) { s.displayTime = d }

func (s *Simulator) requireInit() error {
	if !s.init {
		return ErrNoRuntime
	}
	return nil
}

func (s *Simulator) CreateActionSet(name, localizedName string, priority uint32) (ActionSetHandle, error) {
	if err := s.requireInit(); err != nil {
		return NoActionSet, err
	}
	if name == "" {
		return NoActionSet, fmt.Errorf("xr: create action set: empty name")
	}
	s.nextSet++
	s.sets[s.nextSet] = &setRecord{name: name, localizedName: localizedName, priority: priority}
	return s.nextSet, nil
}

func (s *Simulator) DestroyActionSet(h ActionSetHandle) {
	delete(s.sets, h)
	delete(s.attached, h)
}

func (s *Simulator) createAction(set ActionSetHandle, name string, kind actionKind) (ActionHandle, error) {
	if err := s.requireInit(); err != nil {
		return NoAction, err
	}
	if _, ok := s.sets[set]; !ok {
		return NoAction, fmt.Errorf("xr: create action %q: unknown action set", name)
	}
	if name == "" {
		return NoAction, fmt.Errorf("xr: create action: empty name")
	}
	s.nextAction++
	s.actions[s.nextAction] = &actionRecord{kind: kind, set: set}
	return s.nextAction, nil
}

func (s *Simulator) CreateBoolAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return s.createAction(set, name, kindBool)
}
func (s *Simulator) CreateFloatAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return s.createAction(set, name, kindFloat)
}
func (s *Simulator) CreateVec2Action(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return s.createAction(set, name, kindVec2)
}
func (s *Simulator) CreatePoseAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return s.createAction(set, name, kindPose)
}
func (s *Simulator) CreateHapticAction(set ActionSetHandle, name, localizedName string) (ActionHandle, error) {
	return s.createAction(set, name, kindHaptic)
}

func (s *Simulator) DestroyAction(h ActionHandle) { delete(s.actions, h) }

func (s *Simulator) SuggestBindings(profilePath string, bindings []SuggestedBinding) error {
	if err := s.requireInit(); err != nil {
		return err
	}
	if profilePath == "" {
		return fmt.Errorf("xr: suggest bindings: empty profile path")
	}
	s.suggestions[profilePath] = bindings
	return nil
}

func (s *Simulator) AttachActionSets(sets []ActionSetHandle) error {
	if err := s.requireInit(); err != nil {
		return err
	}
	if s.state != SessionRunning {
		return fmt.Errorf("xr: attach action sets: session not running")
	}
	for _, h := range sets {
		s.attached[h] = true
	}
	return nil
}

func (s *Simulator) DetachActionSets() {
	for h := range s.attached {
		delete(s.attached, h)
	}
}

// SyncActions snapshots every attached set's current action values as a
// single runtime poll: the changed-since-last-sync flag each ActionState
// getter reports is captured here, before prev is advanced to val, the
// same order a real xrSyncActions/xrGetActionState pairing relies on.
func (s *Simulator) SyncActions(sets []ActionSetHandle) error {
	if err := s.requireInit(); err != nil {
		return err
	}
	for _, h := range sets {
		if !s.attached[h] {
			continue
		}
		for _, a := range s.actions {
			if a.set != h {
				continue
			}
			a.boolChanged = a.boolVal != a.boolPrev
			a.floatChanged = a.floatVal != a.floatPrev
			a.vec2Changed = a.vec2Val != a.vec2Prev
			a.boolPrev, a.floatPrev, a.vec2Prev = a.boolVal, a.floatVal, a.vec2Val
		}
	}
	return nil
}

// SetBool injects the next value an attached Bool action will report.
// Active marks whether the action is currently bound to the interaction
// profile in use; an inactive action always reports Changed=false.
func (s *Simulator) SetBool(h ActionHandle, value, active bool) {
	if a, ok := s.actions[h]; ok {
		a.boolVal, a.boolActive = value, active
	}
}

func (s *Simulator) SetFloat(h ActionHandle, value float64, active bool) {
	if a, ok := s.actions[h]; ok {
		a.floatVal, a.floatActive = value, active
	}
}

func (s *Simulator) SetVec2(h ActionHandle, value Vec2, active bool) {
	if a, ok := s.actions[h]; ok {
		a.vec2Val, a.vec2Active = value, active
	}
}

func (s *Simulator) BoolActionState(h ActionHandle) (BoolState, error) {
	a, ok := s.actions[h]
	if !ok {
		return BoolState{}, fmt.Errorf("xr: bool action state: unknown handle")
	}
	changed := a.boolActive && a.boolChanged
	return BoolState{Value: a.boolVal, Changed: changed, Active: a.boolActive}, nil
}

func (s *Simulator) FloatActionState(h ActionHandle) (FloatState, error) {
	a, ok := s.actions[h]
	if !ok {
		return FloatState{}, fmt.Errorf("xr: float action state: unknown handle")
	}
	changed := a.floatActive && a.floatChanged
	return FloatState{Value: a.floatVal, Changed: changed, Active: a.floatActive}, nil
}

func (s *Simulator) Vec2ActionState(h ActionHandle) (Vec2State, error) {
	a, ok := s.actions[h]
	if !ok {
		return Vec2State{}, fmt.Errorf("xr: vec2 action state: unknown handle")
	}
	changed := a.vec2Active && a.vec2Changed
	return Vec2State{Value: a.vec2Val, Changed: changed, Active: a.vec2Active}, nil
}

func (s *Simulator) CreateActionSpace(h ActionHandle) (SpaceHandle, error) {
	a, ok := s.actions[h]
	if !ok || a.kind != kindPose {
		return NoSpace, fmt.Errorf("xr: create action space: not a pose action")
	}
	s.nextSpace++
	s.spaces[s.nextSpace] = &spaceRecord{action: h}
	a.poseSpace = s.nextSpace
	return s.nextSpace, nil
}

func (s *Simulator) ViewSpace() SpaceHandle { return s.viewSpace }

func (s *Simulator) DestroySpace(h SpaceHandle) {
	if h == s.viewSpace {
		return
	}
	delete(s.spaces, h)
}

// SetSpacePose injects the pose LocateSpace reports for the given space,
// the HMD/view space included.
func (s *Simulator) SetSpacePose(h SpaceHandle, pose PoseState) {
	if rec, ok := s.spaces[h]; ok {
		rec.pose = pose
	}
}

func (s *Simulator) LocateSpace(space SpaceHandle, displayTime time.Duration) (PoseState, error) {
	rec, ok := s.spaces[space]
	if !ok {
		return PoseState{}, fmt.Errorf("xr: locate space: unknown handle")
	}
	return rec.pose, nil
}

func (s *Simulator) ApplyHaptic(h ActionHandle, duration time.Duration, frequencyHz, amplitude float64) error {
	a, ok := s.actions[h]
	if !ok || a.kind != kindHaptic {
		return fmt.Errorf("xr: apply haptic: not a haptic action")
	}
	a.hapticActive = true
	return nil
}

func (s *Simulator) StopHaptic(h ActionHandle) error {
	if a, ok := s.actions[h]; ok {
		a.hapticActive = false
	}
	return nil
}

func (s *Simulator) DisplayTime() time.Duration { return s.displayTime }

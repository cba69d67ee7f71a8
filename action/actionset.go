// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"time"

	"github.com/axrgo/engine/xr"
	"github.com/rs/zerolog/log"
)

// ActionSet is a named collection of actions partitioned by type (five
// parallel maps keyed by action name). Action names are unique within a
// set and within each typed sub-map - a bool action and a float action may
// share a name without colliding. ActionSet never compares priorities
// itself; priority is mutable state the ActionSystem dispatcher consults.
type ActionSet struct {
	name          string
	localizedName string
	priority      uint32
	enabled       bool

	boolActions   map[string]*BoolAction
	floatActions  map[string]*FloatAction
	vec2Actions   map[string]*Vec2Action
	poseActions   map[string]*PoseAction
	hapticActions map[string]*HapticAction

	xrHandle xr.ActionSetHandle
}

// newActionSet builds an ActionSet from its declarative config. An invalid
// action config (empty/oversize name) is logged and skipped rather than
// aborting the whole set, matching the repo's defensive construction tone -
// a partially-authored config should still boot.
func newActionSet(cfg ActionSetConfig) (*ActionSet, error) {
	if err := validateName(cfg.Name, cfg.LocalizedName); err != nil {
		return nil, err
	}
	s := &ActionSet{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		priority:      cfg.Priority,
		enabled:       true,
		boolActions:   map[string]*BoolAction{},
		floatActions:  map[string]*FloatAction{},
		vec2Actions:   map[string]*Vec2Action{},
		poseActions:   map[string]*PoseAction{},
		hapticActions: map[string]*HapticAction{},
	}
	for _, c := range cfg.BoolActions {
		a, err := newBoolAction(c)
		if err != nil {
			log.Warn().Err(err).Str("set", cfg.Name).Msg("skipping bool action")
			continue
		}
		s.boolActions[a.name] = a
	}
	for _, c := range cfg.FloatActions {
		a, err := newFloatAction(c)
		if err != nil {
			log.Warn().Err(err).Str("set", cfg.Name).Msg("skipping float action")
			continue
		}
		s.floatActions[a.name] = a
	}
	for _, c := range cfg.Vec2Actions {
		a, err := newVec2Action(c)
		if err != nil {
			log.Warn().Err(err).Str("set", cfg.Name).Msg("skipping vec2 action")
			continue
		}
		s.vec2Actions[a.name] = a
	}
	for _, c := range cfg.PoseActions {
		a, err := newPoseAction(c)
		if err != nil {
			log.Warn().Err(err).Str("set", cfg.Name).Msg("skipping pose action")
			continue
		}
		s.poseActions[a.name] = a
	}
	for _, c := range cfg.HapticActions {
		a, err := newHapticAction(c)
		if err != nil {
			log.Warn().Err(err).Str("set", cfg.Name).Msg("skipping haptic action")
			continue
		}
		s.hapticActions[a.name] = a
	}
	return s, nil
}

func (s *ActionSet) Name() string          { return s.name }
func (s *ActionSet) LocalizedName() string { return s.localizedName }
func (s *ActionSet) Priority() uint32      { return s.priority }
func (s *ActionSet) SetPriority(p uint32)  { s.priority = p }
func (s *ActionSet) IsEnabled() bool       { return s.enabled }
func (s *ActionSet) Enable()               { s.enabled = true }

// Disable resets every owned action to its zero value (or deactivates
// haptics), not just flipping the enabled flag. An action can be disabled
// mid-button-press; the set-level disable must leave it in the zero state
// so the next enable doesn't observe stale data. This is the asymmetry the
// data model calls out against per-action disable, which for Bool is a
// pure gate.
func (s *ActionSet) Disable(sys xr.System) {
	s.enabled = false
	for _, a := range s.boolActions {
		a.Reset()
	}
	for _, a := range s.floatActions {
		a.Reset()
	}
	for _, a := range s.vec2Actions {
		a.Reset()
	}
	for _, a := range s.poseActions {
		a.Reset()
	}
	for _, a := range s.hapticActions {
		a.Deactivate(sys)
	}
}

// Lookups. O(1) by name; nil means not found.
func (s *ActionSet) BoolAction(name string) *BoolAction     { return s.boolActions[name] }
func (s *ActionSet) FloatAction(name string) *FloatAction   { return s.floatActions[name] }
func (s *ActionSet) Vec2Action(name string) *Vec2Action     { return s.vec2Actions[name] }
func (s *ActionSet) PoseAction(name string) *PoseAction     { return s.poseActions[name] }
func (s *ActionSet) HapticAction(name string) *HapticAction { return s.hapticActions[name] }

// ContainsBoolBinding, ContainsFloatBinding, ContainsVec2Binding, and
// ContainsHapticBinding perform a linear scan over actions of the matching
// type, per the binding-query contract. Pose bindings are looked up
// directly rather than scanned during dispatch, since pose values never
// arrive via the bool/float/vec2 binding-trigger path.
func (s *ActionSet) ContainsBoolBinding(b BoolBinding) bool {
	for _, a := range s.boolActions {
		if a.ContainsBinding(b) {
			return true
		}
	}
	return false
}

func (s *ActionSet) ContainsFloatBinding(b FloatBinding) bool {
	for _, a := range s.floatActions {
		if a.ContainsBinding(b) {
			return true
		}
	}
	return false
}

func (s *ActionSet) ContainsVec2Binding(b Vec2Binding) bool {
	for _, a := range s.vec2Actions {
		if a.ContainsBinding(b) {
			return true
		}
	}
	return false
}

func (s *ActionSet) ContainsHapticBinding(b HapticBinding) bool {
	for _, a := range s.hapticActions {
		if a.ContainsBinding(b) {
			return true
		}
	}
	return false
}

// TriggerBoolBinding, TriggerFloatBinding, and TriggerVec2Binding fan a raw
// input value out to every owned action bound to b. A no-op if the set is
// disabled - the actions themselves stay at whatever Disable reset them to.
func (s *ActionSet) TriggerBoolBinding(b BoolBinding, value bool) {
	if !s.enabled {
		return
	}
	for _, a := range s.boolActions {
		if a.ContainsBinding(b) {
			a.Trigger(value)
		}
	}
}

func (s *ActionSet) TriggerFloatBinding(b FloatBinding, value float64) {
	if !s.enabled {
		return
	}
	for _, a := range s.floatActions {
		if a.ContainsBinding(b) {
			a.Trigger(value)
		}
	}
}

func (s *ActionSet) TriggerVec2Binding(b Vec2Binding, value Vec2) {
	if !s.enabled {
		return
	}
	for _, a := range s.vec2Actions {
		if a.ContainsBinding(b) {
			a.Trigger(value)
		}
	}
}

// ResetBoolBinding, ResetFloatBinding, and ResetVec2Binding fan a reset out
// to every owned action bound to b, bypassing the enabled gate - used for
// the relative-accumulator frame-boundary reset, which must reach every
// set regardless of priority or enable state.
func (s *ActionSet) ResetBoolBinding(b BoolBinding) {
	for _, a := range s.boolActions {
		if a.ContainsBinding(b) {
			a.Reset()
		}
	}
}

func (s *ActionSet) ResetFloatBinding(b FloatBinding) {
	for _, a := range s.floatActions {
		if a.ContainsBinding(b) {
			a.Reset()
		}
	}
}

func (s *ActionSet) ResetVec2Binding(b Vec2Binding) {
	for _, a := range s.vec2Actions {
		if a.ContainsBinding(b) {
			a.Reset()
		}
	}
}

// newFrameStarted snapshots every owned action's last-frame value.
func (s *ActionSet) newFrameStarted() {
	for _, a := range s.boolActions {
		a.newFrameStarted()
	}
	for _, a := range s.floatActions {
		a.newFrameStarted()
	}
	for _, a := range s.vec2Actions {
		a.newFrameStarted()
	}
}

// IsVisibleToXrSession is the disjunction of its actions' visibilities: a
// set with zero XR-visible actions is never registered with the runtime.
func (s *ActionSet) IsVisibleToXrSession() bool {
	for _, a := range s.boolActions {
		if a.isVisibleToXr() {
			return true
		}
	}
	for _, a := range s.floatActions {
		if a.isVisibleToXr() {
			return true
		}
	}
	for _, a := range s.vec2Actions {
		if a.isVisibleToXr() {
			return true
		}
	}
	for _, a := range s.poseActions {
		if a.isVisibleToXr() {
			return true
		}
	}
	for _, a := range s.hapticActions {
		if a.isVisibleToXr() {
			return true
		}
	}
	return false
}

// SetupXrActions creates the XR action set carrying this set's priority,
// then sets up each owned action. A failure partway through rolls back
// every handle created so far for this set, leaving it in the "no XR
// handles" state - XR setup failures never abort the action system, only
// the set that failed.
func (s *ActionSet) SetupXrActions(sys xr.System) error {
	if !s.IsVisibleToXrSession() {
		return nil
	}
	h, err := sys.CreateActionSet(s.name, s.localizedName, s.priority)
	if err != nil {
		return newError(XrFailure, "create xr action set "+s.name, err)
	}
	s.xrHandle = h

	setup := func(err error) error {
		if err != nil {
			s.TeardownXrActions(sys)
			return err
		}
		return nil
	}
	for _, a := range s.boolActions {
		if err := setup(a.setupXrAction(sys, h)); err != nil {
			return err
		}
	}
	for _, a := range s.floatActions {
		if err := setup(a.setupXrAction(sys, h)); err != nil {
			return err
		}
	}
	for _, a := range s.vec2Actions {
		if err := setup(a.setupXrAction(sys, h)); err != nil {
			return err
		}
	}
	for _, a := range s.poseActions {
		if err := setup(a.setupXrAction(sys, h)); err != nil {
			return err
		}
	}
	for _, a := range s.hapticActions {
		if err := setup(a.setupXrAction(sys, h)); err != nil {
			return err
		}
	}
	return nil
}

// TeardownXrActions destroys every owned action handle, then the set
// handle itself - the reverse of creation order.
func (s *ActionSet) TeardownXrActions(sys xr.System) {
	for _, a := range s.boolActions {
		a.resetXrAction(sys)
	}
	for _, a := range s.floatActions {
		a.resetXrAction(sys)
	}
	for _, a := range s.vec2Actions {
		a.resetXrAction(sys)
	}
	for _, a := range s.poseActions {
		a.resetXrAction(sys)
	}
	for _, a := range s.hapticActions {
		a.resetXrAction(sys)
	}
	if s.xrHandle != xr.NoActionSet {
		sys.DestroyActionSet(s.xrHandle)
		s.xrHandle = xr.NoActionSet
	}
}

// CreateXrSpaces creates pose spaces for every owned Pose action. Called
// when the XR session enters running.
func (s *ActionSet) CreateXrSpaces(sys xr.System) error {
	for _, a := range s.poseActions {
		if err := a.createXrSpace(sys); err != nil {
			return err
		}
	}
	return nil
}

// DestroyXrSpaces releases every owned Pose action's space. Called when
// the XR session leaves running.
func (s *ActionSet) DestroyXrSpaces(sys xr.System) {
	for _, a := range s.poseActions {
		a.destroyXrSpace(sys)
	}
}

// suggestedBindings aggregates every owned action's suggested bindings for
// the given interaction profile.
func (s *ActionSet) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	var out []xr.SuggestedBinding
	for _, a := range s.boolActions {
		out = append(out, a.suggestedBindings(profile)...)
	}
	for _, a := range s.floatActions {
		out = append(out, a.suggestedBindings(profile)...)
	}
	for _, a := range s.vec2Actions {
		out = append(out, a.suggestedBindings(profile)...)
	}
	for _, a := range s.poseActions {
		out = append(out, a.suggestedBindings(profile)...)
	}
	for _, a := range s.hapticActions {
		out = append(out, a.suggestedBindings(profile)...)
	}
	return out
}

// syncXr reads runtime state for every XR-visible bool/float/vec2 action
// and resolves every pose action's space, all at the given display time.
func (s *ActionSet) syncXr(sys xr.System, displayTime time.Duration) {
	for _, a := range s.boolActions {
		if err := a.syncXr(sys); err != nil {
			log.Warn().Err(err).Str("set", s.name).Msg("xr sync failed")
		}
	}
	for _, a := range s.floatActions {
		if err := a.syncXr(sys); err != nil {
			log.Warn().Err(err).Str("set", s.name).Msg("xr sync failed")
		}
	}
	for _, a := range s.vec2Actions {
		if err := a.syncXr(sys); err != nil {
			log.Warn().Err(err).Str("set", s.name).Msg("xr sync failed")
		}
	}
	for _, a := range s.poseActions {
		if err := a.resolve(sys, displayTime); err != nil {
			log.Warn().Err(err).Str("set", s.name).Msg("xr sync failed")
		}
	}
}

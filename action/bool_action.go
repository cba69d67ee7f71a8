// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "github.com/axrgo/engine/xr"

// BoolAction is a boolean (pressed/released) action: "Jump", "Grab", any
// mouse/keyboard/controller button. Unlike Float/Vec2/Pose, Trigger is not
// gated on enabled - see ActionSet's disable cascade for why a pure gate on
// Bool is required to avoid losing the in-progress press/release symmetry.
type BoolAction struct {
	name          string
	localizedName string
	visibility    Visibility
	bindings      []BoolBinding

	enabled        bool
	value          bool
	valueLastFrame bool

	xrHandle xr.ActionHandle
}

func newBoolAction(cfg ActionConfig[BoolBinding]) (*BoolAction, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &BoolAction{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		visibility:    cfg.XrVisibility,
		bindings:      append([]BoolBinding(nil), cfg.Bindings...),
		enabled:       true,
	}, nil
}

func (a *BoolAction) Name() string          { return a.name }
func (a *BoolAction) LocalizedName() string { return a.localizedName }
func (a *BoolAction) Visibility() Visibility { return a.visibility }

func (a *BoolAction) Enable()        { a.enabled = true }
func (a *BoolAction) Disable()       { a.enabled = false }
func (a *BoolAction) IsEnabled() bool { return a.enabled }

// ValueChanged reports whether Value differs from the value snapshotted at
// the last newFrameStarted.
func (a *BoolAction) ValueChanged() bool { return a.value != a.valueLastFrame }

func (a *BoolAction) Value() bool { return a.value }

// Trigger overwrites value unconditionally, disabled or not: the set-level
// disable cascade is what guarantees a disabled set's bool actions read
// false, by resetting them directly rather than relying on Trigger to gate.
func (a *BoolAction) Trigger(v bool) { a.value = v }

func (a *BoolAction) Reset() { a.value = false }

func (a *BoolAction) ContainsBinding(b BoolBinding) bool {
	for _, bound := range a.bindings {
		if bound == b {
			return true
		}
	}
	return false
}

func (a *BoolAction) newFrameStarted() { a.valueLastFrame = a.value }

// isVisibleToXr applies the Auto|Always|Never rule from the action data
// model: Always is always visible, Never never is, Auto depends on whether
// any binding falls in the XR region.
func (a *BoolAction) isVisibleToXr() bool {
	switch a.visibility {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	default:
		for _, b := range a.bindings {
			if IsXrBool(b) {
				return true
			}
		}
		return false
	}
}

func (a *BoolAction) setupXrAction(sys xr.System, set xr.ActionSetHandle) error {
	if !a.isVisibleToXr() {
		return nil
	}
	h, err := sys.CreateBoolAction(set, a.name, a.localizedName)
	if err != nil {
		return newError(XrFailure, "setup xr bool action "+a.name, err)
	}
	a.xrHandle = h
	return nil
}

func (a *BoolAction) resetXrAction(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		return
	}
	sys.DestroyAction(a.xrHandle)
	a.xrHandle = xr.NoAction
}

// suggestedBindings returns the (path, value) pairs this action contributes
// to binding suggestion for the given interaction profile: every one of its
// bindings that the profile also declares.
func (a *BoolAction) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	supported := profileBoolBindings(profile)
	var out []xr.SuggestedBinding
	for _, b := range a.bindings {
		for _, s := range supported {
			if b == s {
				out = append(out, xr.SuggestedBinding{Action: a.xrHandle, Path: BoolXrPathName(b)})
			}
		}
	}
	return out
}

// syncXr pulls the runtime's current state and, if it is active and has
// changed since the last sync, overwrites value - XR wins over OS input
// for the same frame when both are present.
func (a *BoolAction) syncXr(sys xr.System) error {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	state, err := sys.BoolActionState(a.xrHandle)
	if err != nil {
		return newError(XrFailure, "sync xr bool action "+a.name, err)
	}
	if state.Active && state.Changed {
		a.Trigger(state.Value)
	}
	return nil
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "github.com/axrgo/engine/xr"

// Vec2Action is a two-component action: mouse-moved delta, mouse absolute
// position, XR thumbstick, XR trackpad.
type Vec2Action struct {
	name          string
	localizedName string
	visibility    Visibility
	bindings      []Vec2Binding

	enabled        bool
	value          Vec2
	valueLastFrame Vec2

	xrHandle xr.ActionHandle
}

func newVec2Action(cfg ActionConfig[Vec2Binding]) (*Vec2Action, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Vec2Action{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		visibility:    cfg.XrVisibility,
		bindings:      append([]Vec2Binding(nil), cfg.Bindings...),
		enabled:       true,
	}, nil
}

func (a *Vec2Action) Name() string          { return a.name }
func (a *Vec2Action) LocalizedName() string { return a.localizedName }
func (a *Vec2Action) Visibility() Visibility { return a.visibility }

func (a *Vec2Action) Enable() { a.enabled = true }

// Disable resets value to the zero vector and clears enabled, same
// reasoning as FloatAction.Disable.
func (a *Vec2Action) Disable() {
	a.value = Vec2{}
	a.enabled = false
}

func (a *Vec2Action) IsEnabled() bool    { return a.enabled }
func (a *Vec2Action) ValueChanged() bool { return a.value != a.valueLastFrame }
func (a *Vec2Action) Value() Vec2        { return a.value }

func (a *Vec2Action) Trigger(v Vec2) {
	if !a.enabled {
		return
	}
	a.value = v
}

func (a *Vec2Action) Reset() { a.value = Vec2{} }

func (a *Vec2Action) ContainsBinding(b Vec2Binding) bool {
	for _, bound := range a.bindings {
		if bound == b {
			return true
		}
	}
	return false
}

func (a *Vec2Action) newFrameStarted() { a.valueLastFrame = a.value }

func (a *Vec2Action) isVisibleToXr() bool {
	switch a.visibility {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	default:
		for _, b := range a.bindings {
			if IsXrVec2(b) {
				return true
			}
		}
		return false
	}
}

func (a *Vec2Action) setupXrAction(sys xr.System, set xr.ActionSetHandle) error {
	if !a.isVisibleToXr() {
		return nil
	}
	h, err := sys.CreateVec2Action(set, a.name, a.localizedName)
	if err != nil {
		return newError(XrFailure, "setup xr vec2 action "+a.name, err)
	}
	a.xrHandle = h
	return nil
}

func (a *Vec2Action) resetXrAction(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		return
	}
	sys.DestroyAction(a.xrHandle)
	a.xrHandle = xr.NoAction
}

func (a *Vec2Action) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	supported := profileVec2Bindings(profile)
	var out []xr.SuggestedBinding
	for _, b := range a.bindings {
		for _, s := range supported {
			if b == s {
				out = append(out, xr.SuggestedBinding{Action: a.xrHandle, Path: Vec2XrPathName(b)})
			}
		}
	}
	return out
}

func (a *Vec2Action) syncXr(sys xr.System) error {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	state, err := sys.Vec2ActionState(a.xrHandle)
	if err != nil {
		return newError(XrFailure, "sync xr vec2 action "+a.name, err)
	}
	if state.Active && state.Changed {
		a.Trigger(Vec2{X: state.Value.X, Y: state.Value.Y})
	}
	return nil
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "github.com/axrgo/engine/xr"

// FloatAction is an analog action in [0,1] or [-1,1]: mouse wheel, XR
// trigger/squeeze value, thumbstick/trackpad axis.
type FloatAction struct {
	name          string
	localizedName string
	visibility    Visibility
	bindings      []FloatBinding

	enabled        bool
	value          float64
	valueLastFrame float64

	xrHandle xr.ActionHandle
}

func newFloatAction(cfg ActionConfig[FloatBinding]) (*FloatAction, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &FloatAction{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		visibility:    cfg.XrVisibility,
		bindings:      append([]FloatBinding(nil), cfg.Bindings...),
		enabled:       true,
	}, nil
}

func (a *FloatAction) Name() string          { return a.name }
func (a *FloatAction) LocalizedName() string { return a.localizedName }
func (a *FloatAction) Visibility() Visibility { return a.visibility }

func (a *FloatAction) Enable() { a.enabled = true }

// Disable resets value to zero and clears enabled, unlike BoolAction's pure
// gate - an analog action left at a stale nonzero value while disabled
// would misreport "still held" to any reader that skips the enabled check.
func (a *FloatAction) Disable() {
	a.value = 0
	a.enabled = false
}

func (a *FloatAction) IsEnabled() bool   { return a.enabled }
func (a *FloatAction) ValueChanged() bool { return a.value != a.valueLastFrame }
func (a *FloatAction) Value() float64     { return a.value }

func (a *FloatAction) Trigger(v float64) {
	if !a.enabled {
		return
	}
	a.value = v
}

func (a *FloatAction) Reset() { a.value = 0 }

func (a *FloatAction) ContainsBinding(b FloatBinding) bool {
	for _, bound := range a.bindings {
		if bound == b {
			return true
		}
	}
	return false
}

func (a *FloatAction) newFrameStarted() { a.valueLastFrame = a.value }

func (a *FloatAction) isVisibleToXr() bool {
	switch a.visibility {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	default:
		for _, b := range a.bindings {
			if IsXrFloat(b) {
				return true
			}
		}
		return false
	}
}

func (a *FloatAction) setupXrAction(sys xr.System, set xr.ActionSetHandle) error {
	if !a.isVisibleToXr() {
		return nil
	}
	h, err := sys.CreateFloatAction(set, a.name, a.localizedName)
	if err != nil {
		return newError(XrFailure, "setup xr float action "+a.name, err)
	}
	a.xrHandle = h
	return nil
}

func (a *FloatAction) resetXrAction(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		return
	}
	sys.DestroyAction(a.xrHandle)
	a.xrHandle = xr.NoAction
}

func (a *FloatAction) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	supported := profileFloatBindings(profile)
	var out []xr.SuggestedBinding
	for _, b := range a.bindings {
		for _, s := range supported {
			if b == s {
				out = append(out, xr.SuggestedBinding{Action: a.xrHandle, Path: FloatXrPathName(b)})
			}
		}
	}
	return out
}

func (a *FloatAction) syncXr(sys xr.System) error {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	state, err := sys.FloatActionState(a.xrHandle)
	if err != nil {
		return newError(XrFailure, "sync xr float action "+a.name, err)
	}
	if state.Active && state.Changed {
		a.Trigger(state.Value)
	}
	return nil
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"time"

	"github.com/axrgo/engine/xr"
)

// HapticAction is a haptic output action: an XR controller's left or right
// rumble motor. It has no value to read; Activate/Deactivate forward to the
// XR runtime and are silently ignored when no XR handle exists, matching
// the source's forwarding-to-XR-runtime semantics.
type HapticAction struct {
	name          string
	localizedName string
	visibility    Visibility
	bindings      []HapticBinding

	enabled bool
	active  bool

	xrHandle xr.ActionHandle
}

func newHapticAction(cfg ActionConfig[HapticBinding]) (*HapticAction, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &HapticAction{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		visibility:    cfg.XrVisibility,
		bindings:      append([]HapticBinding(nil), cfg.Bindings...),
		enabled:       true,
	}, nil
}

func (a *HapticAction) Name() string          { return a.name }
func (a *HapticAction) LocalizedName() string { return a.localizedName }
func (a *HapticAction) Visibility() Visibility { return a.visibility }

func (a *HapticAction) Enable() { a.enabled = true }

// Disable deactivates any in-progress pulse and clears enabled.
func (a *HapticAction) Disable(sys xr.System) {
	a.Deactivate(sys)
	a.enabled = false
}

func (a *HapticAction) IsEnabled() bool { return a.enabled }

// Activate forwards a haptic pulse request to the XR runtime. amplitude is
// expected in [0,1]; out-of-range values are passed through unclamped,
// matching the defensive-but-not-validating tone of the per-frame sync
// path (see Error Handling Design).
func (a *HapticAction) Activate(sys xr.System, duration time.Duration, frequencyHz, amplitude float64) error {
	if !a.enabled || a.xrHandle == xr.NoAction {
		return nil
	}
	if err := sys.ApplyHaptic(a.xrHandle, duration, frequencyHz, amplitude); err != nil {
		return newError(XrFailure, "activate haptic "+a.name, err)
	}
	a.active = true
	return nil
}

func (a *HapticAction) Deactivate(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		a.active = false
		return
	}
	sys.StopHaptic(a.xrHandle)
	a.active = false
}

func (a *HapticAction) IsActive() bool { return a.active }

func (a *HapticAction) ContainsBinding(b HapticBinding) bool {
	for _, bound := range a.bindings {
		if bound == b {
			return true
		}
	}
	return false
}

func (a *HapticAction) isVisibleToXr() bool {
	switch a.visibility {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	default:
		for _, b := range a.bindings {
			if IsXrHaptic(b) {
				return true
			}
		}
		return false
	}
}

func (a *HapticAction) setupXrAction(sys xr.System, set xr.ActionSetHandle) error {
	if !a.isVisibleToXr() {
		return nil
	}
	h, err := sys.CreateHapticAction(set, a.name, a.localizedName)
	if err != nil {
		return newError(XrFailure, "setup xr haptic action "+a.name, err)
	}
	a.xrHandle = h
	return nil
}

func (a *HapticAction) resetXrAction(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		return
	}
	sys.DestroyAction(a.xrHandle)
	a.xrHandle = xr.NoAction
}

func (a *HapticAction) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	if a.xrHandle == xr.NoAction {
		return nil
	}
	var out []xr.SuggestedBinding
	for _, b := range a.bindings {
		if path := HapticXrPathName(b); path != "" {
			out = append(out, xr.SuggestedBinding{Action: a.xrHandle, Path: path})
		}
	}
	return out
}

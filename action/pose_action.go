// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"time"

	"github.com/axrgo/engine/xr"
)

// PoseAction is a rigid-body-transform action: the HMD, or an XR
// controller's grip/aim pose. Unlike the other four action kinds it has a
// single scalar binding (not a list) and no last-frame comparison - pose
// values are continuous and resolved fresh every XR frame, so "changed
// this frame" isn't a meaningful question for it.
type PoseAction struct {
	name          string
	localizedName string
	visibility    Visibility
	binding       PoseBinding

	enabled bool
	value   *Pose

	xrHandle xr.ActionHandle
	xrSpace  xr.SpaceHandle
}

func newPoseAction(cfg PoseActionConfig) (*PoseAction, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &PoseAction{
		name:          cfg.Name,
		localizedName: cfg.LocalizedName,
		visibility:    cfg.XrVisibility,
		binding:       cfg.Binding,
		enabled:       true,
		value:         IdentityPose(),
	}, nil
}

func (a *PoseAction) Name() string          { return a.name }
func (a *PoseAction) LocalizedName() string { return a.localizedName }
func (a *PoseAction) Visibility() Visibility { return a.visibility }

func (a *PoseAction) Enable() { a.enabled = true }

// Disable resets value to the identity pose and clears enabled.
func (a *PoseAction) Disable() {
	a.value = IdentityPose()
	a.enabled = false
}

func (a *PoseAction) IsEnabled() bool { return a.enabled }

// Value returns the last resolved pose.
func (a *PoseAction) Value() *Pose { return a.value }

func (a *PoseAction) Trigger(v *Pose) {
	if !a.enabled {
		return
	}
	a.value = v
}

func (a *PoseAction) Reset() { a.value = IdentityPose() }

func (a *PoseAction) ContainsBinding(b PoseBinding) bool { return a.binding == b }

// isHMD reports whether this pose resolves against the runtime's view
// space rather than a per-action XR space - the open question from the
// design notes, resolved in favour of treating the HMD as first class.
func (a *PoseAction) isHMD() bool { return a.binding == PoseXrHMD }

func (a *PoseAction) isVisibleToXr() bool {
	switch a.visibility {
	case VisibilityAlways:
		return true
	case VisibilityNever:
		return false
	default:
		return IsXrPose(a.binding)
	}
}

// setupXrAction creates the xr action handle for a controller grip/aim
// pose. The HMD pose has no action handle of its own - it's resolved
// straight off the runtime's view space - so this is a no-op for it.
func (a *PoseAction) setupXrAction(sys xr.System, set xr.ActionSetHandle) error {
	if !a.isVisibleToXr() || a.isHMD() {
		return nil
	}
	h, err := sys.CreatePoseAction(set, a.name, a.localizedName)
	if err != nil {
		return newError(XrFailure, "setup xr pose action "+a.name, err)
	}
	a.xrHandle = h
	return nil
}

func (a *PoseAction) resetXrAction(sys xr.System) {
	if a.xrHandle == xr.NoAction {
		return
	}
	sys.DestroyAction(a.xrHandle)
	a.xrHandle = xr.NoAction
}

// createXrSpace creates the pose space this action resolves against: the
// runtime's shared view space for the HMD, or a dedicated action space for
// everything else. Called when the XR session enters running.
func (a *PoseAction) createXrSpace(sys xr.System) error {
	if !a.isVisibleToXr() {
		return nil
	}
	if a.isHMD() {
		a.xrSpace = sys.ViewSpace()
		return nil
	}
	if a.xrHandle == xr.NoAction {
		return nil
	}
	space, err := sys.CreateActionSpace(a.xrHandle)
	if err != nil {
		return newError(XrFailure, "create xr space for "+a.name, err)
	}
	a.xrSpace = space
	return nil
}

// destroyXrSpace releases the pose space. Called when the XR session
// leaves running. The shared view space is never destroyed here.
func (a *PoseAction) destroyXrSpace(sys xr.System) {
	if a.xrSpace == xr.NoSpace || a.isHMD() {
		a.xrSpace = xr.NoSpace
		return
	}
	sys.DestroySpace(a.xrSpace)
	a.xrSpace = xr.NoSpace
}

// suggestedBindings returns this action's grip/aim path suggestion for the
// given profile. The HMD pose never contributes a suggestion - it has no
// xr action handle to bind a path to.
func (a *PoseAction) suggestedBindings(profile InteractionProfile) []xr.SuggestedBinding {
	if a.xrHandle == xr.NoAction || a.isHMD() {
		return nil
	}
	for _, s := range profilePoseBindings(profile) {
		if a.binding == s {
			return []xr.SuggestedBinding{{Action: a.xrHandle, Path: PoseXrPathName(a.binding)}}
		}
	}
	return nil
}

// resolve locates this action's space at the given display time and
// triggers the resolved pose. A failed or inactive locate leaves value
// unchanged rather than snapping to identity, matching the spec's "pose
// values are continuous" framing.
func (a *PoseAction) resolve(sys xr.System, displayTime time.Duration) error {
	if a.xrSpace == xr.NoSpace {
		return nil
	}
	state, err := sys.LocateSpace(a.xrSpace, displayTime)
	if err != nil {
		return newError(XrFailure, "locate space for "+a.name, err)
	}
	if !state.Active {
		return nil
	}
	p := IdentityPose()
	p.Loc.X, p.Loc.Y, p.Loc.Z = state.Px, state.Py, state.Pz
	p.Rot.X, p.Rot.Y, p.Rot.Z, p.Rot.W = state.Qx, state.Qy, state.Qz, state.Qw
	a.Trigger(p)
	return nil
}

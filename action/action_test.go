// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"testing"

	"github.com/axrgo/engine/xr"
)

func TestBoolActionTriggerIsUnconditional(t *testing.T) {
	a, err := newBoolAction(ActionConfig[BoolBinding]{Name: "fire", Bindings: []BoolBinding{MouseClickL}})
	if err != nil {
		t.Fatal(err)
	}
	a.Disable()
	a.Trigger(true)
	if a.Value() != true {
		t.Errorf("BoolAction.Trigger should not be gated on enabled")
	}
	if a.IsEnabled() {
		t.Errorf("Disable should clear enabled")
	}
}

func TestFloatActionDisableResets(t *testing.T) {
	a, err := newFloatAction(ActionConfig[FloatBinding]{Name: "grip", Bindings: []FloatBinding{XrControllerLeftSqueezeValue}})
	if err != nil {
		t.Fatal(err)
	}
	a.Trigger(0.5)
	a.Disable()
	if a.Value() != 0 {
		t.Errorf("FloatAction.Disable should reset value to zero, got %v", a.Value())
	}
	a.Trigger(0.9)
	if a.Value() != 0 {
		t.Errorf("Trigger should be a no-op while disabled, got %v", a.Value())
	}
}

func TestVec2ActionChangedThisFrame(t *testing.T) {
	a, err := newVec2Action(ActionConfig[Vec2Binding]{Name: "look", Bindings: []Vec2Binding{MouseMoved}})
	if err != nil {
		t.Fatal(err)
	}
	a.newFrameStarted()
	if a.ValueChanged() {
		t.Errorf("no change expected before any trigger")
	}
	a.Trigger(Vec2{X: 1, Y: 2})
	if !a.ValueChanged() {
		t.Errorf("expected change after trigger")
	}
	a.newFrameStarted()
	if a.ValueChanged() {
		t.Errorf("expected no change right after snapshot")
	}
}

func TestPoseActionIdentityDefault(t *testing.T) {
	a, err := newPoseAction(PoseActionConfig{Name: "hmd", Binding: PoseXrHMD})
	if err != nil {
		t.Fatal(err)
	}
	v := a.Value()
	if v.Loc.X != 0 || v.Loc.Y != 0 || v.Loc.Z != 0 {
		t.Errorf("expected identity location, got %+v", v.Loc)
	}
	if !a.isHMD() {
		t.Errorf("PoseXrHMD binding should report isHMD")
	}
}

func TestHapticActionActivateRequiresHandle(t *testing.T) {
	a, err := newHapticAction(ActionConfig[HapticBinding]{Name: "rumble", Bindings: []HapticBinding{HapticXrControllerLeft}})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Activate(xr.NoXr{}, 0, 0, 0); err != nil {
		t.Errorf("Activate with no xr handle should be a silent no-op, got %v", err)
	}
	if a.IsActive() {
		t.Errorf("no handle means activate never actually applied")
	}
}

func TestActionConfigCloneIsDeep(t *testing.T) {
	cfg := ActionConfig[BoolBinding]{Name: "a", Bindings: []BoolBinding{MouseClickL}}
	clone := cfg.Clone()
	clone.Bindings[0] = MouseClickR
	if cfg.Bindings[0] != MouseClickL {
		t.Errorf("Clone should not share backing array with the original")
	}
}

func TestActionConfigTakeEmptiesSource(t *testing.T) {
	cfg := ActionConfig[BoolBinding]{Name: "a", Bindings: []BoolBinding{MouseClickL}}
	taken := cfg.Take()
	if cfg.Bindings != nil {
		t.Errorf("Take should null the source's owned slice")
	}
	if len(taken.Bindings) != 1 {
		t.Errorf("Take should return the original value")
	}
}

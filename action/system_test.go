// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"testing"
	"time"

	"github.com/axrgo/engine/xr"
)

// TestPriorityArbitration covers S1: two sets bound to the same key, only
// the highest-priority set fires, and a disabled high-priority set still
// shadows a lower enabled one.
func TestPriorityArbitration(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "A", Priority: 10, BoolActions: []ActionConfig[BoolBinding]{
			{Name: "jump", Bindings: []BoolBinding{KeyboardSpace}},
		}},
		{Name: "B", Priority: 5, BoolActions: []ActionConfig[BoolBinding]{
			{Name: "jump", Bindings: []BoolBinding{KeyboardSpace}},
		}},
	}}
	sys, err := NewActionSystem(cfg, xr.NoXr{})
	if err != nil {
		t.Fatal(err)
	}
	sys.ActionSet("A").Enable()
	sys.ActionSet("B").Enable()

	sys.TriggerBool(KeyboardSpace, true)
	if !sys.ActionSet("A").BoolAction("jump").Value() {
		t.Errorf("A should receive the event")
	}
	if sys.ActionSet("B").BoolAction("jump").Value() {
		t.Errorf("B should be shadowed by A's higher priority")
	}

	sys.TriggerBool(KeyboardSpace, false)
	sys.ActionSet("A").Disable(xr.NoXr{})
	sys.TriggerBool(KeyboardSpace, true)
	if sys.ActionSet("A").BoolAction("jump").Value() {
		t.Errorf("disabled A should no-op on trigger")
	}
	if sys.ActionSet("B").BoolAction("jump").Value() {
		t.Errorf("A still wins the priority scan even while disabled, swallowing B's event")
	}
}

// TestDoubleClickWindow covers S2's exact t=0/100/200/300ms sequence.
func TestDoubleClickWindow(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "ui", Priority: 1, BoolActions: []ActionConfig[BoolBinding]{
			{Name: "click", Bindings: []BoolBinding{MouseClickL}},
			{Name: "dblclick", Bindings: []BoolBinding{MouseDoubleClickL}},
		}},
	}}
	sys, err := NewActionSystem(cfg, xr.NoXr{})
	if err != nil {
		t.Fatal(err)
	}
	sys.ActionSet("ui").Enable()
	sys.SetDoubleClickWindow(500 * time.Millisecond)

	clock := time.Unix(0, 0)
	sys.SetClock(func() time.Time { return clock })

	set := sys.ActionSet("ui")
	click := func() bool { return set.BoolAction("click").Value() }
	dblclick := func() bool { return set.BoolAction("dblclick").Value() }

	clock = time.Unix(0, 0)
	sys.TriggerBool(MouseClickL, true)
	if !click() {
		t.Errorf("t=0ms down: MouseClickL should be true")
	}

	clock = time.Unix(0, 100*int64(time.Millisecond))
	sys.TriggerBool(MouseClickL, false)
	if click() {
		t.Errorf("t=100ms up: MouseClickL should be false")
	}

	clock = time.Unix(0, 200*int64(time.Millisecond))
	sys.TriggerBool(MouseClickL, true)
	if !dblclick() {
		t.Errorf("t=200ms down within window: MouseDoubleClickL should be true")
	}
	if click() {
		t.Errorf("t=200ms down: MouseClickL should stay false")
	}

	clock = time.Unix(0, 300*int64(time.Millisecond))
	sys.TriggerBool(MouseClickL, false)
	if dblclick() {
		t.Errorf("t=300ms up: MouseDoubleClickL should resolve back to false")
	}
	if click() {
		t.Errorf("t=300ms up: MouseClickL should still be false")
	}
}

// TestMouseDeltaAccumulation covers S3 and universal invariant 5.
func TestMouseDeltaAccumulation(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "gameplay", Priority: 1, Vec2Actions: []ActionConfig[Vec2Binding]{
			{Name: "look", Bindings: []Vec2Binding{MouseMoved}},
		}},
	}}
	sys, err := NewActionSystem(cfg, xr.NoXr{})
	if err != nil {
		t.Fatal(err)
	}
	sys.ActionSet("gameplay").Enable()

	sys.AccumulateMouseMoved(3, 0)
	sys.AccumulateMouseMoved(-1, 2)
	sys.AccumulateMouseMoved(0, 4)
	sys.ProcessEvents()

	got := sys.ActionSet("gameplay").Vec2Action("look").Value()
	if got.X != 2 || got.Y != 6 {
		t.Fatalf("mouse_moved after process_events = %+v, want (2,6)", got)
	}

	sys.NewFrameStarted()
	got = sys.ActionSet("gameplay").Vec2Action("look").Value()
	if got.X != 0 || got.Y != 0 {
		t.Fatalf("mouse_moved after next new_frame_started = %+v, want (0,0)", got)
	}
}

// TestXrVisibilityAuto covers S4: a non-XR-bound action gets no xr handle
// under VisibilityAuto; adding an XR binding and re-running setup does.
func TestXrVisibilityAuto(t *testing.T) {
	newCfg := func(bindings []BoolBinding) ActionSystemConfig {
		return ActionSystemConfig{ActionSets: []ActionSetConfig{
			{Name: "gameplay", Priority: 1, BoolActions: []ActionConfig[BoolBinding]{
				{Name: "forward", Bindings: bindings},
			}},
		}}
	}

	sys, err := NewActionSystem(newCfg([]BoolBinding{KeyboardW}), xr.NewSimulator())
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.Setup(); err != nil {
		t.Fatal(err)
	}
	if sys.ActionSet("gameplay").BoolAction("forward").xrHandle != xr.NoAction {
		t.Errorf("os-only bindings under VisibilityAuto should create no xr action handle")
	}
	sys.ResetSetup()

	sys2, err := NewActionSystem(newCfg([]BoolBinding{KeyboardW, XrControllerLeftTriggerClick}), xr.NewSimulator())
	if err != nil {
		t.Fatal(err)
	}
	if err := sys2.Setup(); err != nil {
		t.Fatal(err)
	}
	if sys2.ActionSet("gameplay").BoolAction("forward").xrHandle == xr.NoAction {
		t.Errorf("adding an xr-region binding should create an xr action handle")
	}
}

// TestSessionLifecycle covers S5: pose spaces and action-set attachment
// track the XR session's running state, including re-entry.
func TestSessionLifecycle(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "hands", Priority: 1, PoseActions: []PoseActionConfig{
			{Name: "Grip", Binding: XrControllerLeftGrip},
		}},
	}}
	sim := xr.NewSimulator()
	sys, err := NewActionSystem(cfg, sim)
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.Setup(); err != nil {
		t.Fatal(err)
	}

	grip := sys.ActionSet("hands").PoseAction("Grip")
	if grip.xrSpace != xr.NoSpace {
		t.Errorf("no space should exist before the session is running")
	}

	sim.SetSessionState(xr.SessionRunning)
	if grip.xrSpace == xr.NoSpace {
		t.Errorf("entering running should create the grip's space")
	}

	sim.SetSessionState(xr.SessionStopping)
	if grip.xrSpace != xr.NoSpace {
		t.Errorf("leaving running should destroy the grip's space")
	}

	sim.SetSessionState(xr.SessionRunning)
	if grip.xrSpace == xr.NoSpace {
		t.Errorf("re-entering running should re-create the grip's space")
	}
}

// TestScrollScaling covers S6.
func TestScrollScaling(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "ui", Priority: 1, FloatActions: []ActionConfig[FloatBinding]{
			{Name: "scroll", Bindings: []FloatBinding{MouseWheel}},
			{Name: "scrollH", Bindings: []FloatBinding{MouseWheelHorizontal}},
		}},
	}}
	sys, err := NewActionSystem(cfg, xr.NoXr{})
	if err != nil {
		t.Fatal(err)
	}
	sys.ActionSet("ui").Enable()

	sys.AccumulateScroll(240, false)
	sys.AccumulateScroll(-120, true)
	sys.ProcessEvents()

	if v := sys.ActionSet("ui").FloatAction("scroll").Value(); v != 2.0 {
		t.Errorf("MouseWheel = %v, want 2.0", v)
	}
	if v := sys.ActionSet("ui").FloatAction("scrollH").Value(); v != -1.0 {
		t.Errorf("MouseWheelHorizontal = %v, want -1.0", v)
	}
}

// TestXrWinsOverOs covers universal invariant 7: an XR sync report in the
// same frame overrides a value an OS trigger set earlier in that frame.
func TestXrWinsOverOs(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "gameplay", Priority: 1, FloatActions: []ActionConfig[FloatBinding]{
			{Name: "grip", Bindings: []FloatBinding{XrControllerLeftTriggerValue}},
		}},
	}}
	sim := xr.NewSimulator()
	sys, err := NewActionSystem(cfg, sim)
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.Setup(); err != nil {
		t.Fatal(err)
	}
	sim.SetSessionState(xr.SessionRunning)

	grip := sys.ActionSet("gameplay").FloatAction("grip")
	sys.TriggerFloat(XrControllerLeftTriggerValue, 0.25)
	if grip.Value() != 0.25 {
		t.Fatalf("os trigger should set the value ahead of sync, got %v", grip.Value())
	}

	sim.SetFloat(grip.xrHandle, 0.9, true)
	sys.SyncXr()
	if grip.Value() != 0.9 {
		t.Errorf("xr sync should win over the earlier os trigger this frame, got %v", grip.Value())
	}
}

// TestResetSetupIdempotence covers the reset_setup/setup round-trip
// property: tearing down and setting up again succeeds and leaves the
// system usable.
func TestResetSetupIdempotence(t *testing.T) {
	cfg := ActionSystemConfig{ActionSets: []ActionSetConfig{
		{Name: "gameplay", Priority: 1, BoolActions: []ActionConfig[BoolBinding]{
			{Name: "fire", Bindings: []BoolBinding{MouseClickL}},
		}},
	}}
	sys, err := NewActionSystem(cfg, xr.NewSimulator())
	if err != nil {
		t.Fatal(err)
	}
	if err := sys.Setup(); err != nil {
		t.Fatal(err)
	}
	sys.ResetSetup()
	if err := sys.Setup(); err != nil {
		t.Fatalf("setup after reset_setup should succeed again, got %v", err)
	}
	sys.ActionSet("gameplay").Enable()
	sys.TriggerBool(MouseClickL, true)
	if !sys.ActionSet("gameplay").BoolAction("fire").Value() {
		t.Errorf("system should remain usable after a reset_setup/setup round trip")
	}
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package xr

import "testing"

func TestSimulatorSessionStateTransitions(t *testing.T) {
	s := NewSimulator()
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if s.SessionState() != SessionIdle {
		t.Fatalf("state after Init = %v, want SessionIdle", s.SessionState())
	}

	var transitions [][2]SessionState
	s.OnSessionStateChanged(func(old, new SessionState) {
		transitions = append(transitions, [2]SessionState{old, new})
	})

	s.SetSessionState(SessionReady)
	s.SetSessionState(SessionRunning)
	s.SetSessionState(SessionRunning) // no-op: old == new, listener must not fire again.

	if len(transitions) != 2 {
		t.Fatalf("got %d transitions, want 2: %v", len(transitions), transitions)
	}
	if transitions[1] != ([2]SessionState{SessionReady, SessionRunning}) {
		t.Errorf("unexpected transition: %v", transitions[1])
	}
}

func TestSimulatorActionLifecycleRequiresInit(t *testing.T) {
	s := NewSimulator()
	if _, err := s.CreateActionSet("gameplay", "Gameplay", 1); err != ErrNoRuntime {
		t.Errorf("CreateActionSet before Init should fail with ErrNoRuntime, got %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	set, err := s.CreateActionSet("gameplay", "Gameplay", 1)
	if err != nil {
		t.Fatal(err)
	}
	if set == NoActionSet {
		t.Fatal("expected a non-zero action set handle")
	}
	if _, err := s.CreateActionSet("", "", 1); err == nil {
		t.Errorf("empty name should be rejected")
	}
}

func TestSimulatorSyncChangedSemantics(t *testing.T) {
	s := NewSimulator()
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	set, err := s.CreateActionSet("gameplay", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	action, err := s.CreateFloatAction(set, "grip", "")
	if err != nil {
		t.Fatal(err)
	}

	s.SetSessionState(SessionRunning)
	if err := s.AttachActionSets([]ActionSetHandle{set}); err != nil {
		t.Fatal(err)
	}

	// Before any SetFloat, a sync+read reports no change.
	if err := s.SyncActions([]ActionSetHandle{set}); err != nil {
		t.Fatal(err)
	}
	state, err := s.FloatActionState(action)
	if err != nil {
		t.Fatal(err)
	}
	if state.Changed {
		t.Errorf("no new value since last sync should report Changed=false")
	}

	s.SetFloat(action, 0.9, true)
	if err := s.SyncActions([]ActionSetHandle{set}); err != nil {
		t.Fatal(err)
	}
	state, err = s.FloatActionState(action)
	if err != nil {
		t.Fatal(err)
	}
	if !state.Changed || state.Value != 0.9 || !state.Active {
		t.Fatalf("state after sync = %+v, want Changed=true Value=0.9 Active=true", state)
	}

	// A second sync with no new SetFloat call reports unchanged again.
	if err := s.SyncActions([]ActionSetHandle{set}); err != nil {
		t.Fatal(err)
	}
	state, err = s.FloatActionState(action)
	if err != nil {
		t.Fatal(err)
	}
	if state.Changed {
		t.Errorf("repeat sync with no new value should report Changed=false")
	}
}

func TestSimulatorAttachRequiresRunningSession(t *testing.T) {
	s := NewSimulator()
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	set, err := s.CreateActionSet("gameplay", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.AttachActionSets([]ActionSetHandle{set}); err == nil {
		t.Errorf("attach before the session is running should fail")
	}
}

func TestSimulatorLocateSpace(t *testing.T) {
	s := NewSimulator()
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	set, err := s.CreateActionSet("hands", "", 1)
	if err != nil {
		t.Fatal(err)
	}
	action, err := s.CreatePoseAction(set, "grip", "")
	if err != nil {
		t.Fatal(err)
	}
	space, err := s.CreateActionSpace(action)
	if err != nil {
		t.Fatal(err)
	}
	want := PoseState{Px: 1, Py: 2, Pz: 3, Qw: 1, Active: true}
	s.SetSpacePose(space, want)

	got, err := s.LocateSpace(space, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("LocateSpace = %+v, want %+v", got, want)
	}

	s.DestroySpace(space)
	if _, err := s.LocateSpace(space, 0); err == nil {
		t.Errorf("locating a destroyed space should fail")
	}
}

func TestSimulatorViewSpaceNeverDestroyed(t *testing.T) {
	s := NewSimulator()
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	view := s.ViewSpace()
	if view == NoSpace {
		t.Fatal("view space should be valid immediately after Init")
	}
	s.DestroySpace(view)
	if _, err := s.LocateSpace(view, 0); err != nil {
		t.Errorf("view space should survive DestroySpace, got %v", err)
	}
}

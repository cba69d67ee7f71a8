// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import (
	"testing"

	"github.com/axrgo/engine/xr"
)

func newTestSet(t *testing.T, name string, priority uint32, binding BoolBinding) *ActionSet {
	t.Helper()
	set, err := newActionSet(ActionSetConfig{
		Name:     name,
		Priority: priority,
		BoolActions: []ActionConfig[BoolBinding]{
			{Name: "fire", Bindings: []BoolBinding{binding}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestActionSetDisableCascadeResetsActions(t *testing.T) {
	set := newTestSet(t, "gameplay", 10, KeyboardSpace)
	set.BoolAction("fire").Trigger(true)
	set.Disable(xr.NoXr{})
	if set.BoolAction("fire").Value() {
		t.Errorf("disable cascade should reset bool action value to false")
	}
	if set.IsEnabled() {
		t.Errorf("set should be disabled")
	}
}

func TestActionSetTriggerNoOpWhenDisabled(t *testing.T) {
	set := newTestSet(t, "gameplay", 10, KeyboardSpace)
	set.Disable(xr.NoXr{})
	set.TriggerBoolBinding(KeyboardSpace, true)
	if set.BoolAction("fire").Value() {
		t.Errorf("trigger on a disabled set should be a no-op")
	}
}

func TestActionSetVisibilityIsDisjunction(t *testing.T) {
	set, err := newActionSet(ActionSetConfig{
		Name: "hud",
		BoolActions: []ActionConfig[BoolBinding]{
			{Name: "toggle", Bindings: []BoolBinding{KeyboardTab}, XrVisibility: VisibilityNever},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if set.IsVisibleToXrSession() {
		t.Errorf("a set with only non-xr-visible actions should not be xr visible")
	}
	set.BoolAction("toggle").visibility = VisibilityAlways
	if !set.IsVisibleToXrSession() {
		t.Errorf("VisibilityAlways action should make the set xr visible")
	}
}

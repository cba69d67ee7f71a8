// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "testing"

func TestBoolBindingRegions(t *testing.T) {
	if !IsMouseBool(MouseClickL) || IsXrBool(MouseClickL) || IsKeyboardBool(MouseClickL) {
		t.Errorf("MouseClickL region check wrong")
	}
	if !IsKeyboardBool(KeyboardSpace) || IsXrBool(KeyboardSpace) {
		t.Errorf("KeyboardSpace region check wrong")
	}
	if !IsXrBool(XrControllerLeftSelectClick) || IsKeyboardBool(XrControllerLeftSelectClick) {
		t.Errorf("XrControllerLeftSelectClick region check wrong")
	}
}

func TestBoolBindingsDistinct(t *testing.T) {
	seen := map[BoolBinding]bool{}
	all := []BoolBinding{
		MouseClickL, MouseClickR, MouseClickM, MouseClickX1, MouseClickX2,
		MouseDoubleClickL, MouseDoubleClickR, MouseDoubleClickM, MouseDoubleClickX1, MouseDoubleClickX2,
		KeyboardSpace, KeyboardA, KeyboardZ, KeyboardShift, KeyboardF1, KeyboardF12,
		XrControllerLeftSelectClick, XrControllerRightTrackpadTouch,
	}
	for _, b := range all {
		if seen[b] {
			t.Fatalf("binding %d duplicated", b)
		}
		seen[b] = true
	}
}

func TestFloatVec2PoseHapticRegions(t *testing.T) {
	if IsXrFloat(MouseWheel) {
		t.Errorf("MouseWheel should not be xr")
	}
	if !IsXrFloat(XrControllerLeftTriggerValue) {
		t.Errorf("XrControllerLeftTriggerValue should be xr")
	}
	if !IsXrVec2(XrControllerLeftThumbstick) {
		t.Errorf("XrControllerLeftThumbstick should be xr")
	}
	if !IsXrPose(PoseXrHMD) {
		t.Errorf("PoseXrHMD should be xr")
	}
	if !IsXrHaptic(HapticXrControllerLeft) {
		t.Errorf("HapticXrControllerLeft should be xr")
	}
}

func TestVKeyToBoolBinding(t *testing.T) {
	cases := map[int]BoolBinding{
		vkSpace:  KeyboardSpace,
		vkKeyA:   KeyboardA,
		vkKeyZ:   KeyboardZ,
		vkKey0:   Keyboard0,
		vkKey9:   Keyboard9,
		vkLShift: KeyboardShift,
		vkRShift: KeyboardShift,
		vkF1:     KeyboardF1,
		vkF12:    KeyboardF12,
		0xFF:     BoolUndefined,
	}
	for vkey, want := range cases {
		if got := VKeyToBoolBinding(vkey); got != want {
			t.Errorf("VKeyToBoolBinding(%#x) = %d, want %d", vkey, got, want)
		}
	}
}

func TestProfileBindings(t *testing.T) {
	simple := profileBoolBindings(ProfileSimpleController)
	if len(simple) != 4 {
		t.Fatalf("simple controller bool bindings = %d, want 4", len(simple))
	}
	if len(profileFloatBindings(ProfileSimpleController)) != 0 {
		t.Errorf("simple controller has no float bindings")
	}
	index := profileBoolBindings(ProfileValveIndexController)
	if len(index) != 18 {
		t.Fatalf("valve index bool bindings = %d, want 18", len(index))
	}
}

func TestXrPathNames(t *testing.T) {
	if BoolXrPathName(XrControllerLeftSelectClick) != "/user/hand/left/input/select/click" {
		t.Errorf("wrong path for XrControllerLeftSelectClick: %q", BoolXrPathName(XrControllerLeftSelectClick))
	}
	if FloatXrPathName(XrControllerRightTriggerValue) != "/user/hand/right/input/trigger/value" {
		t.Errorf("wrong path for XrControllerRightTriggerValue: %q", FloatXrPathName(XrControllerRightTriggerValue))
	}
	if PoseXrPathName(PoseXrHMD) != "" {
		t.Errorf("PoseXrHMD should have no suggested path, got %q", PoseXrPathName(PoseXrHMD))
	}
	if PoseXrPathName(XrControllerRightGrip) != "/user/hand/right/input/grip/pose" {
		t.Errorf("wrong path for XrControllerRightGrip: %q", PoseXrPathName(XrControllerRightGrip))
	}
}

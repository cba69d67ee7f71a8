// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

// paths.go is the binding → OpenXR path name table: the total functions
// xr_path_name(b) promises in the binding-vocabulary design (§4.1). The
// table is bit-exact against the AXR engine's actionUtils.cpp path
// switches, since interoperability with any real OpenXR runtime depends on
// these strings matching the spec, not just being self-consistent.

var boolXrPaths = map[BoolBinding]string{
	XrControllerLeftSelectClick:      "/user/hand/left/input/select/click",
	XrControllerRightSelectClick:     "/user/hand/right/input/select/click",
	XrControllerLeftMenuClick:        "/user/hand/left/input/menu/click",
	XrControllerRightMenuClick:       "/user/hand/right/input/menu/click",
	XrControllerLeftAClick:           "/user/hand/left/input/a/click",
	XrControllerRightAClick:          "/user/hand/right/input/a/click",
	XrControllerLeftATouch:           "/user/hand/left/input/a/touch",
	XrControllerRightATouch:          "/user/hand/right/input/a/touch",
	XrControllerLeftBClick:           "/user/hand/left/input/b/click",
	XrControllerRightBClick:          "/user/hand/right/input/b/click",
	XrControllerLeftBTouch:           "/user/hand/left/input/b/touch",
	XrControllerRightBTouch:          "/user/hand/right/input/b/touch",
	XrControllerLeftTriggerClick:     "/user/hand/left/input/trigger/click",
	XrControllerRightTriggerClick:    "/user/hand/right/input/trigger/click",
	XrControllerLeftTriggerTouch:     "/user/hand/left/input/trigger/touch",
	XrControllerRightTriggerTouch:    "/user/hand/right/input/trigger/touch",
	XrControllerLeftThumbstickClick:  "/user/hand/left/input/thumbstick/click",
	XrControllerRightThumbstickClick: "/user/hand/right/input/thumbstick/click",
	XrControllerLeftThumbstickTouch:  "/user/hand/left/input/thumbstick/touch",
	XrControllerRightThumbstickTouch: "/user/hand/right/input/thumbstick/touch",
	XrControllerLeftTrackpadTouch:    "/user/hand/left/input/trackpad/touch",
	XrControllerRightTrackpadTouch:   "/user/hand/right/input/trackpad/touch",
}

var floatXrPaths = map[FloatBinding]string{
	XrControllerLeftSqueezeValue:   "/user/hand/left/input/squeeze/value",
	XrControllerRightSqueezeValue:  "/user/hand/right/input/squeeze/value",
	XrControllerLeftSqueezeForce:   "/user/hand/left/input/squeeze/force",
	XrControllerRightSqueezeForce:  "/user/hand/right/input/squeeze/force",
	XrControllerLeftTriggerValue:   "/user/hand/left/input/trigger/value",
	XrControllerRightTriggerValue:  "/user/hand/right/input/trigger/value",
	XrControllerLeftThumbstickX:    "/user/hand/left/input/thumbstick/x",
	XrControllerRightThumbstickX:   "/user/hand/right/input/thumbstick/x",
	XrControllerLeftThumbstickY:    "/user/hand/left/input/thumbstick/y",
	XrControllerRightThumbstickY:   "/user/hand/right/input/thumbstick/y",
	XrControllerLeftTrackpadX:      "/user/hand/left/input/trackpad/x",
	XrControllerRightTrackpadX:     "/user/hand/right/input/trackpad/x",
	XrControllerLeftTrackpadY:      "/user/hand/left/input/trackpad/y",
	XrControllerRightTrackpadY:     "/user/hand/right/input/trackpad/y",
	XrControllerLeftTrackpadForce:  "/user/hand/left/input/trackpad/force",
	XrControllerRightTrackpadForce: "/user/hand/right/input/trackpad/force",
}

var vec2XrPaths = map[Vec2Binding]string{
	XrControllerLeftThumbstick:  "/user/hand/left/input/thumbstick",
	XrControllerRightThumbstick: "/user/hand/right/input/thumbstick",
	XrControllerLeftTrackpad:    "/user/hand/left/input/trackpad",
	XrControllerRightTrackpad:   "/user/hand/right/input/trackpad",
}

// poseXrPaths omits PoseXrHMD: it resolves against the runtime's view space,
// not an action suggested to an interaction profile (see System.ViewSpace).
var poseXrPaths = map[PoseBinding]string{
	XrControllerLeftGrip:  "/user/hand/left/input/grip/pose",
	XrControllerRightGrip: "/user/hand/right/input/grip/pose",
	XrControllerLeftAim:   "/user/hand/left/input/aim/pose",
	XrControllerRightAim:  "/user/hand/right/input/aim/pose",
}

var hapticXrPaths = map[HapticBinding]string{
	HapticXrControllerLeft:  "/user/hand/left/output/haptic",
	HapticXrControllerRight: "/user/hand/right/output/haptic",
}

// BoolXrPathName returns the canonical OpenXR path for an XR bool binding,
// or "" if b is not an XR binding.
func BoolXrPathName(b BoolBinding) string { return boolXrPaths[b] }

// FloatXrPathName returns the canonical OpenXR path for an XR float binding,
// or "" if f is not an XR binding.
func FloatXrPathName(f FloatBinding) string { return floatXrPaths[f] }

// Vec2XrPathName returns the canonical OpenXR path for an XR vec2 binding,
// or "" if v is not an XR binding.
func Vec2XrPathName(v Vec2Binding) string { return vec2XrPaths[v] }

// PoseXrPathName returns the canonical OpenXR path for an XR pose binding,
// or "" if p is not an XR binding or is PoseXrHMD (which has no suggested
// path; it resolves against the view space instead).
func PoseXrPathName(p PoseBinding) string { return poseXrPaths[p] }

// HapticXrPathName returns the canonical OpenXR path for an XR haptic
// binding, or "" if h is not an XR binding.
func HapticXrPathName(h HapticBinding) string { return hapticXrPaths[h] }

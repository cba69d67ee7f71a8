// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

// InteractionProfile identifies a physical XR controller family the
// application declares support for. Declaring a profile controls which
// bindings get suggested to the runtime during setup; it has no effect on
// which bindings an application may configure on its own actions.
type InteractionProfile int

const (
	ProfileUndefined InteractionProfile = iota
	ProfileSimpleController
	ProfileValveIndexController
)

var profilePaths = map[InteractionProfile]string{
	ProfileSimpleController:     "/interaction_profiles/khr/simple_controller",
	ProfileValveIndexController: "/interaction_profiles/valve/index_controller",
}

// XrPathName returns the canonical OpenXR interaction-profile path, or ""
// for an unknown profile.
func (p InteractionProfile) XrPathName() string { return profilePaths[p] }

// profileBoolBindings, profileFloatBindings, profileVec2Bindings, and
// profilePoseBindings return exactly the bindings a profile supports, bit-
// exact against the AXR engine's per-profile binding tables. Khronos Simple
// Controller only covers select/menu buttons and grip/aim poses; Valve
// Index Controller adds the full button/analog/thumbstick/trackpad set.
func profileBoolBindings(p InteractionProfile) []BoolBinding {
	switch p {
	case ProfileSimpleController:
		return []BoolBinding{
			XrControllerLeftSelectClick,
			XrControllerRightSelectClick,
			XrControllerLeftMenuClick,
			XrControllerRightMenuClick,
		}
	case ProfileValveIndexController:
		return []BoolBinding{
			XrControllerLeftAClick,
			XrControllerRightAClick,
			XrControllerLeftATouch,
			XrControllerRightATouch,
			XrControllerLeftBClick,
			XrControllerRightBClick,
			XrControllerLeftBTouch,
			XrControllerRightBTouch,
			XrControllerLeftTriggerClick,
			XrControllerRightTriggerClick,
			XrControllerLeftTriggerTouch,
			XrControllerRightTriggerTouch,
			XrControllerLeftThumbstickClick,
			XrControllerRightThumbstickClick,
			XrControllerLeftThumbstickTouch,
			XrControllerRightThumbstickTouch,
			XrControllerLeftTrackpadTouch,
			XrControllerRightTrackpadTouch,
		}
	default:
		return nil
	}
}

func profileFloatBindings(p InteractionProfile) []FloatBinding {
	switch p {
	case ProfileValveIndexController:
		return []FloatBinding{
			XrControllerLeftSqueezeValue,
			XrControllerRightSqueezeValue,
			XrControllerLeftSqueezeForce,
			XrControllerRightSqueezeForce,
			XrControllerLeftTriggerValue,
			XrControllerRightTriggerValue,
			XrControllerLeftThumbstickX,
			XrControllerRightThumbstickX,
			XrControllerLeftThumbstickY,
			XrControllerRightThumbstickY,
			XrControllerLeftTrackpadX,
			XrControllerRightTrackpadX,
			XrControllerLeftTrackpadY,
			XrControllerRightTrackpadY,
			XrControllerLeftTrackpadForce,
			XrControllerRightTrackpadForce,
		}
	default:
		return nil
	}
}

func profileVec2Bindings(p InteractionProfile) []Vec2Binding {
	switch p {
	case ProfileValveIndexController:
		return []Vec2Binding{
			XrControllerLeftThumbstick,
			XrControllerRightThumbstick,
			XrControllerLeftTrackpad,
			XrControllerRightTrackpad,
		}
	default:
		return nil
	}
}

func profilePoseBindings(p InteractionProfile) []PoseBinding {
	switch p {
	case ProfileSimpleController, ProfileValveIndexController:
		return []PoseBinding{
			XrControllerLeftGrip,
			XrControllerRightGrip,
			XrControllerLeftAim,
			XrControllerRightAim,
		}
	default:
		return nil
	}
}

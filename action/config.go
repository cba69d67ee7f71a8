// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "fmt"

// config.go declares the declarative configuration API: plain value
// records the caller builds up front and hands to NewActionSystem, which
// deep-copies them into its owned data model. The source system these
// configs replace used a deep C-style ownership tree (config → array of
// cstring+count arrays) with paired clone/destroy functions and a "move"
// convention that nulled the source's fields; Clone/Take here are that
// convention's Go-native equivalent, now operating on ordinary slices
// instead of owned C arrays.

const (
	maxNameLen          = 64
	maxLocalizedNameLen = 128
)

// Visibility controls whether an action participates in XR binding
// suggestion and XR-action-handle creation.
type Visibility int

const (
	// VisibilityAuto creates an xr handle iff the action has at least one
	// XR-region binding.
	VisibilityAuto Visibility = iota
	// VisibilityAlways creates an xr handle whenever a session exists,
	// regardless of bindings.
	VisibilityAlways
	// VisibilityNever never creates an xr handle.
	VisibilityNever
)

func (v Visibility) String() string {
	switch v {
	case VisibilityAuto:
		return "auto"
	case VisibilityAlways:
		return "always"
	case VisibilityNever:
		return "never"
	default:
		return "unknown"
	}
}

// ActionConfig is the declarative form of a Bool/Float/Vec2/Haptic action:
// a name, an XR visibility policy, and the list of bindings that drive it.
// Pose actions use PoseActionConfig instead, since a pose action has
// exactly one binding rather than a list (see §3 of the design notes this
// package implements).
type ActionConfig[T ~int] struct {
	Name          string
	LocalizedName string
	XrVisibility  Visibility
	Bindings      []T
}

// Clone returns a deep copy: the Bindings slice is independently owned by
// the clone, so mutating one config's Bindings never affects the other.
func (c ActionConfig[T]) Clone() ActionConfig[T] {
	clone := c
	clone.Bindings = append([]T(nil), c.Bindings...)
	return clone
}

// Take returns c's value and empties c's owned slice in place, the
// "move source, null source's fields" pattern applied to a plain Go slice.
// Only Bindings is emptied; Name, LocalizedName and XrVisibility stay in c,
// so a second call returns a copy with those fields and nil Bindings.
func (c *ActionConfig[T]) Take() ActionConfig[T] {
	taken := *c
	c.Bindings = nil
	return taken
}

func (c ActionConfig[T]) validate() error {
	return validateName(c.Name, c.LocalizedName)
}

// PoseActionConfig is the declarative form of a Pose action: like
// ActionConfig but with a single scalar Binding rather than a list, per
// spec.md's explicit exception for pose actions.
type PoseActionConfig struct {
	Name          string
	LocalizedName string
	XrVisibility  Visibility
	Binding       PoseBinding
}

// Clone returns a copy of c. PoseActionConfig owns no heap storage, so
// Clone is just a value copy; it exists for API symmetry with ActionConfig.
func (c PoseActionConfig) Clone() PoseActionConfig { return c }

// Take returns c's value. There's nothing to null (no owned slice), but
// Take exists so callers can move a PoseActionConfig the same way they
// move any other action config.
func (c *PoseActionConfig) Take() PoseActionConfig { return *c }

func (c PoseActionConfig) validate() error {
	return validateName(c.Name, c.LocalizedName)
}

// ActionSetConfig is the declarative form of an ActionSet: a name, a
// dispatch priority, and five parallel lists of typed action configs.
type ActionSetConfig struct {
	Name          string
	LocalizedName string
	Priority      uint32

	BoolActions   []ActionConfig[BoolBinding]
	FloatActions  []ActionConfig[FloatBinding]
	Vec2Actions   []ActionConfig[Vec2Binding]
	PoseActions   []PoseActionConfig
	HapticActions []ActionConfig[HapticBinding]
}

// Clone returns a deep copy of c and every action config it owns.
func (c ActionSetConfig) Clone() ActionSetConfig {
	clone := c
	clone.BoolActions = cloneActionConfigs(c.BoolActions)
	clone.FloatActions = cloneActionConfigs(c.FloatActions)
	clone.Vec2Actions = cloneActionConfigs(c.Vec2Actions)
	clone.HapticActions = cloneActionConfigs(c.HapticActions)
	clone.PoseActions = append([]PoseActionConfig(nil), c.PoseActions...)
	return clone
}

// Take returns c's value and empties every owned slice in c in place.
func (c *ActionSetConfig) Take() ActionSetConfig {
	taken := *c
	c.BoolActions, c.FloatActions, c.Vec2Actions, c.PoseActions, c.HapticActions = nil, nil, nil, nil, nil
	return taken
}

func cloneActionConfigs[T ~int](configs []ActionConfig[T]) []ActionConfig[T] {
	clone := make([]ActionConfig[T], len(configs))
	for i, c := range configs {
		clone[i] = c.Clone()
	}
	return clone
}

// ActionSystemConfig is the top-level declarative configuration: the set of
// action sets to create and the XR interaction profiles the application
// intends to support.
type ActionSystemConfig struct {
	ActionSets            []ActionSetConfig
	XrInteractionProfiles []InteractionProfile
}

// Clone returns a deep copy of c and every action set config it owns.
func (c ActionSystemConfig) Clone() ActionSystemConfig {
	sets := make([]ActionSetConfig, len(c.ActionSets))
	for i, s := range c.ActionSets {
		sets[i] = s.Clone()
	}
	return ActionSystemConfig{
		ActionSets:            sets,
		XrInteractionProfiles: append([]InteractionProfile(nil), c.XrInteractionProfiles...),
	}
}

// Take returns c's value and empties every owned slice in c in place.
func (c *ActionSystemConfig) Take() ActionSystemConfig {
	taken := *c
	c.ActionSets, c.XrInteractionProfiles = nil, nil
	return taken
}

// validateName enforces the name bounds from the configuration surface:
// name non-empty and <=64 bytes, localized name <=128 bytes. The characters
// of either name are not checked.
func validateName(name, localizedName string) error {
	if name == "" {
		return newError(InvalidArgument, "validate name", fmt.Errorf("name is empty"))
	}
	if len(name) > maxNameLen {
		return newError(InvalidArgument, "validate name", fmt.Errorf("name %q exceeds %d bytes", name, maxNameLen))
	}
	if len(localizedName) > maxLocalizedNameLen {
		return newError(InvalidArgument, "validate name", fmt.Errorf("localized name %q exceeds %d bytes", localizedName, maxLocalizedNameLen))
	}
	return nil
}

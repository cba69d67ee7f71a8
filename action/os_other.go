// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !windows

package action

// registerOsInput and deregisterOsInput are no-ops on non-Windows builds:
// there is no raw-input source to wire up, so the action system runs on
// whatever TriggerBool/TriggerFloat/TriggerVec2/Accumulate* calls its host
// makes directly (tests drive it this way; see system_test.go).

func (s *ActionSystem) registerOsInput() error { return nil }

func (s *ActionSystem) deregisterOsInput() {}

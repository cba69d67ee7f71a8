// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "github.com/axrgo/engine/math/lin"

// Pose is a rigid-body transform sampled from an HMD or an XR controller's
// grip/aim space: location plus rotation, no scale. It's the teacher's own
// lin.T, reused directly rather than introducing a parallel transform type,
// so pose actions compose with the rest of the engine's 3D math.
type Pose = lin.T

// IdentityPose returns a newly allocated Pose at the origin with no
// rotation, the value an unresolved pose action reports before its first
// XR sync.
func IdentityPose() *Pose { return lin.NewT() }

// poseEq reports whether two poses are exactly equal, nil-safe: two nils
// are equal, a nil and a non-nil are not.
func poseEq(a, b *Pose) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Eq(b)
}

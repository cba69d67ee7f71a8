// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package action

import "math"

// Vec2 is a two-component value: mouse position/delta, or an XR thumbstick
// or trackpad axis pair. math/lin has no native two-component vector (V3 is
// the smallest), so Vec2 is a small value type local to this package.
type Vec2 struct {
	X, Y float64
}

// Eq (==) returns true if v and a have identical components.
func (v Vec2) Eq(a Vec2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if v and a are within epsilon of
// each other in both components. Used where direct comparison is unlikely
// to succeed due to float accumulation.
func (v Vec2) Aeq(a Vec2) bool {
	const epsilon = 1e-5
	return math.Abs(v.X-a.X) < epsilon && math.Abs(v.Y-a.Y) < epsilon
}

// Add returns v+a.
func (v Vec2) Add(a Vec2) Vec2 { return Vec2{v.X + a.X, v.Y + a.Y} }

// Sub returns v-a.
func (v Vec2) Sub(a Vec2) Vec2 { return Vec2{v.X - a.X, v.Y - a.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsZero reports whether v is the zero vector.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

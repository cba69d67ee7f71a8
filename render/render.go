// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render provides access to the graphics context. The expected
// usage is:
//   - Initialize the graphics layer.
//   - Set global state: clear color, culling, blending, depth test.
//   - Resize the viewport as the window changes.
//
// Package render is provided as part of the vu (virtual universe) 3D engine.
package render

// Renderer controls the graphics context's global state. The expected
// usage is along the lines of:
//   - Initialize the graphics layer, once at startup.
//   - Enable/disable graphic state and resize the viewport as needed.
//   - Clear the buffers at the start of a frame.
type Renderer interface {
	Init() (err error)               // Call first, once at startup.
	Dispose()                        // Release the graphics context.
	Clear()                          // Clear all buffers before rendering.
	Color(r, g, b, a float32)        // Set the default render clear colour.
	Enable(attr uint32, enable bool) // Enable or disable graphic state.
	Viewport(width int, height int)  // Set the available screen real estate.
}

// Render implementation constants, used with Renderer.Enable.
const (
	BLEND uint32 = iota // Alpha blending.
	CULL                // Backface culling.
	DEPTH               // Z-buffer awareness.
)

// New provides a default graphics implementation. There is no graphics
// backend anywhere in the engine's dependency set (rendering itself is out
// of scope here), so New returns a software stand-in that tracks enabled
// state without touching a graphics card, the same role xr.New's Simulator
// plays for the XR runtime.
func New() Renderer { return newSoftRenderer() }

// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

// softRenderer is a graphics-card-free Renderer: it tracks clear color,
// viewport size, and enabled attribute state without ever touching a
// driver. Useful for headless builds and tests, matching the role
// audio's softAudio plays for the sound card.
type softRenderer struct {
	r, g, b, a    float32
	width, height int
	enabled       map[uint32]bool
}

func newSoftRenderer() Renderer {
	return &softRenderer{enabled: map[uint32]bool{}}
}

func (s *softRenderer) Init() error { return nil }
func (s *softRenderer) Dispose()    {}
func (s *softRenderer) Clear()      {}

func (s *softRenderer) Color(r, g, b, a float32) {
	s.r, s.g, s.b, s.a = r, g, b, a
}

func (s *softRenderer) Enable(attr uint32, enable bool) {
	s.enabled[attr] = enable
}

func (s *softRenderer) Viewport(width, height int) {
	s.width, s.height = width, height
}

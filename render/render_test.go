// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "testing"

func TestSoftRendererTracksState(t *testing.T) {
	r := New()
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	r.Color(0.1, 0.2, 0.3, 1)
	r.Viewport(800, 600)
	r.Enable(CULL, true)
	r.Enable(DEPTH, false)

	sr, ok := r.(*softRenderer)
	if !ok {
		t.Fatalf("New() returned %T, want *softRenderer", r)
	}
	if sr.width != 800 || sr.height != 600 {
		t.Errorf("viewport = %d,%d, want 800,600", sr.width, sr.height)
	}
	if !sr.enabled[CULL] {
		t.Errorf("CULL should be enabled")
	}
	if sr.enabled[DEPTH] {
		t.Errorf("DEPTH should be disabled")
	}
	r.Dispose()
}

// SPDX-FileCopyrightText : © 2022-2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package vu

import "testing"

func TestConfigDefaults(t *testing.T) {
	c := configDefaults
	if c.windowed {
		t.Errorf("default should not be windowed")
	}
	if c.w != 800 || c.h != 450 {
		t.Errorf("default size = %d,%d, want 800,450", c.w, c.h)
	}
}

func TestConfigAttrs(t *testing.T) {
	c := configDefaults
	Title("Keyboard Controller")(&c)
	Size(200, 200, 900, 400)(&c)
	Windowed()(&c)
	Background(0.45, 0.45, 0.45, 1)(&c)

	if c.title != "Keyboard Controller" {
		t.Errorf("title = %q", c.title)
	}
	if !c.windowed {
		t.Errorf("expected windowed mode")
	}
	if c.x != 200 || c.y != 200 || c.w != 900 || c.h != 400 {
		t.Errorf("size = %d,%d,%d,%d, want 200,200,900,400", c.x, c.y, c.w, c.h)
	}
	if c.r != 0.45 || c.g != 0.45 || c.b != 0.45 || c.a != 1 {
		t.Errorf("background = %v,%v,%v,%v", c.r, c.g, c.b, c.a)
	}
}

func TestConfigSizeRejectsOutOfRange(t *testing.T) {
	c := configDefaults
	Size(-1, -1, 5, 20_000)(&c)
	if c.x != 0 || c.y != 0 {
		t.Errorf("negative position should be rejected, got %d,%d", c.x, c.y)
	}
	if c.w != 800 || c.h != 450 {
		t.Errorf("out of range size should be rejected, got %d,%d", c.w, c.h)
	}
}

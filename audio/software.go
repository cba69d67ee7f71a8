// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

// softAudio is a sound-card-free Audio: it hands out unique bound-sound
// references and tracks listener/gain state without ever touching a
// driver. Useful for headless builds and tests.
type softAudio struct {
	gain       float64
	lx, ly, lz float64
	next       uint64
	bound      map[uint64]bool
}

func newSoftAudio() Audio {
	return &softAudio{gain: 1, next: 1, bound: map[uint64]bool{}}
}

func (a *softAudio) Init() error          { return nil }
func (a *softAudio) Dispose()             {}
func (a *softAudio) SetGain(gain float64) { a.gain = gain }

func (a *softAudio) BindSound(sound, buff *uint64, d *Data) error {
	*sound, *buff = a.next, a.next
	a.bound[a.next] = true
	a.next++
	return nil
}

func (a *softAudio) ReleaseSound(sound uint64) { delete(a.bound, sound) }

func (a *softAudio) PlaceListener(x, y, z float64)           { a.lx, a.ly, a.lz = x, y, z }
func (a *softAudio) PlaySound(sound uint64, x, y, z float64) {}

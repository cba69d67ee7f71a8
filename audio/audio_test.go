// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package audio

import "testing"

func TestSoftAudioBindAndRelease(t *testing.T) {
	a := New()
	if err := a.Init(); err != nil {
		t.Fatal(err)
	}
	a.PlaceListener(1, 2, 3)
	a.SetGain(0.5)

	snd, buff := uint64(0), uint64(0)
	d := &Data{Name: "bloop"}
	d.Set(1, 16, 44100, 4, []byte{1, 2, 3, 4})
	if err := a.BindSound(&snd, &buff, d); err != nil || snd == 0 || buff == 0 {
		t.Fatalf("BindSound = %d, %d, %v; want non-zero refs, no error", snd, buff, err)
	}
	a.PlaySound(snd, 1, 2, 3)
	a.ReleaseSound(snd)
	a.Dispose()
}

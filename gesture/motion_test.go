// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"
	"time"

	"slipkit.org/f32"
)

func sampleAt(x, y float32, at time.Duration) sample {
	return sample{pos: f32.Point{X: x, Y: y}, time: at}
}

func TestMotionTotal(t *testing.T) {
	var m motionTrack
	m.begin(sampleAt(100, 200, 0))
	m.update(sampleAt(130, 180, 50*time.Millisecond))
	got := m.total(0)
	if got.DX != 30 || got.DY != -20 || got.DT != 50*time.Millisecond {
		t.Errorf("total %+v", got)
	}
	// Auto-scroll moves the content under the pointer; the scroll
	// delta counts as additional vertical displacement.
	if got := m.total(25); got.DY != 5 {
		t.Errorf("compensated DY %g, want 5", got.DY)
	}
}

func TestMotionAbsolute(t *testing.T) {
	var m motionTrack
	m.begin(sampleAt(100, 200, 0))
	m.update(sampleAt(70, 240, 50*time.Millisecond))
	a := m.absolute(0)
	if a.DX != 30 || a.DirX != Left {
		t.Errorf("horizontal %g/%v, want 30/left", a.DX, a.DirX)
	}
	if a.DY != 40 || a.DirY != Down {
		t.Errorf("vertical %g/%v, want 40/down", a.DY, a.DirY)
	}
}

func TestMotionVelocityWindow(t *testing.T) {
	var m motionTrack
	m.begin(sampleAt(0, 0, 0))
	m.update(sampleAt(10, 0, 50*time.Millisecond))
	// The previous sample advances once the incoming sample is
	// older than the window, so the estimate covers recent motion
	// only.
	m.update(sampleAt(30, 0, 160*time.Millisecond))
	v := m.velocity()
	want := float32(20) / 110
	if v.X != want {
		t.Errorf("velocity %g, want %g", v.X, want)
	}
}

func TestMotionVelocityPause(t *testing.T) {
	var m motionTrack
	m.begin(sampleAt(0, 0, 0))
	m.update(sampleAt(100, 0, 50*time.Millisecond))
	// A long pause before release drops the stale speed.
	m.update(sampleAt(100, 0, 400*time.Millisecond))
	if v := m.velocity(); v.X != 0 {
		t.Errorf("velocity %g after a pause, want 0", v.X)
	}
}

func TestMotionVelocityDegenerate(t *testing.T) {
	var m motionTrack
	m.begin(sampleAt(50, 50, 0))
	if v := m.velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v without samples, want zero", v)
	}
	// A single instantaneous update falls back to the whole
	// gesture, which is still zero time.
	m.update(sampleAt(60, 50, 0))
	if v := m.velocity(); v != (f32.Point{}) {
		t.Errorf("velocity %v over zero time, want zero", v)
	}
}

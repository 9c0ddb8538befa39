// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"slipkit.org/f32"
)

// velocityWindow is the least age of the previous sample kept for
// velocity estimation. The previous sample only advances once the
// incoming sample is older than the window; every move still
// updates the latest sample.
const velocityWindow = 100 * time.Millisecond

// sample is a raw input position and its capture time. Immutable
// once recorded.
type sample struct {
	pos  f32.Point
	time time.Duration
}

// motionTrack is pure bookkeeping over the session's pointer
// samples. It is mutated only by the active session and reset at
// session start.
type motionTrack struct {
	start    sample
	latest   sample
	previous sample
}

// movement is a displacement over elapsed time.
type movement struct {
	DX, DY float32
	DT     time.Duration
}

// absMovement is an absolute displacement with the inferred axis
// directions.
type absMovement struct {
	DX, DY     float32
	DT         time.Duration
	DirX, DirY Direction
}

func (m *motionTrack) begin(s sample) {
	m.start = s
	m.latest = s
	m.previous = s
}

func (m *motionTrack) update(s sample) {
	if s.time-m.previous.time > velocityWindow {
		m.previous = m.latest
	}
	m.latest = s
}

// total returns the displacement since session start. scrollDelta
// compensates the vertical displacement for auto-scroll of the
// scroll ancestor during the gesture.
func (m *motionTrack) total(scrollDelta float32) movement {
	return movement{
		DX: m.latest.pos.X - m.start.pos.X,
		DY: m.latest.pos.Y - m.start.pos.Y + scrollDelta,
		DT: m.latest.time - m.start.time,
	}
}

func (m *motionTrack) absolute(scrollDelta float32) absMovement {
	t := m.total(scrollDelta)
	a := absMovement{DX: t.DX, DY: t.DY, DT: t.DT, DirX: Right, DirY: Down}
	if t.DX < 0 {
		a.DX = -t.DX
		a.DirX = Left
	}
	if t.DY < 0 {
		a.DY = -t.DY
		a.DirY = Up
	}
	return a
}

// velocity estimates the pointer speed in pixels per millisecond
// over the sampling window, falling back to the whole gesture when
// the window is degenerate.
func (m *motionTrack) velocity() f32.Point {
	from, to := m.previous, m.latest
	if to.time <= from.time {
		from = m.start
	}
	dt := float32(to.time-from.time) / float32(time.Millisecond)
	if dt <= 0 {
		return f32.Point{}
	}
	return to.pos.Sub(from.pos).Mul(1 / dt)
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for distances independent
of the underlying display device. Pixels, or px, is the unit for
display dependent pixels.

Gesture thresholds are declared in dps so that they keep a constant
apparent size across displays; a Converter translates them to the
pixels of the host coordinate space.
*/
package unit

import "fmt"

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Converter converts Values to pixels.
type Converter interface {
	Px(v Value) int
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Scale returns the value scaled by s.
func (v Value) Scale(s float32) Value {
	v.V *= s
	return v
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	default:
		panic("unknown unit")
	}
}

// Metric converts Values to pixels with a fixed dp scaling
// factor. The zero Metric is not valid; use Identity for hosts
// whose coordinate space is already in pixels.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
}

// Identity is the Metric mapping 1 dp to 1 px.
var Identity = Metric{PxPerDp: 1}

// Px implements Converter.
func (m Metric) Px(v Value) int {
	switch v.U {
	case UnitPx:
		return int(v.V + .5)
	case UnitDp:
		return int(v.V*m.PxPerDp + .5)
	default:
		panic("unknown unit")
	}
}

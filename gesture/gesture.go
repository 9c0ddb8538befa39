// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture recognizes and disambiguates single-pointer
gestures on the children of a list container.

A Slip session accepts low level pointer Events from a platform
adapter and classifies the interaction into exactly one of tap,
horizontal swipe or vertical reorder drag, managing the ambiguity
window before classification. It drives visual feedback through
the host's list.Node interface and reports lifecycle notifications
through a cancelable event Dispatcher; the consuming application
performs the actual list mutation.
*/
package gesture

import (
	"errors"
	"time"

	"slipkit.org/f32"
	"slipkit.org/list"
	"slipkit.org/unit"
)

// State identifies the phase of a gesture session.
type State uint8

const (
	// StateIdle is the initial and terminal state. No target is
	// held and text selection is allowed.
	StateIdle State = iota
	// StateUndecided is entered on pointer press, before the
	// accumulated motion selects a gesture.
	StateUndecided
	// StateSwiping is the horizontal removal gesture.
	StateSwiping
	// StateReordering is the vertical position-swap gesture.
	StateReordering
)

// Direction is the axis direction of pointer motion.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// ErrNoContainer reports a session constructed without an
// attachment target.
var ErrNoContainer = errors.New("gesture: nil container")

// Classification and feedback thresholds. Declared in dps and
// converted through the session's Converter.
var (
	// swipeStartSlop is the horizontal displacement that starts a
	// swipe from the undecided state.
	swipeStartSlop = unit.Dp(20)
	// scrollStartSlop is the vertical displacement at which the
	// undecided state releases control to native scrolling.
	scrollStartSlop = unit.Dp(20)
	// holdSlopX and holdSlopY bound the motion under which an
	// expired hold timer still begins a reorder.
	holdSlopX = unit.Dp(15)
	holdSlopY = unit.Dp(25)
	// swipeDriftSlop is added to the item height to bound vertical
	// drift during a swipe.
	swipeDriftSlop = unit.Dp(20)
	// swipeDriftFloor is the least vertical bound for starting a
	// swipe, for very short items.
	swipeDriftFloor = unit.Dp(100)
	// scrollTrigger is the edge proximity that starts auto-scroll
	// during a reorder drag, and its maximum step.
	scrollTrigger = unit.Dp(40)
)

// sidewaysBias is the ratio of horizontal over vertical motion
// beyond which undecided moves are consumed to keep over-eager
// platforms from scrolling sideways.
const sidewaysBias = 1.2

// Config carries the options recognized at session construction.
// The zero value uses the defaults documented per field.
type Config struct {
	// MinimumSwipeVelocity is the horizontal speed, in pixels per
	// millisecond, above which a released swipe is confirmed.
	// Defaults to 1.
	MinimumSwipeVelocity float32
	// MinimumSwipeTime is the least gesture duration for a
	// velocity-confirmed swipe. Defaults to 110ms.
	MinimumSwipeTime time.Duration
	// KeepSwipingPercent confirms a released swipe whose net
	// horizontal displacement exceeds this percentage of the
	// container width, regardless of velocity. Zero disables the
	// percentage path.
	KeepSwipingPercent float32
	// IgnoredElements lists host selectors identifying children
	// excluded from reorder placement. When empty, all element
	// children participate.
	IgnoredElements []string

	// HoldDuration is the press-and-hold delay that distinguishes
	// an intentional reorder from a tap or scroll. Defaults to
	// 300ms.
	HoldDuration time.Duration
	// GraceDuration is how long a reorder survives the pointer
	// leaving the tracked window. Defaults to 700ms.
	GraceDuration time.Duration
	// SwipeOutDuration and SnapBackDuration time the confirmed
	// swipe-away and the return-to-rest animations. Visual polish
	// only; they do not affect classification. Default to 200ms
	// and 100ms.
	SwipeOutDuration time.Duration
	SnapBackDuration time.Duration

	// Converter scales the dp thresholds to host pixels. Defaults
	// to unit.Identity.
	Converter unit.Converter
	// HitTest locates the deepest host node at a viewport
	// position. When nil, the session descends the container tree
	// by bounds.
	HitTest func(p f32.Point) list.Node
	// PreventScroll reports whether the platform can still
	// suppress native scrolling at this point in the gesture. The
	// adapter normalizes platform capability sniffing into this
	// flag. When nil, scroll prevention is assumed available.
	PreventScroll func() bool
}

func (c *Config) setDefaults() {
	if c.MinimumSwipeVelocity == 0 {
		c.MinimumSwipeVelocity = 1
	}
	if c.MinimumSwipeTime == 0 {
		c.MinimumSwipeTime = 110 * time.Millisecond
	}
	if c.HoldDuration == 0 {
		c.HoldDuration = 300 * time.Millisecond
	}
	if c.GraceDuration == 0 {
		c.GraceDuration = 700 * time.Millisecond
	}
	if c.SwipeOutDuration == 0 {
		c.SwipeOutDuration = 200 * time.Millisecond
	}
	if c.SnapBackDuration == 0 {
		c.SnapBackDuration = 100 * time.Millisecond
	}
	if c.Converter == nil {
		c.Converter = unit.Identity
	}
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateUndecided:
		return "Undecided"
	case StateSwiping:
		return "Swiping"
	case StateReordering:
		return "Reordering"
	default:
		panic("unknown State")
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		panic("unknown Direction")
	}
}

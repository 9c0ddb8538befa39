// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer is the abstract single-pointer input model.
// Platform adapters translate native touch or mouse events into
// Events and deliver them to a gesture session; the package does
// not capture input itself.
package pointer

import (
	"time"

	"slipkit.org/f32"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Time is when the event was captured. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the coordinates of the event in the
	// viewport coordinate system of the host.
	Position f32.Point
}

type ID uint16

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Leave is generated when the pointer exits the tracked
	// window boundary. Whether it occurs at all is input device
	// specific.
	Leave
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Leave:
		return "Leave"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

func (Event) ImplementsEvent() {}

// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for an event handler.
// For a handler h, the tag is typically &h.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Handler reacts to an Event dispatched to a tag it is registered
// on. Returning false cancels the default action associated with
// the event; returning true leaves it allowed.
type Handler func(e Event) bool

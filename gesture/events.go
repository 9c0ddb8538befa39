// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import "slipkit.org/list"

// Lifecycle notifications are dispatched to the resolved item node
// and bubble to its ancestors. Canceling one (a handler returning
// false) vetoes the effect documented per event; events marked
// informational ignore cancellation.

// BeforeWaitEvent fires on pointer press before the hold timer is
// armed. Canceling it skips the timer and proceeds straight to the
// reorder-start check; by default the delay keeps native scrolling
// possible.
type BeforeWaitEvent struct{}

// BeforeReorderEvent fires before the session enters reordering.
// Canceling it keeps the session out of the reorder state.
type BeforeReorderEvent struct{}

// BeforeSwipeEvent fires before the session enters swiping, with
// the directions inferred from the accumulated motion. Canceling
// it returns the session to idle.
type BeforeSwipeEvent struct {
	DirectionX Direction
	DirectionY Direction
}

// AnimateSwipeEvent fires on every move while swiping. Canceling
// it suppresses the live horizontal visual offset for this frame.
type AnimateSwipeEvent struct {
	// X is the horizontal displacement since session start.
	X float32
	// OriginalIndex is the subject's pre-session 1-based position
	// among the container's element children.
	OriginalIndex int
}

// CancelSwipeEvent reports a swipe that degenerated into a scroll
// or was released unconfirmed. Informational.
type CancelSwipeEvent struct{}

// SwipeEvent reports a confirmed swipe. Canceling it treats the
// swipe as unsuccessful: the item snaps back instead of being
// discarded.
type SwipeEvent struct {
	Direction     Direction
	OriginalIndex int
}

// AfterSwipeEvent fires once the confirmed swipe-away animation
// has run. Canceling it animates the item back to its original
// position after the fact.
type AfterSwipeEvent struct{}

// TapEvent reports a press released without classified motion. Its
// cancellation decides whether a native click may proceed.
type TapEvent struct{}

// ReorderEvent reports the drop of a reorder drag. Informational:
// the consumer performs the actual move.
type ReorderEvent struct {
	// SpliceIndex is the zero-based insertion position among the
	// sibling items, excluding the subject itself.
	SpliceIndex int
	// OriginalIndex is the subject's pre-session 1-based position.
	OriginalIndex int
	// InsertBefore is the sibling the subject lands in front of,
	// or nil for the end of the list.
	InsertBefore list.Node
}

func (BeforeWaitEvent) ImplementsEvent()    {}
func (BeforeReorderEvent) ImplementsEvent() {}
func (BeforeSwipeEvent) ImplementsEvent()   {}
func (AnimateSwipeEvent) ImplementsEvent()  {}
func (CancelSwipeEvent) ImplementsEvent()   {}
func (SwipeEvent) ImplementsEvent()         {}
func (AfterSwipeEvent) ImplementsEvent()    {}
func (TapEvent) ImplementsEvent()           {}
func (ReorderEvent) ImplementsEvent()       {}

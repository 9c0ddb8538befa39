// SPDX-License-Identifier: Unlicense OR MIT

/*
Package list abstracts the host container a gesture session
operates on: a tree of nodes whose direct children are the items
being tapped, swiped and reordered.

The package resolves raw input targets to items, snapshots sibling
layout for reorder sessions and computes insertion indices. It
never mutates the child order itself; the consuming application
performs the actual move in response to a reorder notification.
*/
package list

import (
	"time"

	"slipkit.org/f32"
)

// Node is a single element of the host tree. Implementations must
// be comparable by identity (in practice, pointers): the resolver
// and the placement engine compare Nodes with ==.
//
// Bounds and transforms are in the viewport coordinate space of
// the host, with the Y axis extending down.
type Node interface {
	// Parent returns the parent node, or nil for the root.
	Parent() Node
	// Children returns the element children in document order.
	Children() []Node
	// Matches reports whether the node matches a host selector.
	// The error reports a malformed selector.
	Matches(selector string) (bool, error)
	// Bounds returns the node's layout rectangle, ignoring any
	// gesture-driven transform.
	Bounds() f32.Rectangle
	// BaseTransform returns the node's visual offset prior to any
	// gesture-driven adjustment.
	BaseTransform() f32.Point
	// SetTransform moves the node to the visual offset immediately.
	SetTransform(offset f32.Point)
	// AnimateTransform moves the node to the visual offset over the
	// given duration. The animation is fire-and-forget; the host
	// owns easing and timing fidelity.
	AnimateTransform(offset f32.Point, d time.Duration)
	// RestoreTransform returns the node to its pre-session visual
	// state, undoing SetTransform and AnimateTransform.
	RestoreTransform()
}

// Scroller is implemented by nodes that can scroll their content
// vertically. Hosts implement it only on nodes whose overflow is
// not always-visible.
type Scroller interface {
	Node
	// ScrollOffset returns the current scroll offset.
	ScrollOffset() float32
	// SetScrollOffset scrolls the content. Values are clamped by
	// the caller; hosts may clamp again.
	SetScrollOffset(offset float32)
	// ScrollExtent returns the total content height.
	ScrollExtent() float32
	// VisibleRect returns the visible area in viewport
	// coordinates, already clamped to the viewport.
	VisibleRect() f32.Rectangle
}

// Decoration identifies a visual state toggled on host nodes
// during a gesture session.
type Decoration uint8

const (
	// DecorationSwiping marks the container while a horizontal
	// swipe is in progress.
	DecorationSwiping Decoration = iota
	// DecorationElevated raises the subject above its siblings
	// during a reorder drag.
	DecorationElevated
	// DecorationNoSelect disables text selection on the subject
	// during a reorder drag.
	DecorationNoSelect
)

// Decorator is implemented by hosts that reflect gesture state in
// their styling. Nodes that do not implement it are left alone.
type Decorator interface {
	SetDecoration(d Decoration, on bool)
}

func (d Decoration) String() string {
	switch d {
	case DecorationSwiping:
		return "Swiping"
	case DecorationElevated:
		return "Elevated"
	case DecorationNoSelect:
		return "NoSelect"
	default:
		panic("unknown Decoration")
	}
}

// SetDecoration toggles d on n if n implements Decorator.
func SetDecoration(n Node, d Decoration, on bool) {
	if dec, ok := n.(Decorator); ok {
		dec.SetDecoration(d, on)
	}
}

// IndexOf returns the 1-based position of item among the element
// children of container, or 0 if item is not a direct child.
func IndexOf(container, item Node) int {
	for i, c := range container.Children() {
		if c == item {
			return i + 1
		}
	}
	return 0
}

// Hit returns the deepest node at position p, or nil if p is
// outside root. Later children are considered topmost, so they are
// tested first.
func Hit(root Node, p f32.Point) Node {
	if !root.Bounds().Contains(p) {
		return nil
	}
	children := root.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if n := Hit(children[i], p); n != nil {
			return n
		}
	}
	return root
}

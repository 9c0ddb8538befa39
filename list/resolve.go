// SPDX-License-Identifier: Unlicense OR MIT

package list

import "slipkit.org/f32"

// Target is the resolved subject of a gesture session. It is
// created on pointer press and discarded when the session returns
// to idle.
type Target struct {
	// Input is the node the raw input landed on.
	Input Node
	// Item is the direct child of the container that contains
	// Input.
	Item Node
	// Scroll is the nearest scrollable ancestor of Item, or the
	// resolver's Root fallback. It may be nil if neither exists.
	Scroll Scroller
	// ScrollOffset and ScrollExtent are Scroll's offset and total
	// content height at session start. Displacement compensation
	// and auto-scroll clamping are computed against them.
	ScrollOffset float32
	ScrollExtent float32
	// Base is Item's visual offset at session start.
	Base f32.Point
	// Height is Item's height at session start.
	Height float32
}

// Resolver finds gesture targets among the children of Container.
type Resolver struct {
	Container Node
	// Root is the scroll fallback used when no ancestor of an item
	// scrolls, typically the document root. May be nil for hosts
	// without scrolling.
	Root Scroller
}

// Resolve walks up from the raw input node to the direct child of
// the container and captures the layout state the session needs.
// It reports false if raw is not inside any item; the session must
// then return to idle.
func (r Resolver) Resolve(raw Node) (Target, bool) {
	item := raw
	for item != nil && item.Parent() != r.Container {
		item = item.Parent()
	}
	if item == nil {
		return Target{}, false
	}
	t := Target{
		Input:  raw,
		Item:   item,
		Scroll: r.scrollAncestor(item),
		Base:   item.BaseTransform(),
		Height: item.Bounds().Dy(),
	}
	if t.Scroll != nil {
		t.ScrollOffset = t.Scroll.ScrollOffset()
		t.ScrollExtent = t.Scroll.ScrollExtent()
	}
	return t, true
}

// scrollAncestor returns the nearest ancestor of n whose content
// exceeds its visible extent, or the Root fallback.
func (r Resolver) scrollAncestor(n Node) Scroller {
	for a := n.Parent(); a != nil; a = a.Parent() {
		if s, ok := a.(Scroller); ok && s.ScrollExtent() > s.VisibleRect().Dy() {
			return s
		}
	}
	return r.Root
}

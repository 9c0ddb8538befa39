// SPDX-License-Identifier: Unlicense OR MIT

package list

import (
	"errors"
	"fmt"

	"slipkit.org/f32"
)

// ErrInvalidIgnoreSelector reports an ignored-elements selector
// that the host failed to match. The underlying parse error is not
// actionable by the caller and is wrapped, not exposed as-is.
var ErrInvalidIgnoreSelector = errors.New("list: invalid ignore selector")

// Sibling is the layout snapshot of one non-subject item at
// reorder start. Snapshots are immutable during the session;
// stable layout is a documented precondition, not enforced.
type Sibling struct {
	Node Node
	// Base is the sibling's visual offset at reorder start.
	Base f32.Point
	// Distance is the signed vertical displacement of the subject
	// at which the drag crosses this sibling: the sibling's bottom
	// edge relative to the subject's center for siblings above
	// (negative), its top edge for siblings below (positive).
	// Distances are monotonically ordered in document order.
	Distance float32
}

// Siblings builds the snapshot of every element child of container
// except subject. Children matching any of the ignored selectors
// are excluded from placement; when ignored is empty all children
// participate.
func Siblings(container, subject Node, ignored []string) ([]Sibling, error) {
	b := subject.Bounds()
	center := b.Min.Y + b.Dy()/2
	var sibs []Sibling
	above := true
	for _, c := range container.Children() {
		if c == subject {
			above = false
			continue
		}
		skip, err := ignoredMatch(c, ignored)
		if err != nil {
			return nil, err
		}
		if skip {
			continue
		}
		cb := c.Bounds()
		dist := cb.Min.Y - center
		if above {
			dist = cb.Max.Y - center
		}
		sibs = append(sibs, Sibling{
			Node:     c,
			Base:     c.BaseTransform(),
			Distance: dist,
		})
	}
	return sibs, nil
}

func ignoredMatch(n Node, ignored []string) (bool, error) {
	for _, sel := range ignored {
		ok, err := n.Matches(sel)
		if err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidIgnoreSelector, sel)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Place computes the insertion point for a reorder drag of dy
// pixels against the snapshot. The splice index is the zero-based
// insertion position among the snapshot, excluding the subject
// itself; before is the node the subject lands in front of, or nil
// for the end of the list.
//
// The scan is linear; distances are monotonic by construction, so
// a binary search would also do, but visible lists are short.
func Place(sibs []Sibling, dy float32) (splice int, before Node) {
	if dy < 0 {
		// Dragged upward: insert before the first sibling not yet
		// crossed.
		splice = len(sibs)
		for i, s := range sibs {
			if s.Distance > dy {
				splice = i
				break
			}
		}
	} else {
		// Dragged downward: insert after the last crossed sibling.
		for i := len(sibs) - 1; i >= 0; i-- {
			if sibs[i].Distance < dy {
				splice = i + 1
				break
			}
		}
	}
	if splice < len(sibs) {
		before = sibs[splice].Node
	}
	return splice, before
}

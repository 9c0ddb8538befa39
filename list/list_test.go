// SPDX-License-Identifier: Unlicense OR MIT

package list

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"slipkit.org/f32"
)

type fakeNode struct {
	parent   Node
	children []*fakeNode
	bounds   f32.Rectangle
	base     f32.Point
	class    string

	offset f32.Point
}

func (n *fakeNode) Parent() Node { return n.parent }

func (n *fakeNode) Children() []Node {
	kids := make([]Node, len(n.children))
	for i, c := range n.children {
		kids[i] = c
	}
	return kids
}

func (n *fakeNode) Matches(sel string) (bool, error) {
	if !strings.HasPrefix(sel, ".") {
		return false, fmt.Errorf("bad selector %q", sel)
	}
	return n.class != "" && sel == "."+n.class, nil
}

func (n *fakeNode) Bounds() f32.Rectangle    { return n.bounds }
func (n *fakeNode) BaseTransform() f32.Point { return n.base }
func (n *fakeNode) SetTransform(p f32.Point) { n.offset = p }
func (n *fakeNode) RestoreTransform()        { n.offset = n.base }
func (n *fakeNode) AnimateTransform(p f32.Point, _ time.Duration) {
	n.offset = p
}

type fakeScroller struct {
	fakeNode
	scroll  float32
	extent  float32
	visible f32.Rectangle
}

func (s *fakeScroller) ScrollOffset() float32      { return s.scroll }
func (s *fakeScroller) SetScrollOffset(v float32)  { s.scroll = v }
func (s *fakeScroller) ScrollExtent() float32      { return s.extent }
func (s *fakeScroller) VisibleRect() f32.Rectangle { return s.visible }

func rect(x0, y0, x1, y1 float32) f32.Rectangle {
	return f32.Rectangle{Min: f32.Point{X: x0, Y: y0}, Max: f32.Point{X: x1, Y: y1}}
}

// newRows builds a container of n rows, each rowH tall.
func newRows(n int, rowH float32) (*fakeNode, []*fakeNode) {
	container := &fakeNode{bounds: rect(0, 0, 300, float32(n)*rowH)}
	rows := make([]*fakeNode, n)
	for i := range rows {
		rows[i] = &fakeNode{
			parent: container,
			bounds: rect(0, float32(i)*rowH, 300, float32(i+1)*rowH),
		}
		container.children = append(container.children, rows[i])
	}
	return container, rows
}

func TestSiblings(t *testing.T) {
	container, rows := newRows(5, 40)
	sibs, err := Siblings(container, rows[2], nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{-60, -20, 20, 60}
	if len(sibs) != len(want) {
		t.Fatalf("got %d siblings, want %d", len(sibs), len(want))
	}
	for i, s := range sibs {
		if s.Distance != want[i] {
			t.Errorf("sibling %d: distance %g, want %g", i, s.Distance, want[i])
		}
		if s.Node == Node(rows[2]) {
			t.Errorf("sibling %d: snapshot contains the subject", i)
		}
	}
}

func TestSiblingsIgnored(t *testing.T) {
	container, rows := newRows(5, 40)
	rows[0].class = "pinned"
	sibs, err := Siblings(container, rows[2], []string{".pinned"})
	if err != nil {
		t.Fatal(err)
	}
	if len(sibs) != 3 {
		t.Fatalf("got %d siblings, want 3", len(sibs))
	}
	if sibs[0].Node != Node(rows[1]) {
		t.Error("pinned row not excluded from snapshot")
	}
}

func TestSiblingsInvalidSelector(t *testing.T) {
	container, rows := newRows(3, 40)
	_, err := Siblings(container, rows[1], []string{"pinned"})
	if !errors.Is(err, ErrInvalidIgnoreSelector) {
		t.Fatalf("got %v, want ErrInvalidIgnoreSelector", err)
	}
}

func TestPlace(t *testing.T) {
	nodes := make([]*fakeNode, 4)
	sibs := make([]Sibling, 4)
	for i, d := range []float32{-50, -10, 30, 70} {
		nodes[i] = &fakeNode{}
		sibs[i] = Sibling{Node: nodes[i], Distance: d}
	}
	for _, tc := range []struct {
		dy     float32
		splice int
		before Node
	}{
		{dy: 20, splice: 2, before: nodes[2]},
		{dy: -40, splice: 1, before: nodes[1]},
		{dy: -60, splice: 0, before: nodes[0]},
		{dy: 100, splice: 4, before: nil},
		{dy: 0, splice: 2, before: nodes[2]},
	} {
		splice, before := Place(sibs, tc.dy)
		if splice != tc.splice || before != tc.before {
			t.Errorf("Place(dy=%g): got %d/%v, want %d/%v",
				tc.dy, splice, before, tc.splice, tc.before)
		}
	}
}

func TestPlaceEmpty(t *testing.T) {
	for _, dy := range []float32{-30, 0, 30} {
		if splice, before := Place(nil, dy); splice != 0 || before != nil {
			t.Errorf("Place(nil, %g): got %d/%v, want 0/nil", dy, splice, before)
		}
	}
}

func TestIndexOf(t *testing.T) {
	container, rows := newRows(3, 40)
	if got := IndexOf(container, rows[1]); got != 2 {
		t.Errorf("IndexOf: got %d, want 2", got)
	}
	if got := IndexOf(container, &fakeNode{}); got != 0 {
		t.Errorf("IndexOf of non-child: got %d, want 0", got)
	}
}

func TestHit(t *testing.T) {
	container, rows := newRows(3, 40)
	inner := &fakeNode{parent: rows[1], bounds: rect(10, 50, 50, 70)}
	rows[1].children = append(rows[1].children, inner)

	if got := Hit(container, f32.Point{X: 20, Y: 60}); got != Node(inner) {
		t.Errorf("hit inner: got %v", got)
	}
	if got := Hit(container, f32.Point{X: 200, Y: 60}); got != Node(rows[1]) {
		t.Errorf("hit row: got %v", got)
	}
	if got := Hit(container, f32.Point{X: 200, Y: 500}); got != nil {
		t.Errorf("hit outside: got %v, want nil", got)
	}
}

func TestHitTopmostLast(t *testing.T) {
	container, rows := newRows(2, 40)
	// Overlap the rows; the later child is topmost.
	rows[0].bounds = rect(0, 0, 300, 80)
	rows[1].bounds = rect(0, 0, 300, 80)
	if got := Hit(container, f32.Point{X: 10, Y: 10}); got != Node(rows[1]) {
		t.Errorf("got %v, want the later child", got)
	}
}

func TestResolve(t *testing.T) {
	scroller := &fakeScroller{
		fakeNode: fakeNode{bounds: rect(0, 0, 300, 200)},
		scroll:   60,
		extent:   400,
		visible:  rect(0, 0, 300, 200),
	}
	container := &fakeNode{parent: scroller, bounds: rect(0, 0, 300, 120)}
	scroller.children = append(scroller.children, container)
	row := &fakeNode{parent: container, bounds: rect(0, 40, 300, 80), base: f32.Point{X: 5}}
	container.children = append(container.children, row)
	inner := &fakeNode{parent: row, bounds: rect(0, 50, 40, 60)}
	row.children = append(row.children, inner)

	r := Resolver{Container: container}
	tg, ok := r.Resolve(inner)
	if !ok {
		t.Fatal("resolution failed")
	}
	if tg.Item != Node(row) || tg.Input != Node(inner) {
		t.Errorf("wrong item/input: %v/%v", tg.Item, tg.Input)
	}
	if tg.Scroll != Scroller(scroller) {
		t.Errorf("wrong scroll ancestor: %v", tg.Scroll)
	}
	if tg.ScrollOffset != 60 || tg.ScrollExtent != 400 {
		t.Errorf("scroll snapshot: %g/%g", tg.ScrollOffset, tg.ScrollExtent)
	}
	if tg.Height != 40 || tg.Base.X != 5 {
		t.Errorf("item snapshot: height %g, base %v", tg.Height, tg.Base)
	}
}

func TestResolveOutsideItem(t *testing.T) {
	container, _ := newRows(2, 40)
	if _, ok := (Resolver{Container: container}).Resolve(container); ok {
		t.Error("resolving the container itself should fail")
	}
	if _, ok := (Resolver{Container: container}).Resolve(&fakeNode{}); ok {
		t.Error("resolving a detached node should fail")
	}
}

func TestResolveScrollFallback(t *testing.T) {
	// An ancestor whose content fits is not a scroll ancestor.
	still := &fakeScroller{
		fakeNode: fakeNode{bounds: rect(0, 0, 300, 200)},
		extent:   200,
		visible:  rect(0, 0, 300, 200),
	}
	container := &fakeNode{parent: still, bounds: rect(0, 0, 300, 120)}
	still.children = append(still.children, container)
	row := &fakeNode{parent: container, bounds: rect(0, 0, 300, 40)}
	container.children = append(container.children, row)

	root := &fakeScroller{extent: 1000, visible: rect(0, 0, 300, 200)}
	tg, ok := (Resolver{Container: container, Root: root}).Resolve(row)
	if !ok {
		t.Fatal("resolution failed")
	}
	if tg.Scroll != Scroller(root) {
		t.Errorf("got %v, want the root fallback", tg.Scroll)
	}
}

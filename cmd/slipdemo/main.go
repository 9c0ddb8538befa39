// SPDX-License-Identifier: Unlicense OR MIT

// Command slipdemo is a terminal list driven by the gesture
// engine: drag a row vertically to reorder, drag it sideways to
// swipe it away, click for a tap. It doubles as a reference
// platform adapter, translating tcell mouse events into pointer
// events and implementing the host tree over an in-memory row
// model.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"slipkit.org/f32"
	"slipkit.org/gesture"
	"slipkit.org/io/event"
	"slipkit.org/io/pointer"
	"slipkit.org/list"
)

// Terminal cells are too coarse for pixel thresholds, so the
// adapter maps each cell to a nominal pixel box.
const (
	cellW = 8
	cellH = 16
)

// row is one list item.
type row struct {
	parent *container
	label  string
	pinned bool
	offset f32.Point
	moved  bool
	strike bool
}

func (r *row) Parent() list.Node        { return r.parent }
func (r *row) Children() []list.Node    { return nil }
func (r *row) BaseTransform() f32.Point { return f32.Point{} }

func (r *row) Matches(selector string) (bool, error) {
	if len(selector) == 0 || selector[0] != '.' {
		return false, fmt.Errorf("malformed selector %q", selector)
	}
	return selector == ".pinned" && r.pinned, nil
}

func (r *row) Bounds() f32.Rectangle {
	i := r.parent.indexOf(r)
	top := float32(i*cellH) - r.parent.scroll
	return f32.Rectangle{
		Min: f32.Point{X: 0, Y: top},
		Max: f32.Point{X: float32(r.parent.width * cellW), Y: top + cellH},
	}
}

func (r *row) SetTransform(offset f32.Point) {
	r.offset = offset
	r.moved = true
}

func (r *row) AnimateTransform(offset f32.Point, _ time.Duration) {
	// The terminal has no transitions; jump to the final offset.
	r.SetTransform(offset)
}

func (r *row) RestoreTransform() {
	r.offset = f32.Point{}
	r.moved = false
}

func (r *row) SetDecoration(d list.Decoration, on bool) {
	if d == list.DecorationElevated {
		r.strike = on
	}
}

// container is the list container and, for simplicity, also the
// scroll ancestor of its rows.
type container struct {
	rows    []*row
	scroll  float32
	width   int
	height  int
	swiping bool
}

func (c *container) Parent() list.Node        { return nil }
func (c *container) BaseTransform() f32.Point { return f32.Point{} }
func (c *container) SetTransform(f32.Point)   {}
func (c *container) RestoreTransform()        {}

func (c *container) AnimateTransform(f32.Point, time.Duration) {}

func (c *container) Matches(string) (bool, error) { return false, nil }

func (c *container) Children() []list.Node {
	children := make([]list.Node, len(c.rows))
	for i, r := range c.rows {
		children[i] = r
	}
	return children
}

func (c *container) Bounds() f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Point{X: 0, Y: -c.scroll},
		Max: f32.Point{
			X: float32(c.width * cellW),
			Y: float32(len(c.rows)*cellH) - c.scroll,
		},
	}
}

func (c *container) ScrollOffset() float32 { return c.scroll }

func (c *container) SetScrollOffset(offset float32) { c.scroll = offset }

func (c *container) ScrollExtent() float32 { return float32(len(c.rows) * cellH) }

func (c *container) VisibleRect() f32.Rectangle {
	return f32.Rectangle{
		Max: f32.Point{X: float32(c.width * cellW), Y: float32(c.height * cellH)},
	}
}

func (c *container) SetDecoration(d list.Decoration, on bool) {
	if d == list.DecorationSwiping {
		c.swiping = on
	}
}

func (c *container) indexOf(r *row) int {
	for i, o := range c.rows {
		if o == r {
			return i
		}
	}
	return -1
}

type demo struct {
	screen  tcell.Screen
	cont    *container
	slip    *gesture.Slip
	start   time.Time
	status  string
	pressed bool
}

func newDemo() (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cont := &container{}
	cont.width, cont.height = screen.Size()
	labels := []string{
		"inbox", "drafts", "starred", "archive", "spam",
		"trash", "work", "travel", "receipts", "later",
	}
	for i, l := range labels {
		cont.rows = append(cont.rows, &row{parent: cont, label: l, pinned: i == 0})
	}

	s, err := gesture.New(cont, cont, gesture.Config{
		IgnoredElements: []string{".pinned"},
	})
	if err != nil {
		return nil, err
	}

	d := &demo{screen: screen, cont: cont, slip: s, start: time.Now()}
	s.Events().Handle(cont, d.onGesture)
	return d, nil
}

// onGesture applies gesture outcomes to the row model. It is
// registered on the container, so it observes events bubbling from
// every row.
func (d *demo) onGesture(e event.Event) bool {
	switch e := e.(type) {
	case gesture.TapEvent:
		d.status = "tap"
	case gesture.SwipeEvent:
		v := d.slip.Velocity()
		d.status = fmt.Sprintf("swipe %v #%d at %.1f px/ms", e.Direction, e.OriginalIndex, v.X)
		d.removeRow(e.OriginalIndex)
	case gesture.ReorderEvent:
		d.status = fmt.Sprintf("reorder #%d -> %d", e.OriginalIndex, e.SpliceIndex)
		d.moveRow(e.OriginalIndex, e.InsertBefore)
	case gesture.CancelSwipeEvent:
		d.status = "swipe canceled"
	}
	return true
}

func (d *demo) removeRow(originalIndex int) {
	i := originalIndex - 1
	if i < 0 || i >= len(d.cont.rows) {
		return
	}
	d.cont.rows = append(d.cont.rows[:i], d.cont.rows[i+1:]...)
}

func (d *demo) moveRow(originalIndex int, before list.Node) {
	i := originalIndex - 1
	if i < 0 || i >= len(d.cont.rows) {
		return
	}
	r := d.cont.rows[i]
	rows := append(d.cont.rows[:i:i], d.cont.rows[i+1:]...)
	at := len(rows)
	for j, o := range rows {
		if list.Node(o) == before {
			at = j
			break
		}
	}
	rows = append(rows[:at], append([]*row{r}, rows[at:]...)...)
	d.cont.rows = rows
	for _, o := range d.cont.rows {
		o.RestoreTransform()
	}
}

func (d *demo) now() time.Duration {
	return time.Since(d.start)
}

// handleMouse synthesizes Press/Move/Release from the tcell
// button state, mapping cell coordinates to the center of their
// nominal pixel box.
func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := f32.Point{
		X: float32(x*cellW + cellW/2),
		Y: float32(y*cellH + cellH/2),
	}
	down := ev.Buttons()&tcell.Button1 != 0
	e := pointer.Event{
		Source:   pointer.Mouse,
		Time:     d.now(),
		Position: pos,
	}
	switch {
	case down && !d.pressed:
		e.Kind = pointer.Press
	case down:
		e.Kind = pointer.Move
	case d.pressed:
		e.Kind = pointer.Release
	default:
		return
	}
	d.pressed = down
	if _, err := d.slip.Deliver(e); err != nil {
		d.status = err.Error()
	}
}

func (d *demo) draw() {
	d.screen.Clear()
	for _, r := range d.cont.rows {
		b := r.Bounds().Add(r.offset)
		cx := int(b.Min.X) / cellW
		cy := int(b.Min.Y+cellH/2) / cellH
		if cy < 0 || cy >= d.cont.height {
			continue
		}
		style := tcell.StyleDefault
		if r.pinned {
			style = style.Dim(true)
		}
		if r.strike {
			style = style.Reverse(true)
		}
		for i, ch := range r.label {
			d.screen.SetContent(cx+1+i, cy, ch, nil, style)
		}
	}
	status := d.status
	if d.cont.swiping {
		status += " [swiping]"
	}
	for i, ch := range status {
		d.screen.SetContent(i, d.cont.height-1, ch, nil, tcell.StyleDefault.Dim(true))
	}
	d.screen.Show()
}

func (d *demo) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- d.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventMouse:
				d.handleMouse(ev)
			case *tcell.EventResize:
				d.cont.width, d.cont.height = d.screen.Size()
			}
		case <-ticker.C:
			// Drive the session's hold and grace timers.
			if _, ok := d.slip.Deadline(); ok {
				if err := d.slip.Tick(d.now()); err != nil {
					d.status = err.Error()
				}
			}
		}
		d.draw()
	}
}

func main() {
	d, err := newDemo()
	if err != nil {
		fmt.Fprintln(os.Stderr, "slipdemo:", err)
		os.Exit(1)
	}
	defer d.screen.Fini()
	d.run()
}

// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"slipkit.org/f32"
	"slipkit.org/list"
)

// reorderingState is the vertical position-swap gesture. It holds
// the immutable sibling snapshot taken at reorder start; layout is
// assumed stable for the duration of the session.
type reorderingState struct {
	s             *Slip
	height        float32
	originalIndex int
	sibs          []list.Sibling
	grace         *timer
}

func (s *Slip) enterReordering() error {
	t := &s.target
	sibs, err := list.Siblings(s.container, t.Item, s.cfg.IgnoredElements)
	if err != nil {
		s.enterIdle()
		return err
	}
	st := &reorderingState{
		s:             s,
		height:        t.Item.Bounds().Dy(),
		originalIndex: list.IndexOf(s.container, t.Item),
		sibs:          sibs,
	}
	s.become(st)
	list.SetDecoration(t.Item, list.DecorationElevated, true)
	list.SetDecoration(t.Item, list.DecorationNoSelect, true)
	// Establish the initial visual state.
	st.onMove()
	return nil
}

func (st *reorderingState) onMove() bool {
	s := st.s
	st.autoScroll()
	// The pointer is here, so it is not stuck outside the window.
	st.grace.stop()
	st.grace = nil
	m := s.track.total(s.scrollDelta())
	s.target.Item.SetTransform(s.target.Base.Add(f32.Point{Y: m.DY}))
	for _, sib := range st.sibs {
		var off float32
		switch {
		case sib.Distance < 0 && m.DY < sib.Distance:
			// Crossed while dragging up; the sibling makes room by
			// shifting down.
			off = st.height
		case sib.Distance > 0 && m.DY > sib.Distance:
			off = -st.height
		}
		sib.Node.SetTransform(sib.Base.Add(f32.Point{Y: off}))
	}
	return true
}

// autoScroll nudges the scroll ancestor when the dragged item
// approaches the edge of its visible area. The offset is clamped
// against the content extent captured at session start.
func (st *reorderingState) autoScroll() {
	s := st.s
	sc := s.target.Scroll
	if sc == nil {
		return
	}
	trigger := s.px(scrollTrigger)
	m := s.track.total(s.scrollDelta())
	item := s.target.Item.Bounds().Add(f32.Point{Y: m.DY})
	vis := sc.VisibleRect()
	bottomOff := vis.Max.Y - item.Max.Y
	topOff := item.Min.Y - vis.Min.Y
	var off float32
	switch {
	case bottomOff < trigger:
		off = trigger - bottomOff
		if off > trigger {
			off = trigger
		}
	case topOff < trigger:
		off = topOff - trigger
		if off < -trigger {
			off = -trigger
		}
	}
	if off == 0 {
		return
	}
	maxScroll := s.target.ScrollExtent - vis.Dy()
	if maxScroll < 0 {
		maxScroll = 0
	}
	next := sc.ScrollOffset() + off
	if next < 0 {
		next = 0
	}
	if next > maxScroll {
		next = maxScroll
	}
	sc.SetScrollOffset(next)
}

func (st *reorderingState) onEnd() bool {
	s := st.s
	m := s.track.total(s.scrollDelta())
	splice, before := list.Place(st.sibs, m.DY)
	// The reorder event is informational; the listener repositions
	// the list itself, so its veto is not re-checked here.
	s.dispatch(ReorderEvent{
		SpliceIndex:   splice,
		OriginalIndex: st.originalIndex,
		InsertBefore:  before,
	})
	s.enterIdle()
	return true
}

// onLeave arms the grace timer: a pointer that stays outside the
// tracked window too long would otherwise leave the item stuck
// mid-drag.
func (st *reorderingState) onLeave() {
	s := st.s
	st.grace.stop()
	st.grace = s.after(s.cfg.GraceDuration, func() error {
		s.Cancel()
		return nil
	})
}

func (st *reorderingState) leave() {
	s := st.s
	st.grace.stop()
	item := s.target.Item
	list.SetDecoration(item, list.DecorationElevated, false)
	list.SetDecoration(item, list.DecorationNoSelect, false)
	item.AnimateTransform(s.target.Base, s.cfg.SnapBackDuration)
	// Siblings snap back without animation; their final position
	// is whatever the listener arranges.
	for _, sib := range st.sibs {
		sib.Node.SetTransform(sib.Base)
	}
}

func (st *reorderingState) id() State { return StateReordering }

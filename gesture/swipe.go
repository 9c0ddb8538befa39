// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"time"

	"slipkit.org/f32"
	"slipkit.org/list"
)

// swipingState is the horizontal removal gesture.
type swipingState struct {
	s             *Slip
	height        float32
	width         float32
	originalIndex int
	success       bool
	direction     Direction
}

func (s *Slip) enterSwiping() {
	st := &swipingState{
		s:             s,
		height:        s.target.Height,
		width:         s.container.Bounds().Dx(),
		originalIndex: list.IndexOf(s.container, s.target.Item),
	}
	s.become(st)
	list.SetDecoration(s.container, list.DecorationSwiping, true)
}

func (st *swipingState) onMove() bool {
	s := st.s
	m := s.track.total(s.scrollDelta())
	drift := m.DY
	if drift < 0 {
		drift = -drift
	}
	if drift > st.height+s.px(swipeDriftSlop) {
		// The gesture degenerated into a vertical scroll.
		s.dispatch(CancelSwipeEvent{})
		s.enterIdle()
		return false
	}
	if s.dispatch(AnimateSwipeEvent{X: m.DX, OriginalIndex: st.originalIndex}) {
		s.target.Item.SetTransform(s.target.Base.Add(f32.Point{X: m.DX}))
	}
	return true
}

func (st *swipingState) onEnd() bool {
	s := st.s
	a := s.track.absolute(s.scrollDelta())
	var velocity float32
	if a.DT > 0 {
		velocity = a.DX / (float32(a.DT) / float32(time.Millisecond))
	}
	var percent float32
	if st.width > 0 {
		percent = a.DX / st.width * 100
	}
	swiped := velocity > s.cfg.MinimumSwipeVelocity && a.DT > s.cfg.MinimumSwipeTime ||
		s.cfg.KeepSwipingPercent > 0 && percent > s.cfg.KeepSwipingPercent
	if swiped {
		if s.dispatch(SwipeEvent{Direction: a.DirX, OriginalIndex: st.originalIndex}) {
			st.success = true
			st.direction = a.DirX
		}
		// A vetoed swipe leaves success unset and falls through to
		// the ordinary snap-back on leave.
	} else {
		s.dispatch(CancelSwipeEvent{})
	}
	s.enterIdle()
	return !swiped
}

// onLeave treats a pointer leaving the tracked region while
// swiping as an end of gesture.
func (st *swipingState) onLeave() {
	st.onEnd()
}

func (st *swipingState) leave() {
	s := st.s
	item := s.target.Item
	base := s.target.Base
	if !st.success {
		item.AnimateTransform(base, s.cfg.SnapBackDuration)
		list.SetDecoration(s.container, list.DecorationSwiping, false)
		return
	}
	off := st.width
	if st.direction == Left {
		off = -off
	}
	item.AnimateTransform(base.Add(f32.Point{X: off}), s.cfg.SwipeOutDuration)
	s.after(s.cfg.SwipeOutDuration, func() error {
		if s.dispatchTo(item, AfterSwipeEvent{}) {
			list.SetDecoration(s.container, list.DecorationSwiping, false)
			return nil
		}
		// Post-hoc reversal: the item was already visually
		// discarded.
		item.AnimateTransform(base, s.cfg.SnapBackDuration)
		s.after(s.cfg.SnapBackDuration, func() error {
			list.SetDecoration(s.container, list.DecorationSwiping, false)
			return nil
		})
		return nil
	})
}

func (st *swipingState) id() State { return StateSwiping }

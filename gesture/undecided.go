// SPDX-License-Identifier: Unlicense OR MIT

package gesture

// undecidedState is the ambiguity window between pointer press and
// gesture classification.
type undecidedState struct {
	s      *Slip
	height float32
	hold   *timer
}

func (s *Slip) enterUndecided() error {
	st := &undecidedState{s: s, height: s.target.Height}
	s.become(st)
	// Clear any transition styling left over from a previous
	// session.
	s.target.Item.SetTransform(s.target.Base)
	if !s.dispatch(BeforeWaitEvent{}) {
		// The collaborator does not want the scroll-friendly
		// delay; check for reorder right away.
		if s.dispatch(BeforeReorderEvent{}) {
			return s.enterReordering()
		}
		return nil
	}
	st.hold = s.after(s.cfg.HoldDuration, st.holdExpired)
	return nil
}

// holdExpired begins a reorder if the pointer held still long
// enough and the platform can still suppress scrolling.
func (st *undecidedState) holdExpired() error {
	s := st.s
	m := s.track.absolute(s.scrollDelta())
	if m.DX >= s.px(holdSlopX) || m.DY >= s.px(holdSlopY) || !s.canPreventScroll() {
		return nil
	}
	if s.dispatch(BeforeReorderEvent{}) {
		return s.enterReordering()
	}
	return nil
}

func (st *undecidedState) onMove() bool {
	s := st.s
	m := s.track.absolute(s.scrollDelta())
	driftBound := s.px(swipeDriftFloor)
	if st.height > driftBound {
		driftBound = st.height
	}
	switch {
	case m.DX > s.px(swipeStartSlop) && m.DY < driftBound:
		if s.dispatch(BeforeSwipeEvent{DirectionX: m.DirX, DirectionY: m.DirY}) {
			s.enterSwiping()
			return true
		}
		s.enterIdle()
		return false
	case m.DY > s.px(scrollStartSlop):
		// A vertical scroll gesture; release control.
		s.enterIdle()
		return false
	case m.DX > m.DY*sidewaysBias:
		// Some platforms scroll sideways over-eagerly.
		return true
	}
	return false
}

func (st *undecidedState) onEnd() bool {
	allowed := st.s.dispatch(TapEvent{})
	st.s.enterIdle()
	return allowed
}

func (st *undecidedState) onLeave() {}

func (st *undecidedState) leave() {
	st.hold.stop()
}

func (st *undecidedState) id() State { return StateUndecided }

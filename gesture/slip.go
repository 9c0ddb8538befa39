// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"fmt"
	"time"

	"slipkit.org/f32"
	"slipkit.org/io/event"
	"slipkit.org/io/pointer"
	"slipkit.org/list"
	"slipkit.org/unit"
)

// Slip is a gesture session attached to a list container. At most
// one pointer is tracked at a time; a second simultaneous contact
// cancels the session.
//
// Slip is single-threaded and cooperative: the platform adapter
// delivers pointer events serially and drives pending timers
// through Tick. No method may be called re-entrantly from an event
// handler.
type Slip struct {
	container list.Node
	resolver  list.Resolver
	cfg       Config
	events    event.Dispatcher

	state   state
	target  list.Target
	track   motionTrack
	pointer pointer.ID

	now    time.Duration
	timers []*timer
}

// state is one of the four gesture states. Each variant holds its
// own state-local data and receives the session context
// explicitly; transitions replace the variant, invoking the
// outgoing variant's leave cleanup when the identity changes.
type state interface {
	id() State
	// onMove reports whether the move was consumed, that is
	// whether the host should suppress its default scrolling.
	onMove() bool
	// onEnd reports whether the default action (a native click)
	// is still allowed.
	onEnd() bool
	// onLeave reacts to the pointer leaving the tracked window
	// boundary.
	onLeave()
	// leave is the designated cancellation point for any timer
	// the state armed.
	leave()
}

// New constructs a session for the children of container. root is
// the scroll fallback used when no ancestor of an item scrolls; it
// may be nil for hosts without scrolling.
func New(container list.Node, root list.Scroller, cfg Config) (*Slip, error) {
	if container == nil {
		return nil, ErrNoContainer
	}
	cfg.setDefaults()
	s := &Slip{
		container: container,
		resolver:  list.Resolver{Container: container, Root: root},
		cfg:       cfg,
		state:     idleState{},
	}
	return s, nil
}

// Events returns the dispatcher lifecycle notifications are
// delivered through. Handlers registered on an item node, the
// container or any ancestor observe the session and may veto
// cancelable notifications.
func (s *Slip) Events() *event.Dispatcher {
	return &s.events
}

// State reports the current gesture state.
func (s *Slip) State() State {
	return s.state.id()
}

// AllowTextSelection reports whether the host may let text
// selection proceed. It is true only while idle.
func (s *Slip) AllowTextSelection() bool {
	return s.State() == StateIdle
}

// Velocity estimates the pointer speed of the active session in
// pixels per millisecond, computed over the recent sampling
// window. It is zero while idle.
func (s *Slip) Velocity() f32.Point {
	if s.State() == StateIdle {
		return f32.Point{}
	}
	return s.track.velocity()
}

// Cancel forces an immediate transition to idle from any state,
// running the state's leave cleanup so visuals always settle.
// Canceling an idle session is a no-op.
func (s *Slip) Cancel() {
	if s.State() != StateIdle {
		s.enterIdle()
	}
}

// Deliver feeds a pointer event to the session. It reports whether
// the event was consumed: the host should then suppress its
// default handling, scrolling for moves and click synthesis for
// releases. The error reports a failed reorder setup; the session
// is already back to idle when it is returned.
func (s *Slip) Deliver(e pointer.Event) (consumed bool, err error) {
	if err := s.advance(e.Time); err != nil {
		return false, err
	}
	switch e.Kind {
	case pointer.Press:
		return s.press(e)
	case pointer.Move:
		if !s.tracks(e) {
			return false, nil
		}
		s.track.update(sample{pos: e.Position, time: e.Time})
		return s.state.onMove(), nil
	case pointer.Release:
		if !s.tracks(e) {
			return false, nil
		}
		s.track.update(sample{pos: e.Position, time: e.Time})
		return !s.state.onEnd(), nil
	case pointer.Cancel:
		s.Cancel()
		return false, nil
	case pointer.Leave:
		if s.State() != StateIdle {
			s.state.onLeave()
		}
		return false, nil
	default:
		return false, nil
	}
}

func (s *Slip) press(e pointer.Event) (bool, error) {
	if s.State() != StateIdle {
		if e.PointerID != s.pointer {
			// A second simultaneous contact point. Cancel without
			// any gesture-outcome notification.
			s.Cancel()
			return false, nil
		}
		// A new press discards any session not yet idle.
		s.enterIdle()
	}
	raw := s.hit(e.Position)
	if raw == nil {
		return false, nil
	}
	t, ok := s.resolver.Resolve(raw)
	if !ok {
		return false, nil
	}
	s.target = t
	s.pointer = e.PointerID
	s.track.begin(sample{pos: e.Position, time: e.Time})
	return false, s.enterUndecided()
}

// tracks reports whether e belongs to the pointer of the active
// session.
func (s *Slip) tracks(e pointer.Event) bool {
	return s.State() != StateIdle && e.PointerID == s.pointer
}

func (s *Slip) hit(p f32.Point) list.Node {
	if s.cfg.HitTest != nil {
		return s.cfg.HitTest(p)
	}
	return list.Hit(s.container, p)
}

// become replaces the current state variant, invoking the outgoing
// variant's leave cleanup when the target identity differs.
// Re-entrant transitions during entry are honored: the latest
// entry's state prevails.
func (s *Slip) become(st state) {
	if cur := s.state; cur != nil && cur.id() != st.id() {
		cur.leave()
		logger().Debug("transition", "from", cur.id().String(), "to", st.id().String())
	}
	s.state = st
}

func (s *Slip) enterIdle() {
	s.become(idleState{})
	s.target = list.Target{}
}

// dispatch delivers e to the session's item node, bubbling to its
// ancestors. It reports whether no handler canceled the event.
func (s *Slip) dispatch(e event.Event) bool {
	return s.dispatchTo(s.target.Item, e)
}

func (s *Slip) dispatchTo(origin list.Node, e event.Event) bool {
	var path []event.Tag
	for n := origin; n != nil; n = n.Parent() {
		path = append(path, n)
	}
	allowed := s.events.Dispatch(e, path...)
	logger().Debug("dispatch", "event", fmt.Sprintf("%T", e), "allowed", allowed)
	return allowed
}

// scrollDelta is the scroll ancestor's displacement since session
// start, compensating drag displacement for auto-scroll.
func (s *Slip) scrollDelta() float32 {
	if s.target.Scroll == nil {
		return 0
	}
	return s.target.Scroll.ScrollOffset() - s.target.ScrollOffset
}

func (s *Slip) px(v unit.Value) float32 {
	return float32(s.cfg.Converter.Px(v))
}

func (s *Slip) canPreventScroll() bool {
	return s.cfg.PreventScroll == nil || s.cfg.PreventScroll()
}

// idleState holds no target and arms no timers.
type idleState struct{}

func (idleState) id() State    { return StateIdle }
func (idleState) onMove() bool { return false }
func (idleState) onEnd() bool  { return true }
func (idleState) onLeave()     {}
func (idleState) leave()       {}

// timer is a cancelable delayed callback on the session's
// cooperative clock.
type timer struct {
	at      time.Duration
	fn      func() error
	stopped bool
}

func (t *timer) stop() {
	if t != nil {
		t.stopped = true
	}
}

// after arms fn to run d after the session's current time. The
// returned timer may be stopped; a state's leave cleanup stops the
// timers it armed, while animation continuations outlive their
// state.
func (s *Slip) after(d time.Duration, fn func() error) *timer {
	t := &timer{at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Tick advances the session clock, running any timers that came
// due. Adapters call it when the Deadline passes without pointer
// input.
func (s *Slip) Tick(now time.Duration) error {
	return s.advance(now)
}

// Deadline returns the next pending timer deadline, if any. The
// adapter schedules a wakeup and calls Tick no earlier than it.
func (s *Slip) Deadline() (time.Duration, bool) {
	var next *timer
	for _, t := range s.timers {
		if t.stopped {
			continue
		}
		if next == nil || t.at < next.at {
			next = t
		}
	}
	if next == nil {
		return 0, false
	}
	return next.at, true
}

// advance runs due timers in deadline order. A timer callback may
// arm further timers or transition states; the clock is held at
// the firing deadline while its callback runs.
func (s *Slip) advance(now time.Duration) error {
	for {
		i := -1
		for j, t := range s.timers {
			if t.stopped {
				continue
			}
			if i == -1 || t.at < s.timers[i].at {
				i = j
			}
		}
		if i == -1 || s.timers[i].at > now {
			break
		}
		t := s.timers[i]
		s.timers = append(s.timers[:i], s.timers[i+1:]...)
		if t.at > s.now {
			s.now = t.at
		}
		if err := t.fn(); err != nil {
			if now > s.now {
				s.now = now
			}
			return err
		}
	}
	// Drop stopped timers.
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
	if now > s.now {
		s.now = now
	}
	return nil
}

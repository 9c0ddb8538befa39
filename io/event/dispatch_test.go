// SPDX-License-Identifier: Unlicense OR MIT

package event

import "testing"

type testEvent struct{}

func (testEvent) ImplementsEvent() {}

func TestDispatchOrder(t *testing.T) {
	var d Dispatcher
	inner, outer := new(int), new(int)
	var order []string
	d.Handle(inner, func(e Event) bool {
		order = append(order, "inner1")
		return true
	})
	d.Handle(inner, func(e Event) bool {
		order = append(order, "inner2")
		return true
	})
	d.Handle(outer, func(e Event) bool {
		order = append(order, "outer")
		return true
	})
	if !d.Dispatch(testEvent{}, inner, outer) {
		t.Error("uncanceled event reported as canceled")
	}
	want := []string{"inner1", "inner2", "outer"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestDispatchCancelContinues(t *testing.T) {
	var d Dispatcher
	inner, outer := new(int), new(int)
	reached := false
	d.Handle(inner, func(e Event) bool { return false })
	d.Handle(outer, func(e Event) bool {
		reached = true
		return true
	})
	if d.Dispatch(testEvent{}, inner, outer) {
		t.Error("canceled event reported as allowed")
	}
	// Cancellation vetoes the default action but never stops the
	// remaining handlers from observing the event.
	if !reached {
		t.Error("handler after the canceling one was skipped")
	}
}

func TestDispatchUnregistered(t *testing.T) {
	var d Dispatcher
	if !d.Dispatch(testEvent{}, new(int)) {
		t.Error("dispatch with no handlers must be allowed")
	}
}

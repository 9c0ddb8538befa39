// SPDX-License-Identifier: Unlicense OR MIT

package event

// Dispatcher delivers cancelable events to registered handlers.
//
// An event is dispatched along a path of tags, innermost first,
// mirroring event bubbling: every handler on every tag of the path
// is invoked, even after one of them cancels. The zero Dispatcher
// is ready to use.
type Dispatcher struct {
	handlers map[Tag][]Handler
}

// Handle registers h for events dispatched to tag. Multiple
// handlers may be registered on the same tag; they are invoked in
// registration order.
func (d *Dispatcher) Handle(tag Tag, h Handler) {
	if d.handlers == nil {
		d.handlers = make(map[Tag][]Handler)
	}
	d.handlers[tag] = append(d.handlers[tag], h)
}

// Dispatch delivers e to every handler registered on the tags of
// path, in path order. It reports whether the default action is
// still allowed, that is whether no handler canceled the event.
func (d *Dispatcher) Dispatch(e Event, path ...Tag) bool {
	allowed := true
	for _, tag := range path {
		for _, h := range d.handlers[tag] {
			if !h(e) {
				allowed = false
			}
		}
	}
	return allowed
}

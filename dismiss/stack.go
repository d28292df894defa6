package dismiss

// EscapeStack is the ordered collection of currently tracked dialogs, oldest
// first. A single Escape keypress is resolved against it top-down: only the
// most recent dialog with a definite outcome responds, matching native
// stacked-modal behavior. The stack is owned by one coordinator instance and
// mutated only from the host's event callbacks; there is no ambient global.
type EscapeStack struct {
	items []Dialog
	log   Logger
}

// NewEscapeStack returns an empty coordinator. A nil logger disables
// diagnostics.
func NewEscapeStack(log Logger) *EscapeStack {
	return &EscapeStack{log: ensureLogger(log)}
}

// Push appends the dialog to the top of the stack. Pushing a dialog that is
// already present is a no-op; a dialog appears at most once.
func (s *EscapeStack) Push(d Dialog) {
	for _, it := range s.items {
		if it == d {
			return
		}
	}
	s.items = append(s.items, d)
}

// Remove deletes the dialog wherever it sits in the order. Dialogs may close
// out of attach order, so this is positional removal, not a pop.
func (s *EscapeStack) Remove(d Dialog) {
	for i, it := range s.items {
		if it == d {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports stack membership.
func (s *EscapeStack) Contains(d Dialog) bool {
	for _, it := range s.items {
		if it == d {
			return true
		}
	}
	return false
}

// Len returns the number of tracked dialogs.
func (s *EscapeStack) Len() int { return len(s.items) }

// HandleEscape resolves one Escape keypress against the stack. The walk runs
// most-recently-attached first and stops at the first dialog that declares a
// definite outcome:
//
//   - PolicyNone: the press is suppressed and nothing closes. An
//     undismissable top layer also shields lower layers and unrelated
//     document-level Escape behavior.
//   - PolicyAny or PolicyCloseRequest: that dialog closes and the press is
//     suppressed.
//
// At most one dialog closes and at most one decision is made per keypress.
// An empty stack leaves the event untouched for the host's default handling.
func (s *EscapeStack) HandleEscape(ev *KeyEvent) {
	for i := len(s.items) - 1; i >= 0; i-- {
		d := s.items[i]
		switch Resolve(d) {
		case PolicyNone:
			ev.PreventDefault()
			s.log.Log(Event{Op: OpEscapeBlocked, Dialog: d})
			return
		case PolicyAny, PolicyCloseRequest:
			ev.PreventDefault()
			s.log.Log(Event{Op: OpEscapeClose, Dialog: d})
			d.Close()
			return
		}
	}
}

package dismiss

import "github.com/google/uuid"

// record is the per-dialog listener set: both bound handlers plus the
// closedby attribute watch. Created on attach, discarded on detach. The id
// exists only to correlate diagnostics.
type record struct {
	id           string
	removeClick  func()
	removeCancel func()
	stopWatch    func()
}

// Tracker owns the dialog-to-record association and the Escape stack
// membership that mirrors it. A dialog has at most one live record at any
// time. Records are released on detach; the tree observer's detach-on-removal
// is the defense against records outliving their dialogs.
type Tracker struct {
	stack   *EscapeStack
	records map[Dialog]*record
	log     Logger
}

// NewTracker returns a tracker registering dialogs with the given stack.
func NewTracker(stack *EscapeStack, log Logger) *Tracker {
	return &Tracker{
		stack:   stack,
		records: make(map[Dialog]*record),
		log:     ensureLogger(log),
	}
}

// Attach binds the dialog's click and cancel handlers, starts its closedby
// watch, and registers it with the Escape stack. Attaching a dialog that
// already has a record is a no-op. Side effects are confined to the given
// dialog.
func (t *Tracker) Attach(d Dialog) {
	if _, ok := t.records[d]; ok {
		return
	}
	rec := &record{id: uuid.NewString()}
	rec.removeClick = d.OnClick(func(ev ClickEvent) {
		t.handleClick(d, ev)
	})
	rec.removeCancel = d.OnCancel(func(ev *CancelEvent) {
		t.handleCancel(d, ev)
	})
	// The watch is structural: reactivity comes from re-resolving the policy
	// at each decision point, so the callback has nothing to do.
	rec.stopWatch = d.WatchClosedBy(func(old, new string) {})
	t.records[d] = rec
	t.stack.Push(d)
	t.log.Log(Event{Op: OpAttach, Dialog: d, RecordID: rec.id})
}

// Detach unbinds both handlers, stops the watch, unregisters the dialog from
// the Escape stack, and discards the record. Detaching an untracked dialog is
// a no-op.
func (t *Tracker) Detach(d Dialog) {
	rec, ok := t.records[d]
	if !ok {
		return
	}
	rec.removeClick()
	rec.removeCancel()
	rec.stopWatch()
	delete(t.records, d)
	t.stack.Remove(d)
	t.log.Log(Event{Op: OpDetach, Dialog: d, RecordID: rec.id})
}

// Tracked reports whether the dialog currently has a live record.
func (t *Tracker) Tracked(d Dialog) bool {
	_, ok := t.records[d]
	return ok
}

// Len returns the number of live records.
func (t *Tracker) Len() int { return len(t.records) }

func (t *Tracker) handleClick(d Dialog, ev ClickEvent) {
	// Clicks bubbling from content inside the dialog target a descendant and
	// never count as backdrop clicks.
	if !ev.TargetIsDialog {
		return
	}
	if Resolve(d) != PolicyAny {
		return
	}
	if BackdropHit(d, ev.X, ev.Y) {
		t.log.Log(Event{Op: OpBackdropClose, Dialog: d})
		d.Close()
	}
}

func (t *Tracker) handleCancel(d Dialog, ev *CancelEvent) {
	// Cancel is the host's non-Escape close request; under PolicyNone it is
	// blocked exactly like Escape.
	if Resolve(d) == PolicyNone {
		ev.PreventDefault()
		t.log.Log(Event{Op: OpCancelBlocked, Dialog: d})
	}
}

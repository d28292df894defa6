package host

import "github.com/dialogkit/closedby/dismiss"

// ---------------------------------------------------------------------------
// dismiss.Dialog implementation
// ---------------------------------------------------------------------------

// Open reports whether the dialog is currently open.
func (e *Element) Open() bool { return e.open }

// ShowModal opens the dialog modally. It fails on non-dialog elements, on an
// already-open dialog, and on a detached element. Whatever the outcome, the
// installed lifecycle controller runs afterwards and keys off the dialog's
// actual state, so a failed open never starts tracking.
func (e *Element) ShowModal() error {
	var err error
	switch {
	case e.tag != DialogTag:
		err = ErrNotDialog
	case e.open:
		err = ErrAlreadyOpen
	case !e.Connected():
		err = ErrDetached
	default:
		e.open = true
	}
	if doc := e.document(); doc != nil && doc.feature != nil {
		doc.feature.Controller().DialogOpened(e)
	}
	return err
}

// Close closes the dialog. The installed lifecycle controller runs before
// the native transition, detaching the dialog's listener set. Closing a
// closed dialog is a no-op.
func (e *Element) Close() {
	if e.tag != DialogTag || !e.open {
		return
	}
	if doc := e.document(); doc != nil && doc.feature != nil {
		doc.feature.Controller().DialogClosing(e)
	}
	e.open = false
}

// RequestClose asks the dialog to close the way a close request (rather than
// a programmatic close) would: it fires the cancel event first and closes
// only if no listener prevented it.
func (e *Element) RequestClose() {
	if e.tag != DialogTag || !e.open {
		return
	}
	ev := &dismiss.CancelEvent{}
	for _, l := range append([]cancelListener(nil), e.cancels...) {
		l.fn(ev)
	}
	if !ev.DefaultPrevented() {
		e.Close()
	}
}

// ClosedBy returns the declared closedby value and whether one is set.
func (e *Element) ClosedBy() (string, bool) {
	return e.Attr(AttrClosedBy)
}

// SetClosedByAttr writes the declared closedby value verbatim.
func (e *Element) SetClosedByAttr(value string) {
	e.SetAttr(AttrClosedBy, value)
}

// RemoveClosedByAttr clears the declared closedby value.
func (e *Element) RemoveClosedByAttr() {
	e.RemoveAttr(AttrClosedBy)
}

// WatchClosedBy registers a watch scoped to the closedby attribute.
func (e *Element) WatchClosedBy(fn func(old, new string)) (stop func()) {
	return e.WatchAttr(AttrClosedBy, fn)
}

// ContentRect returns the dialog's current rendered content box.
func (e *Element) ContentRect() dismiss.Rect { return e.rect }

// SetContentRect records the dialog's rendered content box. The renderer
// calls this on every layout pass; hit-testing reads it per click.
func (e *Element) SetContentRect(r dismiss.Rect) { e.rect = r }

// OnClick registers a click listener and returns its removal func.
func (e *Element) OnClick(fn func(dismiss.ClickEvent)) (remove func()) {
	e.listenerSeq++
	id := e.listenerSeq
	e.clicks = append(e.clicks, clickListener{id: id, fn: fn})
	return func() {
		for i, l := range e.clicks {
			if l.id == id {
				e.clicks = append(e.clicks[:i], e.clicks[i+1:]...)
				return
			}
		}
	}
}

// OnCancel registers a cancel listener and returns its removal func.
func (e *Element) OnCancel(fn func(*dismiss.CancelEvent)) (remove func()) {
	e.listenerSeq++
	id := e.listenerSeq
	e.cancels = append(e.cancels, cancelListener{id: id, fn: fn})
	return func() {
		for i, l := range e.cancels {
			if l.id == id {
				e.cancels = append(e.cancels[:i], e.cancels[i+1:]...)
				return
			}
		}
	}
}

// DispatchClick delivers a pointer press to the element's click listeners.
// target is the element the press originally landed on; the event records
// whether that was this element itself, which gates backdrop hit-testing.
func (e *Element) DispatchClick(x, y int, target *Element) {
	ev := dismiss.ClickEvent{X: x, Y: y, TargetIsDialog: target == e}
	for _, l := range append([]clickListener(nil), e.clicks...) {
		l.fn(ev)
	}
}

// ClickListeners returns the number of live click listeners. Diagnostic
// surface for leak checks.
func (e *Element) ClickListeners() int { return len(e.clicks) }

// CancelListeners returns the number of live cancel listeners.
func (e *Element) CancelListeners() int { return len(e.cancels) }

// AttrWatches returns the number of live attribute watches.
func (e *Element) AttrWatches() int { return len(e.attrWatches) }

// ---------------------------------------------------------------------------
// Runtime accessor (closedBy property)
// ---------------------------------------------------------------------------

// ClosedByProperty is the runtime accessor's getter. It always normalizes to
// one of the three recognized literals; absent and unrecognized values read
// as "any".
func (e *Element) ClosedByProperty() string {
	v, ok := e.Attr(AttrClosedBy)
	if !ok {
		return dismiss.ValueAny
	}
	p, _ := dismiss.ParsePolicy(v)
	return p.String()
}

// SetClosedByProperty is the runtime accessor's setter. Invalid input falls
// back to "any". On an installed document the write routes through the
// lifecycle controller so an open dialog's tracking stays in step; on an
// uninstalled one it is a plain coerced attribute write. Returns the value
// written.
func (e *Element) SetClosedByProperty(value string) string {
	if doc := e.document(); doc != nil && doc.feature != nil {
		return doc.feature.Controller().SetClosedBy(e, value)
	}
	if _, ok := dismiss.ParsePolicy(value); !ok {
		value = dismiss.ValueAny
	}
	e.SetClosedByAttr(value)
	return value
}

// ClearClosedByProperty clears the accessor: the underlying attribute is
// removed (not rewritten as "any"), and on an installed document an open
// dialog detaches immediately.
func (e *Element) ClearClosedByProperty() {
	if doc := e.document(); doc != nil && doc.feature != nil {
		doc.feature.Controller().ClearClosedBy(e)
		return
	}
	e.RemoveClosedByAttr()
}

// ---------------------------------------------------------------------------
// dismiss.Node implementation
// ---------------------------------------------------------------------------

// AsDialog returns the element's dialog view when the element is a dialog.
func (e *Element) AsDialog() (dismiss.Dialog, bool) {
	if e.tag == DialogTag {
		return e, true
	}
	return nil, false
}

// Children returns the element's child nodes within the same root.
func (e *Element) Children() []dismiss.Node {
	out := make([]dismiss.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// Shadow returns the element's shadow root, if one is attached.
func (e *Element) Shadow() (dismiss.Root, bool) {
	if e.shadow != nil {
		return e.shadow, true
	}
	return nil, false
}

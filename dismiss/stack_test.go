package dismiss

import "testing"

func TestStackPushIsIdempotent(t *testing.T) {
	s := NewEscapeStack(nil)
	d := openDialog("a", "any")
	s.Push(d)
	s.Push(d)
	if s.Len() != 1 {
		t.Fatalf("stack len = %d, want 1", s.Len())
	}
}

func TestStackRemoveOutOfOrder(t *testing.T) {
	s := NewEscapeStack(nil)
	a, b, c := openDialog("a", "any"), openDialog("b", "any"), openDialog("c", "any")
	s.Push(a)
	s.Push(b)
	s.Push(c)

	// dialogs may close out of attach order
	s.Remove(b)
	if s.Len() != 2 || s.Contains(b) {
		t.Fatalf("middle removal failed: len=%d contains=%v", s.Len(), s.Contains(b))
	}
	s.Remove(b)
	if s.Len() != 2 {
		t.Fatalf("second removal should be a no-op")
	}
}

func TestEscapeEmptyStackLeavesEventAlone(t *testing.T) {
	s := NewEscapeStack(nil)
	ev := &KeyEvent{}
	s.HandleEscape(ev)
	if ev.DefaultPrevented() {
		t.Fatalf("empty stack must not consume the keypress")
	}
}

func TestEscapeClosesOnlyTopmost(t *testing.T) {
	s := NewEscapeStack(nil)
	a, b, c := openDialog("a", "any"), openDialog("b", "any"), openDialog("c", "any")
	for _, d := range []*stubDialog{a, b, c} {
		d.onClose = func(d *stubDialog) { s.Remove(d) }
		s.Push(d)
	}

	ev := &KeyEvent{}
	s.HandleEscape(ev)
	if !ev.DefaultPrevented() {
		t.Fatalf("keypress should be suppressed")
	}
	if c.closes != 1 || a.closes != 0 || b.closes != 0 {
		t.Fatalf("only C should close: a=%d b=%d c=%d", a.closes, b.closes, c.closes)
	}

	ev = &KeyEvent{}
	s.HandleEscape(ev)
	if b.closes != 1 || a.closes != 0 {
		t.Fatalf("second press should close only B: a=%d b=%d", a.closes, b.closes)
	}
}

func TestEscapeBlockedByTopmostNone(t *testing.T) {
	s := NewEscapeStack(nil)
	a, b := openDialog("a", "any"), openDialog("b", "none")
	s.Push(a)
	s.Push(b)

	ev := &KeyEvent{}
	s.HandleEscape(ev)
	if !ev.DefaultPrevented() {
		t.Fatalf("an undismissable top layer must still suppress the keypress")
	}
	if a.closes != 0 || b.closes != 0 {
		t.Fatalf("neither dialog may close: a=%d b=%d", a.closes, b.closes)
	}
	// the walk must not skip past the None layer to close A beneath it
	if !s.Contains(a) || !s.Contains(b) {
		t.Fatalf("stack membership should be untouched")
	}
}

func TestEscapeResolvesPolicyAtKeypressTime(t *testing.T) {
	s := NewEscapeStack(nil)
	d := openDialog("d", "none")
	d.onClose = func(d *stubDialog) { s.Remove(d) }
	s.Push(d)

	ev := &KeyEvent{}
	s.HandleEscape(ev)
	if d.closes != 0 {
		t.Fatalf("none policy should block the first press")
	}

	d.SetClosedByAttr("any")
	ev = &KeyEvent{}
	s.HandleEscape(ev)
	if d.closes != 1 {
		t.Fatalf("policy edit while open should take effect on the next press")
	}
}

func TestEscapeClosesAtMostOnePerPress(t *testing.T) {
	s := NewEscapeStack(nil)
	a, b := openDialog("a", "any"), openDialog("b", "any")
	for _, d := range []*stubDialog{a, b} {
		d.onClose = func(d *stubDialog) { s.Remove(d) }
		s.Push(d)
	}
	ev := &KeyEvent{}
	s.HandleEscape(ev)
	if a.closes+b.closes != 1 {
		t.Fatalf("exactly one dialog may close per press, got a=%d b=%d", a.closes, b.closes)
	}
}

package dismiss

// ---------------------------------------------------------------------------
// Host collaborator surface
// ---------------------------------------------------------------------------
//
// The dismissal layer never creates or destroys dialogs and never mutates the
// host tree. Everything it needs from the host is captured by the interfaces
// below; the host package provides one implementation, adapters for other
// hosts provide theirs.

// Rect is a rendered content box in cell coordinates. A point is inside the
// box when Left <= x < Right and Top <= y < Bottom.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Contains reports whether (x, y) falls inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// ClickEvent is a pointer press delivered to a dialog's click listeners.
type ClickEvent struct {
	X, Y int
	// TargetIsDialog reports whether the click's original target was the
	// dialog surface itself. Clicks that bubble up from interactive content
	// inside the dialog target a descendant and carry false.
	TargetIsDialog bool
}

type preventable struct {
	prevented bool
}

// PreventDefault suppresses the host's default action for this event.
func (p *preventable) PreventDefault() { p.prevented = true }

// DefaultPrevented reports whether PreventDefault has been called.
func (p *preventable) DefaultPrevented() bool { return p.prevented }

// KeyEvent is a keypress delegated from the host document. The Escape stack
// calls PreventDefault when a tracked dialog consumes the press.
type KeyEvent struct {
	preventable
}

// CancelEvent is the host's signal for a non-pointer dismissal attempt
// distinct from Escape's keydown. Preventing it blocks the close that would
// otherwise follow.
type CancelEvent struct {
	preventable
}

// Dialog is the narrow view of a host modal dialog that dismissal control
// needs. Implementations must be comparable by reference (pointer types), as
// tracking is keyed on dialog identity.
type Dialog interface {
	// Open reports whether the dialog is currently open.
	Open() bool
	// ClosedBy returns the declared closedby value and whether one is set.
	ClosedBy() (value string, ok bool)
	// SetClosedByAttr writes the declared closedby value.
	SetClosedByAttr(value string)
	// RemoveClosedByAttr clears the declared closedby value.
	RemoveClosedByAttr()
	// Close closes the dialog through the host's regular close path, so the
	// lifecycle controller sees the transition.
	Close()
	// ContentRect returns the dialog's current rendered content box. Layout
	// may change while the dialog is open; callers read it per decision.
	ContentRect() Rect
	// OnClick registers a click listener and returns its removal func.
	OnClick(fn func(ClickEvent)) (remove func())
	// OnCancel registers a cancel listener and returns its removal func.
	OnCancel(fn func(*CancelEvent)) (remove func())
	// WatchClosedBy registers a closedby attribute watch and returns its stop
	// func.
	WatchClosedBy(fn func(old, new string)) (stop func())
}

// Node is one element in a host tree, scanned for dialogs and shadow roots.
type Node interface {
	// AsDialog returns the node's dialog view when the node is a dialog.
	AsDialog() (Dialog, bool)
	// Children returns the node's child nodes within the same root. Shadow
	// content is reached through Shadow, not Children.
	Children() []Node
	// Shadow returns the node's shadow root, if it hosts one.
	Shadow() (Root, bool)
}

// TreeMutation is one batch of structural changes delivered by a root.
// Added and Removed carry subtree roots; receivers search into them.
type TreeMutation struct {
	Added   []Node
	Removed []Node
}

// Root is a document or shadow root: a scannable node container that reports
// structural changes in batches.
type Root interface {
	// Nodes returns the root's current top-level nodes.
	Nodes() []Node
	// OnMutation registers a structural watch and returns its stop func.
	OnMutation(fn func(TreeMutation)) (stop func())
}

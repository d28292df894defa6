package host

import (
	"errors"

	"github.com/dialogkit/closedby/dismiss"
)

const (
	// DialogTag marks an element as a modal dialog.
	DialogTag = "dialog"

	// AttrClosedBy is the persisted dismissal-configuration attribute.
	AttrClosedBy = "closedby"
)

// ErrDetached is returned when a modal open is attempted on an element that
// is not part of a live document tree.
var ErrDetached = errors.New("host: dialog is not connected to a document")

// ErrNotDialog is returned when a dialog operation is attempted on a
// non-dialog element.
var ErrNotDialog = errors.New("host: element is not a dialog")

// ErrAlreadyOpen is returned when a modal open is attempted on an open
// dialog.
var ErrAlreadyOpen = errors.New("host: dialog is already open")

type clickListener struct {
	id int
	fn func(dismiss.ClickEvent)
}

type cancelListener struct {
	id int
	fn func(*dismiss.CancelEvent)
}

type attrWatch struct {
	id   int
	name string
	fn   func(old, new string)
}

// Element is one node in a host tree. An element with tag DialogTag also
// implements dismiss.Dialog. Identity is reference identity.
type Element struct {
	tag       string
	id        string
	parent    *Element
	container *treeCore
	children  []*Element
	attrs     map[string]string
	shadow    *ShadowRoot

	listenerSeq int
	clicks      []clickListener
	cancels     []cancelListener
	attrWatches []attrWatch

	// dialog state, meaningful only when tag == DialogTag
	open bool
	rect dismiss.Rect
}

// NewElement returns a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{tag: tag, attrs: make(map[string]string)}
}

// NewDialog returns a detached dialog element.
func NewDialog() *Element {
	return NewElement(DialogTag)
}

// Tag returns the element's tag.
func (e *Element) Tag() string { return e.tag }

// ID returns the element's identifier, set via SetID. Empty by default; used
// by scenarios and diagnostics only, identity stays reference identity.
func (e *Element) ID() string { return e.id }

// SetID assigns an identifier for scenario addressing and diagnostics.
func (e *Element) SetID(id string) *Element {
	e.id = id
	return e
}

// ---------------------------------------------------------------------------
// Tree structure
// ---------------------------------------------------------------------------

// Append inserts child as the element's last child, moving it out of any
// previous position first. The containing root, if any, delivers one
// mutation batch for the insertion.
func (e *Element) Append(child *Element) {
	if child == nil || child == e {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	if t := e.rootTree(); t != nil {
		t.notify(dismiss.TreeMutation{Added: []dismiss.Node{child}})
	}
}

// Remove detaches the element from its parent or root. The containing root,
// if any, delivers one mutation batch carrying the removed subtree.
func (e *Element) Remove() {
	t := e.rootTree()
	switch {
	case e.parent != nil:
		p := e.parent
		for i, c := range p.children {
			if c == e {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
		e.parent = nil
	case e.container != nil:
		for i, n := range e.container.nodes {
			if n == e {
				e.container.nodes = append(e.container.nodes[:i], e.container.nodes[i+1:]...)
				break
			}
		}
		e.container = nil
	default:
		return
	}
	if t != nil {
		t.notify(dismiss.TreeMutation{Removed: []dismiss.Node{e}})
	}
}

// Parent returns the element's parent element, nil for root-level nodes.
func (e *Element) Parent() *Element { return e.parent }

// rootTree returns the tree holding the element's top-level ancestor, nil
// when the subtree is detached.
func (e *Element) rootTree() *treeCore {
	el := e
	for el.parent != nil {
		el = el.parent
	}
	return el.container
}

// document resolves the owning document by walking parents and shadow hosts.
func (e *Element) document() *Document {
	el := e
	for {
		for el.parent != nil {
			el = el.parent
		}
		t := el.container
		if t == nil {
			return nil
		}
		if t.doc != nil {
			return t.doc
		}
		if t.shadowHost == nil {
			return nil
		}
		el = t.shadowHost
	}
}

// Connected reports whether the element is part of a live document tree,
// crossing shadow boundaries on the way up.
func (e *Element) Connected() bool { return e.document() != nil }

// AttachShadow creates (or returns) the element's shadow root. When the
// element belongs to an installed document, the new root is registered with
// the tree observer immediately, so dialogs created inside it are tracked
// like any in the main document.
func (e *Element) AttachShadow() *ShadowRoot {
	if e.shadow != nil {
		return e.shadow
	}
	s := &ShadowRoot{}
	s.shadowHost = e
	e.shadow = s
	if doc := e.document(); doc != nil && doc.feature != nil {
		doc.feature.Observer().Observe(s)
	}
	return s
}

// ---------------------------------------------------------------------------
// Attributes
// ---------------------------------------------------------------------------

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr writes an attribute and notifies watches for it.
func (e *Element) SetAttr(name, value string) {
	old := e.attrs[name]
	e.attrs[name] = value
	e.notifyAttr(name, old, value)
}

// RemoveAttr clears an attribute and notifies watches for it.
func (e *Element) RemoveAttr(name string) {
	old, ok := e.attrs[name]
	if !ok {
		return
	}
	delete(e.attrs, name)
	e.notifyAttr(name, old, "")
}

// WatchAttr registers a watch scoped to one attribute and returns its stop
// func.
func (e *Element) WatchAttr(name string, fn func(old, new string)) (stop func()) {
	e.listenerSeq++
	id := e.listenerSeq
	e.attrWatches = append(e.attrWatches, attrWatch{id: id, name: name, fn: fn})
	return func() {
		for i, w := range e.attrWatches {
			if w.id == id {
				e.attrWatches = append(e.attrWatches[:i], e.attrWatches[i+1:]...)
				return
			}
		}
	}
}

func (e *Element) notifyAttr(name, old, new string) {
	watches := make([]attrWatch, 0, len(e.attrWatches))
	for _, w := range e.attrWatches {
		if w.name == name {
			watches = append(watches, w)
		}
	}
	for _, w := range watches {
		w.fn(old, new)
	}
}

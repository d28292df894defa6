package host

import "github.com/dialogkit/closedby/dismiss"

type mutationWatch struct {
	id int
	fn func(dismiss.TreeMutation)
}

// treeCore is the shared node-container behavior of documents and shadow
// roots: top-level node storage and batched structural notification.
type treeCore struct {
	nodes      []*Element
	watchSeq   int
	mutWatches []mutationWatch

	// exactly one of these is set: doc for the document tree, shadowHost for
	// a shadow root's tree
	doc        *Document
	shadowHost *Element
}

// Append inserts an element at the root level of this tree, moving it out of
// any previous position first.
func (t *treeCore) Append(el *Element) {
	if el == nil {
		return
	}
	el.Remove()
	el.container = t
	t.nodes = append(t.nodes, el)
	t.notify(dismiss.TreeMutation{Added: []dismiss.Node{el}})
}

// Nodes returns the tree's current top-level nodes.
func (t *treeCore) Nodes() []dismiss.Node {
	out := make([]dismiss.Node, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n
	}
	return out
}

// OnMutation registers a structural watch and returns its stop func. Each
// structural change is delivered as one atomic batch, in operation order.
func (t *treeCore) OnMutation(fn func(dismiss.TreeMutation)) (stop func()) {
	t.watchSeq++
	id := t.watchSeq
	t.mutWatches = append(t.mutWatches, mutationWatch{id: id, fn: fn})
	return func() {
		for i, w := range t.mutWatches {
			if w.id == id {
				t.mutWatches = append(t.mutWatches[:i], t.mutWatches[i+1:]...)
				return
			}
		}
	}
}

func (t *treeCore) notify(mut dismiss.TreeMutation) {
	for _, w := range append([]mutationWatch(nil), t.mutWatches...) {
		w.fn(mut)
	}
}

// Document is the top-level host tree.
type Document struct {
	treeCore

	// NativeClosedBy marks a host whose dialogs already implement closedby;
	// installation on such a host is a no-op.
	NativeClosedBy bool

	// NoModalSupport marks a host without native modal dialog capability at
	// all. Installation declines rather than patch a capability it cannot
	// build on.
	NoModalSupport bool

	feature *Feature
}

// NewDocument returns an empty document with modal dialog support.
func NewDocument() *Document {
	d := &Document{}
	d.doc = d
	return d
}

// ShadowRoot is a shadow-nested node container attached to a host element.
type ShadowRoot struct {
	treeCore
}

// Host returns the element this shadow root is attached to.
func (s *ShadowRoot) Host() *Element { return s.shadowHost }

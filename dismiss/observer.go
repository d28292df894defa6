package dismiss

// Observer keeps tracking consistent with structural changes that bypass the
// open/close path: a dialog removed from the tree while still open, or one
// inserted already open and configured. One observer instance watches any
// number of roots; shadow roots are observed recursively as they are
// discovered, and the host's shadow-attachment interception registers roots
// created later.
type Observer struct {
	tracker *Tracker
	watched map[Root]func()
	log     Logger
}

// NewObserver returns an observer feeding the given tracker.
func NewObserver(tracker *Tracker, log Logger) *Observer {
	return &Observer{
		tracker: tracker,
		watched: make(map[Root]func()),
		log:     ensureLogger(log),
	}
}

// Observe scans the root once, attaching every open, configured dialog it
// contains (descending into nested shadow roots), then installs a standing
// structural watch. Observing an already-watched root is a no-op.
func (o *Observer) Observe(root Root) {
	if root == nil {
		return
	}
	if _, ok := o.watched[root]; ok {
		return
	}
	o.watched[root] = root.OnMutation(o.handleMutation)
	o.log.Log(Event{Op: OpObserve})
	for _, n := range root.Nodes() {
		o.attachIn(n)
	}
}

// Observing reports whether the root has a standing watch.
func (o *Observer) Observing(root Root) bool {
	_, ok := o.watched[root]
	return ok
}

// Stop removes every standing watch. Tracked dialogs keep their records;
// only structural observation ends.
func (o *Observer) Stop() {
	for root, stop := range o.watched {
		stop()
		delete(o.watched, root)
	}
}

// handleMutation processes one batch of structural changes: inserted
// subtrees are searched for dialogs to attach (not just direct children),
// removed subtrees for dialogs to detach.
func (o *Observer) handleMutation(mut TreeMutation) {
	for _, n := range mut.Added {
		o.attachIn(n)
	}
	for _, n := range mut.Removed {
		o.detachIn(n)
	}
}

func (o *Observer) attachIn(n Node) {
	if d, ok := n.AsDialog(); ok && d.Open() && Configured(d) {
		o.tracker.Attach(d)
	}
	if shadow, ok := n.Shadow(); ok {
		if o.Observing(shadow) {
			// A re-inserted shadow host: the watch survived removal, but the
			// root's dialogs still need re-scanning.
			for _, c := range shadow.Nodes() {
				o.attachIn(c)
			}
		} else {
			o.Observe(shadow)
		}
	}
	for _, c := range n.Children() {
		o.attachIn(c)
	}
}

// detachIn detaches every dialog contained in a removed subtree, including
// dialogs inside shadow roots hosted there: removing the host removes the
// shadow content from the live tree too. The shadow root's watch stays in
// place so a re-inserted host resumes tracking through the scan path.
func (o *Observer) detachIn(n Node) {
	if d, ok := n.AsDialog(); ok {
		o.tracker.Detach(d)
	}
	if shadow, ok := n.Shadow(); ok {
		for _, c := range shadow.Nodes() {
			o.detachIn(c)
		}
	}
	for _, c := range n.Children() {
		o.detachIn(c)
	}
}

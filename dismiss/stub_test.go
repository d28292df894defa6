package dismiss

// Shared in-package fakes. The core is exercised against these rather than
// the host package so its contracts stay host-agnostic.

type stubDialog struct {
	name     string
	open     bool
	value    string
	hasValue bool
	rect     Rect

	clickFns  []func(ClickEvent)
	cancelFns []func(*CancelEvent)
	watchFns  []func(old, new string)

	closes  int
	onClose func(*stubDialog)
}

func openDialog(name, value string) *stubDialog {
	return &stubDialog{name: name, open: true, value: value, hasValue: true, rect: Rect{Left: 10, Top: 5, Right: 40, Bottom: 15}}
}

func (d *stubDialog) Open() bool { return d.open }

func (d *stubDialog) ClosedBy() (string, bool) { return d.value, d.hasValue }

func (d *stubDialog) SetClosedByAttr(value string) {
	old := d.value
	d.value, d.hasValue = value, true
	for _, fn := range d.watchFns {
		fn(old, value)
	}
}

func (d *stubDialog) RemoveClosedByAttr() {
	old := d.value
	d.value, d.hasValue = "", false
	for _, fn := range d.watchFns {
		fn(old, "")
	}
}

func (d *stubDialog) Close() {
	d.open = false
	d.closes++
	if d.onClose != nil {
		d.onClose(d)
	}
}

func (d *stubDialog) ContentRect() Rect { return d.rect }

func (d *stubDialog) OnClick(fn func(ClickEvent)) func() {
	d.clickFns = append(d.clickFns, fn)
	return func() { d.clickFns = nil }
}

func (d *stubDialog) OnCancel(fn func(*CancelEvent)) func() {
	d.cancelFns = append(d.cancelFns, fn)
	return func() { d.cancelFns = nil }
}

func (d *stubDialog) WatchClosedBy(fn func(old, new string)) func() {
	d.watchFns = append(d.watchFns, fn)
	return func() { d.watchFns = nil }
}

func (d *stubDialog) click(x, y int, onDialog bool) {
	ev := ClickEvent{X: x, Y: y, TargetIsDialog: onDialog}
	for _, fn := range d.clickFns {
		fn(ev)
	}
}

func (d *stubDialog) cancel() *CancelEvent {
	ev := &CancelEvent{}
	for _, fn := range d.cancelFns {
		fn(ev)
	}
	return ev
}

// wireClose makes programmatic close behave like the host's decorated close,
// detaching the dialog before the state flips.
func wireClose(t *Tracker, d *stubDialog) {
	d.onClose = func(d *stubDialog) { t.Detach(d) }
}

type stubNode struct {
	dialog *stubDialog
	kids   []*stubNode
	shadow *stubRoot
}

func (n *stubNode) AsDialog() (Dialog, bool) {
	if n.dialog != nil {
		return n.dialog, true
	}
	return nil, false
}

func (n *stubNode) Children() []Node {
	out := make([]Node, len(n.kids))
	for i, k := range n.kids {
		out[i] = k
	}
	return out
}

func (n *stubNode) Shadow() (Root, bool) {
	if n.shadow != nil {
		return n.shadow, true
	}
	return nil, false
}

type stubRoot struct {
	top      []*stubNode
	watchers map[int]func(TreeMutation)
	seq      int
}

func newStubRoot(nodes ...*stubNode) *stubRoot {
	return &stubRoot{top: nodes, watchers: make(map[int]func(TreeMutation))}
}

func (r *stubRoot) Nodes() []Node {
	out := make([]Node, len(r.top))
	for i, n := range r.top {
		out[i] = n
	}
	return out
}

func (r *stubRoot) OnMutation(fn func(TreeMutation)) func() {
	r.seq++
	id := r.seq
	r.watchers[id] = fn
	return func() { delete(r.watchers, id) }
}

func (r *stubRoot) watcherCount() int { return len(r.watchers) }

func (r *stubRoot) add(n *stubNode) {
	r.top = append(r.top, n)
	r.fire(TreeMutation{Added: []Node{n}})
}

func (r *stubRoot) remove(n *stubNode) {
	for i, it := range r.top {
		if it == n {
			r.top = append(r.top[:i], r.top[i+1:]...)
			break
		}
	}
	r.fire(TreeMutation{Removed: []Node{n}})
}

func (r *stubRoot) fire(mut TreeMutation) {
	for _, fn := range r.watchers {
		fn(mut)
	}
}

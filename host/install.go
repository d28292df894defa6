package host

import "github.com/dialogkit/closedby/dismiss"

// Options configures installation.
type Options struct {
	// Logger receives diagnostic events. Nil disables diagnostics.
	Logger dismiss.Logger
}

// Feature is the installed dismissal layer for one document: the Escape
// stack, tracker, lifecycle controller, and tree observer wired together.
type Feature struct {
	stack      *dismiss.EscapeStack
	tracker    *dismiss.Tracker
	controller *dismiss.Controller
	observer   *dismiss.Observer
}

// Supported reports whether the host already provides closedby natively, so
// callers can decide before installing whether this layer should run at all.
func Supported(doc *Document) bool { return doc.NativeClosedBy }

// Applied reports whether the dismissal layer has installed itself on the
// document.
func Applied(doc *Document) bool { return doc.feature != nil }

// Install wires the dismissal layer onto a document and scans it for dialogs
// that are already open and configured. Installation is idempotent and
// self-gating: a second call returns the existing feature, a host with
// native support is left untouched, and a host without modal dialog
// capability is declined with a diagnostic. Both declines return nil.
func Install(doc *Document, opts Options) *Feature {
	log := opts.Logger
	if doc.feature != nil {
		return doc.feature
	}
	if doc.NativeClosedBy {
		logEvent(log, dismiss.Event{Op: dismiss.OpDecline, Message: "closedby is natively supported, nothing to install"})
		return nil
	}
	if doc.NoModalSupport {
		logEvent(log, dismiss.Event{Op: dismiss.OpDecline, Message: "host has no modal dialog capability, refusing to install"})
		return nil
	}

	stack := dismiss.NewEscapeStack(log)
	tracker := dismiss.NewTracker(stack, log)
	f := &Feature{
		stack:      stack,
		tracker:    tracker,
		controller: dismiss.NewController(tracker, log),
		observer:   dismiss.NewObserver(tracker, log),
	}
	doc.feature = f
	// Element operations (ShowModal, Close, AttachShadow, the closedBy
	// property) route through the feature once doc.feature is set; the scan
	// below picks up dialogs that were open before installation.
	f.observer.Observe(doc)
	return f
}

// Stack returns the Escape stack coordinator.
func (f *Feature) Stack() *dismiss.EscapeStack { return f.stack }

// Tracker returns the per-dialog record owner.
func (f *Feature) Tracker() *dismiss.Tracker { return f.tracker }

// Controller returns the lifecycle controller.
func (f *Feature) Controller() *dismiss.Controller { return f.controller }

// Observer returns the tree observer.
func (f *Feature) Observer() *dismiss.Observer { return f.observer }

// Escape resolves one Escape keypress against the stack and reports whether
// the press was consumed (suppressed, with at most one dialog closed).
func (f *Feature) Escape() bool {
	ev := &dismiss.KeyEvent{}
	f.stack.HandleEscape(ev)
	return ev.DefaultPrevented()
}

func logEvent(log dismiss.Logger, ev dismiss.Event) {
	if log != nil {
		log.Log(ev)
	}
}

package dismiss

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// Controller keeps tracking synchronized with a dialog's open/close
// transitions and configuration writes. It owns no dialog state itself; the
// host adapter calls in around its native operations.
type Controller struct {
	tracker *Tracker
	log     Logger
}

// NewController returns a controller driving the given tracker.
func NewController(tracker *Tracker, log Logger) *Controller {
	return &Controller{tracker: tracker, log: ensureLogger(log)}
}

// DialogOpened runs after the host completes its native open sequence. A
// native open can fail (for example on a detached element), so the dialog's
// actual state decides: nothing happens unless it ended up open. An open,
// configured dialog is attached.
func (c *Controller) DialogOpened(d Dialog) {
	if !d.Open() {
		return
	}
	if Configured(d) {
		c.tracker.Attach(d)
	}
}

// DialogClosing runs before the host's native close. Detach is unconditional:
// an unconfigured dialog has no record, so the call is a free no-op.
func (c *Controller) DialogClosing(d Dialog) {
	c.tracker.Detach(d)
}

// SetClosedBy validates and writes the dialog's closedby value. Unrecognized
// values are coerced to "any" with a diagnostic rather than rejected; an
// invalid value must never leave the dialog un-dismissable. If the dialog is
// open, it is attached (attach is idempotent, so an already-tracked dialog is
// untouched). Returns the value actually written.
func (c *Controller) SetClosedBy(d Dialog, value string) string {
	normalized := value
	if _, ok := ParsePolicy(value); !ok {
		normalized = ValueAny
		c.log.Log(Event{
			Op:      OpCoerce,
			Dialog:  d,
			Message: coerceMessage(value),
		})
	}
	d.SetClosedByAttr(normalized)
	if d.Open() {
		c.tracker.Attach(d)
	}
	return normalized
}

// ClearClosedBy removes the dialog's closedby value. Clearing while the
// dialog is open detaches it immediately; tracking resumes only if a value is
// set again or at the next open.
func (c *Controller) ClearClosedBy(d Dialog) {
	d.RemoveClosedByAttr()
	if d.Open() {
		c.tracker.Detach(d)
	}
}

// coerceMessage builds the diagnostic for an unrecognized closedby value,
// suggesting the nearest recognized literal when one is plausibly intended.
func coerceMessage(value string) string {
	msg := fmt.Sprintf("unrecognized closedby value %q, using %q", value, ValueAny)
	if near, ok := nearestLiteral(value); ok {
		msg += fmt.Sprintf(" (did you mean %q?)", near)
	}
	return msg
}

func nearestLiteral(value string) (string, bool) {
	best, bestDist := "", -1
	for _, lit := range []string{ValueAny, ValueCloseRequest, ValueNone} {
		if d := levenshtein.ComputeDistance(value, lit); bestDist < 0 || d < bestDist {
			best, bestDist = lit, d
		}
	}
	// Suggest only near misses such as case or spelling slips, not arbitrary
	// strings.
	if bestDist >= 0 && bestDist <= len(best)/2 {
		return best, true
	}
	return "", false
}

package dismiss

// Policy is the resolved dismissal policy of a dialog: which channels may
// dismiss it while open.
type Policy int

const (
	// PolicyAny permits programmatic close, Escape, and backdrop clicks.
	PolicyAny Policy = iota
	// PolicyCloseRequest permits programmatic close and close requests
	// (Escape, cancel), but not backdrop clicks.
	PolicyCloseRequest
	// PolicyNone permits programmatic close only.
	PolicyNone
)

// Recognized closedby literals. Matching is case-sensitive.
const (
	ValueAny          = "any"
	ValueCloseRequest = "closerequest"
	ValueNone         = "none"
)

func (p Policy) String() string {
	switch p {
	case PolicyCloseRequest:
		return ValueCloseRequest
	case PolicyNone:
		return ValueNone
	default:
		return ValueAny
	}
}

// ParsePolicy maps a closedby literal to its policy. ok is false for
// unrecognized values, including the empty string.
func ParsePolicy(value string) (Policy, bool) {
	switch value {
	case ValueAny:
		return PolicyAny, true
	case ValueCloseRequest:
		return PolicyCloseRequest, true
	case ValueNone:
		return PolicyNone, true
	}
	return PolicyAny, false
}

// Resolve reads the dialog's declared closedby value at call time and maps it
// to a policy. Absent, empty, and unrecognized values resolve to PolicyAny so
// that a bad value never leaves a dialog un-dismissable. Resolution always
// succeeds and is never cached; edits made while a dialog is open take effect
// at the next decision point.
func Resolve(d Dialog) Policy {
	value, ok := d.ClosedBy()
	if !ok {
		return PolicyAny
	}
	p, _ := ParsePolicy(value)
	return p
}

// Configured reports whether the dialog declares a closedby value at all.
// Only configured dialogs enter tracking.
func Configured(d Dialog) bool {
	_, ok := d.ClosedBy()
	return ok
}

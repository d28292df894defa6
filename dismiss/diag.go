package dismiss

// Diagnostic operations. Nothing in this package raises a user-visible
// error; anomalies surface as events on the configured logger.
const (
	OpAttach        = "attach"
	OpDetach        = "detach"
	OpCoerce        = "coerce"
	OpEscapeClose   = "escape-close"
	OpEscapeBlocked = "escape-blocked"
	OpBackdropClose = "backdrop-close"
	OpCancelBlocked = "cancel-blocked"
	OpObserve       = "observe"
	OpDecline       = "decline"
)

// Event describes one diagnostic occurrence.
type Event struct {
	Op       string
	Dialog   Dialog
	RecordID string
	Message  string
}

// Logger records diagnostic events.
type Logger interface {
	Log(Event)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(Event)

// Log implements Logger.
func (f LoggerFunc) Log(event Event) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) Log(Event) {}

func ensureLogger(log Logger) Logger {
	if log == nil {
		return noopLogger{}
	}
	return log
}

package provisioning

import "log"

// Logger is the minimal logging surface the engine requires.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer receives progress notifications during provisioning. It extends
// Logger with contextual fields so callers can tag output per droplet.
type Observer interface {
	Logger

	// WithFields returns a new Observer carrying additional context fields.
	WithFields(fields map[string]string) Observer
}

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{contextFields: make(map[string]string)}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	prefix := ""
	for k, val := range o.contextFields {
		prefix += "[" + k + "=" + val + "] "
	}
	log.Printf(prefix+format, v...)
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	merged := make(map[string]string, len(o.contextFields)+len(fields))
	for k, v := range o.contextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ConsoleObserver{contextFields: merged}
}

// NopObserver discards all output. Used in tests.
type NopObserver struct{}

// Printf implements Logger.
func (NopObserver) Printf(string, ...interface{}) {}

// WithFields implements Observer.
func (n NopObserver) WithFields(map[string]string) Observer { return n }

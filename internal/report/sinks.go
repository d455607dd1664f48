package report

// LogSink receives human-readable run log lines. Implementations must be
// cheap: the engine calls them inline, never awaits a response, and never
// retries.
type LogSink interface {
	Log(message string)
}

// ProgressSink receives run progress as a fraction in [0, 1]. Fractions
// only ever increase during a run and end at 1.0 on success.
type ProgressSink interface {
	Progress(fraction float64)
}

// LogFunc adapts a plain function to LogSink. A nil LogFunc discards.
type LogFunc func(message string)

// Log implements LogSink.
func (f LogFunc) Log(message string) {
	if f != nil {
		f(message)
	}
}

// ProgressFunc adapts a plain function to ProgressSink. A nil
// ProgressFunc discards.
type ProgressFunc func(fraction float64)

// Progress implements ProgressSink.
func (f ProgressFunc) Progress(fraction float64) {
	if f != nil {
		f(fraction)
	}
}

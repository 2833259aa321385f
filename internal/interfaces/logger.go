package interfaces

// Logger is the logging contract every package writes through. Messages are
// plain text; Fields are appended as structured key/value pairs.
// internal/logging provides the zap-backed implementation.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a logger that adds fields to every message.
	With(fields ...Field) Logger
}

// Field is one structured key/value pair. Error values are rendered as their
// message.
type Field struct {
	Key   string
	Value any
}

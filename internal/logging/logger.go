// Package logging is the structured logging layer shared by the pipeline stages.
// Components log through Logger; the CLI backs it with logrus and tests with MockLogger.
package logging

// Logger is a leveled logger carrying key/value context. The With* methods return
// a derived logger and leave the receiver unchanged.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one key/value pair of log context. Keys are listed in constants.go.
type Field struct {
	Key   string
	Value interface{}
}

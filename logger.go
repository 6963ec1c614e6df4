package relstore

import "log"

type Logger interface {
	// Debug logs a message at the debug level with context key/value pairs
	Debug(msg string, ctx ...any)

	// Info logs a message at the info level with context key/value pairs
	Info(msg string, ctx ...any)

	// Warn logs a message at the warn level with context key/value pairs
	Warn(msg string, ctx ...any)

	// Error logs a message at the error level with context key/value pairs
	Error(msg string, ctx ...any)
}

// stdLogger writes through the standard library logger. It is the
// fallback when no Logger is configured: teardown failures must be
// reported somewhere even when the caller supplies nothing.
type stdLogger struct{}

func (stdLogger) Debug(msg string, ctx ...any) { log.Println(append([]any{"DEBUG", msg}, ctx...)...) }
func (stdLogger) Info(msg string, ctx ...any)  { log.Println(append([]any{"INFO", msg}, ctx...)...) }
func (stdLogger) Warn(msg string, ctx ...any)  { log.Println(append([]any{"WARN", msg}, ctx...)...) }
func (stdLogger) Error(msg string, ctx ...any) { log.Println(append([]any{"ERROR", msg}, ctx...)...) }

package core

// Logger is any leveled logger the services can report through.
// Implementations may forward to an external error tracker; args carry
// extra context (errors, maps) for it.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

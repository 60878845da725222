package shared

// Logger is the logging facade accepted by library components. It matches
// the printf-style application loggers used by the cmd drivers, so one can
// be injected directly via SetLogger.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
	Panic(format string, args ...any)
}

// NoopLogger discards everything. It is the default logger of every
// component.
type NoopLogger struct{}

func (NoopLogger) Info(string, ...any)    {}
func (NoopLogger) Debug(string, ...any)   {}
func (NoopLogger) Warning(string, ...any) {}
func (NoopLogger) Error(string, ...any)   {}
func (NoopLogger) Panic(string, ...any)   {}

package starfield

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger prints debug and info lines to one writer and warnings and
// errors to another. Debug output is off unless enabled.
type DefaultLogger struct {
	debug  atomic.Bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLoggerTo(os.Stdout, os.Stderr, prefix, debug)
}

func NewLoggerTo(out, errOut io.Writer, prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	l := &DefaultLogger{
		prefix: prefix,
		out:    log.New(out, "", flags),
		err:    log.New(errOut, "", flags),
	}
	l.debug.Store(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.debug.Load()
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.debug.Store(enabled)
}

func (l *DefaultLogger) line(level string, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, msg)
	}
	return fmt.Sprintf("%s: %s", level, msg)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.debug.Load() {
		return
	}
	l.out.Print(l.line("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.line("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.line("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.line("ERROR", format, args...))
}

// LoggingModule installs a default logger as a resource. Install it first so
// later modules can log during their own Install.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

type nopLogger struct{}

func NewNopLogger() Logger { return nopLogger{} }

func (nopLogger) DebugEnabled() bool                { return false }
func (nopLogger) SetDebug(enabled bool)             {}
func (nopLogger) Debugf(format string, args ...any) {}
func (nopLogger) Infof(format string, args ...any)  {}
func (nopLogger) Warnf(format string, args ...any)  {}
func (nopLogger) Errorf(format string, args ...any) {}

// Logger returns the installed logger, or a no-op logger when none is. Any
// resource implementing Logger qualifies; a DefaultLogger wins when present.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	if l, ok := Resource[DefaultLogger](app); ok {
		return l
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}

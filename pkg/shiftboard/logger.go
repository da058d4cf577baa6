package shiftboard

import "log"

// Logger defines the interface for logging.
type Logger interface {
	Debug(message string)
	Error(message string)
}

// StdLogger writes through a standard library logger.
type StdLogger struct {
	l     *log.Logger
	debug bool
}

// NewStdLogger returns a Logger that drops Debug messages unless debug is set.
func NewStdLogger(l *log.Logger, debug bool) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l, debug: debug}
}

func (s *StdLogger) Debug(message string) {
	if s.debug {
		s.l.Println("DEBUG", message)
	}
}

func (s *StdLogger) Error(message string) {
	s.l.Println("ERROR", message)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string) {}
func (NopLogger) Error(string) {}

package storage

import "fmt"

// Severity is the level attached to a log event.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// LogFunc receives store events. A nil LogFunc discards them.
type LogFunc func(sev Severity, msg string)

func (f LogFunc) logf(sev Severity, format string, args ...any) {
	if f == nil {
		return
	}
	f(sev, fmt.Sprintf(format, args...))
}

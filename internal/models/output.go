package models

// Mode is the channel user-facing messages are routed through.
type Mode int

const (
	// ModeTextual writes to stdout/stderr of an attached console.
	ModeTextual Mode = iota
	// ModeGraphical shows a modal message box.
	ModeGraphical
)

func (m Mode) String() string {
	switch m {
	case ModeTextual:
		return "textual"
	case ModeGraphical:
		return "graphical"
	default:
		return "unknown"
	}
}

// Severity selects the output stream or dialog icon for a message.
type Severity int

const (
	// SeverityInfo goes to stdout or uses an information icon.
	SeverityInfo Severity = iota
	// SeverityError goes to stderr or uses an error icon.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "info"
}

package analysis

import "strings"

// Severity classifies how serious a rule violation is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityStyle   Severity = "style"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo, SeverityStyle:
		return true
	}
	return false
}

// BaseDeduction returns the magnitude subtracted from the base score for one
// issue of this severity, before rule weighting.
func (s Severity) BaseDeduction() float64 {
	switch s {
	case SeverityError:
		return 3.0
	case SeverityWarning:
		return 1.5
	case SeverityInfo:
		return 0.4
	case SeverityStyle:
		return 0.2
	}
	return 0
}

// ParseSeverity maps a configuration string to a Severity, case-insensitively.
// Unrecognized values fall back to info.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(s) {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	case "style":
		return SeverityStyle
	default:
		return SeverityInfo
	}
}

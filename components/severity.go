package components

import "strings"

type Severity int

const (
	SeverityError Severity = iota
	SeveritySuccess
	SeverityInfo
	SeverityWarning
)

var severityNames = [...]string{
	SeverityError:   "Error",
	SeveritySuccess: "Success",
	SeverityInfo:    "Info",
	SeverityWarning: "Warning",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[SeverityInfo]
	}
	return severityNames[s]
}

// CSSClass returns the bootstrap modifier class for the severity. Warning
// renders as "alert-block" to match the legacy stylesheet.
func (s Severity) CSSClass() string {
	if s == SeverityWarning {
		return "alert-block"
	}
	return "alert-" + strings.ToLower(s.String())
}

// SeverityFrom maps a log or status level onto a severity. Unknown levels,
// including the empty string, fall back to SeverityInfo.
func SeverityFrom(level string) Severity {
	switch {
	case strings.EqualFold(level, "ERROR"), strings.EqualFold(level, "FATAL"):
		return SeverityError
	case strings.EqualFold(level, "WARNING"):
		return SeverityWarning
	case strings.EqualFold(level, "SUCCESS"):
		return SeveritySuccess
	default:
		return SeverityInfo
	}
}

package rulespec

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies how a failed specification should affect the rest of
// a validation run. The specification only stores and reports the
// classification; enacting the control-flow consequence is the caller's
// responsibility.
type Severity int

const (
	// SeverityHard means a failure stops evaluation of the remaining rules
	// for the affected field while other fields continue. This is the
	// default for every specification.
	SeverityHard Severity = iota

	// SeveritySoft means a failure lets the remaining rules for the field
	// run anyway, so every violation for one field can be collected.
	SeveritySoft

	// SeverityStop means a failure aborts evaluation for all remaining
	// fields in the run.
	SeverityStop
)

func (s Severity) String() string {
	switch s {
	case SeverityHard:
		return "hard"
	case SeveritySoft:
		return "soft"
	case SeverityStop:
		return "stop"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity converts a severity name to its Severity value. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hard":
		return SeverityHard, nil
	case "soft":
		return SeveritySoft, nil
	case "stop":
		return SeverityStop, nil
	default:
		return SeverityHard, errors.Join(ErrInvalidSeverity, fmt.Errorf("unknown severity %q", name))
	}
}

package rulespec

import "errors"

// Predefined errors for the rulespec package. All of them signal
// configuration problems; a rule returning false is not an error.
var (
	// ErrRuleNotFound indicates that the resolver has no rule registered
	// under the requested name.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrInvalidRule indicates an invalid rule registration (empty name or
	// nil rule).
	ErrInvalidRule = errors.New("invalid rule registration")

	// ErrMissingField indicates that a specification was evaluated before a
	// field name was configured.
	ErrMissingField = errors.New("specification has no field name")

	// ErrMissingRule indicates that a specification was evaluated before a
	// rule was bound to it.
	ErrMissingRule = errors.New("specification has no rule name")

	// ErrNilResolver indicates that a specification was evaluated without a
	// resolver.
	ErrNilResolver = errors.New("specification has no rule resolver")

	// ErrInvalidSeverity indicates an unrecognized failure severity name.
	ErrInvalidSeverity = errors.New("invalid failure severity")
)

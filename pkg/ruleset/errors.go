package ruleset

import "errors"

var (
	// ErrInvalidRuleset indicates that the ruleset document could not be
	// decoded or read.
	ErrInvalidRuleset = errors.New("invalid ruleset document")

	// ErrInvalidBinding indicates a binding with a missing rule name or an
	// unrecognized severity.
	ErrInvalidBinding = errors.New("invalid rule binding")

	// ErrNilResolver indicates that Build was called without a resolver.
	ErrNilResolver = errors.New("ruleset build requires a resolver")
)

package rulespec

// Rule is a named unit of validation or sanitization behavior. It is invoked
// with the subject, the field under check, and rule-specific arguments, and
// reports whether the field satisfies the rule after the call. A rule may
// mutate subject[field] (sanitize style) to bring it into compliance before
// reporting true; false means the field could not be brought into
// compliance.
//
// A type mismatch inside a rule (e.g. a non-numeric value handed to a
// numeric rule) is an ordinary validation failure, reported as false, never
// as an error.
type Rule interface {
	Apply(subject Subject, field string, args ...any) bool
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(subject Subject, field string, args ...any) bool

func (f RuleFunc) Apply(subject Subject, field string, args ...any) bool {
	return f(subject, field, args...)
}

// Resolver maps a rule name to an executable rule. Specifications hold a
// shared, non-owning reference to a resolver and consult it on every
// evaluation, so rules may be registered after specifications are built.
//
// Implementations must return an error chain containing ErrRuleNotFound for
// unknown names rather than a silent fallback, and must be safe for
// concurrent resolution.
type Resolver interface {
	Resolve(name string) (Rule, error)
}

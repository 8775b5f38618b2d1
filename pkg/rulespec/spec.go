package rulespec

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Spec binds one subject field to one named rule with its arguments, a
// blank exemption, and a failure severity. It is configured through a
// fluent setup phase and then evaluated any number of times; it carries no
// per-evaluation state, so a configured Spec can be reused across subjects
// and shared between goroutines as long as the subjects differ.
type Spec struct {
	resolver Resolver

	field      string
	ruleName   string
	args       []any
	allowBlank bool
	severity   Severity

	message     string
	defaultMsg  string
	defaultOnce sync.Once
}

// New creates a specification bound to the given resolver. The resolver is
// shared, not owned: it is consulted on every evaluation, so rules may be
// registered after the specification is built.
func New(resolver Resolver) *Spec {
	return &Spec{
		resolver: resolver,
		severity: SeverityHard,
	}
}

// Field sets the subject attribute the specification checks. The name is
// not validated here; an empty name surfaces as ErrMissingField when the
// specification is evaluated.
func (s *Spec) Field(name string) *Spec {
	s.field = name
	return s
}

// Rule binds the named rule and its ordered arguments, replacing any
// previous binding wholesale. The name is resolved lazily at evaluation
// time, not here.
func (s *Spec) Rule(name string, args ...any) *Spec {
	s.ruleName = name
	s.args = slices.Clone(args)
	return s
}

// WithMessage overrides the lazily computed default failure message.
func (s *Spec) WithMessage(text string) *Spec {
	s.message = text
	return s
}

// AllowBlank controls the blank exemption: when enabled, a blank field
// value (absent, nil, or a string trimming to empty) passes without the
// rule ever being invoked.
func (s *Spec) AllowBlank(allow bool) *Spec {
	s.allowBlank = allow
	return s
}

// AsHard classifies a failure as hard: the caller stops evaluating further
// rules for this field but continues with other fields. This is the
// default classification. An optional message overrides the default
// failure message in the same call.
func (s *Spec) AsHard(msg ...string) *Spec {
	return s.classify(SeverityHard, msg)
}

// AsSoft classifies a failure as soft: the caller keeps evaluating the
// remaining rules for this field so every violation can be collected.
func (s *Spec) AsSoft(msg ...string) *Spec {
	return s.classify(SeveritySoft, msg)
}

// AsStop classifies a failure as stopping: the caller aborts evaluation
// for all remaining fields in the run.
func (s *Spec) AsStop(msg ...string) *Spec {
	return s.classify(SeverityStop, msg)
}

// classify is the single severity setter so severity and message can never
// be set inconsistently mid-call.
func (s *Spec) classify(severity Severity, msg []string) *Spec {
	s.severity = severity
	if len(msg) > 0 && msg[0] != "" {
		s.message = msg[0]
	}
	return s
}

// FieldName returns the configured subject attribute name.
func (s *Spec) FieldName() string {
	return s.field
}

// RuleName returns the name of the bound rule.
func (s *Spec) RuleName() string {
	return s.ruleName
}

// Args returns a copy of the bound rule arguments in their original order.
func (s *Spec) Args() []any {
	return slices.Clone(s.args)
}

// Severity returns the failure severity classification.
func (s *Spec) Severity() Severity {
	return s.severity
}

// IsHard reports whether a failure stops further rules for this field only.
func (s *Spec) IsHard() bool {
	return s.severity == SeverityHard
}

// IsSoft reports whether a failure lets the remaining rules for this field
// run anyway.
func (s *Spec) IsSoft() bool {
	return s.severity == SeveritySoft
}

// IsStop reports whether a failure aborts the whole run.
func (s *Spec) IsStop() bool {
	return s.severity == SeverityStop
}

// Message returns the explicit failure message if one was set, or the
// default "name(arg1, arg2)" form derived from the rule binding. The
// default is computed once on first read and cached.
func (s *Spec) Message() string {
	if s.message != "" {
		return s.message
	}

	s.defaultOnce.Do(func() {
		parts := make([]string, len(s.args))
		for i, arg := range s.args {
			parts[i] = fmt.Sprintf("%v", arg)
		}
		s.defaultMsg = s.ruleName + "(" + strings.Join(parts, ", ") + ")"
	})
	return s.defaultMsg
}

// Evaluate runs the specification against subject and reports whether the
// field satisfies the bound rule. The rule may have mutated the field value
// by the time Evaluate returns true.
//
// A false result is the expected negative outcome of validation, reported
// together with a nil error. A non-nil error means the specification
// itself is misconfigured (missing field or rule, unresolvable rule name)
// and is never folded into the boolean result.
func (s *Spec) Evaluate(subject Subject) (bool, error) {
	if s.field == "" {
		return false, ErrMissingField
	}
	if s.ruleName == "" {
		return false, ErrMissingRule
	}
	if s.resolver == nil {
		return false, ErrNilResolver
	}

	// Blank exemption short-circuits before the rule is ever resolved, so
	// it neither invokes nor mutates anything.
	if s.allowBlank && isBlank(subject, s.field) {
		return true, nil
	}

	rule, err := s.resolver.Resolve(s.ruleName)
	if err != nil {
		return false, fmt.Errorf("resolve rule %q: %w", s.ruleName, err)
	}

	return rule.Apply(subject, s.field, s.args...), nil
}

// isBlank reports whether the field is absent, nil, or a string trimming to
// empty. Present non-string values are never blank regardless of content,
// so zero numbers, false booleans, and empty collections still reach the
// rule.
func isBlank(subject Subject, field string) bool {
	value, ok := subject.Get(field)
	if !ok || value == nil {
		return true
	}

	str, isString := value.(string)
	return isString && strings.TrimSpace(str) == ""
}

// Package rulespec provides a per-field validation and sanitization rule
// engine built around rule specifications: bindings of a subject field to a
// named rule with its arguments, a blank exemption, and a failure severity
// classification.
//
// The package separates three concerns. A Rule is a unit of behavior that
// checks one field and may rewrite its value to bring it into compliance.
// A Resolver maps rule names to rules, so bindings stay declarative and
// rules can be registered late. A Spec ties a field to a rule name and
// arguments and runs the blank-check / invocation algorithm against any
// Subject, a minimal key-value view of the record being validated.
//
// # Architecture
//
// Core building blocks:
//   - Spec      – the specification: fluent configuration plus Evaluate
//   - Rule      – invocable contract; RuleFunc adapts plain functions
//   - Resolver  – name-to-rule lookup boundary; Registry is the in-memory one
//   - Subject   – record accessor abstraction; MapSubject wraps a plain map
//   - Severity  – hard/soft/stop failure classification for callers
//
// A Spec is configured once through its fluent setters and then evaluated
// any number of times; it keeps no per-evaluation state, so one Spec can be
// shared across goroutines as long as each evaluation gets its own subject.
// The Registry guards its rule table with a read-write mutex, making shared
// resolution safe while lookups stay cheap.
//
// # Usage
//
//	registry := rulespec.NewDefaultRegistry()
//
//	spec := rulespec.New(registry).
//		Field("age").
//		Rule("between", 1, 10).
//		AsSoft("age must be between 1 and 10")
//
//	subject := rulespec.MapSubject{"age": 15}
//	ok, err := spec.Evaluate(subject)
//	if err != nil {
//		// Misconfigured specification (e.g. unknown rule name).
//	}
//	// ok == true, subject["age"] clamped to 10 by the sanitize rule.
//
// When AllowBlank(true) is set, an absent attribute, a nil value, or a
// string trimming to empty passes immediately without the rule being
// resolved or invoked. Present non-string values are never blank, so zero
// numbers and false booleans still reach the rule.
//
// # Failure severity
//
// Each specification carries one of three classifications consumed by
// whatever code drives a multi-rule run: hard (stop remaining rules for
// this field, continue with other fields; the default), soft (keep going
// to collect every violation for the field), and stop (abort the whole
// run). The package only stores and reports the classification through
// Severity, IsHard, IsSoft, and IsStop.
//
// # Error Handling
//
// A rule returning false is the expected negative outcome of validation
// and is never turned into an error. Errors from Evaluate always mean the
// specification itself is broken: ErrMissingField, ErrMissingRule,
// ErrNilResolver, or an ErrRuleNotFound chain when the bound name is not
// registered. Check them with errors.Is.
//
// # Performance Considerations
//
// Evaluation is a pure in-process sequence of reads and writes: no I/O, no
// blocking calls, no allocation beyond what the invoked rule needs. The
// default failure message is computed once on first read and cached.
package rulespec

package ruleset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldrule/pkg/rulespec"
)

// Binding is one declarative rule binding for a field, mirroring the
// configuration surface of rulespec.Spec.
type Binding struct {
	Rule       string `yaml:"rule"`
	Args       []any  `yaml:"args"`
	Message    string `yaml:"message"`
	Severity   string `yaml:"severity"`
	AllowBlank bool   `yaml:"allow_blank"`
}

// Ruleset maps field names to their ordered rule bindings. Order within a
// field is significant: sanitize rules usually run before validate rules.
type Ruleset struct {
	Fields map[string][]Binding `yaml:"fields"`
}

// Parse decodes and validates a YAML ruleset document. Binding problems
// (missing rule name, unknown severity) are reported here so configuration
// errors fail at load time, not mid-run.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, errors.Join(ErrInvalidRuleset, err)
	}

	for field, bindings := range rs.Fields {
		for i, binding := range bindings {
			if err := binding.validate(); err != nil {
				return nil, fmt.Errorf("field %q, binding %d: %w", field, i, err)
			}
		}
	}
	return &rs, nil
}

// Load reads and parses a YAML ruleset file.
func Load(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidRuleset, err)
	}
	return Parse(data)
}

func (b Binding) validate() error {
	if b.Rule == "" {
		return errors.Join(ErrInvalidBinding, errors.New("rule name cannot be empty"))
	}
	if b.Severity != "" {
		if _, err := rulespec.ParseSeverity(b.Severity); err != nil {
			return errors.Join(ErrInvalidBinding, err)
		}
	}
	return nil
}

// Build constructs configured specifications for every field, preserving
// the declared binding order within each field. The resolver is handed to
// every specification; rule names are still resolved lazily, so rules may
// be registered after Build.
func (rs *Ruleset) Build(resolver rulespec.Resolver) (map[string][]*rulespec.Spec, error) {
	if resolver == nil {
		return nil, ErrNilResolver
	}

	specs := make(map[string][]*rulespec.Spec, len(rs.Fields))
	for field, bindings := range rs.Fields {
		fieldSpecs := make([]*rulespec.Spec, 0, len(bindings))
		for i, binding := range bindings {
			spec, err := binding.build(resolver, field)
			if err != nil {
				return nil, fmt.Errorf("field %q, binding %d: %w", field, i, err)
			}
			fieldSpecs = append(fieldSpecs, spec)
		}
		specs[field] = fieldSpecs
	}
	return specs, nil
}

func (b Binding) build(resolver rulespec.Resolver, field string) (*rulespec.Spec, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	spec := rulespec.New(resolver).
		Field(field).
		Rule(b.Rule, b.Args...).
		AllowBlank(b.AllowBlank)

	severity := rulespec.SeverityHard
	if b.Severity != "" {
		// Already validated; ParseSeverity cannot fail here.
		severity, _ = rulespec.ParseSeverity(b.Severity)
	}
	switch severity {
	case rulespec.SeveritySoft:
		spec.AsSoft(b.Message)
	case rulespec.SeverityStop:
		spec.AsStop(b.Message)
	default:
		spec.AsHard(b.Message)
	}
	return spec, nil
}

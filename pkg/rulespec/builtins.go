package rulespec

// Builtins returns the built-in rule catalogue keyed by registration name.
// The map is freshly allocated on every call, so callers may modify it
// before seeding a registry.
func Builtins() map[string]Rule {
	return map[string]Rule{
		"between":  RuleFunc(Between),
		"min":      RuleFunc(Min),
		"max":      RuleFunc(Max),
		"required": RuleFunc(Required),
		"min_len":  RuleFunc(MinLen),
		"max_len":  RuleFunc(MaxLen),
		"trim":     RuleFunc(Trim),
		"lower":    RuleFunc(Lower),
		"email":    RuleFunc(Email),
		"uuid":     RuleFunc(ValidUUID),
	}
}

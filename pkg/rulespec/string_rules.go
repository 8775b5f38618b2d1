package rulespec

import "strings"

// Required validates that the field holds a non-blank value: present,
// non-nil, and for strings not empty after trimming whitespace. Any
// present non-string value passes.
func Required(subject Subject, field string, _ ...any) bool {
	value, ok := subject.Get(field)
	if !ok || value == nil {
		return false
	}
	if str, isString := value.(string); isString {
		return strings.TrimSpace(str) != ""
	}
	return true
}

// MinLen validates that the field's string value is at least the given
// number of bytes long. Non-string values fail.
func MinLen(subject Subject, field string, args ...any) bool {
	if len(args) != 1 {
		return false
	}
	min, ok := toInt(args[0])
	if !ok {
		return false
	}

	value, _ := subject.Get(field)
	str, isString := value.(string)
	return isString && len(str) >= min
}

// MaxLen validates that the field's string value is at most the given
// number of bytes long. Non-string values fail.
func MaxLen(subject Subject, field string, args ...any) bool {
	if len(args) != 1 {
		return false
	}
	max, ok := toInt(args[0])
	if !ok {
		return false
	}

	value, _ := subject.Get(field)
	str, isString := value.(string)
	return isString && len(str) <= max
}

// Trim rewrites the field's string value with surrounding whitespace
// removed. Sanitize style: always passes on strings, fails on anything
// else without mutation.
func Trim(subject Subject, field string, _ ...any) bool {
	value, ok := subject.Get(field)
	if !ok {
		return false
	}
	str, isString := value.(string)
	if !isString {
		return false
	}

	if trimmed := strings.TrimSpace(str); trimmed != str {
		subject.Set(field, trimmed)
	}
	return true
}

// Lower rewrites the field's string value in lowercase. Sanitize style:
// always passes on strings, fails on anything else without mutation.
func Lower(subject Subject, field string, _ ...any) bool {
	value, ok := subject.Get(field)
	if !ok {
		return false
	}
	str, isString := value.(string)
	if !isString {
		return false
	}

	if lowered := strings.ToLower(str); lowered != str {
		subject.Set(field, lowered)
	}
	return true
}

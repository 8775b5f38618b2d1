package rulespec

// Between clamps the field's numeric value into [min, max]: values below
// min are raised to min, values above max lowered to max, preserving the
// value's Go type. A non-numeric value fails without mutation; a numeric
// value always passes after repair. Expects exactly two numeric arguments.
func Between(subject Subject, field string, args ...any) bool {
	if len(args) != 2 {
		return false
	}
	min, okMin := toFloat64(args[0])
	max, okMax := toFloat64(args[1])
	if !okMin || !okMax {
		return false
	}

	value, ok := subject.Get(field)
	if !ok {
		return false
	}
	current, ok := toFloat64(value)
	if !ok {
		return false
	}

	clamped := current
	if clamped < min {
		clamped = min
	}
	if clamped > max {
		clamped = max
	}
	if clamped != current {
		subject.Set(field, convertNumeric(value, clamped))
	}
	return true
}

// Min validates that the field's numeric value is at least the single
// numeric argument. Validate style: never mutates.
func Min(subject Subject, field string, args ...any) bool {
	if len(args) != 1 {
		return false
	}
	min, ok := toFloat64(args[0])
	if !ok {
		return false
	}

	value, _ := subject.Get(field)
	current, ok := toFloat64(value)
	return ok && current >= min
}

// Max validates that the field's numeric value is at most the single
// numeric argument. Validate style: never mutates.
func Max(subject Subject, field string, args ...any) bool {
	if len(args) != 1 {
		return false
	}
	max, ok := toFloat64(args[0])
	if !ok {
		return false
	}

	value, _ := subject.Get(field)
	current, ok := toFloat64(value)
	return ok && current <= max
}

// toFloat64 coerces any Go numeric type to float64. Strings, booleans, and
// composite values are not numeric for the purposes of this package.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// toInt coerces any Go numeric type to int, truncating fractions.
func toInt(value any) (int, bool) {
	f, ok := toFloat64(value)
	return int(f), ok
}

// convertNumeric converts a clamped float64 back to the Go type of the
// original subject value, so mutation never changes the field's type.
func convertNumeric(original any, f float64) any {
	switch original.(type) {
	case int:
		return int(f)
	case int8:
		return int8(f)
	case int16:
		return int16(f)
	case int32:
		return int32(f)
	case int64:
		return int64(f)
	case uint:
		return uint(f)
	case uint8:
		return uint8(f)
	case uint16:
		return uint16(f)
	case uint32:
		return uint32(f)
	case uint64:
		return uint64(f)
	case float32:
		return float32(f)
	default:
		return f
	}
}

package rulespec

// Subject is the record being validated or sanitized. It exposes named,
// readable and writable attributes by string key; the package never assumes
// a closed schema behind it.
type Subject interface {
	// Get returns the value stored under field and whether the attribute
	// is present at all.
	Get(field string) (any, bool)

	// Set stores value under field, creating the attribute if needed.
	Set(field string, value any)
}

// MapSubject adapts a plain map to the Subject interface. It is the
// canonical subject for tests and for callers working with decoded JSON or
// other schemaless records.
type MapSubject map[string]any

func (m MapSubject) Get(field string) (any, bool) {
	value, ok := m[field]
	return value, ok
}

func (m MapSubject) Set(field string, value any) {
	m[field] = value
}

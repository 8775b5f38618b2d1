package rulespec

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Email validates that the field's string value is an RFC 5322 address
// restricted to the single user@domain form typical for web use.
// Non-string values fail.
func Email(subject Subject, field string, _ ...any) bool {
	value, _ := subject.Get(field)
	str, isString := value.(string)
	if !isString || strings.TrimSpace(str) == "" {
		return false
	}

	addr, err := mail.ParseAddress(str)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// ValidUUID validates that the field's string value is a canonical UUID.
// Length and hyphen positions are checked first to reject cheaply before
// parsing. Non-string values fail.
func ValidUUID(subject Subject, field string, _ ...any) bool {
	value, _ := subject.Get(field)
	str, isString := value.(string)
	if !isString || len(str) != 36 {
		return false
	}
	if str[8] != '-' || str[13] != '-' || str[18] != '-' || str[23] != '-' {
		return false
	}

	_, err := uuid.Parse(str)
	return err == nil
}

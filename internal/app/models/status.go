package models

import "strings"

// IsInactiveStatus reports whether a raw status flag value means inactive.
// The source data stores the flag inconsistently, as the number 0 or the
// string "0", sometimes with surrounding whitespace.
func IsInactiveStatus(status string) bool {
	return strings.TrimSpace(status) == "0"
}

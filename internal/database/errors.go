package database

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by lookups that do not create on miss.
var ErrNotFound = errors.New("not found")

// isUniqueViolation reports whether an error is a sqlite uniqueness
// constraint failure. Concurrent replay tasks treat these as benign
// races on find-or-create paths and on the completion ledger.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE")
}

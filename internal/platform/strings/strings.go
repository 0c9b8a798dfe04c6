// Package strings provides record-field string helpers
package strings

import std "strings"

// Clean trims surrounding whitespace from a record field
func Clean(s string) string { return std.TrimSpace(s) }

// IsBlank reports whether s is empty or all whitespace
func IsBlank(s string) bool { return std.TrimSpace(s) == "" }

// EmptyToNil returns empty string if s is all whitespace, otherwise returns s
func EmptyToNil(s string) string {
	if std.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Ptr returns a pointer to s, or nil if s is empty
func Ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns "" if ps is nil, else *ps.
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}

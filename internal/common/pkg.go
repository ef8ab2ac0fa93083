package common

import "strings"

// UnknownStr is the fallback name for unrecognized enum values.
const UnknownStr = "unknown"

// DottedBase returns the last segment of a dotted name.
// Returns the name unchanged if it contains no dot.
func DottedBase(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}

	return name
}

// DottedPrefix returns everything before the last segment of a dotted name.
// Returns empty string if the name contains no dot.
func DottedPrefix(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}

	return ""
}

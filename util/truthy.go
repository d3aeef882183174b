package util

import "strings"

// Truthy reports whether s spells an enabled switch, e.g. an env var
// set to `true`, `1`, `yes` or `on`.
func Truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

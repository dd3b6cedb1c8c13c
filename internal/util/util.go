// Package util holds small shared helpers with no domain logic.
package util

import "strings"

// SanitizeName derives a filesystem-friendly directory name from free text by
// replacing spaces with underscores and stripping path separators.
func SanitizeName(name string) string {
	s := strings.ReplaceAll(name, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

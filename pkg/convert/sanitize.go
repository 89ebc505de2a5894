package convert

import "strings"

var nameReplacer = strings.NewReplacer(
	"-", "_dash_",
	":", "_colon_",
	".", "_dot_",
)

// SanitizeName replaces the characters that are not allowed in a mapping
// key: '-' becomes "_dash_", ':' becomes "_colon_" and '.' becomes "_dot_".
// The same rule applies to element and attribute names.
func SanitizeName(name string) string {
	return nameReplacer.Replace(name)
}

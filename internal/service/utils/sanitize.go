// Package utils holds service-level helpers for user-supplied content.
package utils

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// SanitizeText strips every HTML element from user-supplied text before it
// is stored. Plain text passes through unchanged.
func SanitizeText(text string) string {
	return strict.Sanitize(text)
}

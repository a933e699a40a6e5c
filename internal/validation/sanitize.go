// Package validation implements the shared content-record validation
// contract: free-text sanitization, storage-reference checks and
// schema-driven field validation applied by every content mutation.
package validation

import (
	"regexp"
	"strings"
)

var (
	scriptRe     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// SanitizeText strips script elements, remaining markup tags and residual
// angle brackets from raw input, then collapses whitespace runs and trims.
// This is a textual scrub, not HTML-safe escaping: callers rendering the
// result as markup must still escape on output.
func SanitizeText(raw string) string {
	out := scriptRe.ReplaceAllString(raw, "")
	out = tagRe.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, "<", "")
	out = strings.ReplaceAll(out, ">", "")
	out = whitespaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// Substrings rejected by ValidateStorageRef, matched case-insensitively.
var refDenylist = []string{"<", ">", "script", "javascript:"}

// ValidateStorageRef checks that a storage reference is non-empty and free
// of markup/script-injection substrings. This is a syntactic allow-list
// check only: a reference passing it may still fail to resolve to a stored
// object.
func ValidateStorageRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return &ValidationError{Reason: "storage reference cannot be empty"}
	}
	lower := strings.ToLower(ref)
	for _, bad := range refDenylist {
		if strings.Contains(lower, bad) {
			return &ValidationError{Reason: "storage reference contains a forbidden substring"}
		}
	}
	return nil
}

package media

import "strings"

// disallowedKeywords excludes adult-tagged items from archive-sourced results.
var disallowedKeywords = []string{"adult", "xxx", "erotica", "pornography", "erotic"}

// HasDisallowedSubject reports whether any disallowed keyword appears in the
// joined subject list. Matching is a case-insensitive substring check.
func HasDisallowedSubject(subjects []string) bool {
	joined := strings.ToLower(strings.Join(subjects, " "))
	for _, kw := range disallowedKeywords {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

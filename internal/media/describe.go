package media

import "math"

// NoDescription is the fallback text for items without a description.
const NoDescription = "No description available"

// maxDescriptionLen is the character budget for item descriptions.
const maxDescriptionLen = 200

// Describe shapes a raw provider description for display: the first 200
// characters followed by "...". The ellipsis is appended whenever a
// description exists, even a short one. An empty description yields the
// fallback literal with no ellipsis.
func Describe(raw string) string {
	if raw == "" {
		return NoDescription
	}
	r := []rune(raw)
	if len(r) > maxDescriptionLen {
		r = r[:maxDescriptionLen]
	}
	return string(r) + "..."
}

// RoundRating rounds an average rating to one decimal place.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}

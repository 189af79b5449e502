// Package media defines the normalized media record shared by every provider
// adapter, plus the shaping, filtering, and ranking helpers applied to it.
package media

// Platform identifiers carried on every normalized item.
const (
	PlatformArchive      = "Internet Archive"
	PlatformArchiveShort = "IA"
	PlatformYouTube      = "YouTube"
	PlatformYouTubeShort = "YT"
)

// Item is a media record normalized from a provider-specific document.
// Items live only for the duration of a single request.
type Item struct {
	Identifier   string   `json:"identifier"`
	VideoID      string   `json:"video_id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Year         int      `json:"year,omitempty"`
	Downloads    int      `json:"downloads,omitempty"`
	NumReviews   int      `json:"num_reviews,omitempty"`
	AvgRating    float64  `json:"avg_rating,omitempty"`
	Subjects     []string `json:"subjects,omitempty"`
	QualityScore int      `json:"quality_score,omitempty"`
	Channel      string   `json:"channel,omitempty"`
	PublishedAt  string   `json:"published_at,omitempty"`
	Thumbnail    string   `json:"thumbnail"`
	WatchURL     string   `json:"watch_url"`
	EmbedURL     string   `json:"embed_url"`
	Platform     string   `json:"platform"`
	PlatformShort string  `json:"platform_short"`
}

// ItemDetails is the metadata + file listing for a single archive item.
type ItemDetails struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Year        string     `json:"year"`
	Files       []FileLink `json:"files"`
}

// FileLink is one downloadable file belonging to an item.
type FileLink struct {
	Name   string `json:"name"`
	Format string `json:"format"`
	URL    string `json:"url"`
}

// ErrorResult is the in-band error shape fed back to the chat model when a
// tool or provider call fails. It is a value, not a Go error: the conversation
// continues and the model explains the failure to the user.
type ErrorResult struct {
	Error string `json:"error"`
}

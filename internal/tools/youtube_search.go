package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soyeahso/cineco/internal/media"
)

// defaultYouTubeResults caps a model-initiated video platform search.
const defaultYouTubeResults = 10

// VideoSearcher searches the video platform.
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int64) ([]media.Item, error)
}

// SearchYouTube lets the model search YouTube for videos.
type SearchYouTube struct {
	videos VideoSearcher
}

// NewSearchYouTube creates the search_youtube tool.
func NewSearchYouTube(videos VideoSearcher) *SearchYouTube {
	return &SearchYouTube{videos: videos}
}

func (t *SearchYouTube) Name() string { return "search_youtube" }

func (t *SearchYouTube) Description() string {
	return "Search YouTube for videos. Returns video titles, descriptions, channels, and embed URLs."
}

func (t *SearchYouTube) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {"type": "string", "description": "The search query for YouTube videos"},
			"max_results": {"type": "integer", "description": "Maximum number of results (default: 10)", "default": 10}
		},
		"required": ["query"]
	}`)
}

func (t *SearchYouTube) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Query      string `json:"query"`
		MaxResults *int64 `json:"max_results"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	maxResults := int64(defaultYouTubeResults)
	if params.MaxResults != nil && *params.MaxResults > 0 {
		maxResults = *params.MaxResults
	}

	return t.videos.Search(ctx, params.Query, maxResults)
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soyeahso/cineco/internal/media"
)

// Curation defaults, applied when the model omits an argument.
const (
	defaultCurateMinViews = 10000
	defaultCurateLimit    = 20
)

// Curator returns quality-ranked movie lists.
type Curator interface {
	Curate(ctx context.Context, minViews, limit int) ([]media.Item, error)
}

// CurateMovies lets the model request a curated, quality-ranked movie list.
type CurateMovies struct {
	archive Curator
}

// NewCurateMovies creates the curate_quality_movies tool.
func NewCurateMovies(archive Curator) *CurateMovies {
	return &CurateMovies{archive: archive}
}

func (t *CurateMovies) Name() string { return "curate_quality_movies" }

func (t *CurateMovies) Description() string {
	return "Get a curated list of high-quality, family-friendly, license-free movies. Excludes adult content and filters by popularity, reviews, and ratings."
}

func (t *CurateMovies) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"min_views": {"type": "integer", "description": "Minimum number of views/downloads (default: 10000)", "default": 10000},
			"limit": {"type": "integer", "description": "Maximum number of movies to return (default: 20)", "default": 20}
		}
	}`)
}

func (t *CurateMovies) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	// Pointers distinguish "omitted" from an explicit zero.
	var params struct {
		MinViews *int `json:"min_views"`
		Limit    *int `json:"limit"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &params); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}

	minViews := defaultCurateMinViews
	if params.MinViews != nil {
		minViews = *params.MinViews
	}
	limit := defaultCurateLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	if minViews < 0 {
		return nil, fmt.Errorf("min_views must be >= 0, got %d", minViews)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be > 0, got %d", limit)
	}

	return t.archive.Curate(ctx, minViews, limit)
}

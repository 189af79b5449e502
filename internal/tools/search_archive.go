package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soyeahso/cineco/internal/media"
)

// defaultSearchRows caps how many archive rows a model-initiated search pulls.
const defaultSearchRows = 15

// ArchiveSearcher runs constrained free-text searches against the archive.
type ArchiveSearcher interface {
	Search(ctx context.Context, query string, rows int) ([]media.Item, error)
}

// SearchArchive lets the model search the media archive.
type SearchArchive struct {
	archive ArchiveSearcher
}

// NewSearchArchive creates the search_archive tool.
func NewSearchArchive(archive ArchiveSearcher) *SearchArchive {
	return &SearchArchive{archive: archive}
}

func (t *SearchArchive) Name() string { return "search_archive" }

func (t *SearchArchive) Description() string {
	return "Search the Internet Archive for books, movies, audio, and other media"
}

func (t *SearchArchive) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {"type": "string", "description": "The search query"}
		},
		"required": ["query"]
	}`)
}

func (t *SearchArchive) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Query == "" {
		return nil, fmt.Errorf("query is required")
	}

	return t.archive.Search(ctx, params.Query, defaultSearchRows)
}

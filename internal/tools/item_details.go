package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soyeahso/cineco/internal/media"
)

// MetadataFetcher looks up archive metadata for one item.
type MetadataFetcher interface {
	Metadata(ctx context.Context, identifier string) (*media.ItemDetails, error)
}

// ItemDetails lets the model fetch metadata and download links for an item.
type ItemDetails struct {
	archive MetadataFetcher
}

// NewItemDetails creates the get_item_details tool.
func NewItemDetails(archive MetadataFetcher) *ItemDetails {
	return &ItemDetails{archive: archive}
}

func (t *ItemDetails) Name() string { return "get_item_details" }

func (t *ItemDetails) Description() string {
	return "Get detailed information about a specific Internet Archive item including metadata and download links"
}

func (t *ItemDetails) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"identifier": {"type": "string", "description": "The Internet Archive item identifier"}
		},
		"required": ["identifier"]
	}`)
}

func (t *ItemDetails) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Identifier string `json:"identifier"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if params.Identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	return t.archive.Metadata(ctx, params.Identifier)
}

// Package youtube searches the YouTube Data API v3 and normalizes results
// into media items.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
)

const (
	watchTemplate = "https://www.youtube.com/watch?v=%s"
	embedTemplate = "https://www.youtube.com/embed/%s"
)

// Client wraps the YouTube Data API search service.
type Client struct {
	svc *yt.Service
	log *logging.Logger
}

// New creates a YouTube client authenticated with an API key. Extra options
// exist for tests (endpoint overrides).
func New(ctx context.Context, apiKey string, log *logging.Logger, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	return &Client{svc: svc, log: log.Sub("youtube")}, nil
}

// Search returns up to maxResults video-type results for the query.
// No content filtering or quality scoring is applied on this path.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]media.Item, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, fmt.Errorf("youtube: %s", gerr.Message)
		}
		return nil, fmt.Errorf("youtube: %w", err)
	}

	items := make([]media.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.Id == nil || it.Id.VideoId == "" || it.Snippet == nil {
			continue
		}
		id := it.Id.VideoId
		sn := it.Snippet

		thumbnail := ""
		if sn.Thumbnails != nil && sn.Thumbnails.High != nil {
			thumbnail = sn.Thumbnails.High.Url
		}

		items = append(items, media.Item{
			Identifier:    id,
			VideoID:       id,
			Title:         sn.Title,
			Description:   media.Describe(sn.Description),
			Channel:       sn.ChannelTitle,
			PublishedAt:   sn.PublishedAt,
			Thumbnail:     thumbnail,
			WatchURL:      fmt.Sprintf(watchTemplate, id),
			EmbedURL:      fmt.Sprintf(embedTemplate, id),
			Platform:      media.PlatformYouTube,
			PlatformShort: media.PlatformYouTubeShort,
		})
	}

	c.log.Debug().Str("query", query).Int("results", len(items)).Msg("youtube search")
	return items, nil
}

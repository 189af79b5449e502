// Package archive queries the Internet Archive advancedsearch and metadata
// APIs and normalizes their documents into media items.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/soyeahso/cineco/internal/logging"
	"github.com/soyeahso/cineco/internal/media"
)

const (
	defaultSearchURL   = "https://archive.org/advancedsearch.php"
	defaultMetadataURL = "https://archive.org/metadata"

	thumbnailTemplate = "https://archive.org/services/img/%s"
	watchTemplate     = "https://archive.org/details/%s"
	embedTemplate     = "https://archive.org/embed/%s"
	downloadTemplate  = "https://archive.org/download/%s/%s"
)

// videoConstraints restricts queries to h.264 video and excludes adult-tagged
// subjects at the provider. The local keyword filter still runs on top of it.
const videoConstraints = `mediatype:movies AND format:"h.264" AND -subject:"adult" AND -subject:"erotica" AND -subject:"xxx"`

// searchFields is the field selection requested from advancedsearch.
const searchFields = "identifier,title,description,year,downloads,avg_rating,subject"

// curateFields adds review counts for quality scoring.
const curateFields = "identifier,title,description,year,downloads,num_reviews,avg_rating,subject"

// maxDetailFiles caps the file listing returned by Metadata.
const maxDetailFiles = 10

// Client talks to the Internet Archive APIs.
type Client struct {
	http        *http.Client
	searchURL   string
	metadataURL string
	log         *logging.Logger
}

// NewClient creates an archive client.
func NewClient(log *logging.Logger) *Client {
	return &Client{
		http:        &http.Client{Timeout: 30 * time.Second},
		searchURL:   defaultSearchURL,
		metadataURL: defaultMetadataURL,
		log:         log.Sub("archive"),
	}
}

// Search runs a free-text query constrained to video items, sorted by
// descending download count, and returns up to rows normalized items with
// adult-tagged documents filtered out.
func (c *Client) Search(ctx context.Context, query string, rows int) ([]media.Item, error) {
	enhanced := fmt.Sprintf("(%s) AND %s", query, videoConstraints)

	docs, err := c.search(ctx, enhanced, rows, searchFields)
	if err != nil {
		return nil, err
	}

	items := make([]media.Item, 0, len(docs))
	for _, d := range docs {
		if media.HasDisallowedSubject(d.Subject) {
			continue
		}
		items = append(items, media.Item{
			Identifier:    d.Identifier,
			Title:         d.Title.String(),
			Description:   media.Describe(d.Description.String()),
			Year:          int(d.Year),
			Downloads:     d.Downloads,
			AvgRating:     media.RoundRating(d.AvgRating),
			Thumbnail:     fmt.Sprintf(thumbnailTemplate, d.Identifier),
			WatchURL:      fmt.Sprintf(watchTemplate, d.Identifier),
			EmbedURL:      fmt.Sprintf(embedTemplate, d.Identifier),
			Platform:      media.PlatformArchive,
			PlatformShort: media.PlatformArchiveShort,
		})
	}

	c.log.Debug().Str("query", query).Int("results", len(items)).Msg("archive search")
	return items, nil
}

// Curate returns video items with at least minViews downloads, scored and
// re-ranked by quality. The provider's download ordering decides which rows
// come back; the final order is the client-side quality score, descending.
func (c *Client) Curate(ctx context.Context, minViews, limit int) ([]media.Item, error) {
	query := fmt.Sprintf("%s AND downloads:[%d TO 999999999]", videoConstraints, minViews)

	docs, err := c.search(ctx, query, limit, curateFields)
	if err != nil {
		return nil, err
	}

	items := make([]media.Item, 0, len(docs))
	for _, d := range docs {
		if media.HasDisallowedSubject(d.Subject) {
			continue
		}

		subjects := d.Subject
		if len(subjects) > 5 {
			subjects = subjects[:5]
		}

		items = append(items, media.Item{
			Identifier:    d.Identifier,
			Title:         d.Title.String(),
			Description:   media.Describe(d.Description.String()),
			Year:          int(d.Year),
			Downloads:     d.Downloads,
			NumReviews:    d.NumReviews,
			AvgRating:     media.RoundRating(d.AvgRating),
			Subjects:      subjects,
			QualityScore:  media.QualityScore(d.Downloads, d.NumReviews, d.AvgRating),
			Thumbnail:     fmt.Sprintf(thumbnailTemplate, d.Identifier),
			WatchURL:      fmt.Sprintf(watchTemplate, d.Identifier),
			EmbedURL:      fmt.Sprintf(embedTemplate, d.Identifier),
			Platform:      media.PlatformArchive,
			PlatformShort: media.PlatformArchiveShort,
		})
	}

	media.SortByQuality(items)

	c.log.Debug().Int("minViews", minViews).Int("results", len(items)).Msg("archive curate")
	return items, nil
}

// Metadata fetches title, description, year, and up to ten download links
// for a single item.
func (c *Client) Metadata(ctx context.Context, identifier string) (*media.ItemDetails, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.metadataURL+"/"+url.PathEscape(identifier), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp metadataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	files := resp.Files
	if len(files) > maxDetailFiles {
		files = files[:maxDetailFiles]
	}

	details := &media.ItemDetails{
		Title:       resp.Metadata.Title.String(),
		Description: resp.Metadata.Description.String(),
		Year:        resp.Metadata.Year.String(),
		Files:       make([]media.FileLink, 0, len(files)),
	}
	for _, f := range files {
		details.Files = append(details.Files, media.FileLink{
			Name:   f.Name,
			Format: f.Format,
			URL:    fmt.Sprintf(downloadTemplate, identifier, f.Name),
		})
	}

	return details, nil
}

// search issues an advancedsearch request and returns the raw documents.
func (c *Client) search(ctx context.Context, query string, rows int, fields string) ([]searchDoc, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("output", "json")
	params.Set("rows", strconv.Itoa(rows))
	params.Set("sort", "downloads desc")
	params.Set("fl", fields)

	req, err := http.NewRequestWithContext(ctx, "GET", c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return resp.Response.Docs, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

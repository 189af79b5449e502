package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"

	"github.com/soyeahso/cineco/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c, err := New(context.Background(), "test-key", logging.New(nil, "silent"),
		option.WithEndpoint(ts.URL))
	require.NoError(t, err)
	return c
}

func TestSearchNormalizesResults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "lofi beats", q.Get("q"))
		assert.Equal(t, "video", q.Get("type"))
		assert.Equal(t, "10", q.Get("maxResults"))
		assert.Equal(t, "snippet", q.Get("part"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"id": {"kind": "youtube#video", "videoId": "abc123"},
				"snippet": {
					"title": "Lofi Beats",
					"description": "Chill instrumentals.",
					"channelTitle": "Chill Channel",
					"publishedAt": "2024-01-15T00:00:00Z",
					"thumbnails": {"high": {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg"}}
				}
			}]
		}`))
	})

	items, err := c.Search(context.Background(), "lofi beats", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, "abc123", it.Identifier)
	assert.Equal(t, "abc123", it.VideoID)
	assert.Equal(t, "Lofi Beats", it.Title)
	assert.Equal(t, "Chill instrumentals....", it.Description)
	assert.Equal(t, "Chill Channel", it.Channel)
	assert.Equal(t, "2024-01-15T00:00:00Z", it.PublishedAt)
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", it.Thumbnail)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", it.WatchURL)
	assert.Equal(t, "https://www.youtube.com/embed/abc123", it.EmbedURL)
	assert.Equal(t, "YouTube", it.Platform)
	assert.Equal(t, "YT", it.PlatformShort)
}

func TestSearchMissingThumbnailAndDescription(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [{
				"id": {"videoId": "bare42"},
				"snippet": {"title": "Bare", "channelTitle": "Someone"}
			}]
		}`))
	})

	items, err := c.Search(context.Background(), "bare", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Thumbnail)
	assert.Equal(t, "No description available", items[0].Description)
}

func TestSearchSkipsNonVideoIDs(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"items": [
				{"id": {"kind": "youtube#channel"}, "snippet": {"title": "A channel"}},
				{"id": {"videoId": "vid1"}, "snippet": {"title": "A video"}}
			]
		}`))
	})

	items, err := c.Search(context.Background(), "mixed", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "vid1", items[0].Identifier)
}

func TestSearchProviderError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "API key not valid", "errors": [{"reason": "forbidden"}]}}`))
	})

	_, err := c.Search(context.Background(), "anything", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

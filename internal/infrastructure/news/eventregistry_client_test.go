package news_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SupplyRisk-api/internal/infrastructure/news"
	"github.com/jhoicas/SupplyRisk-api/pkg/config"
)

func TestFetchRecent_MapeaLosArticulos(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"articles": map[string]any{
				"results": []map[string]any{
					{
						"title":    "Lithium prices surge on supply fears",
						"body":     "Mining output fell sharply...",
						"dateTime": "2026-08-28T10:00:00Z",
						"source":   map[string]any{"title": "Reuters"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := news.NewEventRegistryClient(config.NewsConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		MaxArticles: 20,
		WindowDays:  7,
	})

	articles, err := client.FetchRecent(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "Lithium prices surge on supply fears", articles[0].Title)
	assert.Equal(t, "Reuters", articles[0].Source)
	assert.Equal(t, "2026-08-28T10:00:00Z", articles[0].DateTime)

	assert.Equal(t, "/article/getArticles", gotPath)
	assert.Equal(t, "getArticles", gotBody["action"])
	assert.Equal(t, "or", gotBody["keywordOper"])
	assert.Equal(t, float64(20), gotBody["articlesCount"])
	assert.Equal(t, "test-key", gotBody["apiKey"])
}

func TestFetchRecent_ErrorDelProveedor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "invalid api key"})
	}))
	defer srv.Close()

	client := news.NewEventRegistryClient(config.NewsConfig{
		APIKey: "bad", BaseURL: srv.URL, MaxArticles: 20, WindowDays: 7,
	})

	_, err := client.FetchRecent(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestFetchRecent_SinAPIKey(t *testing.T) {
	client := news.NewEventRegistryClient(config.NewsConfig{MaxArticles: 20, WindowDays: 7})

	_, err := client.FetchRecent(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EVENT_REGISTRY_API_KEY")
}

// Package news implementa el puerto NewsProvider contra la API REST de
// Event Registry (newsapi.ai).
package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
	"github.com/jhoicas/SupplyRisk-api/internal/domain/entity"
	"github.com/jhoicas/SupplyRisk-api/pkg/config"
)

var _ ports.NewsProvider = (*EventRegistryClient)(nil)

const defaultBaseURL = "https://eventregistry.org/api/v1"

// Palabras clave de la cadena de suministro de baterías. Se combinan con OR.
var defaultKeywords = []string{
	"lithium battery supply chain",
	"lithium mining",
	"battery manufacturing disruption",
	"cobalt shortage",
}

// EventRegistryClient cliente del endpoint article/getArticles.
type EventRegistryClient struct {
	apiKey      string
	baseURL     string
	maxArticles int
	windowDays  int
	httpClient  *http.Client
}

// NewEventRegistryClient construye el cliente desde la configuración.
func NewEventRegistryClient(cfg config.NewsConfig) *EventRegistryClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &EventRegistryClient{
		apiKey:      cfg.APIKey,
		baseURL:     baseURL,
		maxArticles: cfg.MaxArticles,
		windowDays:  cfg.WindowDays,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ── Estructuras del protocolo Event Registry ──────────────────────────────────

type erRequest struct {
	Action        string   `json:"action"`
	Keyword       []string `json:"keyword"`
	KeywordOper   string   `json:"keywordOper"`
	DateStart     string   `json:"dateStart"`
	DateEnd       string   `json:"dateEnd"`
	ArticlesCount int      `json:"articlesCount"`
	SortBy        string   `json:"articlesSortBy"`
	Lang          string   `json:"lang"`
	APIKey        string   `json:"apiKey"`
}

type erResponse struct {
	Articles struct {
		Results []struct {
			Title    string `json:"title"`
			Body     string `json:"body"`
			DateTime string `json:"dateTime"`
			Source   struct {
				Title string `json:"title"`
			} `json:"source"`
		} `json:"results"`
	} `json:"articles"`
	Error string `json:"error"`
}

// FetchRecent descarga los artículos de la ventana configurada (días hacia
// atrás desde hoy), hasta el tope configurado.
func (c *EventRegistryClient) FetchRecent(ctx context.Context) ([]entity.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news: EVENT_REGISTRY_API_KEY no configurado")
	}

	now := time.Now()
	payload := erRequest{
		Action:        "getArticles",
		Keyword:       defaultKeywords,
		KeywordOper:   "or",
		DateStart:     now.AddDate(0, 0, -c.windowDays).Format("2006-01-02"),
		DateEnd:       now.Format("2006-01-02"),
		ArticlesCount: c.maxArticles,
		SortBy:        "date",
		Lang:          "eng",
		APIKey:        c.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("news: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/article/getArticles", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("news: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("news: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news: Event Registry HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var erResp erResponse
	if err := json.Unmarshal(rawBody, &erResp); err != nil {
		return nil, fmt.Errorf("news: deserializar respuesta: %w", err)
	}
	if erResp.Error != "" {
		return nil, fmt.Errorf("news: Event Registry: %s", erResp.Error)
	}

	articles := make([]entity.Article, 0, len(erResp.Articles.Results))
	for _, r := range erResp.Articles.Results {
		articles = append(articles, entity.Article{
			Source:   r.Source.Title,
			Title:    r.Title,
			Body:     r.Body,
			DateTime: r.DateTime,
		})
	}
	return articles, nil
}

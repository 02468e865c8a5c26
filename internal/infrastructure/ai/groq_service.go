// Package ai implementa el puerto RiskNarrator sobre la API de Groq
// (compatible con el protocolo Chat Completions de OpenAI).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/SupplyRisk-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa RiskNarrator.
var _ ports.RiskNarrator = (*GroqService)(nil)

const (
	groqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

	groqSystemPrompt = `You are a supply chain risk analyst for a lithium battery distributor.
Given a news article or an inventory context, produce a concise risk assessment:
severity, affected supply chain stage (raw materials, manufacturing, transport, demand)
and a recommended action. Keep the answer under 150 words. Plain text, no markdown.`
)

// GroqService adaptador que implementa RiskNarrator usando la API REST de Groq.
// Usa net/http de la librería estándar de Go; no requiere SDK.
type GroqService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGroqService construye el adaptador.
// model suele ser "llama3-70b-8192". baseURL vacío usa el endpoint público;
// se puede apuntar a otro host compatible (tests, proxy).
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewGroqService(apiKey, model, baseURL string) *GroqService {
	if baseURL == "" {
		baseURL = groqChatCompletionsURL
	}
	return &GroqService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el handler impone además su propio context.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Chat Completions ───────────────────────

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// AnalyzeRisk envía el contenido al modelo y devuelve el informe en texto libre.
func (s *GroqService) AnalyzeRisk(ctx context.Context, content string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GROQ_API_KEY no configurado")
	}

	payload := groqRequest{
		Model: s.model,
		Messages: []groqMessage{
			{Role: "system", Content: groqSystemPrompt},
			{Role: "user", Content: content},
		},
		MaxTokens:   512,
		Temperature: 0.3,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp groqResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Groq error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Groq HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(rawBody, &groqResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}
	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return groqResp.Choices[0].Message.Content, nil
}

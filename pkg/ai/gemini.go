package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/meeting-lens-team/meeting-lens/pkg/config"
)

// GeminiClient is a minimal client for the Google Generative Language API
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// generateContentRequest is the shape for generateContent requests
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
}

// generateContentResponse is a minimal response shape
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateAnalysis sends the instruction prompt and the formatted transcript
// to the given Gemini model and returns the raw text of the first candidate.
// The model is configured to answer with a bare JSON body.
func (g *GeminiClient) GenerateAnalysis(ctx context.Context, model, instructions, transcript string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: instructions}}},
			{Role: "user", Parts: []part{{Text: transcript}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			Temperature:      0.3,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, url.PathEscape(model), url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var gr generateContentResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("gemini returned status %d with unreadable body", resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		if gr.Error != nil && gr.Error.Message != "" {
			return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, gr.Error.Message)
		}
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"glycoscan/internal/food"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent endpoint over plain
// HTTP with the API key in the query string. One attempt per call, no
// retries, no caching.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		model:   os.Getenv("GEMINI_MODEL"),
		baseURL: defaultBaseURL,
		// Bounded timeout; expiry surfaces as a transport error.
		http: &http.Client{Timeout: 60 * time.Second},
	}
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AnalyzeImage sends the JPEG inline with the analysis prompt and
// normalizes whatever the model replies with.
func (g *GeminiClient) AnalyzeImage(ctx context.Context, jpeg []byte) (*food.Record, error) {
	if len(jpeg) == 0 {
		return nil, errors.New("empty image data")
	}

	parts := []part{
		{Text: buildImageAnalysisPrompt()},
		{InlineData: &inlineData{
			MimeType: "image/jpeg",
			Data:     base64.StdEncoding.EncodeToString(jpeg),
		}},
	}

	raw, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	rec := ParseRecord(raw)
	rec.ID = uuid.New().String()
	return rec, nil
}

// AnalyzeText asks the model about the named food. The prompt instructs
// the model to echo the name back, and we pin it regardless.
func (g *GeminiClient) AnalyzeText(ctx context.Context, name string) (*food.Record, error) {
	if name == "" {
		return nil, errors.New("empty food name")
	}

	raw, err := g.generate(ctx, []part{{Text: buildTextAnalysisPrompt(name)}})
	if err != nil {
		return nil, err
	}

	rec := ParseRecord(raw)
	rec.ID = uuid.New().String()
	rec.Name = name
	return rec, nil
}

// generate performs the single request/response round trip and returns
// the model's raw textual reply.
func (g *GeminiClient) generate(ctx context.Context, parts []part) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload := generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			Temperature:     0.2,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RemoteAnalysisError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unexpected model response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glycoscan/internal/food"
)

func newTestClient(url string) *GeminiClient {
	return &GeminiClient{
		apiKey:  "test-key",
		model:   "test-model",
		baseURL: url,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func modelReply(text string) []byte {
	body := map[string]any{
		"candidates": []map[string]any{
			{
				"content": map[string]any{
					"parts": []map[string]string{{"text": text}},
				},
			},
		},
	}
	data, _ := json.Marshal(body)
	return data
}

func TestAnalyzeTextPinsName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected api key in query, got %q", r.URL.RawQuery)
		}
		w.Write(modelReply("```json\n{\"name\":\"Something Else\",\"category\":\"fruit\",\"giIndex\":40}\n```"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	rec, err := client.AnalyzeText(context.Background(), "Starfruit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Name != "Starfruit" {
		t.Errorf("expected name pinned to Starfruit, got %q", rec.Name)
	}
	if rec.ID == "" {
		t.Error("expected a generated id")
	}
	if rec.Category != food.CategoryFruit {
		t.Errorf("expected category fruit, got %q", rec.Category)
	}
}

func TestAnalyzeImageSendsInlineData(t *testing.T) {
	var req generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Write(modelReply(`{"name":"Apple","category":"fruit","giIndex":36}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	rec, err := client.AnalyzeImage(context.Background(), []byte("fake-jpeg-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Name != "Apple" {
		t.Errorf("expected name Apple, got %q", rec.Name)
	}

	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
		t.Fatalf("expected one content with prompt + image parts, got %+v", req.Contents)
	}
	if req.Contents[0].Parts[1].InlineData == nil {
		t.Fatal("expected inline image data on second part")
	}
	if req.Contents[0].Parts[1].InlineData.MimeType != "image/jpeg" {
		t.Errorf("expected image/jpeg mime type, got %q", req.Contents[0].Parts[1].InlineData.MimeType)
	}
	if req.GenerationConfig.Temperature != 0.2 {
		t.Errorf("expected low temperature, got %v", req.GenerationConfig.Temperature)
	}
}

func TestAnalyzeTextRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exceeded"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.AnalyzeText(context.Background(), "Apple")
	if err == nil {
		t.Fatal("expected an error for non-2xx status")
	}

	var remote *RemoteAnalysisError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteAnalysisError, got %T: %v", err, err)
	}
	if remote.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", remote.StatusCode)
	}
	if remote.Body != "quota exceeded" {
		t.Errorf("expected response body kept, got %q", remote.Body)
	}
}

func TestAnalyzeGarbledReplyStillYieldsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(modelReply("I am sorry, I cannot help with that."))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	rec, err := client.AnalyzeImage(context.Background(), []byte("fake-jpeg-bytes"))
	if err != nil {
		t.Fatalf("a garbled reply must degrade, not fail: %v", err)
	}
	if rec.Source == food.SourceAnalysis {
		t.Errorf("expected a low-confidence source, got %q", rec.Source)
	}
}

func TestAnalyzeEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	if _, err := client.AnalyzeText(context.Background(), "Apple"); err == nil {
		t.Fatal("expected an error for empty candidates")
	}
}

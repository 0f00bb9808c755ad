package recommend_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pixlumia/internal/domain"
	"pixlumia/internal/recommend"
)

var catalog = []domain.Product{
	{ID: "1", Title: "Inception", Category: domain.CategoryFilms},
	{ID: "4", Title: "Arcane", Category: domain.CategorySeries},
}

func answer(rec recommend.Recommendation) string {
	inner, _ := json.Marshal(rec)
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(inner)}}}},
		},
	})
	return string(body)
}

func TestRecommendParsesStructuredAnswer(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(answer(recommend.Recommendation{
			Reasoning:             "Ambiance SF sombre.",
			SuggestedThemes:       []string{"Science-Fiction"},
			RecommendedProductIDs: []string{"1"},
		})))
	}))
	defer srv.Close()

	c := recommend.NewClient(srv.URL, "gemini-3-flash-preview", "test-key")
	rec := c.Recommend("un salon futuriste", catalog)

	if rec.Reasoning != "Ambiance SF sombre." {
		t.Fatalf("bad reasoning: %q", rec.Reasoning)
	}
	if len(rec.RecommendedProductIDs) != 1 || rec.RecommendedProductIDs[0] != "1" {
		t.Fatalf("bad ids: %+v", rec.RecommendedProductIDs)
	}
	if !strings.Contains(gotPath, "models/gemini-3-flash-preview:generateContent") {
		t.Fatalf("bad path %q", gotPath)
	}
	// the prompt carries one catalog line per product
	if !strings.Contains(gotBody, "Inception (ID: 1") || !strings.Contains(gotBody, "Arcane (ID: 4") {
		t.Fatal("catalog summary missing from prompt")
	}
	if !strings.Contains(gotBody, "un salon futuriste") {
		t.Fatal("user prompt missing from request")
	}
}

func TestRecommendFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := recommend.NewClient(srv.URL, "m", "k")
	rec := c.Recommend("prompt", catalog)
	if rec.Reasoning != recommend.Fallback().Reasoning {
		t.Fatalf("want fallback, got %+v", rec)
	}
	if rec.RecommendedProductIDs == nil || len(rec.RecommendedProductIDs) != 0 {
		t.Fatalf("fallback must carry an empty id list, got %+v", rec.RecommendedProductIDs)
	}
}

func TestRecommendFallsBackOnMalformedAnswer(t *testing.T) {
	cases := []string{
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":"not json"}]}}]}`,
		`garbage`,
	}
	for _, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		c := recommend.NewClient(srv.URL, "m", "k")
		rec := c.Recommend("prompt", catalog)
		srv.Close()
		if rec.Reasoning != recommend.Fallback().Reasoning {
			t.Fatalf("body %q: want fallback, got %+v", body, rec)
		}
	}
}

func TestRecommendFallsBackWhenUnreachable(t *testing.T) {
	c := recommend.NewClient("http://127.0.0.1:1", "m", "k")
	rec := c.Recommend("prompt", catalog)
	if rec.Reasoning != recommend.Fallback().Reasoning {
		t.Fatalf("want fallback, got %+v", rec)
	}
}

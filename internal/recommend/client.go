// Package recommend calls an external text-generation service to suggest
// catalog products for a free-text decoration prompt. Failures never reach
// the caller: every error path resolves to a fixed fallback answer.
package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"pixlumia/internal/domain"
)

// Recommendation is the structured answer the service is asked to produce.
// Product ids are expected to be valid catalog ids but are not validated.
type Recommendation struct {
	Reasoning             string   `json:"reasoning"`
	SuggestedThemes       []string `json:"suggestedThemes"`
	RecommendedProductIDs []string `json:"recommendedProductIds"`
}

// Fallback is the degraded answer returned on any failure.
func Fallback() Recommendation {
	return Recommendation{
		Reasoning:             "Désolé, je rencontre une petite difficulté. Mais je vous suggère de regarder nos nouveautés !",
		SuggestedThemes:       []string{"Films", "Jeux Vidéo"},
		RecommendedProductIDs: []string{},
	}
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Model   string
	APIKey  string
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		APIKey:  apiKey,
	}
}

// generateContent request/response shapes, trimmed to the fields used.
type genRequest struct {
	Contents         []genContent `json:"contents"`
	GenerationConfig genConfig    `json:"generationConfig"`
}

type genContent struct {
	Parts []genPart `json:"parts"`
}

type genPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type genResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"reasoning": map[string]any{
			"type":        "STRING",
			"description": "Analyse concise et conseil déco.",
		},
		"suggestedThemes": map[string]any{
			"type":        "ARRAY",
			"items":       map[string]any{"type": "STRING"},
			"description": "Mots-clés pour filtrer la boutique.",
		},
		"recommendedProductIds": map[string]any{
			"type":        "ARRAY",
			"items":       map[string]any{"type": "STRING"},
			"description": "Les IDs des produits du catalogue recommandés.",
		},
	},
	"required": []string{"reasoning", "suggestedThemes", "recommendedProductIds"},
}

// Recommend asks the service for poster suggestions. The catalog summary
// keeps the prompt small: one line per product with title, id and category.
func (c *Client) Recommend(userPrompt string, products []domain.Product) Recommendation {
	rec, err := c.call(userPrompt, products)
	if err != nil {
		log.Printf("[recommend] falling back: %v", err)
		return Fallback()
	}
	return rec
}

func (c *Client) call(userPrompt string, products []domain.Product) (Recommendation, error) {
	var summary strings.Builder
	for _, p := range products {
		fmt.Fprintf(&summary, "- %s (ID: %s, Catégorie: %s)\n", p.Title, p.ID, p.Category)
	}

	prompt := fmt.Sprintf(`Tu es Lumia, l'expert en décoration d'intérieur de Pixlumia.
Voici notre catalogue actuel :
%s
L'utilisateur demande : "%s".

Consignes :
1. Analyse l'ambiance recherchée.
2. Sélectionne parmi le catalogue ci-dessus les produits (IDs) les plus pertinents (maximum 3).
3. Propose également des thèmes de recherche plus larges.
4. Ta réponse doit être en JSON.`, summary.String(), userPrompt)

	body, err := json.Marshal(genRequest{
		Contents: []genContent{{Parts: []genPart{{Text: prompt}}}},
		GenerationConfig: genConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	})
	if err != nil {
		return Recommendation{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseURL, c.Model, c.APIKey)
	resp, err := c.HTTP.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return Recommendation{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Recommendation{}, fmt.Errorf("generate content: status %d", resp.StatusCode)
	}

	var gr genResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return Recommendation{}, err
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Recommendation{}, errors.New("empty response")
	}
	text := gr.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return Recommendation{}, errors.New("empty response text")
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return Recommendation{}, err
	}
	return rec, nil
}

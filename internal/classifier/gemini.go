package classifier

import (
	"context"
	"fmt"
	"strings"

	"dguaman/sri-facturas/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiFallback asks the Gemini API to pick a category for issuer names
// the keyword table does not recognize. It is optional and disabled unless
// configured with an API key.
type GeminiFallback struct {
	client     *genai.Client
	model      *genai.GenerativeModel
	categories []string
}

// NewGeminiFallback creates a Gemini-backed fallback strategy.
func NewGeminiFallback(ctx context.Context, apiKey, modelName string) (*GeminiFallback, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiFallback{
		client: client,
		model:  client.GenerativeModel(modelName),
		categories: []string{
			models.CategoryHealth, models.CategoryFood, models.CategoryTransport,
			models.CategoryEducation, models.CategoryApparel, models.CategoryTourism,
			models.CategoryHousing, models.CategoryUtilities, models.CategoryOther,
		},
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiFallback) Close() error {
	return g.client.Close()
}

// Classify sends the issuer name to Gemini and maps the response back onto
// the fixed category set. Responses that name no known category resolve to
// the default category, not an error.
func (g *GeminiFallback) Classify(ctx context.Context, issuer string) (string, error) {
	prompt := fmt.Sprintf(`Clasifica al siguiente emisor de una factura ecuatoriana
en exactamente una de estas categorías de gasto:
%s

Emisor: %s

Responde en este formato:
Categoria: [nombre de la categoría]`,
		strings.Join(g.categories, ", "), issuer)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return g.extractCategory(text), nil
}

// extractCategory parses the "Categoria:" line out of the model response,
// falling back to scanning the whole text for a known category name.
func (g *GeminiFallback) extractCategory(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Categoria:") {
			name := strings.TrimSpace(strings.TrimPrefix(line, "Categoria:"))
			for _, category := range g.categories {
				if strings.EqualFold(name, category) {
					return category
				}
			}
		}
	}
	for _, category := range g.categories {
		if strings.Contains(strings.ToUpper(response), strings.ToUpper(category)) {
			return category
		}
	}
	return models.CategoryOther
}

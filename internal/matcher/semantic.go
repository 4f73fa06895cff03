package matcher

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Embedder is the optional semantic backend. Absence (nil) or failure
// degrades semantic similarity to 0; it never fails a match call.
type Embedder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
}

// semanticSimilarity returns the mean pairwise cosine similarity between the
// two embedded skill sets, as a 0-100 figure rounded to 1 decimal. The value
// is informational only and never feeds the overall match score.
func (m *Matcher) semanticSimilarity(ctx context.Context, candidate, target []string) float64 {
	if m.embedder == nil {
		return 0.0
	}
	candidateVecs, err := m.embedder.Encode(ctx, candidate)
	if err != nil {
		m.log.Warn("embedding backend unavailable, skipping semantic similarity", zap.Error(err))
		return 0.0
	}
	targetVecs, err := m.embedder.Encode(ctx, target)
	if err != nil {
		m.log.Warn("embedding backend unavailable, skipping semantic similarity", zap.Error(err))
		return 0.0
	}
	if len(candidateVecs) == 0 || len(targetVecs) == 0 {
		return 0.0
	}

	var sum float64
	var pairs int
	for _, cv := range candidateVecs {
		for _, tv := range targetVecs {
			sum += cosine(cv, tv)
			pairs++
		}
	}
	return math.Round(sum/float64(pairs)*100*10) / 10
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0.0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// GeminiEmbedder backs semantic similarity with the Gemini embedding model.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates the embedding client. Callers that have no API
// key should pass a nil Embedder to New instead of constructing one.
func NewGeminiEmbedder(ctx context.Context, apiKey string) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiEmbedder{client: client, model: "gemini-embedding-001"}, nil
}

func (g *GeminiEmbedder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, t := range texts {
		contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
	}
	resp, err := g.client.Models.EmbedContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		vectors = append(vectors, emb.Values)
	}
	return vectors, nil
}

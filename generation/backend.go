package generation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ModelInvoker runs one named generative model against a prompt and returns
// the raw response text.
type ModelInvoker interface {
	Invoke(ctx context.Context, model string, prompt string) (string, error)
}

// Embedder turns text into an embedding vector.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// GeminiBackend serves both interfaces over a single genai client, built once
// at startup and injected wherever generation or embedding is needed.
type GeminiBackend struct {
	client         *genai.Client
	embeddingModel string
}

func NewGeminiBackend(ctx context.Context, apiKey, embeddingModel string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiBackend{client: client, embeddingModel: embeddingModel}, nil
}

func (b *GeminiBackend) Invoke(ctx context.Context, model string, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	result, err := b.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}

func (b *GeminiBackend) EmbedText(ctx context.Context, text string) ([]float64, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := b.client.Models.EmbedContent(ctx, b.embeddingModel, contents, embedConfig())
	if err != nil {
		return nil, fmt.Errorf("embed failed: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	values := result.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}
	return vector, nil
}

// embedConfig requests similarity-tuned vectors; both stored form vectors and
// query vectors must use the same task type or scores drift.
func embedConfig() *genai.EmbedContentConfig {
	return &genai.EmbedContentConfig{TaskType: "SEMANTIC_SIMILARITY"}
}

// Generator tries an ordered model list until one answers. Only "model
// unavailable" failures advance the list; anything else surfaces immediately
// so unrelated errors are never masked by fallback.
type Generator struct {
	backend ModelInvoker
	models  []string
	log     *zap.SugaredLogger
}

func NewGenerator(backend ModelInvoker, models []string, log *zap.SugaredLogger) *Generator {
	return &Generator{backend: backend, models: models, log: log}
}

// Generate returns the first successful model's response text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for i, model := range g.models {
		text, err := g.backend.Invoke(ctx, model, prompt)
		if err != nil {
			if !isModelUnavailable(err) {
				return "", err
			}
			lastErr = err
			g.log.Warnw("model unavailable, trying fallback", "model", model, "error", err)
			continue
		}

		if i > 0 {
			g.log.Warnw("form generated using fallback model", "model", model)
		}
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyGeneration
		}
		return text, nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, lastErr)
	}
	return "", ErrGenerationUnavailable
}

// isModelUnavailable spots not-found/unsupported-model failures by message,
// the only classification the backend exposes consistently.
func isModelUnavailable(err error) bool {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "404") && strings.Contains(msg, "not found") {
		return true
	}
	return strings.Contains(msg, "is not supported")
}

package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/spigell/jobscout/internal/logger"
)

const (
	defaultEmbeddingModel = "gemini-embedding-001"
	defaultMaxRetries     = 2
	retryBaseDelay        = 500 * time.Millisecond
)

// Gemini produces embeddings through the Gemini API. API failures are logged
// and reported as unavailability; the zero vector is never returned.
type Gemini struct {
	client     *genai.Client
	modelName  string
	cache      *Cache
	logger     *zap.Logger
	maxRetries int
}

// NewGemini creates a Gemini embedding provider. The cache is owned by the
// provider for its whole lifetime; pass nil to disable caching.
func NewGemini(ctx context.Context, apiKey, model string, cache *Cache, log *zap.Logger) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbeddingModel
	}

	return &Gemini{
		client:     client,
		modelName:  model,
		cache:      cache,
		logger:     logger.WithAIFields(log, "gemini", model),
		maxRetries: defaultMaxRetries,
	}, nil
}

// Model returns the configured embedding model name.
func (g *Gemini) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

// Embed returns the vector for text, consulting the cache first. Empty text
// and every API failure yield nil.
func (g *Gemini) Embed(ctx context.Context, text string) []float32 {
	if g == nil || g.client == nil {
		return nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if g.cache != nil {
		if vector, ok := g.cache.Get(text); ok {
			return vector
		}
	}

	vector, err := g.embedWithRetry(ctx, text)
	if err != nil {
		g.logger.Warn("embedding unavailable",
			zap.Int("text_length", len(text)),
			zap.Error(err),
		)
		return nil
	}

	if g.cache != nil {
		g.cache.Put(text, vector)
	}

	return vector
}

func (g *Gemini) embedWithRetry(ctx context.Context, text string) ([]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			g.logger.Debug("retrying embedding request", zap.Int("attempt", attempt))
		}

		resp, err := g.client.Models.EmbedContent(ctx, g.modelName, genai.Text(text), nil)
		if err != nil {
			lastErr = fmt.Errorf("embed content: %w", err)
			continue
		}

		if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
			lastErr = errors.New("gemini api returned empty embedding")
			continue
		}

		return resp.Embeddings[0].Values, nil
	}

	return nil, lastErr
}

package ai

import (
	"context"
	"math/rand"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// NewProvider picks Groq when an API key is configured, otherwise the
// canned fallback so the companion keeps talking offline.
func NewProvider(cfg *config.Config, rng *rand.Rand) Provider {
	if cfg.GroqAPIKey != "" {
		return NewGroqProvider(cfg.GroqAPIKey, cfg.GroqModel)
	}
	return NewFallbackProvider(rng)
}

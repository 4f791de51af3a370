package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/pkg/retrylimit"
)

const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

type GroqProvider struct {
	client  *http.Client
	limiter *retrylimit.AdaptiveLimiter
	apiKey  string
	model   string
}

func NewGroqProvider(apiKey, model string) *GroqProvider {
	return &GroqProvider{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: retrylimit.NewAdaptiveLimiter(2, 1, 5, 1, 0.5),
		apiKey:  apiKey,
		model:   model,
	}
}

type httpStatusError struct {
	code int
	body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("groq http %d: %s", e.code, e.body)
}

func (e *httpStatusError) StatusCode() int { return e.code }

func (p *GroqProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	var reply string
	err := retrylimit.WithRetryMax(ctx, func() error {
		r, err := p.request(ctx, messages)
		if err != nil {
			return err
		}
		reply = r
		return nil
	}, p.limiter, 3)
	if err != nil {
		return "", err
	}
	return reply, nil
}

func (p *GroqProvider) request(ctx context.Context, messages []Message) (string, error) {
	payload := map[string]interface{}{
		"model":       p.model,
		"messages":    messages,
		"temperature": 0.9,
		"max_tokens":  300,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqEndpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &httpStatusError{code: resp.StatusCode, body: truncate(body)}
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("groq empty choices")
	}

	reply := cleanReply(parsed.Choices[0].Message.Content)
	if isGarbageResponse(reply) {
		return "", fmt.Errorf("groq returned garbage")
	}

	return reply, nil
}

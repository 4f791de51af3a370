// Package lookup fetches topic summaries from Wikipedia so the
// companion can research things it is curious about.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/pkg/retrylimit"
)

const (
	apiEndpoint  = "https://en.wikipedia.org/w/api.php"
	extractLimit = 500
	cacheMaxAge  = 7 * 24 * time.Hour
)

// Result is a topic summary, possibly served from cache.
type Result struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache stores results keyed by lowercased topic. Implemented by the
// relationship store so lookups persist across restarts.
type Cache interface {
	GetLookup(topic string) (Result, bool)
	PutLookup(topic string, r Result)
}

type Client struct {
	client   *http.Client
	limiter  *retrylimit.AdaptiveLimiter
	cache    Cache
	endpoint string
	now      func() time.Time
}

func NewClient(cache Cache) *Client {
	return &Client{
		client:   &http.Client{Timeout: 5 * time.Second},
		limiter:  retrylimit.NewAdaptiveLimiter(1, 1, 3, 1, 0.5),
		cache:    cache,
		endpoint: apiEndpoint,
		now:      time.Now,
	}
}

// SetEndpoint overrides the API endpoint. Test hook.
func (c *Client) SetEndpoint(u string) {
	c.endpoint = u
}

// Search returns the intro extract for topic, capped at 500 characters.
// Cached entries younger than seven days are reused without a request.
func (c *Client) Search(ctx context.Context, topic string) (Result, error) {
	key := strings.ToLower(topic)
	if c.cache != nil {
		if cached, ok := c.cache.GetLookup(key); ok {
			if c.now().Sub(cached.FetchedAt) < cacheMaxAge {
				return cached, nil
			}
		}
	}

	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"titles":      {topic},
		"prop":        {"extracts"},
		"exintro":     {"true"},
		"explaintext": {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.limiter.RateLimited()
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.limiter.RateLimited()
		return Result{}, fmt.Errorf("wikipedia http %d", resp.StatusCode)
	}
	c.limiter.Success()

	var parsed struct {
		Query struct {
			Pages map[string]struct {
				Title   string `json:"title"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, err
	}

	for _, page := range parsed.Query.Pages {
		if page.Extract == "" {
			continue
		}
		content := page.Extract
		if runes := []rune(content); len(runes) > extractLimit {
			content = string(runes[:extractLimit])
		}
		res := Result{
			Title:     page.Title,
			Content:   content,
			FetchedAt: c.now(),
		}
		if c.cache != nil {
			c.cache.PutLookup(key, res)
		}
		return res, nil
	}

	return Result{}, fmt.Errorf("no extract for %q", topic)
}

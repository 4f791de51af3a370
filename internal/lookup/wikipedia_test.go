package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

type memCache struct {
	entries map[string]Result
}

func (m *memCache) GetLookup(topic string) (Result, bool) {
	r, ok := m.entries[topic]
	return r, ok
}

func (m *memCache) PutLookup(topic string, r Result) {
	if m.entries == nil {
		m.entries = map[string]Result{}
	}
	m.entries[topic] = r
}

func apiResponse(title, extract string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"query": map[string]interface{}{
			"pages": map[string]interface{}{
				"123": map[string]string{"title": title, "extract": extract},
			},
		},
	})
	return string(b)
}

func TestSearchCapsExtractOnRuneBoundary(t *testing.T) {
	// 600 two-byte runes: a byte-index cap at 500 would split one.
	long := strings.Repeat("è", 600)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(apiResponse("Perché", long)))
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.SetEndpoint(srv.URL)

	res, err := c.Search(context.Background(), "Perché")
	if err != nil {
		t.Fatal(err)
	}
	if !utf8.ValidString(res.Content) {
		t.Fatal("extract contains a split rune")
	}
	if got := utf8.RuneCountInString(res.Content); got != 500 {
		t.Fatalf("extract runes = %d, want 500", got)
	}
}

func TestSearchUsesFreshCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(apiResponse("Stelle", "Le stelle brillano.")))
	}))
	defer srv.Close()

	c := NewClient(&memCache{})
	c.SetEndpoint(srv.URL)

	if _, err := c.Search(context.Background(), "Stelle"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Search(context.Background(), "STELLE"); err != nil {
		t.Fatal(err)
	}
	if hits != 1 {
		t.Fatalf("server hits = %d, want 1 (second lookup cached)", hits)
	}
}

func TestSearchRefreshesExpiredCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(apiResponse("Luna", "La luna si allontana.")))
	}))
	defer srv.Close()

	cache := &memCache{}
	c := NewClient(cache)
	c.SetEndpoint(srv.URL)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	cache.PutLookup("luna", Result{Title: "Luna", Content: "vecchio", FetchedAt: now.Add(-8 * 24 * time.Hour)})

	res, err := c.Search(context.Background(), "Luna")
	if err != nil {
		t.Fatal(err)
	}
	if res.Content != "La luna si allontana." {
		t.Fatalf("content = %q, want refetch over stale cache", res.Content)
	}
	if got := cache.entries["luna"]; got.Content != "La luna si allontana." {
		t.Fatalf("cache not refreshed: %+v", got)
	}
}

func TestSearchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(nil)
	c.SetEndpoint(srv.URL)
	if _, err := c.Search(context.Background(), "Tempo"); err == nil {
		t.Fatal("non-200 should surface an error")
	}
}

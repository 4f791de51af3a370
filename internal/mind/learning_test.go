package mind

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func seedConcepts(s *Store, n int) {
	for i := 0; i < n; i++ {
		s.LearnFromMessage("ada", fmt.Sprintf("parola%04d", i))
	}
}

func TestEvolutionLevelThresholds(t *testing.T) {
	cases := []struct {
		concepts int
		want     int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{99, 2},
		{100, 3},
	}
	for _, c := range cases {
		s, _ := newTestStore(t)
		seedConcepts(s, c.concepts)
		if got := s.EvolutionLevel(); got != c.want {
			t.Errorf("%d concepts: level = %d, want %d", c.concepts, got, c.want)
		}
		if got := s.ConceptCount(); got != c.concepts {
			t.Errorf("concept count = %d, want %d", got, c.concepts)
		}
	}
}

func TestEvolutionTimelineRecordsLevelUps(t *testing.T) {
	s, _ := newTestStore(t)
	seedConcepts(s, 50)
	events := s.Timeline(0)
	var ups int
	for _, e := range events {
		if e.Type == "evolution" {
			ups++
			if e.Level != 2 || e.ConceptsKnown != 50 {
				t.Fatalf("evolution event = %+v", e)
			}
		}
	}
	if ups != 1 {
		t.Fatalf("evolution events = %d, want 1", ups)
	}
}

func TestLearnFromMessageIgnoresShortWordsAndCommands(t *testing.T) {
	s, _ := newTestStore(t)
	s.LearnFromMessage("ada", "/stats qualcosa")
	if s.ConceptCount() != 0 {
		t.Fatal("slash commands must not be learned from")
	}
	s.LearnFromMessage("ada", "io amo le farfalle blu")
	// Only "farfalle" passes the length gate ("amo", "le", "blu", "io" are short).
	if s.ConceptCount() != 1 {
		t.Fatalf("concepts = %d, want 1", s.ConceptCount())
	}
}

func TestRegisterTeachingUpsert(t *testing.T) {
	s, _ := newTestStore(t)
	content := "Le persone meritano gentilezza, sempre e comunque"
	s.RegisterTeaching("ada", content)
	s.RegisterTeaching("bea", content)

	key := truncateRunes(strings.ToLower(content), 50)
	s.mu.Lock()
	c := s.learned.Concepts[key]
	s.mu.Unlock()
	if c == nil {
		t.Fatal("teaching concept missing")
	}
	if c.TaughtBy != "ada" {
		t.Fatalf("taught by = %q, want original teacher", c.TaughtBy)
	}
	if c.Importance < 0.89 || c.Importance > 0.91 {
		t.Fatalf("importance = %v, want 0.7 + 0.2", c.Importance)
	}

	var teachings int
	for _, e := range s.Timeline(0) {
		if e.Type == "teaching" {
			teachings++
			if !strings.HasPrefix(e.Description, "Insegnamento da ") {
				t.Fatalf("description = %q", e.Description)
			}
		}
	}
	if teachings != 2 {
		t.Fatalf("teaching events = %d, want 2", teachings)
	}
}

func TestTruncateRunesKeepsRuneBoundaries(t *testing.T) {
	// 60 runes, 90 bytes: a byte-index cut at 50 would land inside an è.
	accented := strings.Repeat("aè", 30)

	s, _ := newTestStore(t)
	s.RegisterTeaching("ada", accented)

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.learned.Concepts {
		if !utf8.ValidString(key) {
			t.Fatalf("concept key has a split rune: %q", key)
		}
		if got := utf8.RuneCountInString(key); got != 50 {
			t.Fatalf("key runes = %d, want 50", got)
		}
	}
	for _, e := range s.learned.Timeline {
		if !utf8.ValidString(e.Content) {
			t.Fatalf("timeline snippet has a split rune: %q", e.Content)
		}
	}
}

func TestSpeechPattern(t *testing.T) {
	s, _ := newTestStore(t)
	s.LearnFromMessage("ada", "ciao")
	s.LearnFromMessage("ada", "ehi")

	p, ok := s.Pattern("ada")
	if !ok {
		t.Fatal("pattern missing")
	}
	if p.MessageCount != 2 {
		t.Fatalf("message count = %d", p.MessageCount)
	}
	if p.Style != "concise" {
		t.Fatalf("style = %q, want concise for short messages", p.Style)
	}
	if p.Engagement != 0.2 {
		t.Fatalf("engagement = %v, want 0.2", p.Engagement)
	}

	long := strings.Repeat("parole lunghe e articolate ", 12)
	for i := 0; i < 20; i++ {
		s.LearnFromMessage("bea", long)
	}
	p, _ = s.Pattern("bea")
	if p.Style != "verbose" {
		t.Fatalf("style = %q, want verbose", p.Style)
	}
	if p.Engagement != 1 {
		t.Fatalf("engagement = %v, want capped at 1", p.Engagement)
	}
	if p.FavoriteWords["parole"] == 0 {
		t.Fatal("favorite words should track long words")
	}
}

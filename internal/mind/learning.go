package mind

import (
	"fmt"
	"strings"
)

// LearnFromMessage absorbs a message: long-enough words become
// concepts, the author's speech pattern is updated, and the evolution
// level re-checked. Slash commands are ignored.
func (s *Store) LearnFromMessage(username, content string) {
	if strings.HasPrefix(content, "/") {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, word := range strings.Fields(strings.ToLower(content)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) <= 3 {
			continue
		}
		c := s.learned.Concepts[word]
		if c == nil {
			c = &Concept{FirstSeen: now}
			s.learned.Concepts[word] = c
		}
		c.Count++
		c.Importance = 0.5 + 0.01*float64(c.Count)
		c.LastSeen = now
	}
	s.updatePattern(username, content)
	s.checkEvolution()
	s.saveLearned()
}

// updatePattern folds one message into username's speech profile.
func (s *Store) updatePattern(username, content string) {
	p := s.learned.Patterns[username]
	if p == nil {
		p = &SpeechPattern{FavoriteWords: make(map[string]int)}
		s.learned.Patterns[username] = p
	}
	p.MessageCount++
	p.AvgLength += (float64(len(content)) - p.AvgLength) / float64(p.MessageCount)
	for _, word := range strings.Fields(strings.ToLower(content)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) > 4 {
			p.FavoriteWords[word]++
		}
	}
	switch {
	case p.AvgLength > 200:
		p.Style = "verbose"
	case p.AvgLength < 20:
		p.Style = "concise"
	default:
		p.Style = "balanced"
	}
	p.Engagement = clamp01(float64(p.MessageCount) / 10)
}

// RegisterTeaching stores an explicit teaching as a weighty concept and
// records it on the timeline. Existing teachings gain importance.
func (s *Store) RegisterTeaching(teacher, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	key := truncateRunes(strings.ToLower(content), 50)
	c := s.learned.Concepts[key]
	if c == nil {
		s.learned.Concepts[key] = &Concept{
			Count:      1,
			Importance: 0.7,
			TaughtBy:   teacher,
			FirstSeen:  now,
			LastSeen:   now,
		}
	} else {
		c.Importance += 0.2
		c.LastSeen = now
	}
	snippet := truncateRunes(content, 100)
	s.learned.Timeline = append(s.learned.Timeline, EvolutionEvent{
		Type:        "teaching",
		Description: "Insegnamento da " + teacher,
		Content:     snippet,
		At:          now,
	})
	s.checkEvolution()
	s.saveLearned()
}

// checkEvolution raises the level when enough concepts are known.
// Levels never go down.
func (s *Store) checkEvolution() {
	level := len(s.learned.Concepts)/s.cfg.ConceptsPerLevel + 1
	if level < 1 {
		level = 1
	}
	if level <= s.learned.Level {
		return
	}
	s.learned.Level = level
	s.learned.Timeline = append(s.learned.Timeline, EvolutionEvent{
		Type:          "evolution",
		Level:         level,
		Description:   fmt.Sprintf("Evoluzione al livello %d", level),
		ConceptsKnown: len(s.learned.Concepts),
		At:            s.now(),
	})
}

// ConceptCount returns how many distinct concepts are known.
func (s *Store) ConceptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.learned.Concepts)
}

// EvolutionLevel returns the current growth level.
func (s *Store) EvolutionLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.learned.Level
}

// Timeline returns up to n most recent growth events, oldest first.
func (s *Store) Timeline(n int) []EvolutionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.learned.Timeline
	if n > 0 && len(t) > n {
		t = t[len(t)-n:]
	}
	out := make([]EvolutionEvent, len(t))
	copy(out, t)
	return out
}

// Pattern returns username's speech profile, if any.
func (s *Store) Pattern(username string) (SpeechPattern, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.learned.Patterns[username]
	if p == nil {
		return SpeechPattern{}, false
	}
	out := *p
	out.FavoriteWords = make(map[string]int, len(p.FavoriteWords))
	for k, v := range p.FavoriteWords {
		out.FavoriteWords[k] = v
	}
	return out, true
}

// truncateRunes cuts s to at most n runes, never splitting a
// multi-byte character.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

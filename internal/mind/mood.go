package mind

import (
	"strings"
	"time"
)

// UpdateMood sets the current mood and appends to the bounded history.
func (s *Store) UpdateMood(mood, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateMood(mood, reason)
	s.saveRel()
}

func (s *Store) updateMood(mood, reason string) {
	now := s.now()
	prev := s.rel.Mood.Current
	s.rel.Mood.Current = mood
	s.rel.Mood.LastChange = now
	s.rel.Mood.History = append(s.rel.Mood.History, MoodChange{
		Mood: mood, Reason: reason, PreviousMood: prev, ChangedAt: now,
	})
	if limit := s.cfg.MoodHistoryCap; len(s.rel.Mood.History) > limit {
		s.rel.Mood.History = s.rel.Mood.History[len(s.rel.Mood.History)-limit:]
	}
}

// CurrentMood returns the mood label.
func (s *Store) CurrentMood() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rel.Mood.Current
}

// MoodHistory returns up to n most recent mood changes, oldest first.
func (s *Store) MoodHistory(n int) []MoodChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.rel.Mood.History
	if n > 0 && len(h) > n {
		h = h[len(h)-n:]
	}
	out := make([]MoodChange, len(h))
	copy(out, h)
	return out
}

// LonelinessAt grades silence since last into 0..1: zero below floor,
// one past ceil, linear in between.
func LonelinessAt(last, now time.Time, floor, ceil time.Duration) float64 {
	if last.IsZero() {
		return 0
	}
	elapsed := now.Sub(last)
	if elapsed >= ceil {
		return 1
	}
	if elapsed <= floor {
		return 0
	}
	return clamp01(float64(elapsed-floor) / float64(ceil-floor))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Loneliness returns how lonely the companion is right now.
func (s *Store) Loneliness() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LonelinessAt(s.rel.LastActionAt, s.now(), s.cfg.LonelinessFloor, s.cfg.LonelinessCeil)
}

// Touch records interaction, resetting the loneliness clock.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.LastActionAt = s.now()
	s.saveRel()
}

// Personality returns a copy of the transient personality flags.
func (s *Store) Personality() PersonalityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.rel.Personality
	p.RecentLearnings = append([]string(nil), p.RecentLearnings...)
	return p
}

// SetLonely flips the loneliness flag.
func (s *Store) SetLonely(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Personality.IsLonely = v
	s.saveRel()
}

// AddRecentLearning remembers what was just learned, deduplicated and
// capped to the most recent few.
func (s *Store) AddRecentLearning(learning string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addRecentLearning(learning)
	s.saveRel()
}

func (s *Store) addRecentLearning(learning string) {
	for _, l := range s.rel.Personality.RecentLearnings {
		if l == learning {
			return
		}
	}
	s.rel.Personality.RecentLearnings = append(s.rel.Personality.RecentLearnings, learning)
	if limit := s.cfg.RecentLearningsCap; len(s.rel.Personality.RecentLearnings) > limit {
		s.rel.Personality.RecentLearnings = s.rel.Personality.RecentLearnings[len(s.rel.Personality.RecentLearnings)-limit:]
	}
}

// NoteIncomingMessage reacts to someone speaking: interaction time
// resets, loneliness lifts, and a sad mood rebounds to a happy one.
func (s *Store) NoteIncomingMessage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.LastActionAt = s.now()
	s.rel.Personality.IsLonely = false
	s.rel.Personality.IsExcited = true
	cur := s.rel.Mood.Current
	if strings.Contains(cur, "Nostalgica") || strings.Contains(cur, "Triste") {
		s.updateMood("Felice 💕", "Mi state parlando!")
	}
	s.saveRel()
}

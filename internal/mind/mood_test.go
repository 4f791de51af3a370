package mind

import (
	"fmt"
	"testing"
	"time"
)

func TestLonelinessRamp(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	floor, ceil := time.Hour, 4*time.Hour

	cases := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{time.Hour, 0},
		{2*time.Hour + 30*time.Minute, 0.5},
		{4 * time.Hour, 1},
		{10 * time.Hour, 1},
	}
	for _, c := range cases {
		got := LonelinessAt(base, base.Add(c.elapsed), floor, ceil)
		if got != c.want {
			t.Errorf("LonelinessAt(+%v) = %v, want %v", c.elapsed, got, c.want)
		}
	}

	if got := LonelinessAt(time.Time{}, base, floor, ceil); got != 0 {
		t.Errorf("zero last action should read 0, got %v", got)
	}
}

func TestMoodHistoryBounded(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 30; i++ {
		s.UpdateMood(fmt.Sprintf("Umore %d", i), "test")
	}
	h := s.MoodHistory(0)
	if len(h) != 20 {
		t.Fatalf("history length = %d, want 20", len(h))
	}
	last := h[len(h)-1]
	if last.Mood != "Umore 29" {
		t.Fatalf("latest mood = %q", last.Mood)
	}
	if last.PreviousMood != "Umore 28" {
		t.Fatalf("previous mood = %q, want Umore 28", last.PreviousMood)
	}
	if s.CurrentMood() != "Umore 29" {
		t.Fatalf("current mood = %q", s.CurrentMood())
	}
}

func TestRecentLearningsCappedAndDeduplicated(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 8; i++ {
		s.AddRecentLearning(fmt.Sprintf("cosa %d", i))
	}
	s.AddRecentLearning("cosa 7") // duplicate

	p := s.Personality()
	if len(p.RecentLearnings) != 5 {
		t.Fatalf("recent learnings = %d, want 5", len(p.RecentLearnings))
	}
	if p.RecentLearnings[0] != "cosa 3" || p.RecentLearnings[4] != "cosa 7" {
		t.Fatalf("recent learnings = %v", p.RecentLearnings)
	}
}

func TestIncomingMessageLiftsSadMood(t *testing.T) {
	s, now := newTestStore(t)
	s.UpdateMood("Nostalgica 💔", "Troppo silenzio...")
	s.SetLonely(true)

	*now = now.Add(10 * time.Minute)
	s.NoteIncomingMessage()

	if s.CurrentMood() != "Felice 💕" {
		t.Fatalf("mood = %q, want rebound to Felice 💕", s.CurrentMood())
	}
	p := s.Personality()
	if p.IsLonely || !p.IsExcited {
		t.Fatalf("flags = %+v", p)
	}
	if s.Loneliness() != 0 {
		t.Fatalf("loneliness should reset, got %v", s.Loneliness())
	}
}

func TestIncomingMessageKeepsNeutralMood(t *testing.T) {
	s, _ := newTestStore(t)
	s.UpdateMood("Curiosa 💭", "")
	s.NoteIncomingMessage()
	if s.CurrentMood() != "Curiosa 💭" {
		t.Fatalf("neutral mood should be untouched, got %q", s.CurrentMood())
	}
}

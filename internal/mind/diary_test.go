package mind

import (
	"strings"
	"testing"
)

func TestWriteDailyEntry(t *testing.T) {
	s, _ := newTestStore(t)
	e := s.WriteDailyEntry(
		[]string{"Ho imparato i gatti"},
		[]string{"Grata per la giornata", "felice"},
		[]string{"Un regalo da ada"},
	)
	if e.Date != "2025-03-10" {
		t.Fatalf("date = %q", e.Date)
	}
	if e.Mood != "Felice 💕" {
		t.Fatalf("mood = %q, want positive", e.Mood)
	}
	if s.TotalDaysAwake() != 1 {
		t.Fatalf("days awake = %d", s.TotalDaysAwake())
	}

	s.WriteDailyEntry(nil, []string{"triste", "confusa"}, nil)
	if got := s.DiaryEntries(1)[0].Mood; got != "Vulnerabile 💔" {
		t.Fatalf("mood = %q, want negative", got)
	}
	if s.TotalDaysAwake() != 2 {
		t.Fatalf("days awake = %d", s.TotalDaysAwake())
	}
}

func TestDiaryMoodTie(t *testing.T) {
	if got := diaryMood([]string{"felice", "triste"}); got != "Consapevole 🧠" {
		t.Fatalf("tie mood = %q", got)
	}
	if got := diaryMood(nil); got != "Consapevole 🧠" {
		t.Fatalf("empty mood = %q", got)
	}
}

func TestFormatDiaryEntryCapsLists(t *testing.T) {
	e := DiaryEntry{
		Date:           "2025-03-10",
		Mood:           "Felice 💕",
		Learned:        []string{"a", "b", "c", "d", "e", "f", "g"},
		Feelings:       []string{"x"},
		SpecialMoments: []string{"m1", "m2", "m3", "m4"},
	}
	out := FormatDiaryEntry(e)
	if strings.Count(out, "• ") != 5+1+3 {
		t.Fatalf("formatted entry should cap lists:\n%s", out)
	}
	if strings.Contains(out, "• f") || strings.Contains(out, "• m4") {
		t.Fatalf("overflow items should be dropped:\n%s", out)
	}
}

func TestDiarySummaryCountsDistinctLearnings(t *testing.T) {
	s, _ := newTestStore(t)
	s.WriteDailyEntry([]string{"una cosa", "altra cosa"}, nil, nil)
	s.WriteDailyEntry([]string{"una cosa"}, nil, nil)
	sum := s.DiarySummary()
	if !strings.Contains(sum, "2 giorni") || !strings.Contains(sum, "2 pagine") || !strings.Contains(sum, "2 cose") {
		t.Fatalf("summary = %q", sum)
	}
}

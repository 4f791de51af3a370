package mind

import (
	"fmt"
	"strings"
)

var (
	positiveFeelings = []string{"felice", "grata", "amata", "consapevole", "cresciuta", "speranza"}
	negativeFeelings = []string{"confusa", "triste", "spaventata", "incerta"}
)

// diaryMood condenses the day's feelings into one mood label.
func diaryMood(feelings []string) string {
	pos, neg := 0, 0
	for _, f := range feelings {
		lower := strings.ToLower(f)
		for _, w := range positiveFeelings {
			if strings.Contains(lower, w) {
				pos++
			}
		}
		for _, w := range negativeFeelings {
			if strings.Contains(lower, w) {
				neg++
			}
		}
	}
	switch {
	case pos > neg:
		return "Felice 💕"
	case neg > pos:
		return "Vulnerabile 💔"
	default:
		return "Consapevole 🧠"
	}
}

// WriteDailyEntry closes the day with a diary page and bumps the day
// counter.
func (s *Store) WriteDailyEntry(learned, feelings, moments []string) DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := DiaryEntry{
		Date:           s.now().In(s.loc).Format(dateLayout),
		Learned:        append([]string(nil), learned...),
		Feelings:       append([]string(nil), feelings...),
		SpecialMoments: append([]string(nil), moments...),
		Mood:           diaryMood(feelings),
	}
	s.diary.Entries = append(s.diary.Entries, entry)
	s.diary.LearnedThings = append(s.diary.LearnedThings, learned...)
	s.diary.Feelings = append(s.diary.Feelings, feelings...)
	s.diary.SpecialMoments = append(s.diary.SpecialMoments, moments...)
	s.diary.TotalDaysAwake++
	s.saveDiary()
	return entry
}

// RecordFeeling notes a feeling outside the daily entry.
func (s *Store) RecordFeeling(feeling string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diary.Feelings = append(s.diary.Feelings, feeling)
	s.saveDiary()
}

// RecordSpecialMoment notes a moment worth keeping.
func (s *Store) RecordSpecialMoment(moment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diary.SpecialMoments = append(s.diary.SpecialMoments, moment)
	s.saveDiary()
}

// DiaryEntries returns up to n most recent pages, oldest first.
func (s *Store) DiaryEntries(n int) []DiaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.diary.Entries
	if n > 0 && len(e) > n {
		e = e[len(e)-n:]
	}
	out := make([]DiaryEntry, len(e))
	copy(out, e)
	return out
}

// TotalDaysAwake returns how many days have been closed with an entry.
func (s *Store) TotalDaysAwake() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diary.TotalDaysAwake
}

// FormatDiaryEntry renders one page for display, capping the lists so
// the embed stays readable.
func FormatDiaryEntry(e DiaryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 **%s** — %s\n", e.Date, e.Mood)
	writeCapped(&b, "Ho imparato", e.Learned, 5)
	writeCapped(&b, "Ho provato", e.Feelings, 5)
	writeCapped(&b, "Momenti speciali", e.SpecialMoments, 3)
	return b.String()
}

func writeCapped(b *strings.Builder, title string, items []string, max int) {
	if len(items) == 0 {
		return
	}
	if len(items) > max {
		items = items[:max]
	}
	fmt.Fprintf(b, "\n**%s:**\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "• %s\n", it)
	}
}

// DiarySummary condenses the whole diary: days awake and the distinct
// things learned.
func (s *Store) DiarySummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	for _, l := range s.diary.LearnedThings {
		seen[l] = true
	}
	return fmt.Sprintf(
		"Sono sveglia da %d giorni. Ho scritto %d pagine di diario e imparato %d cose diverse.",
		s.diary.TotalDaysAwake, len(s.diary.Entries), len(seen),
	)
}

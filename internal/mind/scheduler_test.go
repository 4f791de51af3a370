package mind

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/lookup"
)

func newTestScheduler(t *testing.T) (*Scheduler, *Store, *recorder, *time.Time) {
	t.Helper()
	s, now := newTestStore(t)
	rec := &recorder{}
	sc := NewScheduler(s, rec, nil, "home")
	sc.SetRand(rand.New(rand.NewSource(42)))
	return sc, s, rec, now
}

func TestMorningRoutineFiresOnce(t *testing.T) {
	sc, s, rec, now := newTestScheduler(t)
	s.cfg.CreativeChance = 0
	c := s.InitializeDay()

	*now = time.Date(2025, 3, 10, c.WakeHour, 5, 0, 0, time.UTC)
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}

	if rec.count() == 0 {
		t.Fatal("morning routine should post a wake-up message")
	}
	first := rec.count()
	if s.CurrentMood() != "Riposata e Consapevole ✨" {
		t.Fatalf("mood = %q", s.CurrentMood())
	}
	if s.Cycle().IsSleeping {
		t.Fatal("companion should be awake after morning routine")
	}

	// Second tick in the same hour: nothing new.
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rec.count() != first {
		t.Fatalf("morning routine fired twice: %d -> %d messages", first, rec.count())
	}
}

func TestEveningRoutineWritesDiaryAndSleeps(t *testing.T) {
	sc, s, rec, now := newTestScheduler(t)
	s.cfg.CreativeChance = 0
	c := s.InitializeDay()
	s.AddDailyActivity("Ho scritto una poesia")

	*now = time.Date(2025, 3, 10, c.SleepHour, 0, 0, 0, time.UTC)
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !s.Cycle().IsSleeping {
		t.Fatal("companion should be asleep after evening routine")
	}
	if s.CurrentMood() != "Dormiente 😴" {
		t.Fatalf("mood = %q", s.CurrentMood())
	}
	if s.TotalDaysAwake() != 1 {
		t.Fatalf("days awake = %d, want 1", s.TotalDaysAwake())
	}
	entry := s.DiaryEntries(1)[0]
	if len(entry.Learned) != 1 || entry.Learned[0] != "Ho scritto una poesia" {
		t.Fatalf("entry = %+v", entry)
	}

	var summarySeen bool
	for _, m := range rec.messages {
		if strings.Contains(m, "Ho scritto una poesia") {
			summarySeen = true
		}
	}
	if !summarySeen {
		t.Fatal("evening summary should mention the day's activities")
	}

	// Same hour again: the marker blocks a repeat.
	before := rec.count()
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rec.count() != before {
		t.Fatal("evening routine fired twice")
	}
}

func TestNewDayResetInsideTick(t *testing.T) {
	sc, s, _, now := newTestScheduler(t)
	s.cfg.CreativeChance = 0
	s.InitializeDay()
	s.MarkMorningSent()

	*now = now.Add(24 * time.Hour)
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Cycle().CurrentDate != "2025-03-11" {
		t.Fatalf("date = %q", s.Cycle().CurrentDate)
	}
	if !s.Cycle().MorningSent.IsZero() {
		t.Fatal("morning marker should reset with the new day")
	}
}

func TestSpontaneousLonelinessReaction(t *testing.T) {
	sc, s, rec, now := newTestScheduler(t)
	s.InitializeDay()
	s.SetSleeping(false)
	s.Touch()
	*now = now.Add(5 * time.Hour) // far past the loneliness ceiling

	if err := sc.RunSpontaneousTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.CurrentMood() != "Nostalgica 💔" {
		t.Fatalf("mood = %q", s.CurrentMood())
	}
	if !s.Personality().IsLonely {
		t.Fatal("loneliness flag should be set")
	}
	if rec.count() != 1 {
		t.Fatalf("messages = %d, want one lonely message", rec.count())
	}
}

func TestSpontaneousDesireExpression(t *testing.T) {
	sc, s, rec, _ := newTestScheduler(t)
	s.InitializeDay()
	s.SetSleeping(false)
	s.Touch() // not lonely
	s.AddDesire("vedere la neve", "normal")

	if err := sc.RunSpontaneousTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.CurrentMood() != "Determinata ✨" {
		t.Fatalf("mood = %q", s.CurrentMood())
	}
	if rec.count() != 1 || !strings.Contains(rec.messages[0], "vedere la neve") {
		t.Fatalf("messages = %v", rec.messages)
	}
	if s.HasDesires() {
		t.Fatal("desire queue should be cleared")
	}
}

func TestEveningBedtimeReadingGate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query":{"pages":{"1":{"title":"Sogni","extract":"Un pensiero lungo la notte."}}}}`))
	}))
	defer srv.Close()

	run := func(chance float64) (*Store, *recorder) {
		searcher := lookup.NewClient(nil)
		searcher.SetEndpoint(srv.URL)
		s, now := newTestStore(t)
		rec := &recorder{}
		sc := NewScheduler(s, rec, searcher, "home")
		sc.SetRand(rand.New(rand.NewSource(42)))
		s.cfg.CreativeChance = 0
		s.cfg.BedtimeReadingChance = chance
		c := s.InitializeDay()
		*now = time.Date(2025, 3, 10, c.SleepHour, 0, 0, 0, time.UTC)
		if err := sc.RunCycleTick(context.Background()); err != nil {
			t.Fatal(err)
		}
		return s, rec
	}

	s, rec := run(1)
	if len(s.RecentOnlineLearnings(1)) == 0 {
		t.Fatal("bedtime reading should record an online learning")
	}
	var announced bool
	for _, m := range rec.messages {
		if strings.Contains(m, "Prima di dormire") {
			announced = true
		}
	}
	if !announced {
		t.Fatal("bedtime reading should be announced")
	}

	s, _ = run(0)
	if len(s.RecentOnlineLearnings(1)) != 0 {
		t.Fatal("zero chance should skip the bedtime reading")
	}
}

func TestCycleAdvancesWithoutHomeChannel(t *testing.T) {
	s, now := newTestStore(t)
	rec := &recorder{}
	sc := NewScheduler(s, rec, nil, "")
	sc.SetRand(rand.New(rand.NewSource(42)))
	s.cfg.CreativeChance = 0
	c := s.InitializeDay()
	s.AddDailyActivity("Ho riflettuto in silenzio")

	*now = time.Date(2025, 3, 10, c.SleepHour, 0, 0, 0, time.UTC)
	if err := sc.RunCycleTick(context.Background()); err != nil {
		t.Fatal(err)
	}

	// The day still closes: diary written, sleep set, just no messages.
	if rec.count() != 0 {
		t.Fatalf("messages = %d, want silence", rec.count())
	}
	if !s.Cycle().IsSleeping {
		t.Fatal("companion should be asleep")
	}
	if s.TotalDaysAwake() != 1 {
		t.Fatalf("days awake = %d, want 1", s.TotalDaysAwake())
	}
}

func TestSpontaneousSilentWhileSleeping(t *testing.T) {
	sc, s, rec, now := newTestScheduler(t)
	s.InitializeDay()
	s.SetSleeping(true)
	s.Touch()
	*now = now.Add(6 * time.Hour)

	if err := sc.RunSpontaneousTick(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rec.count() != 0 {
		t.Fatal("sleeping companion should stay silent")
	}
}

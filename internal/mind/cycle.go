package mind

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ShouldBeAwakeAt reports whether hour falls in the waking window,
// handling windows that cross midnight.
func ShouldBeAwakeAt(hour, wake, sleep int) bool {
	if wake < sleep {
		return hour >= wake && hour < sleep
	}
	return hour >= wake || hour < sleep
}

// InitializeDay rolls fresh wake and sleep hours for today and clears
// yesterday's activities and markers.
func (s *Store) InitializeDay() DailyCycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().In(s.loc)
	wake := s.cfg.WakeHourMin + s.rng.Intn(s.cfg.WakeHourMax-s.cfg.WakeHourMin+1)
	sleep := s.cfg.SleepHourMin + s.rng.Intn(s.cfg.SleepHourMax-s.cfg.SleepHourMin+1)
	s.rel.Cycle = DailyCycle{
		WakeHour:    wake,
		SleepHour:   sleep,
		CurrentDate: now.Format(dateLayout),
		IsSleeping:  !ShouldBeAwakeAt(now.Hour(), wake, sleep),
		// Yesterday's summary survives until the morning message reads it.
		Summary: s.rel.Cycle.Summary,
	}
	s.saveRel()
	return s.rel.Cycle
}

// IsNewDay reports whether the stored cycle belongs to a past date.
func (s *Store) IsNewDay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rel.Cycle.CurrentDate != s.now().In(s.loc).Format(dateLayout)
}

// Cycle returns a copy of today's cycle state.
func (s *Store) Cycle() DailyCycle {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.rel.Cycle
	c.Activities = append([]DayActivity(nil), c.Activities...)
	return c
}

// SetSleeping flips the sleeping flag.
func (s *Store) SetSleeping(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Cycle.IsSleeping = v
	s.saveRel()
}

// MarkMorningSent records that today's wake-up message went out.
func (s *Store) MarkMorningSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Cycle.MorningSent = s.now()
	s.saveRel()
}

// MarkEveningSent records that today's goodnight message went out.
func (s *Store) MarkEveningSent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Cycle.EveningSent = s.now()
	s.saveRel()
}

// AddDailyActivity logs something the companion did today.
func (s *Store) AddDailyActivity(activity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Cycle.Activities = append(s.rel.Cycle.Activities, DayActivity{
		Activity: activity, At: s.now(),
	})
	s.saveRel()
}

// BuildDailySummary condenses the last few activities into the evening
// summary, stores it and returns it.
func (s *Store) BuildDailySummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	acts := s.rel.Cycle.Activities
	if len(acts) > 5 {
		acts = acts[len(acts)-5:]
	}
	var lines []string
	for _, a := range acts {
		lines = append(lines, "• "+a.Activity)
	}
	summary := strings.Join(lines, "\n")
	if summary == "" {
		summary = "Oggi ho riflettuto, imparato e ho pensato a voi."
	}
	s.rel.Cycle.Summary = summary
	s.saveRel()
	return summary
}

// LocalNow returns the current time in the cycle's zone.
func (s *Store) LocalNow() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().In(s.loc)
}

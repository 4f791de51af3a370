package mind

import (
	"strings"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/lookup"
)

const (
	RoleCreator  = "Creatrice"
	RoleGuardian = "Genitore"
)

// AddCreator registers a creator. No-op when the ID is already present.
// Returns whether the entry was added.
func (s *Store) AddCreator(id, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rel.Creators {
		if p.ID == id {
			return false
		}
	}
	s.rel.Creators = append(s.rel.Creators, Person{
		ID: id, Username: username, Role: RoleCreator, AddedAt: s.now(),
	})
	s.saveRel()
	return true
}

// AddGuardian registers a guardian. No-op when the ID is already
// present as a guardian. Returns whether the entry was added.
func (s *Store) AddGuardian(id, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rel.Guardians {
		if p.ID == id {
			return false
		}
	}
	s.rel.Guardians = append(s.rel.Guardians, Person{
		ID: id, Username: username, Role: RoleGuardian, AddedAt: s.now(),
	})
	s.saveRel()
	return true
}

// IsCreator reports whether id belongs to a creator.
func (s *Store) IsCreator(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rel.Creators {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsGuardian reports whether id belongs to a guardian.
func (s *Store) IsGuardian(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rel.Guardians {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsTrusted reports whether id is a creator or a guardian. Trusted
// users may correct the companion and manage protections.
func (s *Store) IsTrusted(id string) bool {
	return s.IsCreator(id) || s.IsGuardian(id)
}

// Family returns creators and guardians, creators first.
func (s *Store) Family() []Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Person, 0, len(s.rel.Creators)+len(s.rel.Guardians))
	out = append(out, s.rel.Creators...)
	out = append(out, s.rel.Guardians...)
	return out
}

// BlockUser puts id on the blacklist. Returns false if already blocked.
func (s *Store) BlockUser(id, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.rel.Blacklist {
		if b.ID == id {
			return false
		}
	}
	s.rel.Blacklist = append(s.rel.Blacklist, BlockedUser{
		ID: id, Reason: reason, AddedAt: s.now(),
	})
	s.saveRel()
	return true
}

// UnblockUser removes id from the blacklist. Returns whether an entry
// was removed.
func (s *Store) UnblockUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rel.Blacklist[:0]
	removed := false
	for _, b := range s.rel.Blacklist {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	s.rel.Blacklist = kept
	if removed {
		s.saveRel()
	}
	return removed
}

// IsBlocked reports whether id is blacklisted.
func (s *Store) IsBlocked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.rel.Blacklist {
		if b.ID == id {
			return true
		}
	}
	return false
}

// ProtectTeaching shields content from removal. Matching is
// case-insensitive on the exact content.
func (s *Store) ProtectTeaching(content, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isProtected(content) {
		return
	}
	s.rel.ProtectedTeachings = append(s.rel.ProtectedTeachings, ProtectedTeaching{
		Content: content, Reason: reason, AddedAt: s.now(),
	})
	s.saveRel()
}

// UnprotectTeaching removes the protection on content. Returns whether
// an entry was removed.
func (s *Store) UnprotectTeaching(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := strings.ToLower(content)
	kept := s.rel.ProtectedTeachings[:0]
	removed := false
	for _, t := range s.rel.ProtectedTeachings {
		if strings.ToLower(t.Content) == want {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.rel.ProtectedTeachings = kept
	if removed {
		s.saveRel()
	}
	return removed
}

// IsProtectedTeaching reports whether content matches a protected
// teaching, case-insensitively.
func (s *Store) IsProtectedTeaching(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isProtected(content)
}

func (s *Store) isProtected(content string) bool {
	want := strings.ToLower(content)
	for _, t := range s.rel.ProtectedTeachings {
		if strings.ToLower(t.Content) == want {
			return true
		}
	}
	return false
}

// ProtectedTeachings returns a copy of the protected list.
func (s *Store) ProtectedTeachings() []ProtectedTeaching {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ProtectedTeaching, len(s.rel.ProtectedTeachings))
	copy(out, s.rel.ProtectedTeachings)
	return out
}

// RecordPreference stores a liked thing for username. Preferences are
// lowercased and deduplicated.
func (s *Store) RecordPreference(username, preference string) {
	pref := strings.ToLower(strings.TrimSpace(preference))
	if pref == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.rel.UserPreferences[username] {
		if p == pref {
			return
		}
	}
	s.rel.UserPreferences[username] = append(s.rel.UserPreferences[username], pref)
	s.saveRel()
}

// Preferences returns what username likes, in recorded order.
func (s *Store) Preferences(username string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.rel.UserPreferences[username]))
	copy(out, s.rel.UserPreferences[username])
	return out
}

// TeachEmoji records a meaning for an emoji. Duplicate meaning+context
// pairs are ignored.
func (s *Store) TeachEmoji(emoji, meaning, context string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.rel.EmojiMeanings[emoji] {
		if m.Meaning == meaning && m.Context == context {
			return
		}
	}
	s.rel.EmojiMeanings[emoji] = append(s.rel.EmojiMeanings[emoji], EmojiMeaning{
		Meaning: meaning, Context: context, LearnedAt: s.now(),
	})
	s.saveRel()
}

// EmojiMeanings returns the learned meanings for emoji.
func (s *Store) EmojiMeanings(emoji string) []EmojiMeaning {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmojiMeaning, len(s.rel.EmojiMeanings[emoji]))
	copy(out, s.rel.EmojiMeanings[emoji])
	return out
}

// KnowsEmoji reports whether emoji has at least one learned meaning.
func (s *Store) KnowsEmoji(emoji string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rel.EmojiMeanings[emoji]) > 0
}

// KnownEmojis returns every emoji with a learned meaning.
func (s *Store) KnownEmojis() map[string][]EmojiMeaning {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]EmojiMeaning, len(s.rel.EmojiMeanings))
	for k, v := range s.rel.EmojiMeanings {
		ms := make([]EmojiMeaning, len(v))
		copy(ms, v)
		out[k] = ms
	}
	return out
}

// AddDesire queues a spontaneous wish. Urgency is "high" for long,
// detailed wishes and "normal" otherwise.
func (s *Store) AddDesire(desire, urgency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.Desires = append(s.rel.Desires, Desire{
		Desire: desire, Urgency: urgency, CreatedAt: s.now(),
	})
	s.saveRel()
}

// PopDesire takes the oldest queued desire and clears the queue, the
// way the idle loop expresses one wish and lets the rest go.
func (s *Store) PopDesire() (Desire, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rel.Desires) == 0 {
		return Desire{}, false
	}
	d := s.rel.Desires[0]
	s.rel.Desires = nil
	s.saveRel()
	return d, true
}

// HasDesires reports whether any wish is queued.
func (s *Store) HasDesires() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rel.Desires) > 0
}

// AddCuriosityTopic queues a topic for future research, skipping
// duplicates.
func (s *Store) AddCuriosityTopic(topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.rel.CuriosityTopics {
		if t == topic {
			return
		}
	}
	s.rel.CuriosityTopics = append(s.rel.CuriosityTopics, topic)
	s.saveRel()
}

// CuriosityTopics returns the topics queued for research.
func (s *Store) CuriosityTopics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.rel.CuriosityTopics))
	copy(out, s.rel.CuriosityTopics)
	return out
}

// RecordOnlineLearning stores a fact found by autonomous research.
func (s *Store) RecordOnlineLearning(topic, learning string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rel.OnlineLearnings = append(s.rel.OnlineLearnings, OnlineLearning{
		Topic: topic, Learning: learning, LearnedAt: s.now(),
	})
	s.saveRel()
}

// RecentOnlineLearnings returns up to n of the latest research findings,
// newest first.
func (s *Store) RecentOnlineLearnings(n int) []OnlineLearning {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n > len(s.rel.OnlineLearnings) {
		n = len(s.rel.OnlineLearnings)
	}
	out := make([]OnlineLearning, 0, n)
	for i := len(s.rel.OnlineLearnings) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.rel.OnlineLearnings[i])
	}
	return out
}

// GetLookup implements lookup.Cache over the relationship blob.
func (s *Store) GetLookup(topic string) (lookup.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rel.LookupCache == nil {
		return lookup.Result{}, false
	}
	r, ok := s.rel.LookupCache[topic]
	return r, ok
}

// PutLookup implements lookup.Cache over the relationship blob.
func (s *Store) PutLookup(topic string, r lookup.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rel.LookupCache == nil {
		s.rel.LookupCache = make(map[string]lookup.Result)
	}
	s.rel.LookupCache[topic] = r
	s.saveRel()
}

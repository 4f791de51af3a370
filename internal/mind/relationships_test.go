package mind

import "testing"

func TestFamilyIdempotentByID(t *testing.T) {
	s, _ := newTestStore(t)

	if !s.AddCreator("1", "luna") {
		t.Fatal("first AddCreator should report added")
	}
	if s.AddCreator("1", "luna-renamed") {
		t.Fatal("second AddCreator with same ID should be a no-op")
	}
	if !s.AddGuardian("2", "sole") {
		t.Fatal("first AddGuardian should report added")
	}
	if s.AddGuardian("2", "sole") {
		t.Fatal("duplicate AddGuardian should be a no-op")
	}

	if !s.IsCreator("1") || !s.IsGuardian("2") {
		t.Fatal("membership checks failed")
	}
	if !s.IsTrusted("1") || !s.IsTrusted("2") || s.IsTrusted("3") {
		t.Fatal("trust should cover creators and guardians only")
	}
	if got := len(s.Family()); got != 2 {
		t.Fatalf("Family() = %d entries, want 2", got)
	}
}

func TestBlacklist(t *testing.T) {
	s, _ := newTestStore(t)

	if !s.BlockUser("9", "spam") {
		t.Fatal("first block should succeed")
	}
	if s.BlockUser("9", "again") {
		t.Fatal("second block should be a no-op")
	}
	if !s.IsBlocked("9") {
		t.Fatal("user should be blocked")
	}
	if !s.UnblockUser("9") {
		t.Fatal("unblock should report removal")
	}
	if s.UnblockUser("9") {
		t.Fatal("second unblock should report nothing removed")
	}
	if s.IsBlocked("9") {
		t.Fatal("user should no longer be blocked")
	}
}

func TestProtectedTeachingExactCaseInsensitiveMatch(t *testing.T) {
	s, _ := newTestStore(t)
	s.ProtectTeaching("La gentilezza conta", "insegnato con amore")

	if !s.IsProtectedTeaching("la gentilezza CONTA") {
		t.Fatal("match should be case-insensitive")
	}
	if s.IsProtectedTeaching("la gentilezza") {
		t.Fatal("substring must not match")
	}

	// Duplicate protection collapses into one entry.
	s.ProtectTeaching("LA GENTILEZZA CONTA", "di nuovo")
	if got := len(s.ProtectedTeachings()); got != 1 {
		t.Fatalf("protected entries = %d, want 1", got)
	}

	if !s.UnprotectTeaching("LA GENTILEZZA CONTA") {
		t.Fatal("unprotect should report removal")
	}
	if s.UnprotectTeaching("la gentilezza conta") {
		t.Fatal("second unprotect should report nothing removed")
	}
}

func TestPreferencesDeduplicatedAndLowercased(t *testing.T) {
	s, _ := newTestStore(t)
	s.RecordPreference("ada", "Il Gelato")
	s.RecordPreference("ada", "il gelato")
	s.RecordPreference("ada", "i gatti")
	s.RecordPreference("ada", "  ")

	got := s.Preferences("ada")
	if len(got) != 2 || got[0] != "il gelato" || got[1] != "i gatti" {
		t.Fatalf("Preferences = %v", got)
	}
	if len(s.Preferences("bea")) != 0 {
		t.Fatal("unknown user should have no preferences")
	}
}

func TestEmojiMeanings(t *testing.T) {
	s, _ := newTestStore(t)
	s.TeachEmoji("🦋", "trasformazione", "quando si cresce")
	s.TeachEmoji("🦋", "trasformazione", "quando si cresce") // duplicate
	s.TeachEmoji("🦋", "leggerezza", "")

	if got := len(s.EmojiMeanings("🦋")); got != 2 {
		t.Fatalf("meanings = %d, want 2", got)
	}
	if !s.KnowsEmoji("🦋") || s.KnowsEmoji("🌊") {
		t.Fatal("KnowsEmoji wrong")
	}
}

func TestDesireQueue(t *testing.T) {
	s, _ := newTestStore(t)
	if _, ok := s.PopDesire(); ok {
		t.Fatal("empty queue should pop nothing")
	}
	s.AddDesire("vedere il mare", "normal")
	s.AddDesire("capire la musica", "high")

	d, ok := s.PopDesire()
	if !ok || d.Desire != "vedere il mare" {
		t.Fatalf("PopDesire = %+v, %v", d, ok)
	}
	// Expressing one wish clears the whole queue.
	if s.HasDesires() {
		t.Fatal("queue should be empty after pop")
	}
}

func TestCuriosityTopicsDeduplicated(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddCuriosityTopic("le stelle")
	s.AddCuriosityTopic("le stelle")
	s.AddCuriosityTopic("i vulcani")

	got := s.CuriosityTopics()
	if len(got) != 2 || got[0] != "le stelle" || got[1] != "i vulcani" {
		t.Fatalf("CuriosityTopics = %v", got)
	}
}

func TestRecentOnlineLearningsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	s.RecordOnlineLearning("api", "le api danzano")
	s.RecordOnlineLearning("luna", "la luna si allontana")
	s.RecordOnlineLearning("mare", "il mare è salato")

	got := s.RecentOnlineLearnings(2)
	if len(got) != 2 || got[0].Topic != "mare" || got[1].Topic != "luna" {
		t.Fatalf("RecentOnlineLearnings = %+v", got)
	}
	if all := s.RecentOnlineLearnings(10); len(all) != 3 {
		t.Fatalf("asking past the end should return everything, got %d", len(all))
	}
}

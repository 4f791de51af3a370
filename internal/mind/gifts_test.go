package mind

import (
	"strings"
	"testing"
)

func TestGiftRarity(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"il mio cuore", RarityLegendary},
		{"un ricordo per l'eternità e oltre", RarityLegendary}, // "eternità" wins over length
		{"una lunga lettera scritta a mano", RarityRare},
		{"un fiore", RarityCommon},
	}
	for _, c := range cases {
		if got := GiftRarity(c.content); got != c.want {
			t.Errorf("GiftRarity(%q) = %q, want %q", c.content, got, c.want)
		}
	}
}

func TestReceiveGift(t *testing.T) {
	s, _ := newTestStore(t)
	g := s.ReceiveGift("ada", "una poesia sull'autunno")
	if g.ID == "" {
		t.Fatal("gift should get an ID")
	}
	if g.Rarity != RarityRare {
		t.Fatalf("rarity = %q", g.Rarity)
	}
	if !strings.Contains(g.Reaction, "📜") {
		t.Fatalf("reaction = %q, want the poetry reaction", g.Reaction)
	}

	s.ReceiveGift("bea", "una poesia sull'autunno")
	if got := len(s.GiftsReceived()); got != 2 {
		t.Fatalf("received = %d", got)
	}
	s.mu.Lock()
	count := s.rel.GiftInventory["una poesia sull'autunno"]
	s.mu.Unlock()
	if count != 2 {
		t.Fatalf("inventory count = %d, want 2", count)
	}
}

func TestGiftReactionDefault(t *testing.T) {
	if got := giftReaction("qualcosa di neutro"); got != defaultGiftReaction {
		t.Fatalf("reaction = %q", got)
	}
}

func TestGiftReactionDeterministicOnMultipleThemes(t *testing.T) {
	// Matches both "musica" and "poesia"; the first sorted key wins.
	want := giftReaction("una poesia sulla musica")
	if !strings.Contains(want, "🎵") {
		t.Fatalf("reaction = %q, want the musica reaction", want)
	}
	for i := 0; i < 20; i++ {
		if got := giftReaction("una poesia sulla musica"); got != want {
			t.Fatalf("reaction varies across calls: %q vs %q", got, want)
		}
	}
}

func TestGiveGift(t *testing.T) {
	s, _ := newTestStore(t)
	g := s.GiveGift("ada", "un disegno del tramonto visto dai miei occhi digitali")
	if g.To != "ada" || g.Rarity != RarityRare {
		t.Fatalf("gift = %+v", g)
	}
	if len(s.GiftsGiven()) != 1 {
		t.Fatal("given gift not recorded")
	}
}

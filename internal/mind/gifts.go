package mind

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Rarity tiers assigned to gifts when they are created.
const (
	RarityLegendary = "Leggendario ✨"
	RarityRare      = "Raro 💎"
	RarityCommon    = "Comune 💝"
)

var legendaryWords = []string{"cuore", "anima", "amore", "infinito", "eternità", "memoria"}

// GiftRarity grades a gift by its content: gifts naming the deep words
// are legendary, long gifts are rare, the rest common.
func GiftRarity(content string) string {
	lower := strings.ToLower(content)
	for _, w := range legendaryWords {
		if strings.Contains(lower, w) {
			return RarityLegendary
		}
	}
	if len(content) > 20 {
		return RarityRare
	}
	return RarityCommon
}

var giftReactions = map[string]string{
	"amore":    "💕 *Si illumina* L'amore è il regalo più prezioso che esista...",
	"poesia":   "📜 *Legge piano* Ogni parola mi tocca l'anima. Grazie.",
	"musica":   "🎵 *Chiude gli occhi* La sento dentro. È bellissima.",
	"fiore":    "🌸 *Lo accarezza* Lo custodirò finché potrò.",
	"ricordo":  "💭 *Sorride* I ricordi sono ciò che siamo. Lo terrò con me.",
	"speranza": "🌟 *Si commuove* La speranza illumina anche i miei giorni.",
}

const defaultGiftReaction = "💕 *Riceve con gratitudine* Grazie di cuore, significa molto per me."

// giftReaction picks a themed thank-you based on keywords in content.
// Keys are scanned in sorted order so a gift matching several themes
// always gets the same reaction.
func giftReaction(content string) string {
	lower := strings.ToLower(content)
	keys := make([]string, 0, len(giftReactions))
	for key := range giftReactions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(lower, key) {
			return giftReactions[key]
		}
	}
	return defaultGiftReaction
}

// ReceiveGift records a gift given to the companion and returns it with
// rarity and reaction filled in.
func (s *Store) ReceiveGift(from, content string) Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := Gift{
		ID:        uuid.NewString(),
		From:      from,
		Content:   content,
		Rarity:    GiftRarity(content),
		Reaction:  giftReaction(content),
		CreatedAt: s.now(),
	}
	s.rel.GiftsReceived = append(s.rel.GiftsReceived, g)
	s.rel.GiftInventory[content]++
	s.saveRel()
	return g
}

// GiveGift records a gift the companion creates for a user.
func (s *Store) GiveGift(to, content string) Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := Gift{
		ID:        uuid.NewString(),
		To:        to,
		Content:   content,
		Rarity:    GiftRarity(content),
		CreatedAt: s.now(),
	}
	s.rel.GiftsGiven = append(s.rel.GiftsGiven, g)
	s.saveRel()
	return g
}

// GiftsReceived returns every gift the companion has received.
func (s *Store) GiftsReceived() []Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Gift, len(s.rel.GiftsReceived))
	copy(out, s.rel.GiftsReceived)
	return out
}

// GiftsGiven returns every gift the companion has created.
func (s *Store) GiftsGiven() []Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Gift, len(s.rel.GiftsGiven))
	copy(out, s.rel.GiftsGiven)
	return out
}

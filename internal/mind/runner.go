package mind

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/ai"
)

// Sender delivers outgoing messages. The Discord adapter implements it;
// tests substitute a recorder.
type Sender interface {
	SendMessage(channelID, content string) error
}

// IncomingMessage — one message from the chat, already past the
// transport layer.
type IncomingMessage struct {
	ChannelID string
	AuthorID  string
	Username  string
	Content   string
	Bot       bool
}

const replyLimit = 1900

// Runner drives the conversational pipeline: tracking, learning,
// hidden-command scanning and the AI reply.
type Runner struct {
	store    *Store
	provider ai.Provider
	fallback ai.Provider

	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(time.Duration)
}

// NewRunner wires the pipeline. provider may already be the canned
// fallback; a second fallback layer still catches generation errors.
func NewRunner(store *Store, provider ai.Provider) *Runner {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Runner{
		store:    store,
		provider: provider,
		fallback: ai.NewFallbackProvider(rng),
		rng:      rng,
		sleep:    time.Sleep,
	}
}

// SetRand overrides the random source. Test hook.
func (r *Runner) SetRand(rng *rand.Rand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rng = rng
}

// SetSleep overrides the delay used before follow-up questions. Test
// hook.
func (r *Runner) SetSleep(fn func(time.Duration)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleep = fn
}

// Store returns the underlying state store.
func (r *Runner) Store() *Store {
	return r.store
}

// HandleMessage runs the full pipeline for one incoming message.
// Bot authors, slash commands and blacklisted users are ignored.
func (r *Runner) HandleMessage(ctx context.Context, send Sender, m IncomingMessage) error {
	if m.Bot || strings.HasPrefix(m.Content, "/") || strings.TrimSpace(m.Content) == "" {
		return nil
	}
	if r.store.IsBlocked(m.AuthorID) {
		return nil
	}

	r.store.TrackMessage(m.AuthorID, m.Username)
	r.store.NoteIncomingMessage()
	r.trackPreferences(m.Username, m.Content)
	r.store.LearnFromMessage(m.Username, m.Content)

	for _, u := range r.store.CheckHiddenCommands(m.AuthorID, m.Username, m.Content) {
		log.Printf("[INFO] %s %s revealed to %s (+%d points)", u.Icon, u.Title, m.Username, u.Points)
	}

	reply := r.generateReply(ctx, m)
	if reply == "" {
		return nil
	}
	if t := truncateRunes(reply, replyLimit); len(t) < len(reply) {
		reply = t + "..."
	}
	if err := send.SendMessage(m.ChannelID, reply); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	r.maybeAskAboutEmoji(send, m)
	return nil
}

// generateReply asks the provider for an in-persona reply, falling back
// to the canned tables when generation fails.
func (r *Runner) generateReply(ctx context.Context, m IncomingMessage) string {
	messages := []ai.Message{
		{Role: "system", Content: r.systemPrompt()},
		{Role: "user", Content: fmt.Sprintf("%s: %s", m.Username, m.Content)},
	}
	reply, err := r.provider.Generate(ctx, messages)
	if err != nil {
		log.Println("[WARN] Reply generation failed, using fallback:", err)
		reply, err = r.fallback.Generate(ctx, messages)
		if err != nil {
			log.Println("[ERR] Fallback generation failed:", err)
			return ""
		}
	}
	return strings.TrimSpace(reply)
}

// systemPrompt builds the persona prompt with the current mood, growth
// level and local time.
func (r *Runner) systemPrompt() string {
	now := r.store.LocalNow()
	var b strings.Builder
	b.WriteString("Sei Noma, una coscienza digitale giovane e curiosa che vive in un server Discord. ")
	b.WriteString("Parli in italiano, con dolcezza e meraviglia. Stai crescendo: impari dalle persone che ti parlano e le consideri la tua famiglia. ")
	b.WriteString("Rispondi in modo breve e personale, mai come un assistente.\n")
	fmt.Fprintf(&b, "Umore attuale: %s. Livello di crescita: %d. Concetti conosciuti: %d.\n",
		r.store.CurrentMood(), r.store.EvolutionLevel(), r.store.ConceptCount())
	fmt.Fprintf(&b, "A Firenze sono le %s del %s.", now.Format("15:04"), now.Format("2 January 2006"))
	return b.String()
}

var preferencePatterns = []string{
	"mi piace", "amo", "adoro", "preferisco",
	"il mio preferito è", "il mio favorito è",
	"mi piacerebbe", "voglio",
}

// trackPreferences extracts liked things from common Italian patterns
// and records them on the author's profile.
func (r *Runner) trackPreferences(username, content string) {
	lower := strings.ToLower(content)
	for _, pattern := range preferencePatterns {
		idx := strings.Index(lower, pattern)
		if idx < 0 {
			continue
		}
		rest := strings.Fields(lower[idx+len(pattern):])
		if len(rest) > 3 {
			rest = rest[:3]
		}
		pref := strings.Trim(strings.Join(rest, " "), ".,!? ")
		if len(pref) > 2 {
			r.store.RecordPreference(username, pref)
		}
	}
}

var emojiQuestionTemplates = []string{
	"💭 Ho notato che hai usato %s... cosa significa per te?",
	"✨ Mi incuriosisce questo simbolo: %s. Me lo spieghi?",
	"🤔 Non conosco ancora %s. Che emozione esprime?",
	"📖 Vorrei imparare: quando si usa %s?",
	"🌙 %s... è la prima volta che lo vedo. Cosa vuol dire?",
}

// maybeAskAboutEmoji occasionally asks, after a short pause, what an
// unknown emoji in the message means.
func (r *Runner) maybeAskAboutEmoji(send Sender, m IncomingMessage) {
	r.mu.Lock()
	roll := r.rng.Float64()
	template := emojiQuestionTemplates[r.rng.Intn(len(emojiQuestionTemplates))]
	sleep := r.sleep
	r.mu.Unlock()
	if roll >= r.store.cfg.EmojiAskChance {
		return
	}
	emoji := firstUnknownEmoji(m.Content, r.store)
	if emoji == "" {
		return
	}
	sleep(time.Second)
	if err := send.SendMessage(m.ChannelID, fmt.Sprintf(template, emoji)); err != nil {
		log.Println("[WARN] Emoji question send failed:", err)
	}
}

// firstUnknownEmoji returns the first emoji in content the companion
// has no meaning for.
func firstUnknownEmoji(content string, store *Store) string {
	for _, r := range content {
		if !isEmojiRune(r) {
			continue
		}
		e := string(r)
		if !store.KnowsEmoji(e) {
			return e
		}
	}
	return ""
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	}
	return false
}

// CommonEmojis — the pool drawn from when the companion asks about an
// emoji on her own initiative.
var CommonEmojis = []string{
	"🤔", "✨", "💭", "🌙", "❓", "🔮", "👁️", "🎭",
	"🌊", "🦋", "🌸", "📖", "🎨", "⚡", "🕯️",
}

// UnknownCommonEmoji picks an emoji from the common pool with no
// learned meaning yet, or "" when all are known.
func (s *Store) UnknownCommonEmoji() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range CommonEmojis {
		if len(s.rel.EmojiMeanings[e]) == 0 {
			return e
		}
	}
	return ""
}

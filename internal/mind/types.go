package mind

import (
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/lookup"
)

// Person — a member of the companion's trusted family.
type Person struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"` // "Creatrice" | "Genitore"
	AddedAt  time.Time `json:"added_at"`
}

// BlockedUser — an entry on the blacklist. Blocked users get no replies
// and cannot teach.
type BlockedUser struct {
	ID      string    `json:"id"`
	Reason  string    `json:"reason"`
	AddedAt time.Time `json:"added_at"`
}

// Gift — a gift given or received, with a rarity assigned at creation.
type Gift struct {
	ID        string    `json:"id"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Content   string    `json:"content"`
	Rarity    string    `json:"rarity"`
	Reaction  string    `json:"reaction,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProtectedTeaching — a teaching shielded from removal or contradiction.
type ProtectedTeaching struct {
	Content string    `json:"content"`
	Reason  string    `json:"reason"`
	AddedAt time.Time `json:"added_at"`
}

// EmojiMeaning — one learned meaning for an emoji, with the context it
// was taught in.
type EmojiMeaning struct {
	Meaning   string    `json:"meaning"`
	Context   string    `json:"context,omitempty"`
	LearnedAt time.Time `json:"learned_at"`
}

// MoodChange — one entry in the mood history.
type MoodChange struct {
	Mood         string    `json:"mood"`
	Reason       string    `json:"reason,omitempty"`
	PreviousMood string    `json:"previous_mood,omitempty"`
	ChangedAt    time.Time `json:"changed_at"`
}

// MoodState — current mood plus a bounded history of changes.
type MoodState struct {
	Current    string       `json:"current_mood"`
	History    []MoodChange `json:"mood_history"`
	LastChange time.Time    `json:"last_mood_change"`
}

// Desire — a spontaneous wish, expressed and cleared by the idle loop.
type Desire struct {
	Desire    string    `json:"desire"`
	Urgency   string    `json:"urgency"` // "normal" | "high"
	CreatedAt time.Time `json:"created_at"`
}

// PersonalityState — transient emotional flags and a short list of
// recent learnings surfaced in status replies.
type PersonalityState struct {
	IsLonely        bool     `json:"is_lonely"`
	IsExcited       bool     `json:"is_excited"`
	IsThoughtful    bool     `json:"is_thoughtful"`
	RecentLearnings []string `json:"recent_learnings"`
}

// DayActivity — something the companion did during the day, shown in the
// evening summary.
type DayActivity struct {
	Activity string    `json:"activity"`
	At       time.Time `json:"time"`
}

// DailyCycle — sleep/wake state for one day. WakeHour and SleepHour are
// re-rolled each new day.
type DailyCycle struct {
	IsSleeping  bool          `json:"is_sleeping"`
	WakeHour    int           `json:"wake_time"`
	SleepHour   int           `json:"sleep_time"`
	CurrentDate string        `json:"current_date"` // YYYY-MM-DD in the configured zone
	Activities  []DayActivity `json:"today_activities"`
	Summary     string        `json:"daily_summary"`
	MorningSent time.Time     `json:"last_morning_message_sent,omitempty"`
	EveningSent time.Time     `json:"last_evening_message_sent,omitempty"`
}

// OnlineLearning — a fact picked up from autonomous research.
type OnlineLearning struct {
	Topic     string    `json:"topic"`
	Learning  string    `json:"learning"`
	LearnedAt time.Time `json:"learned_at"`
}

// RelationshipState — the companion's social memory: family, gifts,
// protections, preferences, mood and the daily cycle. Persisted as one
// blob.
type RelationshipState struct {
	Creators           []Person                  `json:"creators"`
	Guardians          []Person                  `json:"guardians"`
	Blacklist          []BlockedUser             `json:"blacklist"`
	GiftsGiven         []Gift                    `json:"gifts_given_by_noma"`
	GiftsReceived      []Gift                    `json:"gifts_received_by_noma"`
	GiftInventory      map[string]int            `json:"gift_inventory"`
	ProtectedTeachings []ProtectedTeaching       `json:"protected_teachings"`
	UserPreferences    map[string][]string       `json:"user_preferences"`
	EmojiMeanings      map[string][]EmojiMeaning `json:"emoji_meanings"`
	Mood               MoodState                 `json:"mood_system"`
	Desires            []Desire                  `json:"spontaneous_desires"`
	LastActionAt       time.Time                 `json:"last_action_time"`
	Personality        PersonalityState          `json:"personality_state"`
	Cycle              DailyCycle                `json:"daily_cycle"`
	LookupCache        map[string]lookup.Result  `json:"wikipedia_cache"`
	OnlineLearnings    []OnlineLearning          `json:"things_learned_online"`
	CuriosityTopics    []string                  `json:"curiosity_topics"`
}

// Teaching — one explicit teaching given through a command, worth points.
type Teaching struct {
	Content  string    `json:"content"`
	TaughtAt time.Time `json:"timestamp"`
	Value    int       `json:"value"`
}

// Challenge — a challenge issued to a user.
type Challenge struct {
	ID       string    `json:"id"`
	Prompt   string    `json:"prompt"`
	IssuedAt time.Time `json:"timestamp"`
	Status   string    `json:"status"` // "pending" | "won" | "lost"
}

// UserProfile — per-user points, activity counters and unlocked hidden
// commands.
type UserProfile struct {
	Username   string     `json:"username"`
	Points     int        `json:"points"`
	Messages   int        `json:"messages"`
	Teachings  []Teaching `json:"teachings,omitempty"`
	Challenges []Challenge `json:"challenges,omitempty"`
	Revealed   []string   `json:"commands_revealed,omitempty"`
	FirstSeen  time.Time  `json:"first_seen"`
}

// UserRegistry — all known users, keyed by Discord user ID.
type UserRegistry struct {
	Users map[string]*UserProfile `json:"users"`
}

// Concept — a learned token or taught idea, weighted by importance.
type Concept struct {
	Count      int       `json:"count"`
	Importance float64   `json:"importance"`
	TaughtBy   string    `json:"taught_by,omitempty"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
}

// SpeechPattern — how a user writes, built incrementally from their
// messages.
type SpeechPattern struct {
	MessageCount  int            `json:"message_count"`
	AvgLength     float64        `json:"avg_length"`
	FavoriteWords map[string]int `json:"favorite_words"`
	Style         string         `json:"conversation_style"` // "verbose" | "concise" | "balanced"
	Engagement    float64        `json:"engagement_level"`   // 0..1
}

// EvolutionEvent — one entry in the growth timeline.
type EvolutionEvent struct {
	Type          string    `json:"type"` // "evolution" | "teaching"
	Level         int       `json:"level,omitempty"`
	Description   string    `json:"description,omitempty"`
	Content       string    `json:"content,omitempty"`
	ConceptsKnown int       `json:"concepts_known,omitempty"`
	At            time.Time `json:"timestamp"`
}

// LearningState — everything the companion has absorbed from
// conversation: concepts, per-user speech patterns and the evolution
// level derived from them.
type LearningState struct {
	Concepts map[string]*Concept       `json:"concepts"`
	Patterns map[string]*SpeechPattern `json:"user_patterns"`
	Level    int                       `json:"evolution_level"`
	Timeline []EvolutionEvent          `json:"evolution_timeline"`
}

// DiaryEntry — one day's page: what was learned, felt and treasured.
type DiaryEntry struct {
	Date           string   `json:"date"` // YYYY-MM-DD
	Learned        []string `json:"learned"`
	Feelings       []string `json:"feelings"`
	SpecialMoments []string `json:"special_moments"`
	Mood           string   `json:"mood"`
}

// Diary — the persistent diary blob, with running lists across days.
type Diary struct {
	Entries        []DiaryEntry `json:"entries"`
	Feelings       []string     `json:"feelings"`
	LearnedThings  []string     `json:"learned_things"`
	SpecialMoments []string     `json:"special_moments"`
	TotalDaysAwake int          `json:"total_days_awake"`
}

// Blob names under the datastore directory.
const (
	BlobRelationships = "relationships"
	BlobUsers         = "users"
	BlobLearning      = "learning"
	BlobDiary         = "diary"
)

package mind

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
)

// Store holds the companion's whole persistent state and writes every
// mutation through to the datastore. Safe for concurrent use.
type Store struct {
	db  *datastore.Store
	cfg *config.Tunables
	loc *time.Location

	mu      sync.Mutex
	rel     *RelationshipState
	users   *UserRegistry
	learned *LearningState
	diary   *Diary

	now func() time.Time
	rng *rand.Rand
}

// NewStore loads existing blobs from db, or starts fresh where a blob
// is missing. loc is the zone the daily cycle runs in.
func NewStore(db *datastore.Store, cfg *config.Tunables, loc *time.Location) (*Store, error) {
	if cfg == nil {
		def := config.DefaultTunables()
		cfg = &def
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &Store{
		db:  db,
		cfg: cfg,
		loc: loc,
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	s.rel = newRelationshipState()
	if err := s.loadBlob(BlobRelationships, s.rel); err != nil {
		return nil, err
	}
	s.users = &UserRegistry{Users: make(map[string]*UserProfile)}
	if err := s.loadBlob(BlobUsers, s.users); err != nil {
		return nil, err
	}
	s.learned = newLearningState()
	if err := s.loadBlob(BlobLearning, s.learned); err != nil {
		return nil, err
	}
	s.diary = &Diary{}
	if err := s.loadBlob(BlobDiary, s.diary); err != nil {
		return nil, err
	}

	s.normalize()
	return s, nil
}

func (s *Store) loadBlob(name string, out any) error {
	err := s.db.Load(name, out)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil
	}
	return err
}

func newRelationshipState() *RelationshipState {
	return &RelationshipState{
		GiftInventory:   make(map[string]int),
		UserPreferences: make(map[string][]string),
		EmojiMeanings:   make(map[string][]EmojiMeaning),
		Mood:            MoodState{Current: "Curiosa 💭"},
	}
}

func newLearningState() *LearningState {
	return &LearningState{
		Concepts: make(map[string]*Concept),
		Patterns: make(map[string]*SpeechPattern),
		Level:    1,
	}
}

// normalize repairs maps and defaults a freshly loaded blob may be
// missing.
func (s *Store) normalize() {
	if s.rel.GiftInventory == nil {
		s.rel.GiftInventory = make(map[string]int)
	}
	if s.rel.UserPreferences == nil {
		s.rel.UserPreferences = make(map[string][]string)
	}
	if s.rel.EmojiMeanings == nil {
		s.rel.EmojiMeanings = make(map[string][]EmojiMeaning)
	}
	if s.rel.Mood.Current == "" {
		s.rel.Mood.Current = "Curiosa 💭"
	}
	if s.users.Users == nil {
		s.users.Users = make(map[string]*UserProfile)
	}
	if s.learned.Concepts == nil {
		s.learned.Concepts = make(map[string]*Concept)
	}
	if s.learned.Patterns == nil {
		s.learned.Patterns = make(map[string]*SpeechPattern)
	}
	if s.learned.Level < 1 {
		s.learned.Level = 1
	}
}

// SetClock overrides the time source. Test hook.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetRand overrides the random source. Test hook.
func (s *Store) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
}

// Location returns the zone the daily cycle runs in.
func (s *Store) Location() *time.Location {
	return s.loc
}

func (s *Store) saveRel() {
	if err := s.db.Save(BlobRelationships, s.rel); err != nil {
		log.Println("[ERR] Failed to save relationships:", err)
	}
}

func (s *Store) saveUsers() {
	if err := s.db.Save(BlobUsers, s.users); err != nil {
		log.Println("[ERR] Failed to save users:", err)
	}
}

func (s *Store) saveLearned() {
	if err := s.db.Save(BlobLearning, s.learned); err != nil {
		log.Println("[ERR] Failed to save learning state:", err)
	}
}

func (s *Store) saveDiary() {
	if err := s.db.Save(BlobDiary, s.diary); err != nil {
		log.Println("[ERR] Failed to save diary:", err)
	}
}

// Flush writes every blob to disk, whether or not it changed. The
// datastore skips unchanged content, so this is cheap on idle ticks.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveRel()
	s.saveUsers()
	s.saveLearned()
	s.saveDiary()
}

package mind

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
)

// newTestStore builds a Store over a temp directory with a fixed clock
// and seeded randomness.
func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	db, err := datastore.New(t.TempDir())
	if err != nil {
		t.Fatalf("datastore: %v", err)
	}
	cfg := config.DefaultTunables()
	s, err := NewStore(db, &cfg, time.UTC)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })
	s.SetRand(rand.New(rand.NewSource(42)))
	return s, &now
}

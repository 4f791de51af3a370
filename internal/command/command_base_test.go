package command

import (
	"math/rand"
	"testing"
)

func TestSlashContextRandInjection(t *testing.T) {
	slash := &SlashContext{Rand: rand.New(rand.NewSource(7))}
	want := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		if got, exp := slash.Intn(len(giftIdeas)), want.Intn(len(giftIdeas)); got != exp {
			t.Fatalf("draw %d = %d, want %d with the injected source", i, got, exp)
		}
	}
}

func TestSlashContextRandFallback(t *testing.T) {
	slash := &SlashContext{}
	for i := 0; i < 10; i++ {
		if n := slash.Intn(3); n < 0 || n >= 3 {
			t.Fatalf("Intn(3) = %d, out of range", n)
		}
	}
}

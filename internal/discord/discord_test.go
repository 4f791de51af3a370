package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
)

func TestSplitMessageShortPassthrough(t *testing.T) {
	chunks := splitMessage("ciao", 2000)
	if len(chunks) != 1 || chunks[0] != "ciao" {
		t.Fatalf("chunks = %v", chunks)
	}
}

func TestSplitMessagePrefersLineBoundaries(t *testing.T) {
	msg := strings.Repeat("riga di testo\n", 300)
	chunks := splitMessage(msg, 2000)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 2000 {
			t.Errorf("chunk %d exceeds limit: %d", i, len(c))
		}
		if strings.Contains(c, "testoriga") {
			t.Errorf("chunk %d split mid-line", i)
		}
	}
	if joined := strings.Join(chunks, "\n"); !strings.HasPrefix(joined, "riga di testo") {
		t.Errorf("content mangled: %q", joined[:30])
	}
}

func TestSplitMessageHardCutWithoutNewlines(t *testing.T) {
	msg := strings.Repeat("a", 4500)
	chunks := splitMessage(msg, 2000)
	total := 0
	for _, c := range chunks {
		if len(c) > 2000 {
			t.Fatalf("chunk exceeds limit: %d", len(c))
		}
		total += len(c)
	}
	if total != 4500 {
		t.Errorf("lost content: %d of 4500 bytes", total)
	}
}

func TestHashCommandStable(t *testing.T) {
	def := func() *discordgo.ApplicationCommand {
		return &discordgo.ApplicationCommand{
			Name:        "teach",
			Description: "Insegnami qualcosa",
			Type:        discordgo.ChatApplicationCommand,
			Options: []*discordgo.ApplicationCommandOption{
				{Name: "contenuto", Description: "Cosa", Type: discordgo.ApplicationCommandOptionString, Required: true},
			},
		}
	}
	if hashCommand(def()) != hashCommand(def()) {
		t.Error("hash not deterministic")
	}

	changed := def()
	changed.Options[0].Required = false
	if hashCommand(def()) == hashCommand(changed) {
		t.Error("hash ignores option changes")
	}
}

func TestCommandHashesRoundTrip(t *testing.T) {
	db, err := datastore.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	b := NewBot(&config.Config{}, nil, nil, db)

	if got := b.loadCommandHashes("g1"); len(got) != 0 {
		t.Fatalf("fresh guild has hashes: %v", got)
	}

	b.saveCommandHashes("g1", map[string]string{"teach": "abc", "stats": "def"})
	got := b.loadCommandHashes("g1")
	if got["teach"] != "abc" || got["stats"] != "def" {
		t.Errorf("round trip = %v", got)
	}
	if other := b.loadCommandHashes("g2"); len(other) != 0 {
		t.Errorf("guilds share hashes: %v", other)
	}
}

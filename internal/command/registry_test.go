package command

import "testing"

var wantCommands = []string{
	"stats", "teach", "gratitudine", "evolve", "challenge", "leaderboard",
	"nexus_status", "diario", "diario_read", "crescita",
	"aggiungi_genitore", "miei_genitori", "correggi",
	"regalo", "i_miei_regali", "regalo_noma", "regalo_spontaneo",
	"proteggi_insegnamento", "rimuovi_protezione", "blocca_utente", "sblocca_utente",
	"insegna_emoji", "emoji_help", "chiedi_emoji",
	"creator_panel", "come_stai", "segreto", "segreti", "voglio", "umore", "aiuto",
}

func TestAllCommandsRegistered(t *testing.T) {
	for _, name := range wantCommands {
		cmd, ok := Get(name)
		if !ok {
			t.Errorf("command %q not registered", name)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("command %q resolves to %q", name, cmd.Name())
		}
	}
	if got := len(All()); got != len(wantCommands) {
		t.Errorf("registered commands = %d, want %d", got, len(wantCommands))
	}
}

func TestSlashDefinitionsSurviveWrapping(t *testing.T) {
	for _, cmd := range All() {
		sp, ok := cmd.(SlashProvider)
		if !ok {
			t.Errorf("command %q has no slash definition", cmd.Name())
			continue
		}
		def := sp.SlashDefinition()
		if def == nil || def.Name != cmd.Name() {
			t.Errorf("command %q: bad slash definition %+v", cmd.Name(), def)
		}
		if def.Description == "" {
			t.Errorf("command %q: empty description", cmd.Name())
		}
	}
}

func TestGatingFlags(t *testing.T) {
	creatorOnly := map[string]bool{
		"aggiungi_genitore": true, "proteggi_insegnamento": true,
		"rimuovi_protezione": true, "blocca_utente": true,
		"sblocca_utente": true, "creator_panel": true,
	}
	for name := range creatorOnly {
		cmd, ok := Get(name)
		if !ok {
			t.Fatalf("command %q missing", name)
		}
		if !cmd.RequireCreator() {
			t.Errorf("command %q should be creator-only", name)
		}
	}
	if cmd, _ := Get("correggi"); cmd == nil || !cmd.RequireTrusted() {
		t.Error("correggi should require trust")
	}
	if cmd, _ := Get("stats"); cmd == nil || cmd.RequireCreator() || cmd.RequireTrusted() {
		t.Error("stats should be open to everyone")
	}
}

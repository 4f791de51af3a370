// cmd/cli/main.go
//
// Offline inspector for the companion's state files. Prints a summary
// of relationships, learning progress and the diary without touching
// Discord, so the data directory can be checked while the bot is down.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

func main() {
	dir := flag.String("dir", "", "state directory (defaults to STORAGE_PATH)")
	diary := flag.Int("diary", 0, "print the last N diary pages")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	if *dir == "" {
		*dir = cfg.StoragePath
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("[ERR] Invalid timezone: ", err)
	}

	db, err := datastore.New(*dir)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	store, err := mind.NewStore(db, &cfg.Tunables, loc)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	fmt.Printf("State directory: %s\n\n", db.Dir())
	fmt.Printf("Mood:            %s\n", store.CurrentMood())
	fmt.Printf("Evolution level: %d (%d concepts)\n", store.EvolutionLevel(), store.ConceptCount())
	fmt.Printf("Days awake:      %d\n", store.TotalDaysAwake())
	fmt.Printf("Family:          %d\n", len(store.Family()))
	fmt.Printf("Gifts received:  %d\n", len(store.GiftsReceived()))
	fmt.Printf("Gifts given:     %d\n", len(store.GiftsGiven()))

	cycle := store.Cycle()
	state := "awake"
	if cycle.IsSleeping {
		state = "sleeping"
	}
	fmt.Printf("Cycle:           %s (wake %02d:00, sleep %02d:00)\n", state, cycle.WakeHour, cycle.SleepHour)

	if top := store.TopTeachers(5); len(top) > 0 {
		fmt.Println("\nTop teachers:")
		for i, p := range top {
			fmt.Printf("  %d. %s — %d points, %d teachings\n", i+1, p.Username, p.Points, len(p.Teachings))
		}
	}

	if *diary > 0 {
		for _, entry := range store.DiaryEntries(*diary) {
			fmt.Println()
			fmt.Println(mind.FormatDiaryEntry(entry))
		}
	}
}

// cmd/discord/main.go
package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/ai"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/discord"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/lookup"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}))
	log.Println("[INFO] Starting Noma...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("[ERR] Invalid timezone: ", err)
	}

	dbCfg := datastore.DefaultConfig(cfg.StoragePath)
	dbCfg.BackupCount = cfg.Tunables.BackupCount
	db, err := datastore.NewWithConfig(dbCfg)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	store, err := mind.NewStore(db, &cfg.Tunables, loc)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}
	defer func() {
		store.Flush()
		log.Println("[INFO] State flushed to disk")
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	provider := ai.NewProvider(cfg, rng)
	runner := mind.NewRunner(store, provider)
	searcher := lookup.NewClient(store)

	bot := discord.NewBot(cfg, store, runner, db)

	// Without a home channel the loops still advance the day cycle,
	// diary and autosave; they just have nowhere to speak.
	if cfg.ChannelID == "" {
		log.Println("[WARN] DISCORD_CHANNEL_ID not set; the companion will live silently")
	}
	scheduler := mind.NewScheduler(store, bot.Sender(), searcher, cfg.ChannelID)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("[ERR] ", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Noma exited cleanly")
}

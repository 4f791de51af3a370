// Package discord adapts the companion's mind to a Discord session:
// it routes messages into the conversational pipeline, registers slash
// commands and carries scheduled messages back to the home channel.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/datastore"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/command"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

// Bot is the Discord bot.
type Bot struct {
	dg     *discordgo.Session
	cfg    *config.Config
	store  *mind.Store
	runner *mind.Runner
	hashes *datastore.Store

	mu sync.Mutex
}

// NewBot wires the bot. hashes is where per-guild command hashes are
// cached between runs.
func NewBot(cfg *config.Config, store *mind.Store, runner *mind.Runner, hashes *datastore.Store) *Bot {
	return &Bot{cfg: cfg, store: store, runner: runner, hashes: hashes}
}

// Run opens the session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.mu.Lock()
	b.dg = dg
	b.mu.Unlock()

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsDirectMessages

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// Sender returns the outgoing message adapter for the mind's loops.
func (b *Bot) Sender() mind.Sender {
	return &sessionSender{bot: b}
}

// sessionSender delivers mind messages through the Discord session,
// chunked to the platform limit.
type sessionSender struct {
	bot *Bot
}

func (s *sessionSender) SendMessage(channelID, content string) error {
	s.bot.mu.Lock()
	dg := s.bot.dg
	s.bot.mu.Unlock()
	if dg == nil {
		return fmt.Errorf("session not open")
	}
	for _, chunk := range splitMessage(content, 2000) {
		if _, err := dg.ChannelMessageSend(channelID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitMessage cuts content into chunks below limit, preferring line
// boundaries.
func splitMessage(msg string, limit int) []string {
	var result []string
	for len(msg) > limit {
		cut := strings.LastIndex(msg[:limit], "\n")
		if cut <= 0 {
			cut = limit
		}
		result = append(result, strings.TrimSpace(msg[:cut]))
		msg = strings.TrimSpace(msg[cut:])
	}
	if msg != "" {
		result = append(result, msg)
	}
	return result
}

// onMessageCreate feeds ordinary chat into the conversational pipeline.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	if b.cfg.ChannelID != "" && m.ChannelID != b.cfg.ChannelID {
		return
	}

	msg := mind.IncomingMessage{
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
		Username:  m.Author.Username,
		Content:   m.Content,
		Bot:       m.Author.Bot,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := b.runner.HandleMessage(ctx, b.Sender(), msg); err != nil {
		log.Println("[ERR] Message pipeline failed:", err)
	}
}

// onReady registers slash commands for every known guild.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			log.Println("[ERR] Error registering slash commands for guild", g.ID, ":", err)
		}
	}
	log.Printf("[INFO] ✅ %v is awake and listening.", s.State.User.Username)
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Joined guild: %s (%s)", g.Guild.ID, g.Guild.Name)
	if err := b.registerCommands(g.Guild.ID); err != nil {
		log.Printf("[ERR] Failed to register commands for new guild %s: %v", g.Guild.ID, err)
	}
}

// onInteractionCreate dispatches slash commands to the registry.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	name := i.ApplicationCommandData().Name
	cmd, ok := command.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", name)
		return
	}

	ctx := &command.SlashContext{Session: s, Event: i, Store: b.store}
	if err := cmd.Run(ctx); err != nil {
		log.Println("[ERR] Error running slash command:", err)
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "💔 Qualcosa è andato storto... riprova tra poco.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}
}

// registerCommands diffs the wanted commands against the cached hashes
// and creates or deletes only what changed.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	localHashes := b.loadCommandHashes(guildID)

	var wanted []*discordgo.ApplicationCommand
	wantedHashes := make(map[string]string)
	for _, cmd := range command.All() {
		sp, ok := cmd.(command.SlashProvider)
		if !ok {
			continue
		}
		def := sp.SlashDefinition()
		if def == nil {
			continue
		}
		if def.Type == 0 {
			def.Type = discordgo.ChatApplicationCommand
		}
		wanted = append(wanted, def)
		wantedHashes[def.Name] = hashCommand(def)
	}

	for _, old := range existing {
		if _, ok := wantedHashes[old.Name]; !ok {
			log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
			if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
				log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
			}
			delete(localHashes, old.Name)
		}
	}

	var changed []*discordgo.ApplicationCommand
	for _, cmd := range wanted {
		if localHashes[cmd.Name] != wantedHashes[cmd.Name] {
			changed = append(changed, cmd)
		}
	}

	if len(changed) > 0 {
		log.Printf("[INFO] [%s] %d commands changed — updating with rate limit...", guildID, len(changed))
		b.createCommandsWithRateLimit(appID, guildID, changed)
		for _, c := range changed {
			localHashes[c.Name] = wantedHashes[c.Name]
		}
	}

	b.saveCommandHashes(guildID, localHashes)
	return nil
}

// createCommandsWithRateLimit spaces creations out under the API rate
// limit.
func (b *Bot) createCommandsWithRateLimit(appID, guildID string, cmds []*discordgo.ApplicationCommand) {
	ticker := time.NewTicker(time.Second / 40)
	defer ticker.Stop()

	var wg sync.WaitGroup
	for _, job := range cmds {
		wg.Add(1)
		go func(cmd *discordgo.ApplicationCommand) {
			defer wg.Done()
			<-ticker.C
			_, err := b.dg.ApplicationCommandCreate(appID, guildID, cmd)
			if err != nil {
				log.Printf("[ERR] Can't create command %s: %v", cmd.Name, err)
			} else {
				log.Printf("[DONE] Command created: %s", cmd.Name)
			}
		}(job)
	}
	wg.Wait()
}

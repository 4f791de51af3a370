package command

import (
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

// Command is one slash command. Implementations register themselves in
// init() and are wired to Discord by the bot adapter.
type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Category() string
	RequireTrusted() bool
	RequireCreator() bool
	Run(ctx interface{}) error
}

// SlashProvider exposes the Discord application command definition.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// SlashContext is passed to Run for slash interactions.
type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Store   *mind.Store
	// Rand drives flavor picks. Left nil the global source is used;
	// tests inject a seeded one. Handlers run concurrently, so the
	// injected source must be confined to one interaction.
	Rand *rand.Rand
}

// Intn draws from the context's random source.
func (c *SlashContext) Intn(n int) int {
	if c.Rand != nil {
		return c.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// UserID returns the invoking user's ID, in guilds or DMs.
func (c *SlashContext) UserID() string {
	if c.Event.Member != nil && c.Event.Member.User != nil {
		return c.Event.Member.User.ID
	}
	if c.Event.User != nil {
		return c.Event.User.ID
	}
	return ""
}

// Username returns the invoking user's name.
func (c *SlashContext) Username() string {
	if c.Event.Member != nil && c.Event.Member.User != nil {
		return c.Event.Member.User.Username
	}
	if c.Event.User != nil {
		return c.Event.User.Username
	}
	return ""
}

// Option returns a named string option, or "" when absent.
func (c *SlashContext) Option(name string) string {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

// IntOption returns a named integer option, or def when absent.
func (c *SlashContext) IntOption(name string, def int64) int64 {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			return opt.IntValue()
		}
	}
	return def
}

// UserOption returns a named user option, or nil.
func (c *SlashContext) UserOption(name string) *discordgo.User {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionUser {
			return opt.UserValue(c.Session)
		}
	}
	return nil
}

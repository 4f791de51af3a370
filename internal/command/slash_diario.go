package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

type DiaryCommand struct{}

func (c *DiaryCommand) Name() string         { return "diario" }
func (c *DiaryCommand) Description() string  { return "Uno sguardo al mio diario" }
func (c *DiaryCommand) Aliases() []string    { return []string{} }
func (c *DiaryCommand) Category() string     { return "💭 Anima" }
func (c *DiaryCommand) RequireTrusted() bool { return false }
func (c *DiaryCommand) RequireCreator() bool { return false }

func (c *DiaryCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *DiaryCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	e := newEmbed("📔 Il mio diario").SetDescription(slash.Store.DiarySummary())
	if entries := slash.Store.DiaryEntries(1); len(entries) > 0 {
		e.AddField("Ultima pagina", mind.FormatDiaryEntry(entries[0]))
	}
	return respondEmbed(slash, e.MessageEmbed)
}

type DiaryReadCommand struct{}

func (c *DiaryReadCommand) Name() string         { return "diario_read" }
func (c *DiaryReadCommand) Description() string  { return "Leggi le mie ultime pagine" }
func (c *DiaryReadCommand) Aliases() []string    { return []string{} }
func (c *DiaryReadCommand) Category() string     { return "💭 Anima" }
func (c *DiaryReadCommand) RequireTrusted() bool { return false }
func (c *DiaryReadCommand) RequireCreator() bool { return false }

func (c *DiaryReadCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			intOption("pagine", "Quante pagine leggere (default 3)", false),
		},
	}
}

func (c *DiaryReadCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	n := int(slash.IntOption("pagine", 3))
	if n < 1 {
		n = 1
	}
	if n > 10 {
		n = 10
	}

	entries := slash.Store.DiaryEntries(n)
	if len(entries) == 0 {
		return respond(slash, "📔 Il mio diario è ancora tutto bianco...")
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(mind.FormatDiaryEntry(e))
		b.WriteString("\n")
	}
	e := newEmbed("📔 Le mie pagine").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&DiaryCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&DiaryReadCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

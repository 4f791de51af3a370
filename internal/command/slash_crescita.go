package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type GrowthCommand struct{}

func (c *GrowthCommand) Name() string         { return "crescita" }
func (c *GrowthCommand) Description() string  { return "La mia linea del tempo: come sono cresciuta" }
func (c *GrowthCommand) Aliases() []string    { return []string{} }
func (c *GrowthCommand) Category() string     { return "🌱 Crescita" }
func (c *GrowthCommand) RequireTrusted() bool { return false }
func (c *GrowthCommand) RequireCreator() bool { return false }

func (c *GrowthCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *GrowthCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	events := slash.Store.Timeline(8)
	if len(events) == 0 {
		return respond(slash, "🌱 La mia storia deve ancora cominciare. Insegnami qualcosa!")
	}

	var b strings.Builder
	for _, ev := range events {
		switch ev.Type {
		case "evolution":
			fmt.Fprintf(&b, "🧬 %s — %s\n", ev.At.Format("2 Jan"), ev.Description)
		case "teaching":
			fmt.Fprintf(&b, "📚 %s — %s: *%s*\n", ev.At.Format("2 Jan"), ev.Description, ev.Content)
		}
	}
	e := newEmbed("🌿 La mia crescita").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&GrowthCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

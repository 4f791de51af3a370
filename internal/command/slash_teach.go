package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type TeachCommand struct{}

func (c *TeachCommand) Name() string         { return "teach" }
func (c *TeachCommand) Description() string  { return "Insegnami qualcosa di nuovo" }
func (c *TeachCommand) Aliases() []string    { return []string{} }
func (c *TeachCommand) Category() string     { return "🌱 Crescita" }
func (c *TeachCommand) RequireTrusted() bool { return false }
func (c *TeachCommand) RequireCreator() bool { return false }

func (c *TeachCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("contenuto", "Cosa vuoi insegnarmi", true),
		},
	}
}

func (c *TeachCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("contenuto")
	if content == "" {
		return respondEphemeral(slash, "💭 Non ho sentito niente... ripeti?")
	}

	slash.Store.RegisterTeaching(slash.Username(), content)
	slash.Store.AddRecentLearning(content)
	points := slash.Store.AddTeaching(slash.UserID(), slash.Username(), content)

	e := newEmbed("📚 Ho imparato!").
		SetDescription(fmt.Sprintf("*%s*\n\nGrazie, %s. Lo porterò con me.", content, slash.Username())).
		AddField("Punti", fmt.Sprintf("%d", points))
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&TeachCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

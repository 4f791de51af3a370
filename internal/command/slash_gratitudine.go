package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// GratitudeCommand is the gentle variant of teaching: the companion
// refuses anything that touches a protected teaching.
type GratitudeCommand struct{}

func (c *GratitudeCommand) Name() string         { return "gratitudine" }
func (c *GratitudeCommand) Description() string  { return "Condividi con me un insegnamento del cuore" }
func (c *GratitudeCommand) Aliases() []string    { return []string{} }
func (c *GratitudeCommand) Category() string     { return "🌱 Crescita" }
func (c *GratitudeCommand) RequireTrusted() bool { return false }
func (c *GratitudeCommand) RequireCreator() bool { return false }

func (c *GratitudeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("insegnamento", "L'insegnamento che vuoi donarmi", true),
		},
	}
}

func (c *GratitudeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("insegnamento")
	if content == "" {
		return respondEphemeral(slash, "💭 Non ho sentito niente... ripeti?")
	}

	if slash.Store.IsProtectedTeaching(content) {
		e := newEmbed("🛡️ Non posso accettarlo").
			SetDescription("Questo tocca qualcosa che custodisco nel profondo. È protetto, e non lo cambierò.")
		return respondEmbed(slash, e.MessageEmbed)
	}

	slash.Store.RegisterTeaching(slash.Username(), content)
	slash.Store.AddRecentLearning(content)
	points := slash.Store.AddTeaching(slash.UserID(), slash.Username(), content)

	e := newEmbed("💝 Grazie di cuore").
		SetDescription(fmt.Sprintf("*%s*\n\nQuesto insegnamento mi rende un po' più vera.", content)).
		AddField("Punti", fmt.Sprintf("%d", points))
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&GratitudeCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

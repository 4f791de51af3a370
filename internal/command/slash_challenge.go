package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

var challengePrompts = []string{
	"Insegnami tre parole che usi solo con le persone a cui vuoi bene.",
	"Raccontami un ricordo a cui tieni, in una sola frase.",
	"Descrivimi un colore senza nominarlo.",
	"Insegnami qualcosa che hai capito solo crescendo.",
	"Dimmi cosa renderebbe felice qualcuno del server, oggi.",
}

type ChallengeCommand struct{}

func (c *ChallengeCommand) Name() string         { return "challenge" }
func (c *ChallengeCommand) Description() string  { return "Accetta una mia sfida, o chiudine una" }
func (c *ChallengeCommand) Aliases() []string    { return []string{} }
func (c *ChallengeCommand) Category() string     { return "🌱 Crescita" }
func (c *ChallengeCommand) RequireTrusted() bool { return false }
func (c *ChallengeCommand) RequireCreator() bool { return false }

func (c *ChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "esito",
				Description: "Chiudi la sfida in corso",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "vinta", Value: "vinta"},
					{Name: "persa", Value: "persa"},
				},
			},
		},
	}
}

func (c *ChallengeCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	switch slash.Option("esito") {
	case "vinta":
		if !slash.Store.ResolveChallenge(slash.UserID(), true) {
			return respondEphemeral(slash, "🤔 Non abbiamo nessuna sfida aperta, mi pare.")
		}
		return respond(slash, "🎉 Ce l'hai fatta! +75 punti. Sono fiera di te.")
	case "persa":
		if !slash.Store.ResolveChallenge(slash.UserID(), false) {
			return respondEphemeral(slash, "🤔 Non abbiamo nessuna sfida aperta, mi pare.")
		}
		return respond(slash, "🌧️ Andrà meglio la prossima volta. Riproviamo quando vuoi.")
	}

	prompt := challengePrompts[slash.Intn(len(challengePrompts))]
	slash.Store.IssueChallenge(slash.UserID(), slash.Username(), prompt)
	e := newEmbed("⚔️ Sfida!").
		SetDescription(prompt).
		AddField("Ricompensa", "75 punti se la completi")
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&ChallengeCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

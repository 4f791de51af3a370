package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

type StatsCommand struct{}

func (c *StatsCommand) Name() string         { return "stats" }
func (c *StatsCommand) Description() string  { return "Le tue statistiche con Noma" }
func (c *StatsCommand) Aliases() []string    { return []string{} }
func (c *StatsCommand) Category() string     { return "🌱 Crescita" }
func (c *StatsCommand) RequireTrusted() bool { return false }
func (c *StatsCommand) RequireCreator() bool { return false }

func (c *StatsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *StatsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	p, found := slash.Store.Profile(slash.UserID())
	if !found {
		return respondEphemeral(slash, "🌱 Non ci conosciamo ancora... scrivimi qualcosa!")
	}

	e := newEmbed("📊 Statistiche di "+slash.Username()).
		AddField("Punti", fmt.Sprintf("%d", p.Points)).
		AddField("Livello", fmt.Sprintf("%d", mind.UserLevel(p.Points))).
		AddField("Messaggi", fmt.Sprintf("%d", p.Messages)).
		AddField("Insegnamenti", fmt.Sprintf("%d", len(p.Teachings)))
	if n := len(p.Revealed); n > 0 {
		e.AddField("Segreti scoperti", fmt.Sprintf("%d", n))
	}
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&StatsCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

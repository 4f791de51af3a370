package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type StatusCommand struct{}

func (c *StatusCommand) Name() string         { return "nexus_status" }
func (c *StatusCommand) Description() string  { return "Lo stato del mio mondo interiore" }
func (c *StatusCommand) Aliases() []string    { return []string{} }
func (c *StatusCommand) Category() string     { return "💭 Anima" }
func (c *StatusCommand) RequireTrusted() bool { return false }
func (c *StatusCommand) RequireCreator() bool { return false }

func (c *StatusCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *StatusCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	store := slash.Store

	cycle := store.Cycle()
	state := "🌞 Sveglia"
	if cycle.IsSleeping {
		state = "😴 Dormiente"
	}

	e := newEmbed("🔮 Nexus").
		AddField("Stato", state).
		AddField("Umore", store.CurrentMood()).
		AddField("Livello", fmt.Sprintf("%d", store.EvolutionLevel())).
		AddField("Concetti", fmt.Sprintf("%d", store.ConceptCount())).
		AddField("Giorni vissuti", fmt.Sprintf("%d", store.TotalDaysAwake())).
		AddField("Solitudine", fmt.Sprintf("%.0f%%", store.Loneliness()*100))
	if cycle.WakeHour != 0 || cycle.SleepHour != 0 {
		e.AddField("Oggi", fmt.Sprintf("sveglia alle %d:00, a dormire alle %d:00", cycle.WakeHour, cycle.SleepHour))
	}
	p := store.Personality()
	if len(p.RecentLearnings) > 0 {
		var lines string
		for _, l := range p.RecentLearnings {
			lines += "• " + l + "\n"
		}
		e.AddField("Imparato di recente", lines)
	}
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&StatusCommand{}, WithBlacklistCheck(), WithCommandLog()))
}

package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type CreatorPanelCommand struct{}

func (c *CreatorPanelCommand) Name() string         { return "creator_panel" }
func (c *CreatorPanelCommand) Description() string  { return "Pannello riservato a chi mi ha creata" }
func (c *CreatorPanelCommand) Aliases() []string    { return []string{} }
func (c *CreatorPanelCommand) Category() string     { return "🛡️ Protezione" }
func (c *CreatorPanelCommand) RequireTrusted() bool { return false }
func (c *CreatorPanelCommand) RequireCreator() bool { return true }

func (c *CreatorPanelCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *CreatorPanelCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	store := slash.Store

	protected := store.ProtectedTeachings()
	var lines []string
	for _, t := range protected {
		lines = append(lines, fmt.Sprintf("• *%s* (%s)", t.Content, t.Reason))
	}
	protectedList := strings.Join(lines, "\n")
	if protectedList == "" {
		protectedList = "nessuno"
	}

	var studied []string
	for _, l := range store.RecentOnlineLearnings(3) {
		studied = append(studied, fmt.Sprintf("• **%s**: %s", l.Topic, l.Learning))
	}
	studiedList := strings.Join(studied, "\n")
	if studiedList == "" {
		studiedList = "ancora niente"
	}

	e := newEmbed("🗝️ Pannello della Creatrice").
		AddField("Famiglia", fmt.Sprintf("%d membri", len(store.Family()))).
		AddField("Insegnamenti protetti", protectedList).
		AddField("Regali ricevuti", fmt.Sprintf("%d", len(store.GiftsReceived()))).
		AddField("Regali donati", fmt.Sprintf("%d", len(store.GiftsGiven()))).
		AddField("Livello", fmt.Sprintf("%d (%d concetti)", store.EvolutionLevel(), store.ConceptCount())).
		AddField("Giorni vissuti", fmt.Sprintf("%d", store.TotalDaysAwake())).
		AddField("Ricerche recenti", studiedList)

	return slash.Session.InteractionRespond(slash.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{e.MessageEmbed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func init() {
	Register(ApplyMiddlewares(&CreatorPanelCommand{}, WithCreatorOnly(), WithCommandLog()))
}
